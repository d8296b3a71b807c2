package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/infra/appstate"
	"github.com/skillcoder/kbs-deployer/internal/infra/pinger"
	"github.com/skillcoder/kbs-deployer/internal/infra/shutdown/mocks"
)

type staticStats map[string]*pinger.Statistics

func (s staticStats) GetAllStats() map[string]*pinger.Statistics { return s }

func running(t *testing.T, stats staticStats) *appstate.AppState {
	t.Helper()

	s := appstate.New(slog.Default(), time.Now(), stats)
	require.NoError(t, s.SetStarting(t.Context()))
	require.NoError(t, s.SetRunning(t.Context()))

	return s
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		steps     []func(*appstate.AppState, context.Context) error
		wantState appstate.State
		wantErr   error
	}{
		{
			name:      "init to starting",
			steps:     []func(*appstate.AppState, context.Context) error{(*appstate.AppState).SetStarting},
			wantState: appstate.StateStarting,
		},
		{
			name: "starting to running",
			steps: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).SetStarting,
				(*appstate.AppState).SetRunning,
			},
			wantState: appstate.StateRunning,
		},
		{
			name: "running to terminating",
			steps: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).SetStarting,
				(*appstate.AppState).SetRunning,
				(*appstate.AppState).SetTerminating,
			},
			wantState: appstate.StateTerminating,
		},
		{
			name:      "init to running is rejected",
			steps:     []func(*appstate.AppState, context.Context) error{(*appstate.AppState).SetRunning},
			wantState: appstate.StateInit,
			wantErr:   appstate.ErrInvalidStateTransition,
		},
		{
			name: "terminated cannot change",
			steps: []func(*appstate.AppState, context.Context) error{
				(*appstate.AppState).Shutdown,
				(*appstate.AppState).SetTerminating,
			},
			wantState: appstate.StateTerminated,
			wantErr:   appstate.ErrAlreadyTerminated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := appstate.New(slog.Default(), time.Now(), nil)

			var err error
			for _, step := range tt.steps {
				if err = step(s, t.Context()); err != nil {
					break
				}
			}

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.wantState, s.GetState())
		})
	}
}

func TestAppState_HealthAndReadiness(t *testing.T) {
	t.Parallel()

	s := appstate.New(slog.Default(), time.Now(), nil)
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	s = running(t, staticStats{"janitor": {IsHealthy: true, IsReady: true}})
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())

	s = running(t, staticStats{"janitor": {IsHealthy: true, IsReady: false}})
	require.True(t, s.IsHealthy())
	require.False(t, s.IsReady())

	s = running(t, staticStats{"metrics-server": {IsHealthy: false, IsReady: true}})
	require.False(t, s.IsHealthy())
}

func TestAppState_GetUptime(t *testing.T) {
	t.Parallel()

	start := time.Now().Add(-time.Minute)
	s := appstate.New(slog.Default(), start, nil)

	require.Equal(t, start, s.GetStartTime())
	require.GreaterOrEqual(t, s.GetUptime(), time.Minute)
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop failed")

	first := mocks.NewMockShutdowner(t)
	first.EXPECT().Name().Return("first").Maybe()
	first.EXPECT().Shutdown(mock.Anything).Return(nil).Once()

	second := mocks.NewMockShutdowner(t)
	second.EXPECT().Name().Return("second").Maybe()
	second.EXPECT().Shutdown(mock.Anything).Return(errStop).Once()

	s := running(t, nil)
	s.RegisterShutdowner(first)
	s.RegisterShutdowner(second)

	err := s.Shutdown(t.Context())
	require.ErrorIs(t, err, errStop)
	require.Equal(t, appstate.StateTerminated, s.GetState())

	require.NoError(t, s.Shutdown(t.Context()))
}
