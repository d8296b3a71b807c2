package deployer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_Transition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    []State
		wantErr bool
	}{
		{
			name: "full path with ingress",
			give: []State{
				StateApplying,
				StateWaitingPodRunning,
				StateWaitingServiceResponsive,
				StateWaitingIngressResponsive,
				StateReady,
			},
		},
		{
			name: "error from a wait",
			give: []State{StateApplying, StateWaitingPodRunning, StateError},
		},
		{
			name: "error before applying",
			give: []State{StateError},
		},
		{
			name:    "skip applying",
			give:    []State{StateWaitingPodRunning},
			wantErr: true,
		},
		{
			name:    "ingress wait before service wait",
			give:    []State{StateApplying, StateWaitingPodRunning, StateWaitingIngressResponsive},
			wantErr: true,
		},
		{
			name:    "nothing leaves error",
			give:    []State{StateError, StateApplying},
			wantErr: true,
		},
		{
			name:    "ready is terminal",
			give:    []State{StateApplying, StateWaitingPodRunning, StateWaitingServiceResponsive, StateReady, StateError},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tr := newTracker()

			var err error
			for _, s := range tt.give {
				if err = tr.transition(s); err != nil {
					break
				}
			}

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidStateTransition)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.give[len(tt.give)-1], tr.current())
			require.Equal(t, append([]State{StateNotDeployed}, tt.give...), tr.snapshot())
		})
	}
}
