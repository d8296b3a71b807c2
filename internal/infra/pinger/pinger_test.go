package pinger_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"

	"github.com/skillcoder/kbs-deployer/internal/infra/pinger"
)

type fakePinger struct {
	name        string
	err         atomic.Pointer[error]
	critical    bool
	readyIgnore bool
}

func newFakePinger(name string) *fakePinger {
	return &fakePinger{name: name, critical: true}
}

func (p *fakePinger) Name() string { return p.name }

func (p *fakePinger) Ping(context.Context) error {
	if err := p.err.Load(); err != nil {
		return *err
	}

	return nil
}

func (p *fakePinger) PingerCritical() bool      { return p.critical }
func (p *fakePinger) PingerReadyCritical() bool { return !p.readyIgnore }

func (p *fakePinger) fail(err error) { p.err.Store(&err) }

func TestService_Register(t *testing.T) {
	t.Parallel()

	svc := pinger.New(slog.Default(), time.Second, nil)

	require.ErrorIs(t, svc.Register(nil), pinger.ErrNilPinger)
	require.NoError(t, svc.Register(newFakePinger("a")))
	require.ErrorIs(t, svc.Register(newFakePinger("a")), pinger.ErrPingerAlreadyRegistered)

	_, err := svc.GetStats("missing")
	require.ErrorIs(t, err, pinger.ErrPingerNotFound)

	stats, err := svc.GetStats("a")
	require.NoError(t, err)
	require.False(t, stats.IsReady)
	require.True(t, stats.IsHealthy)
}

func TestService_StartCollectsStats(t *testing.T) {
	t.Parallel()

	errDown := errors.New("down")

	healthy := newFakePinger("healthy")

	failing := newFakePinger("failing")
	failing.fail(errDown)

	lenient := newFakePinger("lenient")
	lenient.critical = false
	lenient.readyIgnore = true
	lenient.fail(errDown)

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clk := clocktesting.NewFakeClock(start)

	svc := pinger.New(slog.Default(), 10*time.Second, clk)
	require.NoError(t, svc.Register(healthy))
	require.NoError(t, svc.Register(failing))
	require.NoError(t, svc.Register(lenient))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, svc.Start(ctx))

	select {
	case <-svc.Ready():
	case <-time.After(time.Second):
		t.Fatal("pinger service did not become ready")
	}

	all := svc.GetAllStats()
	require.Len(t, all, 3)

	require.True(t, all["healthy"].IsReady)
	require.True(t, all["healthy"].IsHealthy)
	require.Equal(t, 1, all["healthy"].SuccessCount)
	require.Equal(t, start, all["healthy"].LastRun)

	require.False(t, all["failing"].IsReady)
	require.False(t, all["failing"].IsHealthy)
	require.Equal(t, "down", all["failing"].LastError)
	require.Positive(t, all["failing"].ConsecutiveErrors)

	require.True(t, all["lenient"].IsReady)
	require.True(t, all["lenient"].IsHealthy)

	failing.err.Store(nil)
	clk.Step(10 * time.Second)

	require.Eventually(t, func() bool {
		stats, err := svc.GetStats("failing")

		return err == nil && stats.IsHealthy && stats.ConsecutiveErrors == 0 && stats.ErrorCount == 1
	}, time.Second, 5*time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	require.NoError(t, svc.Shutdown(shutdownCtx))
	require.NoError(t, svc.Shutdown(shutdownCtx))
}

func TestService_ShutdownWithoutStart(t *testing.T) {
	t.Parallel()

	svc := pinger.New(slog.Default(), time.Second, nil)
	require.NoError(t, svc.Register(newFakePinger("idle")))

	require.NoError(t, svc.Shutdown(t.Context()))
	require.NoError(t, svc.Start(t.Context()))

	select {
	case <-svc.Ready():
		t.Fatal("pinger started after shutdown")
	default:
	}
}
