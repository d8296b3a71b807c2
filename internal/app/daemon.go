package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"k8s.io/utils/clock"

	"github.com/skillcoder/kbs-deployer/internal/httpserver"
	"github.com/skillcoder/kbs-deployer/internal/infra/appstate"
	"github.com/skillcoder/kbs-deployer/internal/infra/cronparser"
	"github.com/skillcoder/kbs-deployer/internal/infra/pinger"
)

// runDaemon serves health and metrics endpoints while the janitor runs on
// schedule. It blocks until ctx is cancelled.
func (a *App) runDaemon(
	originCtx context.Context,
	janitorSvc janitorService,
	schedule *cronparser.Schedule,
) (err error) {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	pingers := pinger.New(a.logger, a.cfg.PingerInterval, clock.RealClock{})
	appState := appstate.New(a.logger, a.appStart, pingers)

	if err := appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting state: %w", err)
	}

	defer func() {
		cancel()

		if shErr := appState.Shutdown(originCtx); shErr != nil {
			err = errors.Join(err, fmt.Errorf("shutdown: %w", shErr))
		}
	}()

	servers := []appServer{
		httpserver.New(a.logger, appState, a.cfg.HTTPPort),
		httpserver.NewMetricsServer(a.logger, a.cfg.MetricsPort),
	}

	ready := make([]<-chan struct{}, 0, len(servers)+1)

	for _, srv := range servers {
		if err := pingers.Register(srv); err != nil {
			return fmt.Errorf("register %s pinger: %w", srv.Name(), err)
		}

		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", srv.Name(), err)
		}

		appState.RegisterShutdowner(srv)

		ready = append(ready, srv.Ready())
	}

	if err := pingers.Register(janitorSvc); err != nil {
		return fmt.Errorf("register janitor pinger: %w", err)
	}

	if err := pingers.Start(ctx); err != nil {
		return fmt.Errorf("start pinger: %w", err)
	}

	appState.RegisterShutdowner(pingers)

	ready = append(ready, pingers.Ready())

	select {
	case <-ctx.Done():
		return nil
	case <-allChannelsClose(ctx, a.logger, ready...):
	}

	if err := appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running state: %w", err)
	}

	return janitorSvc.RunScheduled(ctx, schedule)
}

// allChannelsClose returns a channel closed once every input channel is
// closed. Cancelling ctx only stops the wait early for logging purposes;
// the output still closes after the inputs do.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	var wg sync.WaitGroup

	wg.Add(len(chans))

	for _, ch := range chans {
		go func() {
			defer wg.Done()

			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "context done while waiting for readiness")

				<-ch
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
