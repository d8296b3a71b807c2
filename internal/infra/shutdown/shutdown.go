package shutdown

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultShutdownTimeout = 5 * time.Second
)

// Shutdowner is implemented by long-running components that must be stopped
// before the process exits.
type Shutdowner interface {
	Name() string
	Shutdown(ctx context.Context) error
}

// Notify returns a channel that will receive SIGTERM and SIGINT signals.
// Call it first in main so a signal during start-up is not lost.
func Notify() <-chan os.Signal {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	return signals
}

type Handler struct {
	logger  *slog.Logger
	signals <-chan os.Signal
}

// New creates a new signal handler.
func New(logger *slog.Logger, signals <-chan os.Signal) *Handler {
	return &Handler{
		logger:  logger,
		signals: signals,
	}
}

// HandleSignals cancels the context on the first received signal. It
// returns when ctx is done or a signal arrives.
func (h *Handler) HandleSignals(ctx context.Context, cancel func()) {
	select {
	case <-ctx.Done():
		return
	case sig, ok := <-h.signals:
		if !ok {
			return
		}

		h.logger.InfoContext(ctx, "received termination signal, aborting", "signal", sig.String())
	}

	cancel()
}

// GracefulShutdown stops the components in reverse registration order
// within a bounded timeout and joins their errors.
func GracefulShutdown(
	originCtx context.Context,
	logger *slog.Logger,
	shutdowners []Shutdowner,
) error {
	// originCtx is usually already cancelled at this point
	ctx, cancel := context.WithTimeout(context.WithoutCancel(originCtx), defaultShutdownTimeout)
	defer cancel()

	var errs error

	for i := len(shutdowners) - 1; i >= 0; i-- {
		start := time.Now()
		shutdowner := shutdowners[i]

		if err := shutdowner.Shutdown(ctx); err != nil {
			logger.ErrorContext(ctx, "component shutdown failed",
				"component", shutdowner.Name(),
				"duration", time.Since(start),
				"reason", err,
			)

			errs = errors.Join(errs, err)

			continue
		}

		logger.InfoContext(ctx, "component shutdown completed",
			"component", shutdowner.Name(),
			"duration", time.Since(start),
		)
	}

	return errs
}
