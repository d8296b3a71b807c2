package poll

import (
	"context"
	"log/slog"
	"time"

	"k8s.io/utils/clock"
)

// Predicate reports whether the awaited condition holds. An error counts as
// "not yet" and is only logged.
type Predicate func(ctx context.Context) (bool, error)

// Waiter evaluates predicates at a fixed interval within a time budget.
type Waiter struct {
	logger *slog.Logger
	clock  clock.Clock
}

// New creates a Waiter. A nil clock means the real clock.
func New(logger *slog.Logger, clk clock.Clock) *Waiter {
	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Waiter{
		logger: logger,
		clock:  clk,
	}
}

// Until evaluates predicate repeatedly, sleeping interval between
// evaluations, and returns true as soon as it holds. Each sleep consumes
// interval from the timeout budget; once the budget is spent, or ctx is
// done, Until returns false. There is no backoff.
func (w *Waiter) Until(
	ctx context.Context,
	timeout,
	interval time.Duration,
	predicate Predicate,
) bool {
	if interval <= 0 {
		interval = timeout
	}

	for remaining := timeout; remaining > 0; remaining -= interval {
		if ctx.Err() != nil {
			return false
		}

		ok, err := predicate(ctx)
		if err != nil {
			w.logger.DebugContext(ctx, "predicate error", "reason", err, "remaining", remaining)
		}

		if ok {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-w.clock.After(interval):
		}
	}

	return false
}
