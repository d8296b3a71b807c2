package filelock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockSuffix     = ".lock"
	lockRetryDelay = 500 * time.Millisecond
)

var ErrNotLocked = errors.New("lock not acquired")

// Locker takes an exclusive advisory lock next to the checkout directory.
type Locker struct {
	logger *slog.Logger
	path   string
}

func New(logger *slog.Logger, checkoutDir string) *Locker {
	return &Locker{
		logger: logger.With("component", "filelock"),
		path:   checkoutDir + lockSuffix,
	}
}

// LockCommand blocks until the lock is held or ctx ends.
func (l *Locker) LockCommand(ctx context.Context) (func(), error) {
	fl := flock.New(l.path)

	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", l.path, err)
	}

	if !locked {
		return nil, fmt.Errorf("lock %s: %w", l.path, ErrNotLocked)
	}

	l.logger.DebugContext(ctx, "checkout locked", "path", l.path)

	return func() {
		if err := fl.Unlock(); err != nil {
			l.logger.WarnContext(ctx, "unlock checkout", "path", l.path, "reason", err)
		}
	}, nil
}
