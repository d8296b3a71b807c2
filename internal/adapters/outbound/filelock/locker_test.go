package filelock_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/filelock"
)

func TestLocker_LockCommand(t *testing.T) {
	t.Parallel()

	checkout := filepath.Join(t.TempDir(), "kbs")
	logger := slog.Default()

	first := filelock.New(logger, checkout)
	second := filelock.New(logger, checkout)

	unlock, err := first.LockCommand(t.Context())
	require.NoError(t, err)
	require.FileExists(t, checkout+".lock")

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()

	_, err = second.LockCommand(ctx)
	require.Error(t, err)

	unlock()

	unlock, err = second.LockCommand(t.Context())
	require.NoError(t, err)
	unlock()
}
