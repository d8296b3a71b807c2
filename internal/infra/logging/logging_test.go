package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/infra/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want slog.Level
	}{
		{give: "debug", want: slog.LevelDebug},
		{give: "WARN", want: slog.LevelWarn},
		{give: "warning", want: slog.LevelWarn},
		{give: "error", want: slog.LevelError},
		{give: "info", want: slog.LevelInfo},
		{give: "", want: slog.LevelInfo},
		{give: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, logging.ParseLevel(tt.give))
		})
	}
}

// Not parallel: New replaces the slog default.
func TestNew(t *testing.T) {
	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer

		logger := logging.New(&buf, "json", "info")
		logger.Info("hello", "key", "value")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "hello", entry["msg"])
		require.Equal(t, "value", entry["key"])
	})

	t.Run("text format filters below level", func(t *testing.T) {
		var buf bytes.Buffer

		logger := logging.New(&buf, "text", "warn")
		logger.Info("dropped")
		logger.Warn("kept")

		out := buf.String()
		require.NotContains(t, out, "dropped")
		require.True(t, strings.Contains(out, "msg=kept"))
	})
}
