package cronparser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/infra/cronparser"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("hourly janitor spec", func(t *testing.T) {
		t.Parallel()

		s, err := cronparser.Parse("0 * * * *", "")
		require.NoError(t, err)
		require.Equal(t, "0 * * * *", s.String())

		after := time.Date(2026, 2, 15, 7, 20, 0, 0, time.UTC)
		require.Equal(t, time.Date(2026, 2, 15, 8, 0, 0, 0, time.UTC), s.Next(after))
		require.Equal(t, 40*time.Minute, s.Until(after))
	})

	t.Run("descriptor", func(t *testing.T) {
		t.Parallel()

		s, err := cronparser.Parse("@daily", "")
		require.NoError(t, err)

		after := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
		require.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), s.Next(after).UTC())
	})

	t.Run("tz shifts the occurrence", func(t *testing.T) {
		t.Parallel()

		s, err := cronparser.Parse("0 8 * * *", "America/New_York")
		require.NoError(t, err)

		after := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
		next := s.Next(after)
		require.True(t, next.After(after))
		require.Equal(t, 13, next.UTC().Hour())
	})

	t.Run("inline CRON_TZ ignores tz param", func(t *testing.T) {
		t.Parallel()

		s, err := cronparser.Parse("CRON_TZ=UTC 0 14 * * *", "America/New_York")
		require.NoError(t, err)

		after := time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC)
		require.Equal(t, 14, s.Next(after).UTC().Hour())
	})

	t.Run("empty spec", func(t *testing.T) {
		t.Parallel()

		_, err := cronparser.Parse("  ", "")
		require.ErrorIs(t, err, cronparser.ErrEmptySpec)
	})

	t.Run("malformed spec", func(t *testing.T) {
		t.Parallel()

		_, err := cronparser.Parse("invalid", "")
		require.Error(t, err)
	})
}
