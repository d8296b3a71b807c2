package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/infra/metrics"
)

func TestWriteTextfile(t *testing.T) {
	t.Parallel()

	metrics.RecordWait("pod-running", true, 20*time.Second)
	metrics.RecordDeployment("ready")
	metrics.RecordJanitorDeletion("group", errors.New("boom"))

	path := filepath.Join(t.TempDir(), "kbs.prom")

	require.NoError(t, metrics.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, `kbs_deployer_wait_duration_seconds_count{outcome="ready",stage="pod-running"}`)
	require.Contains(t, out, `kbs_deployer_deployments_total{state="ready"}`)
	require.Contains(t, out, `kbs_deployer_janitor_deletions_total{result="failed",scope="group"}`)
}

func TestWriteTextfile_BadPath(t *testing.T) {
	t.Parallel()

	err := metrics.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "kbs.prom"))
	require.Error(t, err)
}
