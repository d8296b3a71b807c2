package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/app"
	"github.com/skillcoder/kbs-deployer/internal/cli"
	"github.com/skillcoder/kbs-deployer/internal/config"
	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
)

type fakeApp struct {
	cfg        *config.Config
	deployOpts *app.DeployOptions
	cleanup    *app.CleanupOptions
	deleted    bool
	err        error
}

func (f *fakeApp) Deploy(_ context.Context, opts app.DeployOptions) (deployer.Report, error) {
	f.deployOpts = &opts

	return deployer.Report{DeployID: "d-1"}, f.err
}

func (f *fakeApp) Delete(context.Context) error {
	f.deleted = true

	return f.err
}

func (f *fakeApp) ServiceHost(context.Context) (string, error) {
	return "kbs.abc123.westeurope.aksapp.io", f.err
}

func (f *fakeApp) ServicePort(context.Context) (int32, error) {
	return 80, f.err
}

func (f *fakeApp) Cleanup(_ context.Context, opts app.CleanupOptions) error {
	f.cleanup = &opts

	return f.err
}

func run(t *testing.T, fake *fakeApp, args ...string) (string, error) {
	t.Helper()

	factory := func(_ *slog.Logger, cfg *config.Config, _ time.Time) cli.Application {
		fake.cfg = cfg

		return fake
	}

	var out bytes.Buffer

	cmd := cli.New(time.Now(), make(chan os.Signal), factory)
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	err := cmd.Run(t.Context(), append([]string{"kbs-deployer"}, args...))

	return out.String(), err
}

func TestDeployCommand(t *testing.T) {
	t.Parallel()

	t.Run("passes flags", func(t *testing.T) {
		t.Parallel()

		fake := &fakeApp{}

		_, err := run(t, fake, "deploy", "--ingress", "aks", "--retries", "2", "--metrics-textfile", "/tmp/kbs.prom")
		require.NoError(t, err)
		require.Equal(t, &app.DeployOptions{
			Ingress:         "aks",
			Retries:         2,
			MetricsTextfile: "/tmp/kbs.prom",
		}, fake.deployOpts)
	})

	t.Run("defaults to cluster-internal", func(t *testing.T) {
		t.Parallel()

		fake := &fakeApp{}

		_, err := run(t, fake, "deploy")
		require.NoError(t, err)
		require.Equal(t, &app.DeployOptions{}, fake.deployOpts)
	})

	t.Run("negative retries", func(t *testing.T) {
		t.Parallel()

		fake := &fakeApp{}

		_, err := run(t, fake, "deploy", "--retries=-1")
		require.ErrorIs(t, err, cli.ErrNegativeRetries)
		require.Nil(t, fake.deployOpts)
	})

	t.Run("readiness timeout", func(t *testing.T) {
		t.Parallel()

		fake := &fakeApp{err: fmt.Errorf("%w: %w", deployer.ErrReadinessTimeout, deployer.ErrIngressUnresponsive)}

		_, err := run(t, fake, "deploy", "--ingress", "aks")
		require.ErrorIs(t, err, deployer.ErrIngressUnresponsive)
		require.Equal(t, 2, cli.ExitCode(err))
	})
}

func TestQueryCommands(t *testing.T) {
	t.Parallel()

	t.Run("host", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, &fakeApp{}, "host")
		require.NoError(t, err)
		require.Equal(t, "kbs.abc123.westeurope.aksapp.io\n", out)
	})

	t.Run("port", func(t *testing.T) {
		t.Parallel()

		out, err := run(t, &fakeApp{}, "port")
		require.NoError(t, err)
		require.Equal(t, "80\n", out)
	})

	t.Run("port failure", func(t *testing.T) {
		t.Parallel()

		errNoService := errors.New("service not found")

		out, err := run(t, &fakeApp{err: errNoService}, "port")
		require.ErrorIs(t, err, errNoService)
		require.Empty(t, out)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		fake := &fakeApp{}

		_, err := run(t, fake, "delete")
		require.NoError(t, err)
		require.True(t, fake.deleted)
	})
}

func TestCleanupCommand(t *testing.T) {
	t.Parallel()

	fake := &fakeApp{}

	_, err := run(t, fake, "cleanup-clusters", "--older-than", "6h", "--schedule", "*/30 * * * *", "--dry-run")
	require.NoError(t, err)
	require.Equal(t, &app.CleanupOptions{
		OlderThan: 6 * time.Hour,
		Schedule:  "*/30 * * * *",
		DryRun:    true,
	}, fake.cleanup)
}

func TestGlobalFlagsOverrideConfig(t *testing.T) {
	t.Setenv("KBS_CHECKOUT_DIR", "/from/env")
	t.Setenv("KBS_LOG_LEVEL", "debug")

	fake := &fakeApp{}

	_, err := run(t, fake, "--checkout-dir", "/from/flag", "--kubeconfig", "/kube/config", "delete")
	require.NoError(t, err)
	require.Equal(t, "/from/flag", fake.cfg.CheckoutDir)
	require.Equal(t, "/kube/config", fake.cfg.KubeConfig)
	require.Equal(t, "debug", fake.cfg.LogLevel)
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("KBS_POD_RUNNING_TIMEOUT", "soon")

	fake := &fakeApp{}

	_, err := run(t, fake, "delete")
	require.Error(t, err)
	require.False(t, fake.deleted)
	require.Equal(t, 1, cli.ExitCode(err))
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give error
		want int
	}{
		{name: "success", give: nil, want: 0},
		{name: "fatal", give: deployer.ErrApply, want: 1},
		{name: "wrapped readiness timeout", give: fmt.Errorf("deploy kbs: %w", fmt.Errorf("%w: %w", deployer.ErrReadinessTimeout, deployer.ErrPodNotRunning)), want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, cli.ExitCode(tt.give))
		})
	}
}
