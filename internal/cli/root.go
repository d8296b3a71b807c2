package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/skillcoder/kbs-deployer/internal/app"
	"github.com/skillcoder/kbs-deployer/internal/config"
	"github.com/skillcoder/kbs-deployer/internal/infra/logging"
	"github.com/skillcoder/kbs-deployer/internal/infra/shutdown"
	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
)

// Version is overridden at build time with -ldflags "-X ...".
var Version = "dev"

const (
	exitOK       = 0
	exitFatal    = 1
	exitNotReady = 2
)

// AppFactory builds the application once config and logger are known.
type AppFactory func(logger *slog.Logger, cfg *config.Config, appStart time.Time) Application

// DefaultAppFactory wires the real adapters.
func DefaultAppFactory(logger *slog.Logger, cfg *config.Config, appStart time.Time) Application {
	return app.New(logger, cfg, appStart)
}

type runner struct {
	appStart time.Time
	signals  <-chan os.Signal
	newApp   AppFactory

	logger *slog.Logger
	app    Application
	cancel context.CancelFunc
}

// New builds the kbs-deployer command tree. signals should come from
// shutdown.Notify, called as early as possible.
func New(appStart time.Time, signals <-chan os.Signal, newApp AppFactory) *cli.Command {
	r := &runner{
		appStart: appStart,
		signals:  signals,
		newApp:   newApp,
	}

	return &cli.Command{
		Name:    "kbs-deployer",
		Usage:   "deploy the Key Broker Service to Kubernetes and wait until it answers",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides KBS_LOG_LEVEL)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "json or text (overrides KBS_LOG_FORMAT)",
			},
			&cli.StringFlag{
				Name:  "kubeconfig",
				Usage: "path to the kubeconfig (overrides KBS_KUBECONFIG and KUBECONFIG)",
			},
			&cli.StringFlag{
				Name:  "versions-file",
				Usage: "versions manifest with the externals.coco-kbs entry",
			},
			&cli.StringFlag{
				Name:  "checkout-dir",
				Usage: "where the KBS sources are checked out",
			},
		},
		Before: r.before,
		After:  r.after,
		Commands: []*cli.Command{
			r.deployCommand(),
			r.deleteCommand(),
			r.hostCommand(),
			r.portCommand(),
			r.cleanupCommand(),
		},
	}
}

func (r *runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return ctx, fmt.Errorf("load config: %w", err)
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"log-level", &cfg.LogLevel},
		{"log-format", &cfg.LogFormat},
		{"kubeconfig", &cfg.KubeConfig},
		{"versions-file", &cfg.VersionsFile},
		{"checkout-dir", &cfg.CheckoutDir},
	}

	for _, o := range overrides {
		if cmd.IsSet(o.flag) {
			*o.dst = cmd.String(o.flag)
		}
	}

	errWriter := cmd.Root().ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}

	r.logger = logging.New(errWriter, cfg.LogFormat, cfg.LogLevel)

	ctx, r.cancel = context.WithCancel(ctx)

	go shutdown.New(r.logger, r.signals).HandleSignals(ctx, r.cancel)

	r.app = r.newApp(r.logger, cfg, r.appStart)

	return ctx, nil
}

func (r *runner) after(_ context.Context, _ *cli.Command) error {
	if r.cancel != nil {
		r.cancel()
	}

	return nil
}

// ExitCode maps a command error to the process exit code: 2 for a
// deployment that never became ready, 1 for anything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, deployer.ErrReadinessTimeout):
		return exitNotReady
	default:
		return exitFatal
	}
}
