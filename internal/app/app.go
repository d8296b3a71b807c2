package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/skillcoder/kbs-deployer/internal/config"
	"github.com/skillcoder/kbs-deployer/internal/infra/cronparser"
	"github.com/skillcoder/kbs-deployer/internal/infra/metrics"
	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
)

// DeployOptions are the per-invocation knobs of Deploy.
type DeployOptions struct {
	// Ingress names the ingress strategy; empty means cluster-internal only.
	Ingress string
	// Retries is how many times a deployment that did not become ready is
	// redone from scratch.
	Retries         int
	MetricsTextfile string
}

// CleanupOptions are the per-invocation knobs of Cleanup.
type CleanupOptions struct {
	OlderThan time.Duration
	// Schedule switches to daemon mode when set.
	Schedule string
	DryRun   bool
}

type App struct {
	logger   *slog.Logger
	cfg      *config.Config
	appStart time.Time

	deployer   func() (deployerService, error)
	newJanitor func(opts CleanupOptions) (janitorService, error)
}

// New creates the application. Cluster and cloud clients are built on first
// use, so commands that do not need them never touch kubeconfig or az.
func New(logger *slog.Logger, cfg *config.Config, appStart time.Time) *App {
	a := &App{
		logger:   logger,
		cfg:      cfg,
		appStart: appStart,
	}

	a.deployer = sync.OnceValues(a.buildDeployer)
	a.newJanitor = a.buildJanitor

	return a
}

// Deploy deploys KBS and waits for it. A readiness timeout triggers a full
// redeploy up to opts.Retries times; any other failure is returned at once.
func (a *App) Deploy(ctx context.Context, opts DeployOptions) (deployer.Report, error) {
	svc, err := a.deployer()
	if err != nil {
		return deployer.Report{}, err
	}

	req := deployer.DeployRequest{
		Ingress: deployer.IngressRequest{HandlerName: opts.Ingress},
	}

	var report deployer.Report

	for attempt := 0; ; attempt++ {
		report, err = svc.Deploy(ctx, req)
		if err == nil || !deployer.IsReadinessTimeout(err) || attempt >= opts.Retries || ctx.Err() != nil {
			break
		}

		a.logger.WarnContext(ctx, "kbs not ready, redeploying",
			"attempt", attempt+1,
			"retries", opts.Retries,
			"reason", err,
		)
	}

	if opts.MetricsTextfile != "" {
		if mErr := metrics.WriteTextfile(opts.MetricsTextfile); mErr != nil {
			a.logger.WarnContext(ctx, "failed to write metrics", "path", opts.MetricsTextfile, "reason", mErr)
		}
	}

	return report, err
}

func (a *App) Delete(ctx context.Context) error {
	svc, err := a.deployer()
	if err != nil {
		return err
	}

	return svc.Delete(ctx)
}

func (a *App) ServiceHost(ctx context.Context) (string, error) {
	svc, err := a.deployer()
	if err != nil {
		return "", err
	}

	return svc.ServiceHost(ctx)
}

func (a *App) ServicePort(ctx context.Context) (int32, error) {
	svc, err := a.deployer()
	if err != nil {
		return 0, err
	}

	return svc.ServicePort(ctx)
}

// Cleanup removes expired CI clusters once, or keeps doing so on a cron
// schedule until ctx is cancelled.
func (a *App) Cleanup(ctx context.Context, opts CleanupOptions) error {
	var schedule *cronparser.Schedule

	if opts.Schedule != "" {
		var err error

		schedule, err = cronparser.Parse(opts.Schedule, a.cfg.JanitorTZ)
		if err != nil {
			return fmt.Errorf("parse janitor schedule: %w", err)
		}
	}

	svc, err := a.newJanitor(opts)
	if err != nil {
		return err
	}

	if schedule != nil {
		return a.runDaemon(ctx, svc, schedule)
	}

	deleted, err := svc.RunOnce(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("cleanup clusters: %w", err)
	}

	a.logger.InfoContext(ctx, "cleanup finished", "deleted", deleted, "dryRun", opts.DryRun)

	return nil
}
