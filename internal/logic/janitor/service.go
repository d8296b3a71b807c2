package janitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"

	"github.com/skillcoder/kbs-deployer/internal/infra/cronparser"
	"github.com/skillcoder/kbs-deployer/internal/infra/metrics"
)

// Service removes CI clusters that outlived their cleanup age.
type Service struct {
	logger    *slog.Logger
	cfg       Config
	inventory Inventory
	clock     clock.Clock

	mu   sync.RWMutex
	last *RunSummary
}

// New creates the janitor. A nil clock means the real clock.
func New(logger *slog.Logger, cfg Config, inventory Inventory, clk clock.Clock) *Service {
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = defaultParallelism
	}

	if clk == nil {
		clk = clock.RealClock{}
	}

	return &Service{
		logger:    logger.With("component", "janitor"),
		cfg:       cfg,
		inventory: inventory,
		clock:     clk,
	}
}

// RunOnce deletes every cluster created before now minus the cleanup age.
// A cluster that is the only resource of its group takes the whole group
// with it. All deletions are attempted; their failures are joined. It
// returns the number of clusters removed (or, in dry-run mode, that would
// have been removed).
func (s *Service) RunOnce(ctx context.Context, now time.Time) (int, error) {
	summary := RunSummary{StartedAt: now}

	deleted, expired, err := s.runOnce(ctx, now)
	summary.Deleted, summary.Expired, summary.Err = deleted, expired, err

	s.mu.Lock()
	s.last = &summary
	s.mu.Unlock()

	return deleted, err
}

func (s *Service) runOnce(ctx context.Context, now time.Time) (int, int, error) {
	clusters, err := s.inventory.ManagedClustersQuery(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrList, err)
	}

	cutoff := now.Add(-s.cfg.CleanupAfter)

	s.logger.InfoContext(ctx, "processing clusters",
		"count", len(clusters),
		"cutoff", cutoff,
		"dryRun", s.cfg.DryRun,
	)

	var (
		mu      sync.Mutex
		errs    error
		deleted int
		expired int
	)

	var g errgroup.Group
	g.SetLimit(s.cfg.Parallelism)

	for _, cluster := range clusters {
		logger := s.logger.With("cluster", cluster.Name, "createdAt", cluster.CreatedAt)

		if cluster.CreatedAt.IsZero() {
			logger.WarnContext(ctx, "creation time unknown, ignored")

			continue
		}

		if cluster.CreatedAt.After(cutoff) {
			logger.InfoContext(ctx, "created after cutoff, ignored")

			continue
		}

		expired++

		g.Go(func() error {
			err := s.remove(ctx, logger, cluster)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("cluster %s: %w", cluster.Name, err))

				return nil
			}

			deleted++

			return nil
		})
	}

	_ = g.Wait()

	s.logger.InfoContext(ctx, "cleanup finished", "expired", expired, "deleted", deleted)

	if errs != nil {
		return deleted, expired, fmt.Errorf("%w: %w", ErrRemove, errs)
	}

	return deleted, expired, nil
}

func (s *Service) remove(ctx context.Context, logger *slog.Logger, cluster Cluster) error {
	count, err := s.inventory.GroupResourceCountQuery(ctx, cluster.ResourceGroup)
	if err != nil {
		return fmt.Errorf("count resources of group %s: %w", cluster.ResourceGroup, err)
	}

	scope := scopeResource
	if count == 1 {
		scope = scopeGroup
	}

	logger = logger.With("scope", scope, "resourceGroup", cluster.ResourceGroup)

	if s.cfg.DryRun {
		logger.InfoContext(ctx, "dry run, would delete")

		return nil
	}

	if scope == scopeGroup {
		err = s.inventory.DeleteGroupCommand(ctx, cluster.ResourceGroup)
	} else {
		err = s.inventory.DeleteResourceCommand(ctx, cluster.ID)
	}

	metrics.RecordJanitorDeletion(scope, err)

	if err != nil {
		return fmt.Errorf("delete %s: %w", scope, err)
	}

	logger.InfoContext(ctx, "deleted")

	return nil
}

// RunScheduled runs RunOnce at every occurrence of schedule until ctx is
// done. Failed runs are logged and do not stop the loop.
func (s *Service) RunScheduled(ctx context.Context, schedule *cronparser.Schedule) error {
	s.logger.InfoContext(ctx, "janitor scheduled", "schedule", schedule.String())

	for {
		now := s.clock.Now()
		wait := schedule.Until(now)

		s.logger.DebugContext(ctx, "next cleanup run", "at", now.Add(wait))

		timer := s.clock.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()

			s.logger.InfoContext(ctx, "janitor stopped")

			return nil
		case <-timer.C():
		}

		deleted, err := s.RunOnce(ctx, s.clock.Now())
		if err != nil {
			s.logger.ErrorContext(ctx, "cleanup run failed", "deleted", deleted, "reason", err)
		}
	}
}

// LastRun returns a copy of the last run summary, or nil.
func (s *Service) LastRun() *RunSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.last == nil {
		return nil
	}

	summary := *s.last

	return &summary
}

func (s *Service) Name() string {
	return pingerName
}

// Ping reports the outcome of the last run. Before the first run it
// returns ErrNoRunYet.
func (s *Service) Ping(_ context.Context) error {
	last := s.LastRun()
	if last == nil {
		return ErrNoRunYet
	}

	return last.Err
}

// PingerCritical is false: a failed cleanup must not get the daemon
// restarted.
func (s *Service) PingerCritical() bool {
	return false
}
