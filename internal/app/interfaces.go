package app

import (
	"context"
	"time"

	"github.com/skillcoder/kbs-deployer/internal/infra/cronparser"
	"github.com/skillcoder/kbs-deployer/internal/infra/pinger"
	"github.com/skillcoder/kbs-deployer/internal/infra/shutdown"
	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
)

// deployerService is the part of deployer.Service the commands drive.
type deployerService interface {
	Deploy(ctx context.Context, req deployer.DeployRequest) (deployer.Report, error)
	Delete(ctx context.Context) error
	ServiceHost(ctx context.Context) (string, error)
	ServicePort(ctx context.Context) (int32, error)
}

type janitorService interface {
	pinger.Pinger
	RunOnce(ctx context.Context, now time.Time) (int, error)
	RunScheduled(ctx context.Context, schedule *cronparser.Schedule) error
}

// appServer is a background component of the janitor daemon.
type appServer interface {
	pinger.Pinger
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
}
