package cli

import (
	"context"

	"github.com/skillcoder/kbs-deployer/internal/app"
	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
)

// Application is what the subcommands drive.
type Application interface {
	Deploy(ctx context.Context, opts app.DeployOptions) (deployer.Report, error)
	Delete(ctx context.Context) error
	ServiceHost(ctx context.Context) (string, error)
	ServicePort(ctx context.Context) (int32, error)
	Cleanup(ctx context.Context, opts app.CleanupOptions) error
}
