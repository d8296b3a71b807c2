package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/skillcoder/kbs-deployer/internal/app"
)

func (r *runner) deployCommand() *cli.Command {
	return &cli.Command{
		Name:  "deploy",
		Usage: "fetch, patch and apply KBS, then wait until it answers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "ingress",
				Usage: "expose KBS through an ingress strategy (aks)",
			},
			&cli.IntFlag{
				Name:  "retries",
				Usage: "redeploy this many times when KBS does not become ready",
			},
			&cli.StringFlag{
				Name:  "metrics-textfile",
				Usage: "write deployment metrics in node-exporter textfile format",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			retries := int(cmd.Int("retries"))
			if retries < 0 {
				return fmt.Errorf("%w: %d", ErrNegativeRetries, retries)
			}

			report, err := r.app.Deploy(ctx, app.DeployOptions{
				Ingress:         cmd.String("ingress"),
				Retries:         retries,
				MetricsTextfile: cmd.String("metrics-textfile"),
			})
			if err != nil {
				return fmt.Errorf("deploy kbs: %w", err)
			}

			r.logger.InfoContext(ctx, "kbs is ready",
				"deployID", report.DeployID,
				"image", report.Descriptor.ImageRef(),
				"namespace", report.Handle.Namespace,
			)

			return nil
		},
	}
}

func (r *runner) deleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "delete everything a previous deploy applied",
		Action: func(ctx context.Context, _ *cli.Command) error {
			if err := r.app.Delete(ctx); err != nil {
				return fmt.Errorf("delete kbs: %w", err)
			}

			return nil
		},
	}
}

func (r *runner) hostCommand() *cli.Command {
	return &cli.Command{
		Name:  "host",
		Usage: "print the KBS ingress host, or the service cluster IP",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			host, err := r.app.ServiceHost(ctx)
			if err != nil {
				return fmt.Errorf("get kbs host: %w", err)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, host)

			return err
		},
	}
}

func (r *runner) portCommand() *cli.Command {
	return &cli.Command{
		Name:  "port",
		Usage: "print the KBS port (80 behind an ingress)",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			port, err := r.app.ServicePort(ctx)
			if err != nil {
				return fmt.Errorf("get kbs port: %w", err)
			}

			_, err = fmt.Fprintln(cmd.Root().Writer, port)

			return err
		},
	}
}

func (r *runner) cleanupCommand() *cli.Command {
	return &cli.Command{
		Name:  "cleanup-clusters",
		Usage: "delete CI AKS clusters older than the cleanup age",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "older-than",
				Usage: "minimum cluster age (overrides KBS_JANITOR_CLEANUP_AFTER)",
			},
			&cli.StringFlag{
				Name:  "schedule",
				Usage: "keep running and clean up on this cron schedule",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "only log what would be deleted",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return r.app.Cleanup(ctx, app.CleanupOptions{
				OlderThan: cmd.Duration("older-than"),
				Schedule:  cmd.String("schedule"),
				DryRun:    cmd.Bool("dry-run"),
			})
		},
	}
}
