package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/skillcoder/kbs-deployer/internal/cli"
	"github.com/skillcoder/kbs-deployer/internal/infra/shutdown"
)

func main() {
	appStart := time.Now()
	// Start listening for signals immediately as first thing, before any other initialization
	signals := shutdown.Notify()
	ctx := context.Background()

	err := cli.New(appStart, signals, cli.DefaultAppFactory).Run(ctx, os.Args)
	if err != nil {
		slog.ErrorContext(ctx, "failed to run", "reason", err)
	}

	os.Exit(cli.ExitCode(err))
}
