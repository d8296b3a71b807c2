package git

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	branchPrefix    = "kbs-"
	shortHeadLength = 12
)

// Fetcher checks out a single ref with a shallow clone.
type Fetcher struct {
	logger *slog.Logger
	runner Runner
}

func New(logger *slog.Logger, runner Runner) *Fetcher {
	return &Fetcher{
		logger: logger.With("component", "git"),
		runner: runner,
	}
}

// Fetch removes dest, clones repositoryURL into it and checks out gitRef on
// a fresh local branch. gitRef may be a branch, tag or commit SHA.
func (f *Fetcher) Fetch(ctx context.Context, repositoryURL, gitRef, dest string) error {
	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("remove %s: %w", dest, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create parent of %s: %w", dest, err)
	}

	branch := branchPrefix + uuid.NewString()

	steps := []struct {
		dir  string
		args []string
	}{
		{filepath.Dir(dest), []string{"clone", "--depth", "1", repositoryURL, dest}},
		{dest, []string{"fetch", "--depth", "1", "origin", gitRef}},
		{dest, []string{"checkout", "-b", branch, "FETCH_HEAD"}},
	}

	for _, step := range steps {
		if _, err := f.runner.Run(ctx, step.dir, step.args...); err != nil {
			return fmt.Errorf("%s: %w", step.args[0], err)
		}
	}

	f.logger.InfoContext(ctx, "sources checked out",
		"repository", repositoryURL,
		"ref", gitRef,
		"branch", branch,
	)

	return nil
}

// ShortHead returns the abbreviated HEAD commit of the work tree at dir.
func (f *Fetcher) ShortHead(ctx context.Context, dir string) (string, error) {
	out, err := f.runner.Run(ctx, dir, "rev-parse", fmt.Sprintf("--short=%d", shortHeadLength), "HEAD")
	if err != nil {
		return "", fmt.Errorf("rev-parse: %w", err)
	}

	return strings.TrimSpace(string(out)), nil
}
