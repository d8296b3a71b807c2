package janitor

import "time"

// Cluster is one managed Kubernetes cluster found in the subscription.
type Cluster struct {
	ID            string
	Name          string
	ResourceGroup string
	CreatedAt     time.Time
}

type Config struct {
	// CleanupAfter is the minimum age of a cluster before it is removed.
	CleanupAfter time.Duration
	DryRun       bool
	Parallelism  int
}

// RunSummary describes the last finished cleanup run.
type RunSummary struct {
	StartedAt time.Time
	Expired   int
	Deleted   int
	Err       error
}
