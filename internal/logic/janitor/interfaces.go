package janitor

import "context"

// Inventory is the port to the cloud subscription holding the CI clusters.
type Inventory interface {
	ManagedClustersQuery(ctx context.Context) ([]Cluster, error)
	GroupResourceCountQuery(ctx context.Context, group string) (int, error)
	DeleteGroupCommand(ctx context.Context, group string) error
	DeleteResourceCommand(ctx context.Context, resourceID string) error
}
