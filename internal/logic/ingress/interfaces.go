package ingress

import "context"

// Strategy exposes the KBS service outside the cluster for one provider.
type Strategy interface {
	Name() string
	Apply(ctx context.Context, target Target) error
}

// OverlayEditor adds generated resources to the kustomize overlay.
type OverlayEditor interface {
	AddResource(fileName string, content []byte) error
}

// ZoneManager is the port to the managed cluster's HTTP application routing add-on.
type ZoneManager interface {
	HTTPRoutingZoneQuery(
		ctx context.Context,
		cluster ClusterIdentity,
	) (string, error)

	EnableHTTPRoutingCommand(
		ctx context.Context,
		cluster ClusterIdentity,
	) error
}

// HeadReader reads the abbreviated commit of a work tree.
type HeadReader interface {
	ShortHead(ctx context.Context, dir string) (string, error)
}
