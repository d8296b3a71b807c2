package ingress

import (
	"context"
	"fmt"
	"strings"
)

// IdentityResolver derives the identity of the CI cluster the same way the
// cluster was named when it was created.
type IdentityResolver struct {
	cfg  IdentityConfig
	head HeadReader
}

func NewIdentityResolver(cfg IdentityConfig, head HeadReader) *IdentityResolver {
	return &IdentityResolver{
		cfg:  cfg,
		head: head,
	}
}

// ClusterIdentityQuery returns the configured identity, filling in the
// cluster name and resource group when they are not set explicitly.
func (r *IdentityResolver) ClusterIdentityQuery(ctx context.Context) (ClusterIdentity, error) {
	name := r.cfg.Name
	if name == "" {
		derived, err := r.deriveName(ctx)
		if err != nil {
			return ClusterIdentity{}, err
		}

		name = derived
	}

	resourceGroup := r.cfg.ResourceGroup
	if resourceGroup == "" {
		resourceGroup = resourceGroupPrefix + name
	}

	return ClusterIdentity{
		SubscriptionID: r.cfg.SubscriptionID,
		ResourceGroup:  resourceGroup,
		Name:           name,
	}, nil
}

// deriveName builds <testType>-<prNumber>-<shortSHA>-<hypervisor>-<hostOS>-amd64.
func (r *IdentityResolver) deriveName(ctx context.Context) (string, error) {
	var missing []string

	if r.cfg.PRNumber == "" {
		missing = append(missing, "pr number")
	}

	if r.cfg.Hypervisor == "" {
		missing = append(missing, "hypervisor")
	}

	if len(missing) > 0 {
		return "", fmt.Errorf("%w: missing %s", ErrIdentity, strings.Join(missing, ", "))
	}

	sha, err := r.head.ShortHead(ctx, r.cfg.SourceDir)
	if err != nil {
		return "", fmt.Errorf("%w: read short head: %w", ErrIdentity, err)
	}

	return strings.Join([]string{
		r.cfg.TestType,
		r.cfg.PRNumber,
		sha,
		r.cfg.Hypervisor,
		r.cfg.HostOS,
		clusterArch,
	}, "-"), nil
}
