package deployer

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/skillcoder/kbs-deployer/internal/infra/poll"
	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
)

// VersionResolver looks up dotted keys in the versions manifest.
type VersionResolver interface {
	Resolve(keyPath string) (string, error)
}

// SourceFetcher checks out a git ref into dest, replacing whatever was there.
type SourceFetcher interface {
	Fetch(
		ctx context.Context,
		repositoryURL,
		gitRef,
		dest string,
	) error
}

// ManifestPatcher edits and renders the KBS kustomize tree.
type ManifestPatcher interface {
	WriteSecret(kustomizeDir, relPath string, content []byte) error
	SetImage(kustomizationDir, imageName, imageTag string) error
	OverlayEditor(overlayDir string) ingress.OverlayEditor
	Build(overlayDir string) ([]*unstructured.Unstructured, error)
}

// ClusterClient is the port interface for K8s operations.
type ClusterClient interface {
	ApplyCommand(
		ctx context.Context,
		objects []*unstructured.Unstructured,
	) error

	DeleteCommand(
		ctx context.Context,
		objects []*unstructured.Unstructured,
	) error

	PodRunningQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) (bool, error)

	ServiceEndpointQuery(
		ctx context.Context,
		namespace,
		name string,
	) (ServiceEndpoint, error)

	IngressHostQuery(
		ctx context.Context,
		namespace,
		name string,
	) (string, error)

	RunPodCommand(
		ctx context.Context,
		pod ProbePod,
	) error

	PodLogsQuery(
		ctx context.Context,
		namespace,
		name string,
	) (string, error)

	DeletePodCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	DescribeWorkloadQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) (string, error)

	WorkloadLogsQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) (string, error)
}

// ExternalProber checks the service from outside the cluster.
type ExternalProber interface {
	ResolveQuery(ctx context.Context, host string) ([]string, error)
	HeadQuery(ctx context.Context, url string) (string, error)
	GetQuery(ctx context.Context, url string) (string, error)
}

type StrategyRegistry interface {
	Lookup(name string) (ingress.Strategy, error)
}

type IdentityProvider interface {
	ClusterIdentityQuery(ctx context.Context) (ingress.ClusterIdentity, error)
}

// CheckoutLocker serializes deployments sharing the checkout directory.
type CheckoutLocker interface {
	LockCommand(ctx context.Context) (unlock func(), err error)
}

type Waiter interface {
	Until(
		ctx context.Context,
		timeout,
		interval time.Duration,
		predicate poll.Predicate,
	) bool
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}
