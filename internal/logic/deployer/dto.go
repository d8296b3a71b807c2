package deployer

import (
	"time"

	"github.com/skillcoder/kbs-deployer/internal/infra/poll"
	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
)

// ServiceDescriptor identifies the KBS sources and image. Resolved once per
// deployment.
type ServiceDescriptor struct {
	RepositoryURL string
	GitRef        string
	ImageName     string
	ImageTag      string
}

// ImageRef is the image reference the manifests end up with.
func (d ServiceDescriptor) ImageRef() string {
	return d.ImageName + ":" + d.ImageTag
}

// DeploymentHandle identifies a live deployment.
type DeploymentHandle struct {
	Namespace    string
	ServiceName  string
	CheckoutPath string
}

// IngressRequest selects an ingress strategy. An empty handler name means
// cluster-internal exposure only.
type IngressRequest struct {
	HandlerName string
}

func (r IngressRequest) Requested() bool {
	return r.HandlerName != ""
}

// ReadinessProbe is one polling contract: the predicate is evaluated every
// Interval until it holds or Timeout is spent.
type ReadinessProbe struct {
	Name      string
	Timeout   time.Duration
	Interval  time.Duration
	Predicate poll.Predicate
}

type DeployRequest struct {
	Ingress IngressRequest
}

// DeploymentContext is threaded through the deploy pipeline.
type DeploymentContext struct {
	Descriptor   ServiceDescriptor
	Handle       DeploymentHandle
	Ingress      IngressRequest
	Strategy     ingress.Strategy
	Cluster      ingress.ClusterIdentity
	KustomizeDir string
	OverlayDir   string
}

// Report is the outcome of a deploy attempt.
type Report struct {
	DeployID   string
	Descriptor ServiceDescriptor
	Handle     DeploymentHandle
	History    []State
}

// State returns the final state of the attempt.
func (r Report) State() State {
	if len(r.History) == 0 {
		return StateNotDeployed
	}

	return r.History[len(r.History)-1]
}

// ServiceEndpoint is the cluster-internal address of a service.
type ServiceEndpoint struct {
	IP   string
	Port int32
}

// ProbePod describes a single-use pod running one command.
type ProbePod struct {
	Namespace string
	Name      string
	Image     string
	Command   []string
}

type WaitConfig struct {
	Timeout  time.Duration
	Interval time.Duration
}

type Config struct {
	Namespace     string
	ServiceName   string
	LabelSelector string
	CheckoutDir   string
	OverlayArch   string
	SecretPath    string
	ProbeImage    string

	PodRunning        WaitConfig
	ServiceResponsive WaitConfig
	IngressResponsive WaitConfig
}
