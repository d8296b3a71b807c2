package ingress

// ClusterIdentity is the cloud identity of the target cluster. It is
// captured once, before the sources are fetched, and passed to strategies.
type ClusterIdentity struct {
	SubscriptionID string
	ResourceGroup  string
	Name           string
}

// Target is what a strategy operates on.
type Target struct {
	Cluster ClusterIdentity
	Overlay OverlayEditor
}

// IdentityConfig holds the inputs for cluster identity derivation.
type IdentityConfig struct {
	SubscriptionID string
	ResourceGroup  string
	Name           string
	TestType       string
	PRNumber       string
	Hypervisor     string
	HostOS         string
	SourceDir      string
}
