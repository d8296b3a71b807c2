package config

import "time"

// Env key constants. All configuration env vars use the KBS_ prefix;
// duration values support explicit units (e.g. 10s, 2m, 24h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "KBS_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "KBS_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "KBS_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "KBS_LOG_FORMAT"

// Port for health/readiness HTTP server (janitor schedule mode).
const envKeyHTTPPort = "KBS_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics, janitor schedule mode).
const envKeyMetricsPort = "KBS_METRICS_PORT"

// YAML versions manifest holding externals.coco-kbs.*.
const envKeyVersionsFile = "KBS_VERSIONS_FILE"

// Local checkout directory of the KBS sources. Shared by deploy and delete.
const envKeyCheckoutDir = "KBS_CHECKOUT_DIR"

// Namespace, service name and pod label selector of the deployed KBS.
const (
	envKeyNamespace     = "KBS_NAMESPACE"
	envKeyServiceName   = "KBS_SERVICE_NAME"
	envKeyLabelSelector = "KBS_LABEL_SELECTOR"
)

// Overlay directory name under overlays/. Derived from GOARCH when unset.
const envKeyOverlayArch = "KBS_OVERLAY_ARCH"

// Secret file path relative to the kustomize root.
const envKeySecretPath = "KBS_SECRET_PATH"

// Image of the in-cluster probe pod.
const envKeyProbeImage = "KBS_PROBE_IMAGE"

// Optional ingress template overriding the embedded one.
const envKeyIngressTemplate = "KBS_INGRESS_TEMPLATE"

// DNS server (host:port) for the ingress propagation check. Empty means
// the first nameserver of /etc/resolv.conf.
const envKeyDNSServer = "KBS_DNS_SERVER"

// Readiness waits. Units: s, m, h (e.g. 10s, 2m).
const (
	envKeyPodRunningTimeout    = "KBS_POD_RUNNING_TIMEOUT"
	envKeyPodRunningInterval   = "KBS_POD_RUNNING_INTERVAL"
	envKeyServiceProbeTimeout  = "KBS_SERVICE_PROBE_TIMEOUT"
	envKeyServiceProbeInterval = "KBS_SERVICE_PROBE_INTERVAL"
	envKeyIngressProbeTimeout  = "KBS_INGRESS_PROBE_TIMEOUT"
	envKeyIngressProbeInterval = "KBS_INGRESS_PROBE_INTERVAL"
	envMinWaitDuration         = time.Second
)

// AKS cluster identity. When KBS_AKS_NAME is unset the name is derived from
// the CI inputs below and the short SHA of KBS_SOURCE_DIR.
const (
	envKeyAKSResourceGroup = "KBS_AKS_RESOURCE_GROUP"
	envKeyAKSName          = "KBS_AKS_NAME"
	envKeyTestType         = "KBS_TEST_TYPE"
	envKeyPRNumber         = "KBS_PR_NUMBER"
	envKeyHypervisor       = "KBS_HYPERVISOR"
	envKeyHostOS           = "KBS_HOST_OS"
	envKeySourceDir        = "KBS_SOURCE_DIR"
)

// Azure subscription used by the AKS ingress and the janitor.
const envKeySubscriptionID = "KBS_AZ_SUBSCRIPTION_ID"

// Janitor: clusters older than cleanup-after are removed. Units: m, h (e.g. 24h).
const (
	envKeyJanitorCleanupAfter = "KBS_JANITOR_CLEANUP_AFTER"
	envKeyJanitorSchedule     = "KBS_JANITOR_SCHEDULE"
	envKeyJanitorTZ           = "KBS_JANITOR_TZ"
	envMinJanitorCleanupAfter = time.Hour
)

// How often the janitor daemon refreshes its health checks.
const (
	envKeyPingerInterval = "KBS_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Standard env keys used as fallback when KBS_* are unset.
const (
	envKeyKubeConfigFallback     = "KUBECONFIG"
	envKeyKubeMasterFallback     = "KUBERNETES_MASTER"
	envKeyPRNumberFallback       = "GH_PR_NUMBER"
	envKeyHypervisorFallback     = "KATA_HYPERVISOR"
	envKeyHostOSFallback         = "KATA_HOST_OS"
	envKeySubscriptionIDFallback = "AZ_SUBSCRIPTION_ID"
	envKeyCleanupAfterHours      = "CLEANUP_AFTER_HOURS"
)
