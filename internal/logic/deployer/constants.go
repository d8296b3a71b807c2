package deployer

import "time"

// Keys of the KBS entry in the versions manifest.
const (
	KeyRepositoryURL = "externals.coco-kbs.url"
	KeyGitRef        = "externals.coco-kbs.version"
	KeyImageName     = "externals.coco-kbs.image"
	KeyImageTag      = "externals.coco-kbs.image_tag"
)

const (
	// kustomizeSubdir is the kustomize root inside the KBS checkout.
	kustomizeSubdir = "kbs/config/kubernetes"
	baseDir         = "base"
	overlaysDir     = "overlays"

	// secretPlaceholder is written as the KBS admin secret. Tests only.
	secretPlaceholder = "somesecret\n"

	// ingressName is the ingress created by ingress strategies.
	ingressName = "kbs"
	ingressPort = 80

	// notFoundMarker proves liveness: KBS has no root route.
	notFoundMarker = "404 Not Found"

	probePodPrefix       = "kbs-checker-"
	probePodSuffixLength = 8
	probeWgetTimeout     = 5 * time.Second
	probeCleanupTimeout  = 30 * time.Second

	stagePodRunning        = "pod-running"
	stageServiceResponsive = "service-responsive"
	stageIngressResponsive = "ingress-responsive"
)
