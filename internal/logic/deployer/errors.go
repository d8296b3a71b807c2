package deployer

import (
	"errors"
	"fmt"

	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
)

// Fatal errors abort the deployment at once.
var (
	ErrResolve             = errors.New("resolve service descriptor")
	ErrFetch               = errors.New("fetch sources")
	ErrPatch               = errors.New("patch manifests")
	ErrUnsupportedProvider = ingress.ErrUnsupportedProvider
	ErrIngress             = errors.New("apply ingress strategy")
	ErrApply               = errors.New("apply manifests")
	ErrLock                = errors.New("lock checkout")
	ErrTeardown            = errors.New("delete manifests")
	ErrEndpoint            = errors.New("resolve service endpoint")

	ErrInvalidStateTransition = errors.New("invalid state transition")
)

// Readiness errors are reported after diagnostics have been logged. The
// caller decides whether to retry.
var (
	ErrReadinessTimeout    = errors.New("readiness timeout")
	ErrPodNotRunning       = errors.New("kbs pod not running")
	ErrServiceUnresponsive = errors.New("kbs service unresponsive")
	ErrIngressUnresponsive = errors.New("kbs ingress unresponsive")
)

// IsReadinessTimeout reports whether err is a readiness timeout as opposed
// to a fatal error.
func IsReadinessTimeout(err error) bool {
	return errors.Is(err, ErrReadinessTimeout)
}

func readinessTimeout(cause error, probe ReadinessProbe) error {
	return fmt.Errorf("%w: %w within %s", ErrReadinessTimeout, cause, probe.Timeout)
}
