package deployer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillcoder/kbs-deployer/internal/infra/metrics"
	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
)

// Dependencies are the ports the deployer drives.
type Dependencies struct {
	Resolver   VersionResolver
	Fetcher    SourceFetcher
	Patcher    ManifestPatcher
	Cluster    ClusterClient
	Prober     ExternalProber
	Strategies StrategyRegistry
	Identity   IdentityProvider
	Locker     CheckoutLocker
	Waiter     Waiter
}

type Service struct {
	logger *slog.Logger
	cfg    Config
	deps   Dependencies
}

// New creates a new deployer service.
func New(
	logger *slog.Logger,
	cfg Config,
	deps Dependencies,
) *Service {
	return &Service{
		logger: logger.With("component", "deployer"),
		cfg:    cfg,
		deps:   deps,
	}
}

// Handle returns the handle of the (possibly not yet) deployed KBS.
func (s *Service) Handle() DeploymentHandle {
	return DeploymentHandle{
		Namespace:    s.cfg.Namespace,
		ServiceName:  s.cfg.ServiceName,
		CheckoutPath: s.cfg.CheckoutDir,
	}
}

// Deploy fetches, patches and applies KBS, then waits until it answers.
// The returned report carries the state history also on failure.
func (s *Service) Deploy(ctx context.Context, req DeployRequest) (Report, error) {
	deployID := uuid.NewString()
	logger := s.logger.With("deployID", deployID)
	track := newTracker()

	kustomizeDir := filepath.Join(s.cfg.CheckoutDir, kustomizeSubdir)
	dc := &DeploymentContext{
		Handle:       s.Handle(),
		Ingress:      req.Ingress,
		KustomizeDir: kustomizeDir,
		OverlayDir:   filepath.Join(kustomizeDir, overlaysDir, s.cfg.OverlayArch),
	}

	err := s.deploy(ctx, logger, track, dc)
	if err != nil {
		if trErr := track.transition(StateError); trErr != nil {
			logger.WarnContext(ctx, "record error state", "reason", trErr)
		}

		logger.ErrorContext(ctx, "kbs deployment failed",
			"readinessTimeout", IsReadinessTimeout(err),
			"reason", err,
		)
	}

	report := Report{
		DeployID:   deployID,
		Descriptor: dc.Descriptor,
		Handle:     dc.Handle,
		History:    track.snapshot(),
	}

	metrics.RecordDeployment(string(report.State()))

	return report, err
}

func (s *Service) deploy(
	ctx context.Context,
	logger *slog.Logger,
	track *tracker,
	dc *DeploymentContext,
) error {
	// Everything that can fail without side effects goes first.
	if dc.Ingress.Requested() {
		strategy, err := s.deps.Strategies.Lookup(dc.Ingress.HandlerName)
		if err != nil {
			return fmt.Errorf("select ingress: %w", err)
		}

		cluster, err := s.deps.Identity.ClusterIdentityQuery(ctx)
		if err != nil {
			return fmt.Errorf("%w: capture cluster identity: %w", ErrIngress, err)
		}

		dc.Strategy = strategy
		dc.Cluster = cluster

		logger.InfoContext(ctx, "cluster identity captured",
			"cluster", cluster.Name,
			"resourceGroup", cluster.ResourceGroup,
		)
	}

	unlock, err := s.deps.Locker.LockCommand(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLock, err)
	}
	defer unlock()

	descriptor, err := s.resolveDescriptor()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResolve, err)
	}

	dc.Descriptor = descriptor

	logger.InfoContext(ctx, "fetching kbs sources",
		"repository", descriptor.RepositoryURL,
		"ref", descriptor.GitRef,
		"dest", dc.Handle.CheckoutPath,
	)

	err = s.deps.Fetcher.Fetch(ctx, descriptor.RepositoryURL, descriptor.GitRef, dc.Handle.CheckoutPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFetch, err)
	}

	if err := s.patch(dc); err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}

	logger.InfoContext(ctx, "manifests patched", "image", descriptor.ImageRef())

	if dc.Strategy != nil {
		err := dc.Strategy.Apply(ctx, ingress.Target{
			Cluster: dc.Cluster,
			Overlay: s.deps.Patcher.OverlayEditor(dc.OverlayDir),
		})
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrIngress, dc.Strategy.Name(), err)
		}
	}

	if err := track.transition(StateApplying); err != nil {
		return err
	}

	if err := s.apply(ctx, dc); err != nil {
		return fmt.Errorf("%w: %w", ErrApply, err)
	}

	logger.InfoContext(ctx, "manifests applied", "overlay", dc.OverlayDir)

	if err := track.transition(StateWaitingPodRunning); err != nil {
		return err
	}

	if err := s.waitPodRunning(ctx, logger); err != nil {
		return err
	}

	if err := track.transition(StateWaitingServiceResponsive); err != nil {
		return err
	}

	if err := s.waitServiceResponsive(ctx, logger); err != nil {
		return err
	}

	if dc.Ingress.Requested() {
		if err := track.transition(StateWaitingIngressResponsive); err != nil {
			return err
		}

		if err := s.waitIngressResponsive(ctx, logger); err != nil {
			return err
		}
	}

	if err := track.transition(StateReady); err != nil {
		return err
	}

	logger.InfoContext(ctx, "kbs is ready")

	return nil
}

func (s *Service) resolveDescriptor() (ServiceDescriptor, error) {
	var d ServiceDescriptor

	fields := []struct {
		key string
		dst *string
	}{
		{KeyRepositoryURL, &d.RepositoryURL},
		{KeyGitRef, &d.GitRef},
		{KeyImageName, &d.ImageName},
		{KeyImageTag, &d.ImageTag},
	}

	for _, f := range fields {
		value, err := s.deps.Resolver.Resolve(f.key)
		if err != nil {
			return ServiceDescriptor{}, fmt.Errorf("resolve %s: %w", f.key, err)
		}

		*f.dst = value
	}

	return d, nil
}

func (s *Service) patch(dc *DeploymentContext) error {
	err := s.deps.Patcher.WriteSecret(dc.KustomizeDir, s.cfg.SecretPath, []byte(secretPlaceholder))
	if err != nil {
		return fmt.Errorf("write secret: %w", err)
	}

	err = s.deps.Patcher.SetImage(
		filepath.Join(dc.KustomizeDir, baseDir),
		dc.Descriptor.ImageName,
		dc.Descriptor.ImageTag,
	)
	if err != nil {
		return fmt.Errorf("set image: %w", err)
	}

	return nil
}

func (s *Service) apply(ctx context.Context, dc *DeploymentContext) error {
	objects, err := s.deps.Patcher.Build(dc.OverlayDir)
	if err != nil {
		return fmt.Errorf("build overlay: %w", err)
	}

	return s.deps.Cluster.ApplyCommand(ctx, objects)
}

// Delete removes everything the overlay in the checkout describes. A missing
// checkout means nothing was deployed from this host.
func (s *Service) Delete(ctx context.Context) error {
	logger := s.logger.With("checkout", s.cfg.CheckoutDir)

	if _, err := os.Stat(s.cfg.CheckoutDir); errors.Is(err, fs.ErrNotExist) {
		logger.InfoContext(ctx, "no kbs checkout, nothing to delete")

		return nil
	}

	unlock, err := s.deps.Locker.LockCommand(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLock, err)
	}
	defer unlock()

	overlayDir := filepath.Join(s.cfg.CheckoutDir, kustomizeSubdir, overlaysDir, s.cfg.OverlayArch)

	objects, err := s.deps.Patcher.Build(overlayDir)
	if err != nil {
		return fmt.Errorf("%w: build overlay: %w", ErrTeardown, err)
	}

	if err := s.deps.Cluster.DeleteCommand(ctx, objects); err != nil {
		return fmt.Errorf("%w: %w", ErrTeardown, err)
	}

	logger.InfoContext(ctx, "kbs deleted", "objects", len(objects))

	return nil
}

// ServiceHost returns the ingress host when an ingress exists, else the
// service cluster IP.
func (s *Service) ServiceHost(ctx context.Context) (string, error) {
	host, err := s.ingressHost(ctx)
	if err != nil {
		return "", err
	}

	if host != "" {
		return host, nil
	}

	ep, err := s.deps.Cluster.ServiceEndpointQuery(ctx, s.cfg.Namespace, s.cfg.ServiceName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEndpoint, err)
	}

	return ep.IP, nil
}

// ServicePort returns 80 when the service is exposed through an ingress,
// else the first service port.
func (s *Service) ServicePort(ctx context.Context) (int32, error) {
	host, err := s.ingressHost(ctx)
	if err != nil {
		return 0, err
	}

	if host != "" {
		return ingressPort, nil
	}

	ep, err := s.deps.Cluster.ServiceEndpointQuery(ctx, s.cfg.Namespace, s.cfg.ServiceName)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEndpoint, err)
	}

	return ep.Port, nil
}

func (s *Service) ingressHost(ctx context.Context) (string, error) {
	host, err := s.deps.Cluster.IngressHostQuery(ctx, s.cfg.Namespace, ingressName)
	if err != nil {
		var nf notFound
		if errors.As(err, &nf) {
			return "", nil
		}

		return "", fmt.Errorf("get ingress host: %w", err)
	}

	return host, nil
}

func (s *Service) await(ctx context.Context, probe ReadinessProbe) bool {
	start := time.Now()
	ok := s.deps.Waiter.Until(ctx, probe.Timeout, probe.Interval, probe.Predicate)
	metrics.RecordWait(probe.Name, ok, time.Since(start))

	return ok
}

func (s *Service) waitPodRunning(ctx context.Context, logger *slog.Logger) error {
	probe := ReadinessProbe{
		Name:     stagePodRunning,
		Timeout:  s.cfg.PodRunning.Timeout,
		Interval: s.cfg.PodRunning.Interval,
		Predicate: func(ctx context.Context) (bool, error) {
			return s.deps.Cluster.PodRunningQuery(ctx, s.cfg.Namespace, s.cfg.LabelSelector)
		},
	}

	logger.InfoContext(ctx, "waiting for kbs pod", "timeout", probe.Timeout, "interval", probe.Interval)

	if s.await(ctx, probe) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wait %s: %w", probe.Name, err)
	}

	description, err := s.deps.Cluster.DescribeWorkloadQuery(ctx, s.cfg.Namespace, s.cfg.LabelSelector)
	if err != nil {
		logger.WarnContext(ctx, "describe kbs workload", "reason", err)
	}

	logger.ErrorContext(ctx, "kbs pod not running", "diagnostics", description)

	return readinessTimeout(ErrPodNotRunning, probe)
}

func (s *Service) waitServiceResponsive(ctx context.Context, logger *slog.Logger) error {
	ep, err := s.deps.Cluster.ServiceEndpointQuery(ctx, s.cfg.Namespace, s.cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEndpoint, err)
	}

	target := "http://" + net.JoinHostPort(ep.IP, strconv.Itoa(int(ep.Port)))
	pod := ProbePod{
		Namespace: s.cfg.Namespace,
		Name:      probePodPrefix + uuid.NewString()[:probePodSuffixLength],
		Image:     s.cfg.ProbeImage,
		Command: []string{
			"sh", "-c",
			fmt.Sprintf("wget -O- --timeout=%d %s || true", int(probeWgetTimeout.Seconds()), target),
		},
	}

	logger = logger.With("probePod", pod.Name, "target", target)

	if err := s.deps.Cluster.RunPodCommand(ctx, pod); err != nil {
		return fmt.Errorf("start probe pod: %w", err)
	}

	defer s.deleteProbePod(ctx, logger, pod)

	probe := ReadinessProbe{
		Name:     stageServiceResponsive,
		Timeout:  s.cfg.ServiceResponsive.Timeout,
		Interval: s.cfg.ServiceResponsive.Interval,
		Predicate: func(ctx context.Context) (bool, error) {
			logs, err := s.deps.Cluster.PodLogsQuery(ctx, pod.Namespace, pod.Name)
			if err != nil {
				return false, err
			}

			return strings.Contains(logs, notFoundMarker), nil
		},
	}

	logger.InfoContext(ctx, "waiting for kbs service", "timeout", probe.Timeout, "interval", probe.Interval)

	if s.await(ctx, probe) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wait %s: %w", probe.Name, err)
	}

	logs, err := s.deps.Cluster.WorkloadLogsQuery(ctx, s.cfg.Namespace, s.cfg.LabelSelector)
	if err != nil {
		logger.WarnContext(ctx, "read kbs logs", "reason", err)
	}

	logger.ErrorContext(ctx, "kbs service unresponsive", "kbsLogs", logs)

	return readinessTimeout(ErrServiceUnresponsive, probe)
}

// deleteProbePod runs on every path, including cancellation, so it uses its
// own context.
func (s *Service) deleteProbePod(ctx context.Context, logger *slog.Logger, pod ProbePod) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), probeCleanupTimeout)
	defer cancel()

	err := s.deps.Cluster.DeletePodCommand(cleanupCtx, pod.Namespace, pod.Name)
	if err != nil {
		var nf notFound
		if errors.As(err, &nf) {
			return
		}

		logger.WarnContext(ctx, "delete probe pod", "reason", err)

		return
	}

	logger.DebugContext(ctx, "probe pod deleted")
}

func (s *Service) waitIngressResponsive(ctx context.Context, logger *slog.Logger) error {
	host, err := s.ServiceHost(ctx)
	if err != nil {
		return err
	}

	port, err := s.ServicePort(ctx)
	if err != nil {
		return err
	}

	target := "http://" + net.JoinHostPort(host, strconv.Itoa(int(port)))
	needsDNS := net.ParseIP(host) == nil
	logger = logger.With("target", target)

	probe := ReadinessProbe{
		Name:     stageIngressResponsive,
		Timeout:  s.cfg.IngressResponsive.Timeout,
		Interval: s.cfg.IngressResponsive.Interval,
		Predicate: func(ctx context.Context) (bool, error) {
			if needsDNS {
				addrs, err := s.deps.Prober.ResolveQuery(ctx, host)
				if err != nil {
					return false, fmt.Errorf("resolve %s: %w", host, err)
				}

				if len(addrs) == 0 {
					return false, nil
				}
			}

			status, err := s.deps.Prober.HeadQuery(ctx, target)
			if err != nil {
				return false, err
			}

			return strings.Contains(status, notFoundMarker), nil
		},
	}

	logger.InfoContext(ctx, "waiting for kbs ingress", "timeout", probe.Timeout, "interval", probe.Interval)

	if s.await(ctx, probe) {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wait %s: %w", probe.Name, err)
	}

	response, err := s.deps.Prober.GetQuery(ctx, target)
	if err != nil {
		logger.WarnContext(ctx, "diagnostic request", "reason", err)
	}

	logger.ErrorContext(ctx, "kbs ingress unresponsive", "response", response)

	return readinessTimeout(ErrIngressUnresponsive, probe)
}
