package app

import (
	"fmt"
	"os"

	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/restmapper"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/utils/clock"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"
	"sigs.k8s.io/kustomize/kyaml/filesys"

	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/azure"
	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/filelock"
	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/git"
	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/k8s"
	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/kustomize"
	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/probe"
	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/versions"
	"github.com/skillcoder/kbs-deployer/internal/infra/poll"
	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
	"github.com/skillcoder/kbs-deployer/internal/logic/janitor"
)

func (a *App) buildDeployer() (deployerService, error) {
	cluster, err := a.buildClusterClient()
	if err != nil {
		return nil, err
	}

	prober, err := probe.New(a.logger, probe.Config{Nameserver: a.cfg.DNSServer})
	if err != nil {
		return nil, fmt.Errorf("create external prober: %w", err)
	}

	zones, err := a.buildAzure()
	if err != nil {
		return nil, err
	}

	var template []byte

	if a.cfg.IngressTemplate != "" {
		template, err = os.ReadFile(a.cfg.IngressTemplate)
		if err != nil {
			return nil, fmt.Errorf("read ingress template: %w", err)
		}
	}

	strategies, err := ingress.NewRegistry(ingress.NewAKS(a.logger, zones, template))
	if err != nil {
		return nil, fmt.Errorf("create ingress registry: %w", err)
	}

	fetcher := git.New(a.logger, git.ExecRunner{})

	identity := ingress.NewIdentityResolver(ingress.IdentityConfig{
		SubscriptionID: a.cfg.SubscriptionID,
		ResourceGroup:  a.cfg.AKSResourceGroup,
		Name:           a.cfg.AKSName,
		TestType:       a.cfg.TestType,
		PRNumber:       a.cfg.PRNumber,
		Hypervisor:     a.cfg.Hypervisor,
		HostOS:         a.cfg.HostOS,
		SourceDir:      a.cfg.SourceDir,
	}, fetcher)

	return deployer.New(a.logger, deployer.Config{
		Namespace:     a.cfg.Namespace,
		ServiceName:   a.cfg.ServiceName,
		LabelSelector: a.cfg.LabelSelector,
		CheckoutDir:   a.cfg.CheckoutDir,
		OverlayArch:   a.cfg.OverlayArch,
		SecretPath:    a.cfg.SecretPath,
		ProbeImage:    a.cfg.ProbeImage,
		PodRunning: deployer.WaitConfig{
			Timeout:  a.cfg.PodRunningTimeout,
			Interval: a.cfg.PodRunningInterval,
		},
		ServiceResponsive: deployer.WaitConfig{
			Timeout:  a.cfg.ServiceProbeTimeout,
			Interval: a.cfg.ServiceProbeInterval,
		},
		IngressResponsive: deployer.WaitConfig{
			Timeout:  a.cfg.IngressProbeTimeout,
			Interval: a.cfg.IngressProbeInterval,
		},
	}, deployer.Dependencies{
		Resolver:   versions.New(a.cfg.VersionsFile),
		Fetcher:    fetcher,
		Patcher:    kustomize.New(a.logger, filesys.MakeFsOnDisk()),
		Cluster:    cluster,
		Prober:     prober,
		Strategies: strategies,
		Identity:   identity,
		Locker:     filelock.New(a.logger, a.cfg.CheckoutDir),
		Waiter:     poll.New(a.logger, clock.RealClock{}),
	}), nil
}

func (a *App) buildClusterClient() (deployer.ClusterClient, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		a.cfg.KubeMaster,
		a.cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	metricsClientset, err := metricsv.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	// Resolves kinds lazily; kustomize output only needs a handful of them.
	mapper := restmapper.NewDeferredDiscoveryRESTMapper(
		memory.NewMemCacheClient(clientset.Discovery()),
	)

	return k8s.New(a.logger, clientset, metricsClientset, dynamicClient, mapper), nil
}

func (a *App) buildAzure() (*azure.Adapter, error) {
	credential, err := azure.NewCLICredential()
	if err != nil {
		return nil, err
	}

	return azure.New(a.logger, a.cfg.SubscriptionID, credential, nil), nil
}

func (a *App) buildJanitor(opts CleanupOptions) (janitorService, error) {
	inventory, err := a.buildAzure()
	if err != nil {
		return nil, err
	}

	cleanupAfter := opts.OlderThan
	if cleanupAfter <= 0 {
		cleanupAfter = a.cfg.JanitorCleanupAfter
	}

	return janitor.New(a.logger, janitor.Config{
		CleanupAfter: cleanupAfter,
		DryRun:       opts.DryRun,
	}, inventory, clock.RealClock{}), nil
}
