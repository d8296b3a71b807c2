package azure

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
	"github.com/skillcoder/kbs-deployer/internal/logic/janitor"
)

// Adapter talks to Azure Resource Manager. It serves both the AKS ingress
// strategy and the cluster janitor.
type Adapter struct {
	logger         *slog.Logger
	subscriptionID string
	credential     azcore.TokenCredential
	options        *arm.ClientOptions
}

// NewCLICredential authenticates as the account logged in with `az login`.
func NewCLICredential() (azcore.TokenCredential, error) {
	cred, err := azidentity.NewAzureCLICredential(nil)
	if err != nil {
		return nil, fmt.Errorf("create azure cli credential: %w", err)
	}

	return cred, nil
}

// New creates the adapter. subscriptionID is the default subscription,
// used when a cluster identity carries none. options may be nil.
func New(
	logger *slog.Logger,
	subscriptionID string,
	credential azcore.TokenCredential,
	options *arm.ClientOptions,
) *Adapter {
	return &Adapter{
		logger:         logger.With("component", "azure"),
		subscriptionID: subscriptionID,
		credential:     credential,
		options:        options,
	}
}

var (
	_ ingress.ZoneManager = (*Adapter)(nil)
	_ janitor.Inventory   = (*Adapter)(nil)
)

func (a *Adapter) subscription(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	if a.subscriptionID == "" {
		return "", ErrNoSubscription
	}

	return a.subscriptionID, nil
}

func (a *Adapter) managedClusters(subscriptionID string) (*armcontainerservice.ManagedClustersClient, error) {
	sub, err := a.subscription(subscriptionID)
	if err != nil {
		return nil, err
	}

	client, err := armcontainerservice.NewManagedClustersClient(sub, a.credential, a.options)
	if err != nil {
		return nil, fmt.Errorf("create managed clusters client: %w", err)
	}

	return client, nil
}

func (a *Adapter) resources() (*armresources.Client, error) {
	sub, err := a.subscription("")
	if err != nil {
		return nil, err
	}

	client, err := armresources.NewClient(sub, a.credential, a.options)
	if err != nil {
		return nil, fmt.Errorf("create resources client: %w", err)
	}

	return client, nil
}

// HTTPRoutingZoneQuery returns the DNS zone of the HTTP application routing
// add-on, or "" when the add-on is disabled.
func (a *Adapter) HTTPRoutingZoneQuery(
	ctx context.Context,
	cluster ingress.ClusterIdentity,
) (string, error) {
	client, err := a.managedClusters(cluster.SubscriptionID)
	if err != nil {
		return "", err
	}

	resp, err := client.Get(ctx, cluster.ResourceGroup, cluster.Name, nil)
	if err != nil {
		return "", fmt.Errorf("get managed cluster %s: %w", cluster.Name, err)
	}

	return routingZone(&resp.ManagedCluster), nil
}

// EnableHTTPRoutingCommand turns the HTTP application routing add-on on and
// waits for the cluster update to finish.
func (a *Adapter) EnableHTTPRoutingCommand(
	ctx context.Context,
	cluster ingress.ClusterIdentity,
) error {
	client, err := a.managedClusters(cluster.SubscriptionID)
	if err != nil {
		return err
	}

	resp, err := client.Get(ctx, cluster.ResourceGroup, cluster.Name, nil)
	if err != nil {
		return fmt.Errorf("get managed cluster %s: %w", cluster.Name, err)
	}

	mc := resp.ManagedCluster
	enableRoutingAddon(&mc)

	poller, err := client.BeginCreateOrUpdate(ctx, cluster.ResourceGroup, cluster.Name, mc, nil)
	if err != nil {
		return fmt.Errorf("update managed cluster %s: %w", cluster.Name, err)
	}

	a.logger.InfoContext(ctx, "enabling http application routing", "cluster", cluster.Name)

	_, err = poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{Frequency: pollFrequency})
	if err != nil {
		return fmt.Errorf("wait managed cluster %s update: %w", cluster.Name, err)
	}

	return nil
}

// ManagedClustersQuery lists every AKS cluster of the subscription together
// with its creation time.
func (a *Adapter) ManagedClustersQuery(ctx context.Context) ([]janitor.Cluster, error) {
	client, err := a.resources()
	if err != nil {
		return nil, err
	}

	pager := client.NewListPager(&armresources.ClientListOptions{
		Filter: to.Ptr(fmt.Sprintf("resourceType eq '%s'", managedClusterType)),
		Expand: to.Ptr("createdTime"),
	})

	var clusters []janitor.Cluster

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list resources: %w", err)
		}

		for _, res := range page.Value {
			if res == nil || !strings.EqualFold(deref(res.Type), managedClusterType) {
				continue
			}

			cluster, err := toCluster(res)
			if err != nil {
				a.logger.WarnContext(ctx, "skipping resource", "id", deref(res.ID), "reason", err)

				continue
			}

			clusters = append(clusters, cluster)
		}
	}

	return clusters, nil
}

func (a *Adapter) GroupResourceCountQuery(ctx context.Context, group string) (int, error) {
	client, err := a.resources()
	if err != nil {
		return 0, err
	}

	pager := client.NewListByResourceGroupPager(group, nil)

	count := 0

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return 0, fmt.Errorf("list resources of group %s: %w", group, err)
		}

		count += len(page.Value)
	}

	return count, nil
}

// DeleteGroupCommand starts the deletion of a resource group. It does not
// wait for the long-running operation to finish.
func (a *Adapter) DeleteGroupCommand(ctx context.Context, group string) error {
	sub, err := a.subscription("")
	if err != nil {
		return err
	}

	client, err := armresources.NewResourceGroupsClient(sub, a.credential, a.options)
	if err != nil {
		return fmt.Errorf("create resource groups client: %w", err)
	}

	if _, err := client.BeginDelete(ctx, group, nil); err != nil {
		return fmt.Errorf("delete resource group %s: %w", group, err)
	}

	return nil
}

// DeleteResourceCommand starts the deletion of a single managed cluster.
func (a *Adapter) DeleteResourceCommand(ctx context.Context, resourceID string) error {
	client, err := a.resources()
	if err != nil {
		return err
	}

	if _, err := client.BeginDeleteByID(ctx, resourceID, managedClustersAPIVersion, nil); err != nil {
		return fmt.Errorf("delete resource %s: %w", resourceID, err)
	}

	return nil
}
