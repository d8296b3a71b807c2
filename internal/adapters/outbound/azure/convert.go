package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice/v4"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/skillcoder/kbs-deployer/internal/logic/janitor"
)

func routingZone(mc *armcontainerservice.ManagedCluster) string {
	if mc.Properties == nil {
		return ""
	}

	addon := mc.Properties.AddonProfiles[httpRoutingAddon]
	if addon == nil || !deref(addon.Enabled) {
		return ""
	}

	return deref(addon.Config[httpRoutingZoneKey])
}

func enableRoutingAddon(mc *armcontainerservice.ManagedCluster) {
	if mc.Properties == nil {
		mc.Properties = &armcontainerservice.ManagedClusterProperties{}
	}

	if mc.Properties.AddonProfiles == nil {
		mc.Properties.AddonProfiles = map[string]*armcontainerservice.ManagedClusterAddonProfile{}
	}

	addon := mc.Properties.AddonProfiles[httpRoutingAddon]
	if addon == nil {
		addon = &armcontainerservice.ManagedClusterAddonProfile{}
		mc.Properties.AddonProfiles[httpRoutingAddon] = addon
	}

	addon.Enabled = to.Ptr(true)
}

func toCluster(res *armresources.GenericResourceExpanded) (janitor.Cluster, error) {
	id := deref(res.ID)

	parsed, err := arm.ParseResourceID(id)
	if err != nil {
		return janitor.Cluster{}, fmt.Errorf("%w: %w", ErrBadResourceID, err)
	}

	if parsed.ResourceGroupName == "" {
		return janitor.Cluster{}, fmt.Errorf("%w: %s has no resource group", ErrBadResourceID, id)
	}

	return janitor.Cluster{
		ID:            id,
		Name:          deref(res.Name),
		ResourceGroup: parsed.ResourceGroupName,
		CreatedAt:     deref(res.CreatedTime),
	}, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
