package azure

import "time"

const (
	managedClusterType = "Microsoft.ContainerService/managedClusters"

	// managedClustersAPIVersion is used for generic delete-by-id calls.
	managedClustersAPIVersion = "2023-08-01"

	httpRoutingAddon   = "httpApplicationRouting"
	httpRoutingZoneKey = "HTTPApplicationRoutingZoneName"

	pollFrequency = 10 * time.Second
)
