package ingress

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
)

//go:embed templates/aks-ingress.yaml
var defaultAKSTemplate []byte

// AKS exposes KBS through the AKS HTTP application routing add-on.
type AKS struct {
	logger   *slog.Logger
	zones    ZoneManager
	template []byte
}

// NewAKS creates the AKS strategy. A nil template selects the embedded one.
func NewAKS(logger *slog.Logger, zones ZoneManager, template []byte) *AKS {
	if template == nil {
		template = defaultAKSTemplate
	}

	return &AKS{
		logger:   logger.With("component", "ingress-aks"),
		zones:    zones,
		template: template,
	}
}

var _ Strategy = (*AKS)(nil)

func (a *AKS) Name() string {
	return ProviderAKS
}

func (a *AKS) Apply(ctx context.Context, target Target) error {
	logger := a.logger.With(
		"cluster", target.Cluster.Name,
		"resourceGroup", target.Cluster.ResourceGroup,
	)

	zone, err := a.ensureZone(ctx, logger, target.Cluster)
	if err != nil {
		return err
	}

	host := kbsHostPrefix + zone

	rendered := renderTemplate(a.template, map[string]string{
		placeholderIngressClass: aksIngressClass,
		placeholderIngressHost:  host,
	})

	if err := target.Overlay.AddResource(ingressResourceFile, rendered); err != nil {
		return fmt.Errorf("add ingress resource: %w", err)
	}

	logger.InfoContext(ctx, "ingress resource added", "host", host)

	return nil
}

// ensureZone returns the routing DNS zone, enabling the add-on once if the
// zone is not there yet.
func (a *AKS) ensureZone(ctx context.Context, logger *slog.Logger, cluster ClusterIdentity) (string, error) {
	zone, err := a.zones.HTTPRoutingZoneQuery(ctx, cluster)
	if err != nil {
		return "", fmt.Errorf("query dns zone: %w", err)
	}

	if zone != "" {
		return zone, nil
	}

	logger.InfoContext(ctx, "http application routing disabled, enabling add-on")

	if err := a.zones.EnableHTTPRoutingCommand(ctx, cluster); err != nil {
		return "", fmt.Errorf("enable http application routing: %w", err)
	}

	zone, err = a.zones.HTTPRoutingZoneQuery(ctx, cluster)
	if err != nil {
		return "", fmt.Errorf("query dns zone after enabling add-on: %w", err)
	}

	if zone == "" {
		return "", ErrDNSZoneUnavailable
	}

	return zone, nil
}

// renderTemplate replaces the given ${VAR} placeholders. Anything else is
// left as is.
func renderTemplate(template []byte, vars map[string]string) []byte {
	pairs := make([]string, 0, len(vars)*2)
	for placeholder, value := range vars {
		pairs = append(pairs, placeholder, value)
	}

	return []byte(strings.NewReplacer(pairs...).Replace(string(template)))
}
