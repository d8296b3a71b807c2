package ingress

const (
	ProviderAKS = "aks"

	// aksIngressClass is the ingress class served by the AKS HTTP application routing add-on.
	aksIngressClass = "addon-http-application-routing"
	// kbsHostPrefix is prepended to the DNS zone to form the ingress host.
	kbsHostPrefix = "kbs."

	ingressResourceFile = "ingress.yaml"

	placeholderIngressClass = "${KBS_INGRESS_CLASS}"
	placeholderIngressHost  = "${KBS_INGRESS_HOST}"

	clusterArch         = "amd64"
	resourceGroupPrefix = "kataCI-"
)
