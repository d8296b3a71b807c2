package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"
)

const (
	defaultLogLevel             = "info"
	defaultLogFormat            = "text"
	defaultHTTPPort             = "8080"
	defaultMetricsPort          = "9090"
	defaultVersionsFile         = "versions.yaml"
	defaultCheckoutDir          = "/tmp/kbs"
	defaultNamespace            = "coco-tenant"
	defaultServiceName          = "kbs"
	defaultLabelSelector        = "app=kbs"
	defaultSecretPath           = "overlays/key.bin"
	defaultProbeImage           = "quay.io/prometheus/busybox:latest"
	defaultTestType             = "k8s"
	defaultHostOS               = "ubuntu"
	defaultSourceDir            = "."
	defaultJanitorSchedule      = "0 * * * *"
	defaultJanitorCleanupAfter  = 24 * time.Hour
	defaultPodRunningTimeout    = 120 * time.Second
	defaultPodRunningInterval   = 10 * time.Second
	defaultServiceProbeTimeout  = 60 * time.Second
	defaultServiceProbeInterval = 10 * time.Second
	defaultIngressProbeTimeout  = 350 * time.Second
	defaultIngressProbeInterval = 30 * time.Second
	defaultPingerInterval       = 10 * time.Second
)

type Config struct {
	KubeConfig  string
	KubeMaster  string
	LogLevel    string
	LogFormat   string
	HTTPPort    string
	MetricsPort string

	VersionsFile    string
	CheckoutDir     string
	Namespace       string
	ServiceName     string
	LabelSelector   string
	OverlayArch     string
	SecretPath      string
	ProbeImage      string
	IngressTemplate string
	DNSServer       string

	PodRunningTimeout    time.Duration
	PodRunningInterval   time.Duration
	ServiceProbeTimeout  time.Duration
	ServiceProbeInterval time.Duration
	IngressProbeTimeout  time.Duration
	IngressProbeInterval time.Duration

	AKSResourceGroup string
	AKSName          string
	TestType         string
	PRNumber         string
	Hypervisor       string
	HostOS           string
	SourceDir        string
	SubscriptionID   string

	JanitorCleanupAfter time.Duration
	JanitorSchedule     string
	JanitorTZ           string
	PingerInterval      time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:  getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:  getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:    getEnvOrDefault(envKeyLogLevel, defaultLogLevel),
		LogFormat:   getEnvOrDefault(envKeyLogFormat, defaultLogFormat),
		HTTPPort:    getEnvOrDefault(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort: getEnvOrDefault(envKeyMetricsPort, defaultMetricsPort),

		VersionsFile:    getEnvOrDefault(envKeyVersionsFile, defaultVersionsFile),
		CheckoutDir:     getEnvOrDefault(envKeyCheckoutDir, defaultCheckoutDir),
		Namespace:       getEnvOrDefault(envKeyNamespace, defaultNamespace),
		ServiceName:     getEnvOrDefault(envKeyServiceName, defaultServiceName),
		LabelSelector:   getEnvOrDefault(envKeyLabelSelector, defaultLabelSelector),
		OverlayArch:     getEnvOrDefault(envKeyOverlayArch, OverlayArch(runtime.GOARCH)),
		SecretPath:      getEnvOrDefault(envKeySecretPath, defaultSecretPath),
		ProbeImage:      getEnvOrDefault(envKeyProbeImage, defaultProbeImage),
		IngressTemplate: os.Getenv(envKeyIngressTemplate),
		DNSServer:       os.Getenv(envKeyDNSServer),

		AKSResourceGroup: os.Getenv(envKeyAKSResourceGroup),
		AKSName:          os.Getenv(envKeyAKSName),
		TestType:         getEnvOrDefault(envKeyTestType, defaultTestType),
		PRNumber:         getEnvWithFallback(envKeyPRNumber, envKeyPRNumberFallback),
		Hypervisor:       getEnvWithFallback(envKeyHypervisor, envKeyHypervisorFallback),
		HostOS:           getEnvOrDefault(envKeyHostOS, getEnvOrDefault(envKeyHostOSFallback, defaultHostOS)),
		SourceDir:        getEnvOrDefault(envKeySourceDir, defaultSourceDir),
		SubscriptionID:   getEnvWithFallback(envKeySubscriptionID, envKeySubscriptionIDFallback),

		JanitorSchedule: getEnvOrDefault(envKeyJanitorSchedule, defaultJanitorSchedule),
		JanitorTZ:       os.Getenv(envKeyJanitorTZ),
	}

	waits := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{envKeyPodRunningTimeout, defaultPodRunningTimeout, &cfg.PodRunningTimeout},
		{envKeyPodRunningInterval, defaultPodRunningInterval, &cfg.PodRunningInterval},
		{envKeyServiceProbeTimeout, defaultServiceProbeTimeout, &cfg.ServiceProbeTimeout},
		{envKeyServiceProbeInterval, defaultServiceProbeInterval, &cfg.ServiceProbeInterval},
		{envKeyIngressProbeTimeout, defaultIngressProbeTimeout, &cfg.IngressProbeTimeout},
		{envKeyIngressProbeInterval, defaultIngressProbeInterval, &cfg.IngressProbeInterval},
	}

	for _, w := range waits {
		d, err := parseDuration(w.key, w.def, envMinWaitDuration)
		if err != nil {
			return nil, err
		}

		*w.dst = d
	}

	cleanupAfter, err := loadCleanupAfter()
	if err != nil {
		return nil, err
	}

	cfg.JanitorCleanupAfter = cleanupAfter

	cfg.PingerInterval, err = parseDuration(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// OverlayArch maps a GOARCH value to the KBS overlay directory name.
func OverlayArch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "arm64":
		return "aarch64"
	default:
		return goarch
	}
}

func loadCleanupAfter() (time.Duration, error) {
	if os.Getenv(envKeyJanitorCleanupAfter) != "" {
		return parseDuration(envKeyJanitorCleanupAfter, defaultJanitorCleanupAfter, envMinJanitorCleanupAfter)
	}

	hours := os.Getenv(envKeyCleanupAfterHours)
	if hours == "" {
		return defaultJanitorCleanupAfter, nil
	}

	n, err := strconv.Atoi(hours)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", envKeyCleanupAfterHours, err)
	}

	d := time.Duration(n) * time.Hour
	if d < envMinJanitorCleanupAfter {
		return 0, fmt.Errorf("%s %q: %w", envKeyCleanupAfterHours, hours, ErrDurationTooShort)
	}

	return d, nil
}

func parseDuration(key string, defaultValue, minValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if d < minValue {
		return 0, fmt.Errorf("%s %q below %s: %w", key, value, minValue, ErrDurationTooShort)
	}

	return d, nil
}

func getEnvWithFallback(key, fallbackKey string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return os.Getenv(fallbackKey)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
