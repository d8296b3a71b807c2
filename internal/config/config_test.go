package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/config"
)

type loadCase struct {
	name    string
	giveEnv map[string]string
	wantErr error
	wantAny bool
	want    func(t *testing.T, cfg *config.Config)
}

func TestLoad(t *testing.T) {
	tests := []loadCase{
		{
			name: "all defaults",
			want: func(t *testing.T, cfg *config.Config) {
				t.Helper()

				require.Equal(t, "info", cfg.LogLevel)
				require.Equal(t, "text", cfg.LogFormat)
				require.Equal(t, "8080", cfg.HTTPPort)
				require.Equal(t, "9090", cfg.MetricsPort)
				require.Equal(t, "/tmp/kbs", cfg.CheckoutDir)
				require.Equal(t, "coco-tenant", cfg.Namespace)
				require.Equal(t, "kbs", cfg.ServiceName)
				require.Equal(t, "app=kbs", cfg.LabelSelector)
				require.Equal(t, "overlays/key.bin", cfg.SecretPath)
				require.Equal(t, 120*time.Second, cfg.PodRunningTimeout)
				require.Equal(t, 10*time.Second, cfg.PodRunningInterval)
				require.Equal(t, 60*time.Second, cfg.ServiceProbeTimeout)
				require.Equal(t, 10*time.Second, cfg.ServiceProbeInterval)
				require.Equal(t, 350*time.Second, cfg.IngressProbeTimeout)
				require.Equal(t, 30*time.Second, cfg.IngressProbeInterval)
				require.Equal(t, 24*time.Hour, cfg.JanitorCleanupAfter)
				require.Equal(t, "0 * * * *", cfg.JanitorSchedule)
				require.Equal(t, 10*time.Second, cfg.PingerInterval)
				require.Empty(t, cfg.DNSServer)
			},
		},
		{
			name: "fallback env keys",
			giveEnv: map[string]string{
				"KUBECONFIG":          "/home/ci/.kube/config",
				"KUBERNETES_MASTER":   "https://10.0.0.1:6443",
				"GH_PR_NUMBER":        "1234",
				"KATA_HYPERVISOR":     "clh",
				"KATA_HOST_OS":        "cbl-mariner",
				"AZ_SUBSCRIPTION_ID":  "sub-1",
				"CLEANUP_AFTER_HOURS": "6",
			},
			want: func(t *testing.T, cfg *config.Config) {
				t.Helper()

				require.Equal(t, "/home/ci/.kube/config", cfg.KubeConfig)
				require.Equal(t, "https://10.0.0.1:6443", cfg.KubeMaster)
				require.Equal(t, "1234", cfg.PRNumber)
				require.Equal(t, "clh", cfg.Hypervisor)
				require.Equal(t, "cbl-mariner", cfg.HostOS)
				require.Equal(t, "sub-1", cfg.SubscriptionID)
				require.Equal(t, 6*time.Hour, cfg.JanitorCleanupAfter)
			},
		},
		{
			name: "prefixed keys win over fallbacks",
			giveEnv: map[string]string{
				"KUBECONFIG":                "/fallback",
				"KBS_KUBECONFIG":            "/primary",
				"CLEANUP_AFTER_HOURS":       "6",
				"KBS_JANITOR_CLEANUP_AFTER": "48h",
			},
			want: func(t *testing.T, cfg *config.Config) {
				t.Helper()

				require.Equal(t, "/primary", cfg.KubeConfig)
				require.Equal(t, 48*time.Hour, cfg.JanitorCleanupAfter)
			},
		},
		{
			name: "override waits with units",
			giveEnv: map[string]string{
				"KBS_POD_RUNNING_TIMEOUT":    "5m",
				"KBS_INGRESS_PROBE_INTERVAL": "1m",
			},
			want: func(t *testing.T, cfg *config.Config) {
				t.Helper()

				require.Equal(t, 5*time.Minute, cfg.PodRunningTimeout)
				require.Equal(t, time.Minute, cfg.IngressProbeInterval)
			},
		},
		{
			name:    "invalid wait duration",
			giveEnv: map[string]string{"KBS_SERVICE_PROBE_TIMEOUT": "x"},
			wantAny: true,
		},
		{
			name:    "wait below minimum",
			giveEnv: map[string]string{"KBS_POD_RUNNING_INTERVAL": "100ms"},
			wantErr: config.ErrDurationTooShort,
		},
		{
			name:    "negative wait",
			giveEnv: map[string]string{"KBS_INGRESS_PROBE_TIMEOUT": "-1s"},
			wantErr: config.ErrDurationTooShort,
		},
		{
			name:    "invalid cleanup hours",
			giveEnv: map[string]string{"CLEANUP_AFTER_HOURS": "soon"},
			wantAny: true,
		},
		{
			name: "probe nameserver and pinger interval",
			giveEnv: map[string]string{
				"KBS_DNS_SERVER":      "168.63.129.16:53",
				"KBS_PINGER_INTERVAL": "30s",
			},
			want: func(t *testing.T, cfg *config.Config) {
				t.Helper()

				require.Equal(t, "168.63.129.16:53", cfg.DNSServer)
				require.Equal(t, 30*time.Second, cfg.PingerInterval)
			},
		},
		{
			name:    "pinger interval below minimum",
			giveEnv: map[string]string{"KBS_PINGER_INTERVAL": "10ms"},
			wantErr: config.ErrDurationTooShort,
		},
		{
			name:    "cleanup below minimum",
			giveEnv: map[string]string{"KBS_JANITOR_CLEANUP_AFTER": "10m"},
			wantErr: config.ErrDurationTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.giveEnv {
				t.Setenv(k, v)
			}

			got, err := config.Load()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			if tt.wantAny {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			tt.want(t, got)
		})
	}
}

func TestOverlayArch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want string
	}{
		{give: "amd64", want: "x86_64"},
		{give: "arm64", want: "aarch64"},
		{give: "s390x", want: "s390x"},
		{give: "ppc64le", want: "ppc64le"},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, config.OverlayArch(tt.give))
		})
	}
}
