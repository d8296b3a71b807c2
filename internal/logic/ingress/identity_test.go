package ingress_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
	"github.com/skillcoder/kbs-deployer/internal/logic/ingress/mocks"
)

func TestIdentityResolver_ClusterIdentityQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		give      ingress.IdentityConfig
		giveSHA   string
		giveSHAEr error
		want      ingress.ClusterIdentity
		wantErr   error
	}{
		{
			name: "derived from ci inputs",
			give: ingress.IdentityConfig{
				SubscriptionID: "sub",
				TestType:       "k8s",
				PRNumber:       "9876",
				Hypervisor:     "clh",
				HostOS:         "ubuntu",
				SourceDir:      ".",
			},
			giveSHA: "0123456789ab",
			want: ingress.ClusterIdentity{
				SubscriptionID: "sub",
				ResourceGroup:  "kataCI-k8s-9876-0123456789ab-clh-ubuntu-amd64",
				Name:           "k8s-9876-0123456789ab-clh-ubuntu-amd64",
			},
		},
		{
			name: "explicit name and group",
			give: ingress.IdentityConfig{
				ResourceGroup: "rg",
				Name:          "cluster",
			},
			want: ingress.ClusterIdentity{
				ResourceGroup: "rg",
				Name:          "cluster",
			},
		},
		{
			name: "explicit name default group",
			give: ingress.IdentityConfig{Name: "cluster"},
			want: ingress.ClusterIdentity{
				ResourceGroup: "kataCI-cluster",
				Name:          "cluster",
			},
		},
		{
			name:    "missing pr number",
			give:    ingress.IdentityConfig{TestType: "k8s", Hypervisor: "qemu"},
			wantErr: ingress.ErrIdentity,
		},
		{
			name: "short head failure",
			give: ingress.IdentityConfig{
				TestType:   "k8s",
				PRNumber:   "1",
				Hypervisor: "qemu",
				SourceDir:  ".",
			},
			giveSHAEr: errors.New("not a git repository"),
			wantErr:   ingress.ErrIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			head := mocks.NewMockHeadReader(t)
			if tt.giveSHA != "" || tt.giveSHAEr != nil {
				head.EXPECT().
					ShortHead(mock.Anything, tt.give.SourceDir).
					Return(tt.giveSHA, tt.giveSHAEr).
					Once()
			}

			got, err := ingress.NewIdentityResolver(tt.give, head).ClusterIdentityQuery(t.Context())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
