package azure_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/azure"
	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
)

const (
	sub         = "sub"
	clusterPath = "/subscriptions/sub/resourcegroups/katacirg/providers/microsoft.containerservice/managedclusters/k8s-pr-1"
)

var cluster = ingress.ClusterIdentity{ResourceGroup: "kataCIrg", Name: "k8s-pr-1"}

type fakeCredential struct{}

func (fakeCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "token", ExpiresOn: time.Now().Add(time.Hour)}, nil
}

type response struct {
	status int
	body   string
}

// fakeARM routes requests by "METHOD lower-cased-path".
type fakeARM struct {
	mu     sync.Mutex
	routes map[string]response
	calls  []string
	bodies map[string]string
}

func (f *fakeARM) Do(req *http.Request) (*http.Response, error) {
	key := req.Method + " " + strings.ToLower(path.Clean(req.URL.Path))

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, key)

	if req.Body != nil {
		data, _ := io.ReadAll(req.Body)
		if f.bodies == nil {
			f.bodies = map[string]string{}
		}

		f.bodies[key] = string(data)
	}

	resp, ok := f.routes[key]
	if !ok {
		resp = response{status: http.StatusNotFound, body: `{"error":{"code":"NotFound","message":"` + key + `"}}`}
	}

	return &http.Response{
		StatusCode: resp.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(resp.body)),
		Request:    req,
	}, nil
}

func newAdapter(subscriptionID string, transport *fakeARM) *azure.Adapter {
	return azure.New(slog.Default(), subscriptionID, fakeCredential{}, &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Transport: transport,
			Retry:     policy.RetryOptions{MaxRetries: -1},
		},
		DisableRPRegistration: true,
	})
}

func TestAdapter_HTTPRoutingZoneQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		give string
		want string
	}{
		{
			name: "enabled with zone",
			give: `{"name":"k8s-pr-1","properties":{"addonProfiles":{"httpApplicationRouting":{"enabled":true,"config":{"HTTPApplicationRoutingZoneName":"abc.westeurope.aksapp.io"}}}}}`,
			want: "abc.westeurope.aksapp.io",
		},
		{
			name: "disabled",
			give: `{"name":"k8s-pr-1","properties":{"addonProfiles":{"httpApplicationRouting":{"enabled":false,"config":{"HTTPApplicationRoutingZoneName":"stale"}}}}}`,
			want: "",
		},
		{
			name: "no addons",
			give: `{"name":"k8s-pr-1","properties":{}}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := &fakeARM{routes: map[string]response{
				"GET " + clusterPath: {status: http.StatusOK, body: tt.give},
			}}

			zone, err := newAdapter(sub, transport).HTTPRoutingZoneQuery(t.Context(), cluster)
			require.NoError(t, err)
			require.Equal(t, tt.want, zone)
		})
	}
}

func TestAdapter_HTTPRoutingZoneQuery_Errors(t *testing.T) {
	t.Parallel()

	_, err := newAdapter("", &fakeARM{}).HTTPRoutingZoneQuery(t.Context(), cluster)
	require.ErrorIs(t, err, azure.ErrNoSubscription)

	_, err = newAdapter(sub, &fakeARM{}).HTTPRoutingZoneQuery(t.Context(), cluster)
	require.Error(t, err)
	require.Contains(t, err.Error(), "get managed cluster k8s-pr-1")

	withSub := cluster
	withSub.SubscriptionID = "other"

	transport := &fakeARM{}
	_, _ = newAdapter(sub, transport).HTTPRoutingZoneQuery(t.Context(), withSub)
	require.Equal(t, []string{"GET " + strings.Replace(clusterPath, "/sub/", "/other/", 1)}, transport.calls)
}

func TestAdapter_EnableHTTPRoutingCommand(t *testing.T) {
	t.Parallel()

	transport := &fakeARM{routes: map[string]response{
		"GET " + clusterPath: {status: http.StatusOK, body: `{"name":"k8s-pr-1","location":"westeurope","properties":{"kubernetesVersion":"1.30"}}`},
		"PUT " + clusterPath: {status: http.StatusOK, body: `{"name":"k8s-pr-1","properties":{"provisioningState":"Succeeded"}}`},
	}}

	require.NoError(t, newAdapter(sub, transport).EnableHTTPRoutingCommand(t.Context(), cluster))
	require.Equal(t, []string{"GET " + clusterPath, "PUT " + clusterPath}, transport.calls)
	require.Contains(t, transport.bodies["PUT "+clusterPath], `"httpApplicationRouting":{"enabled":true}`)
	require.Contains(t, transport.bodies["PUT "+clusterPath], `"kubernetesVersion":"1.30"`)
}

func TestAdapter_ManagedClustersQuery(t *testing.T) {
	t.Parallel()

	transport := &fakeARM{routes: map[string]response{
		"GET /subscriptions/sub/resources": {status: http.StatusOK, body: `{"value":[
			{"id":"/subscriptions/sub/resourceGroups/kataCI-a/providers/Microsoft.ContainerService/managedClusters/a","name":"a","type":"Microsoft.ContainerService/managedClusters","createdTime":"2026-10-17T10:00:00Z"},
			{"id":"/subscriptions/sub/resourceGroups/kataCI-a/providers/Microsoft.Network/publicIPAddresses/ip","name":"ip","type":"Microsoft.Network/publicIPAddresses"},
			{"id":"garbage","name":"bad","type":"Microsoft.ContainerService/managedClusters"}
		]}`},
	}}

	clusters, err := newAdapter(sub, transport).ManagedClustersQuery(t.Context())
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	require.Equal(t, "a", clusters[0].Name)
	require.Equal(t, "kataCI-a", clusters[0].ResourceGroup)
	require.Equal(t, time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC), clusters[0].CreatedAt.UTC())
}

func TestAdapter_GroupResourceCountQuery(t *testing.T) {
	t.Parallel()

	transport := &fakeARM{routes: map[string]response{
		"GET /subscriptions/sub/resourcegroups/kataci-a/resources": {status: http.StatusOK, body: `{"value":[{"id":"x"},{"id":"y"}]}`},
	}}

	count, err := newAdapter(sub, transport).GroupResourceCountQuery(t.Context(), "kataCI-a")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestAdapter_Deletes(t *testing.T) {
	t.Parallel()

	id := "/subscriptions/sub/resourceGroups/kataCI-a/providers/Microsoft.ContainerService/managedClusters/a"

	transport := &fakeARM{routes: map[string]response{
		"DELETE /subscriptions/sub/resourcegroups/kataci-a": {status: http.StatusOK},
		"DELETE " + strings.ToLower(id):                       {status: http.StatusOK},
	}}

	adapter := newAdapter(sub, transport)

	require.NoError(t, adapter.DeleteGroupCommand(t.Context(), "kataCI-a"))
	require.NoError(t, adapter.DeleteResourceCommand(t.Context(), id))
	require.Error(t, adapter.DeleteGroupCommand(t.Context(), "missing"))
}
