package kustomize_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/kustomize/api/types"
	"sigs.k8s.io/kustomize/kyaml/filesys"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/kustomize"
)

const (
	root    = "/tmp/kbs/kbs/config/kubernetes"
	base    = root + "/base"
	overlay = root + "/overlays/x86_64"
)

var tree = map[string]string{
	base + "/kustomization.yaml": `apiVersion: kustomize.config.k8s.io/v1beta1
kind: Kustomization
namespace: coco-tenant
resources:
- deployment.yaml
- service.yaml
- namespace.yaml
images:
- name: kbs-container-image
  newName: ghcr.io/confidential-containers/key-broker-service
  newTag: built-in-as-v0.8.0
`,
	base + "/namespace.yaml": `apiVersion: v1
kind: Namespace
metadata:
  name: coco-tenant
`,
	base + "/deployment.yaml": `apiVersion: apps/v1
kind: Deployment
metadata:
  name: kbs
spec:
  selector:
    matchLabels:
      app: kbs
  template:
    metadata:
      labels:
        app: kbs
    spec:
      containers:
      - name: kbs
        image: kbs-container-image
`,
	base + "/service.yaml": `apiVersion: v1
kind: Service
metadata:
  name: kbs
spec:
  selector:
    app: kbs
  ports:
  - port: 8080
`,
	overlay + "/kustomization.yaml": `apiVersion: kustomize.config.k8s.io/v1beta1
kind: Kustomization
resources:
- ../../base
secretGenerator:
- name: kbs-auth-public-key
  namespace: coco-tenant
  files:
  - ../key.bin
`,
}

func newTree(t *testing.T) filesys.FileSystem {
	t.Helper()

	fSys := filesys.MakeFsInMemory()
	for path, content := range tree {
		require.NoError(t, fSys.MkdirAll(filepath.Dir(path)))
		require.NoError(t, fSys.WriteFile(path, []byte(content)))
	}

	return fSys
}

func readKustomization(t *testing.T, fSys filesys.FileSystem, dir string) types.Kustomization {
	t.Helper()

	data, err := fSys.ReadFile(filepath.Join(dir, "kustomization.yaml"))
	require.NoError(t, err)

	var k types.Kustomization
	require.NoError(t, yaml.Unmarshal(data, &k))

	return k
}

func TestPatcher_WriteSecret(t *testing.T) {
	t.Parallel()

	fSys := newTree(t)
	p := kustomize.New(slog.Default(), fSys)

	require.NoError(t, p.WriteSecret(root, "overlays/key.bin", []byte("somesecret\n")))

	data, err := fSys.ReadFile(root + "/overlays/key.bin")
	require.NoError(t, err)
	require.Equal(t, "somesecret\n", string(data))
}

func TestPatcher_SetImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		giveName string
		giveTag  string
		wantErr  error
	}{
		{
			name:     "registry image",
			giveName: "ghcr.io/confidential-containers/staged-images/kbs",
			giveTag:  "18dbe2de6bd3c7c5eb5c3e2a7b0b4ab3ab0d8c33",
		},
		{
			name:     "tag passed through verbatim",
			giveName: "localhost:5000/kbs",
			giveTag:  "weird:tag/with-slash",
		},
		{
			name:     "name with tag rejected",
			giveName: "ghcr.io/org/kbs:latest",
			giveTag:  "v1",
			wantErr:  kustomize.ErrInvalidImage,
		},
		{
			name:     "unparsable name rejected",
			giveName: "Not A Valid//Name",
			giveTag:  "v1",
			wantErr:  kustomize.ErrInvalidImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fSys := newTree(t)
			p := kustomize.New(slog.Default(), fSys)

			err := p.SetImage(base, tt.giveName, tt.giveTag)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)

			k := readKustomization(t, fSys, base)
			require.Len(t, k.Images, 1)
			require.Equal(t, kustomize.ImagePlaceholder, k.Images[0].Name)
			require.Equal(t, tt.giveName+":"+tt.giveTag, k.Images[0].NewName+":"+k.Images[0].NewTag)
			require.Equal(t, []string{"deployment.yaml", "service.yaml", "namespace.yaml"}, k.Resources)
		})
	}
}

func TestPatcher_SetImage_NoKustomization(t *testing.T) {
	t.Parallel()

	p := kustomize.New(slog.Default(), filesys.MakeFsInMemory())

	err := p.SetImage("/nowhere", "ghcr.io/org/kbs", "v1")
	require.ErrorIs(t, err, kustomize.ErrNoKustomization)
}

func TestOverlayEditor_AddResource(t *testing.T) {
	t.Parallel()

	fSys := newTree(t)
	editor := kustomize.New(slog.Default(), fSys).OverlayEditor(overlay)

	content := []byte("apiVersion: networking.k8s.io/v1\nkind: Ingress\nmetadata:\n  name: kbs\n")

	require.NoError(t, editor.AddResource("ingress.yaml", content))
	require.NoError(t, editor.AddResource("ingress.yaml", content))

	k := readKustomization(t, fSys, overlay)
	require.Equal(t, []string{"../../base", "ingress.yaml"}, k.Resources)

	data, err := fSys.ReadFile(overlay + "/ingress.yaml")
	require.NoError(t, err)
	require.Equal(t, content, data)
}

func TestPatcher_Build(t *testing.T) {
	t.Parallel()

	fSys := newTree(t)
	p := kustomize.New(slog.Default(), fSys)

	require.NoError(t, p.WriteSecret(root, "overlays/key.bin", []byte("somesecret\n")))
	require.NoError(t, p.SetImage(base, "ghcr.io/confidential-containers/staged-images/kbs", "abc123"))

	objects, err := p.Build(overlay)
	require.NoError(t, err)
	require.Len(t, objects, 4)
	require.Equal(t, "Namespace", objects[0].GetKind())

	kinds := map[string]bool{}
	for _, obj := range objects {
		kinds[obj.GetKind()] = true

		if obj.GetKind() != "Namespace" {
			require.Equal(t, "coco-tenant", obj.GetNamespace())
		}

		if obj.GetKind() == "Deployment" {
			containers, found, err := unstructured.NestedSlice(obj.Object, "spec", "template", "spec", "containers")
			require.NoError(t, err)
			require.True(t, found)
			require.Len(t, containers, 1)

			image, _, err := unstructured.NestedString(containers[0].(map[string]any), "image")
			require.NoError(t, err)
			require.Equal(t, "ghcr.io/confidential-containers/staged-images/kbs:abc123", image)
		}
	}

	require.Equal(t, map[string]bool{"Namespace": true, "Secret": true, "Service": true, "Deployment": true}, kinds)
}

func TestPatcher_Build_MissingSecret(t *testing.T) {
	t.Parallel()

	p := kustomize.New(slog.Default(), newTree(t))

	_, err := p.Build(overlay)
	require.Error(t, err)
}
