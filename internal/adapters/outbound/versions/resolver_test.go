package versions_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/kbs-deployer/internal/adapters/outbound/versions"
)

const manifest = `
externals:
  description: "Third-party projects used by the system"
  coco-kbs:
    description: "Provides attestation and secret delivery components"
    url: "https://github.com/confidential-containers/trustee"
    version: "18dbe2de6bd3c7c5eb5c3e2a7b0b4ab3ab0d8c33"
    image: "ghcr.io/confidential-containers/staged-images/kbs"
    image_tag: "18dbe2de6bd3c7c5eb5c3e2a7b0b4ab3ab0d8c33"
  numeric:
    version: 1.10
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "versions.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	r := versions.New(writeManifest(t, manifest))

	tests := []struct {
		give    string
		want    string
		wantErr error
	}{
		{give: "externals.coco-kbs.url", want: "https://github.com/confidential-containers/trustee"},
		{give: "externals.coco-kbs.version", want: "18dbe2de6bd3c7c5eb5c3e2a7b0b4ab3ab0d8c33"},
		{give: "externals.coco-kbs.image", want: "ghcr.io/confidential-containers/staged-images/kbs"},
		{give: "externals.coco-kbs.image_tag", want: "18dbe2de6bd3c7c5eb5c3e2a7b0b4ab3ab0d8c33"},
		{give: "externals.numeric.version", want: "1.10"},
		{give: "externals.coco-kbs.missing", wantErr: versions.ErrKeyNotFound},
		{give: "externals.coco-kbs.url.deeper", wantErr: versions.ErrKeyNotFound},
		{give: "externals.coco-kbs", wantErr: versions.ErrNotScalar},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			got, err := r.Resolve(tt.give)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_CachesManifest(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, manifest)
	r := versions.New(path)

	first, err := r.Resolve("externals.coco-kbs.url")
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	second, err := r.Resolve("externals.coco-kbs.url")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestResolver_MissingManifest(t *testing.T) {
	t.Parallel()

	r := versions.New(filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := r.Resolve("externals.coco-kbs.url")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolver_EmptyManifest(t *testing.T) {
	t.Parallel()

	r := versions.New(writeManifest(t, ""))

	_, err := r.Resolve("externals.coco-kbs.url")
	require.ErrorIs(t, err, versions.ErrKeyNotFound)
}
