package kustomize

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"

	"github.com/distribution/reference"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/kustomize/api/konfig"
	"sigs.k8s.io/kustomize/api/krusty"
	"sigs.k8s.io/kustomize/api/types"
	"sigs.k8s.io/kustomize/kyaml/filesys"
	"sigs.k8s.io/yaml"

	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
	"github.com/skillcoder/kbs-deployer/internal/logic/ingress"
)

// ImagePlaceholder is the image name the KBS base manifests refer to.
const ImagePlaceholder = "kbs-container-image"

var (
	ErrNoKustomization = errors.New("no kustomization file")
	ErrInvalidImage    = errors.New("invalid image name")
)

// Patcher edits and builds the KBS kustomize tree.
type Patcher struct {
	logger *slog.Logger
	fSys   filesys.FileSystem
}

// New creates a patcher on fSys. Use filesys.MakeFsOnDisk() outside tests.
func New(logger *slog.Logger, fSys filesys.FileSystem) *Patcher {
	return &Patcher{
		logger: logger.With("component", "kustomize"),
		fSys:   fSys,
	}
}

var _ deployer.ManifestPatcher = (*Patcher)(nil)

// WriteSecret writes content to relPath under kustomizeDir.
func (p *Patcher) WriteSecret(kustomizeDir, relPath string, content []byte) error {
	path := filepath.Join(kustomizeDir, relPath)

	if err := p.fSys.MkdirAll(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create secret dir: %w", err)
	}

	if err := p.fSys.WriteFile(path, content); err != nil {
		return fmt.Errorf("write secret %s: %w", path, err)
	}

	return nil
}

// SetImage points the placeholder image of the kustomization in dir at
// imageName:imageTag. The tag is not validated.
func (p *Patcher) SetImage(dir, imageName, imageTag string) error {
	named, err := reference.ParseNormalizedNamed(imageName)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidImage, imageName, err)
	}

	if !reference.IsNameOnly(named) {
		return fmt.Errorf("%w %q: must not carry a tag or digest", ErrInvalidImage, imageName)
	}

	return p.updateKustomization(dir, func(k *types.Kustomization) {
		image := types.Image{
			Name:    ImagePlaceholder,
			NewName: imageName,
			NewTag:  imageTag,
		}

		for i := range k.Images {
			if k.Images[i].Name == ImagePlaceholder {
				k.Images[i] = image

				return
			}
		}

		k.Images = append(k.Images, image)
	})
}

// OverlayEditor returns an editor adding resources to the overlay in dir.
func (p *Patcher) OverlayEditor(dir string) ingress.OverlayEditor {
	return &overlayEditor{
		patcher: p,
		dir:     dir,
	}
}

// Build renders the overlay in dir. Namespaces and CRDs come first so the
// result can be applied in order.
func (p *Patcher) Build(dir string) ([]*unstructured.Unstructured, error) {
	opts := krusty.MakeDefaultOptions()
	// the KBS overlays reference files of the parent directory
	opts.LoadRestrictions = types.LoadRestrictionsNone

	resMap, err := krusty.MakeKustomizer(opts).Run(p.fSys, dir)
	if err != nil {
		return nil, fmt.Errorf("kustomize build %s: %w", dir, err)
	}

	resources := resMap.Resources()
	objects := make([]*unstructured.Unstructured, 0, len(resources))

	for _, res := range resources {
		m, err := res.Map()
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", res.CurId(), err)
		}

		objects = append(objects, &unstructured.Unstructured{Object: m})
	}

	sort.SliceStable(objects, func(i, j int) bool {
		return applyPriority(objects[i]) < applyPriority(objects[j])
	})

	p.logger.Debug("overlay built", "dir", dir, "objects", len(objects))

	return objects, nil
}

func applyPriority(obj *unstructured.Unstructured) int {
	switch obj.GetKind() {
	case "Namespace":
		return 0
	case "CustomResourceDefinition":
		return 1
	default:
		return 2
	}
}

func (p *Patcher) updateKustomization(dir string, update func(k *types.Kustomization)) error {
	path, err := p.kustomizationFile(dir)
	if err != nil {
		return err
	}

	data, err := p.fSys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var k types.Kustomization
	if err := yaml.Unmarshal(data, &k); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	update(&k)

	out, err := yaml.Marshal(&k)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if err := p.fSys.WriteFile(path, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (p *Patcher) kustomizationFile(dir string) (string, error) {
	for _, name := range konfig.RecognizedKustomizationFileNames() {
		path := filepath.Join(dir, name)
		if p.fSys.Exists(path) {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w in %s", ErrNoKustomization, dir)
}

type overlayEditor struct {
	patcher *Patcher
	dir     string
}

// AddResource writes fileName into the overlay and lists it under
// resources once.
func (e *overlayEditor) AddResource(fileName string, content []byte) error {
	if err := e.patcher.fSys.WriteFile(filepath.Join(e.dir, fileName), content); err != nil {
		return fmt.Errorf("write %s: %w", fileName, err)
	}

	return e.patcher.updateKustomization(e.dir, func(k *types.Kustomization) {
		if !slices.Contains(k.Resources, fileName) {
			k.Resources = append(k.Resources, fileName)
		}
	})
}
