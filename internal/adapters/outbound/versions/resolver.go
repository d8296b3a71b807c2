package versions

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrNotScalar   = errors.New("value is not a scalar")
)

// Resolver looks up dotted keys in a YAML versions manifest. The file is
// read once, on first use.
type Resolver struct {
	path string

	once sync.Once
	root *yaml.Node
	err  error
}

func New(path string) *Resolver {
	return &Resolver{path: path}
}

// Resolve returns the literal text of the scalar at keyPath.
func (r *Resolver) Resolve(keyPath string) (string, error) {
	r.once.Do(r.load)

	if r.err != nil {
		return "", r.err
	}

	node := r.root
	for _, key := range strings.Split(keyPath, ".") {
		node = child(node, key)
		if node == nil {
			return "", fmt.Errorf("resolve %s in %s: %w", keyPath, r.path, ErrKeyNotFound)
		}
	}

	if node.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("resolve %s in %s: %w", keyPath, r.path, ErrNotScalar)
	}

	return node.Value, nil
}

func (r *Resolver) load() {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.err = fmt.Errorf("read versions manifest: %w", err)

		return
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		r.err = fmt.Errorf("parse versions manifest %s: %w", r.path, err)

		return
	}

	if len(doc.Content) == 0 {
		r.err = fmt.Errorf("versions manifest %s is empty: %w", r.path, ErrKeyNotFound)

		return
	}

	r.root = doc.Content[0]
}

// child returns the value of key in a mapping node, following aliases.
func child(node *yaml.Node, key string) *yaml.Node {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	if node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			value := node.Content[i+1]
			if value.Kind == yaml.AliasNode {
				return value.Alias
			}

			return value
		}
	}

	return nil
}
