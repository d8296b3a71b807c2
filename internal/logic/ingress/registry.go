package ingress

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps provider names to strategies. It is populated at startup.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry creates a registry holding the given strategies.
func NewRegistry(strategies ...Strategy) (*Registry, error) {
	r := &Registry{
		strategies: make(map[string]Strategy, len(strategies)),
	}

	for _, s := range strategies {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) Register(strategy Strategy) error {
	if strategy == nil {
		return fmt.Errorf("register strategy: %w", ErrNilStrategy)
	}

	name := strategy.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.strategies[name]; exists {
		return fmt.Errorf("register strategy %s: %w", name, ErrAlreadyRegistered)
	}

	r.strategies[name] = strategy

	return nil
}

// Lookup returns the strategy registered under name.
func (r *Registry) Lookup(name string) (Strategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q (known: %v): %w", name, r.namesLocked(), ErrUnsupportedProvider)
	}

	return s, nil
}

// Names returns the registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
