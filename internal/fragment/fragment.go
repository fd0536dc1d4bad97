package fragment

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Fragment is an immutable unit of text content plus a provenance label.
// The source string is deterministic for a given loader argument, so
// repeated loads of the same argument yield the same identity.
type Fragment struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// Loader fetches fragments for a raw loader argument. Loaders that
// produce a single document return a one-element slice.
type Loader func(ctx context.Context, argument string) ([]Fragment, error)

// Registry holds named loader callbacks. The embedding application owns
// the registry lifecycle and injects it wherever loaders are registered
// or invoked. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]Loader
}

func NewRegistry() *Registry {
	return &Registry{loaders: map[string]Loader{}}
}

// Register adds a named loader. Registering the same name twice is a
// programming error and is rejected.
func (r *Registry) Register(name string, fn Loader) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.loaders[name]; exists {
		return fmt.Errorf("loader %q already registered", name)
	}
	r.loaders[name] = fn
	return nil
}

// Load invokes the named loader with the given argument.
func (r *Registry) Load(ctx context.Context, name, argument string) ([]Fragment, error) {
	r.mu.RLock()
	fn, ok := r.loaders[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no loader registered for %q", name)
	}
	return fn(ctx, argument)
}

// Names returns the registered loader names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.loaders))
	for name := range r.loaders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
