package generator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/leonidagapkin/extclassgenerator/pkg/dialect"
)

// Registry stores generators by dialect name, providing discovery and
// duplication safeguards for callers that resolve output formats at runtime.
type Registry struct {
	mu         sync.RWMutex
	generators map[string]*Generator
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[string]*Generator),
	}
}

// DefaultRegistry returns a registry pre-populated with every supported
// dialect profile.
func DefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, profile := range dialect.Profiles() {
		registry.MustRegister(New(profile))
	}
	return registry
}

// Register adds a generator by its Name(). Duplicate names return an error.
func (r *Registry) Register(gen *Generator) error {
	if gen == nil {
		return fmt.Errorf("generator: registry entry is required")
	}
	name := gen.Name()
	if name == "" {
		return fmt.Errorf("generator: registry entry name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.generators[name]; exists {
		return fmt.Errorf("generator: %q already registered", name)
	}

	r.generators[name] = gen
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(gen *Generator) {
	if err := r.Register(gen); err != nil {
		panic(err)
	}
}

// Get retrieves a generator by dialect name.
func (r *Registry) Get(name string) (*Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gen, ok := r.generators[name]
	if !ok {
		return nil, fmt.Errorf("generator: %q not found", name)
	}
	return gen, nil
}

// List returns a sorted list of registered dialect names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a dialect is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.generators[name]
	return ok
}
