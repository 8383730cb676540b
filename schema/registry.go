package schema

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds resolved schemas by name for concurrent reuse. A
// schema is resolved before Register returns it to readers, so Lookup
// results are safe to validate against from many goroutines.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

func (r *Registry) Register(name string, s *Schema) error {
	if s == nil {
		return fmt.Errorf("cannot register nil schema")
	}
	if name == "" {
		return fmt.Errorf("schema name cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("schema %q already registered", name)
	}
	r.schemas[name] = s
	return nil
}

func (r *Registry) Lookup(name string) *Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas[name]
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
