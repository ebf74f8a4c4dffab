package locator

import (
	"sort"
	"sync"

	"github.com/kbukum/servicekit/errors"
)

// Factory creates a provider instance. Discovered provider names resolve to
// factories rather than type references, so hosts register a factory for
// every name they expect a manifest to declare.
type Factory func() (any, error)

// Factories is a named factory set. It plays the name-resolution half of a
// Source: given a provider name, it yields the factory registered under it.
type Factories struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewFactories creates an empty factory set.
func NewFactories() *Factories {
	return &Factories{factories: make(map[string]Factory)}
}

// Register adds a factory under the given provider name. Registering a name
// twice is an ALREADY_EXISTS error.
func (f *Factories) Register(name string, factory Factory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.factories[name]; exists {
		return errors.AlreadyExists("provider factory", name)
	}
	f.factories[name] = factory
	return nil
}

// Lookup returns the factory registered under name. A nil receiver is an
// absent source and always misses.
func (f *Factories) Lookup(name string) (Factory, bool) {
	if f == nil {
		return nil, false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	factory, ok := f.factories[name]
	return factory, ok
}

// Names returns the sorted names of all registered factories.
func (f *Factories) Names() []string {
	if f == nil {
		return []string{}
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.factories))
	for name := range f.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
