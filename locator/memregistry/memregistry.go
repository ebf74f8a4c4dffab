package memregistry

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/kbukum/servicekit/errors"
	"github.com/kbukum/servicekit/locator"
	"github.com/kbukum/servicekit/logger"
)

// registration is one provider entry: a named factory bound to an
// interface name.
type registration struct {
	id    string
	iface string
	name  string
	make  locator.Factory
}

// Registry is the in-process provider registry. Hosts register named
// factories against interface names at runtime; the locator reads them
// through its registry handle. Registration order is preserved per
// interface.
type Registry struct {
	mu      sync.RWMutex
	byIface map[string][]*registration
	byID    map[string]*registration
	order   []*registration
	log     *logger.Logger
}

// New creates an empty registry. A nil logger disables logging.
func New(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}
	return &Registry{
		byIface: make(map[string][]*registration),
		byID:    make(map[string]*registration),
		log:     log.WithComponent("memregistry"),
	}
}

// Register binds a named factory to an interface name and returns the
// registration ID for later Deregister. The same provider name may not be
// registered twice for one interface.
func (r *Registry) Register(iface, name string, factory locator.Factory) (string, error) {
	if factory == nil {
		return "", errors.InvalidInput("factory", "factory must not be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reg := range r.byIface[iface] {
		if reg.name == name {
			return "", errors.AlreadyExists("provider registration", name)
		}
	}

	reg := &registration{
		id:    uuid.NewString(),
		iface: iface,
		name:  name,
		make:  factory,
	}
	r.byIface[iface] = append(r.byIface[iface], reg)
	r.byID[reg.id] = reg
	r.order = append(r.order, reg)

	r.log.Debug("provider registered", logger.Fields(
		logger.FieldInterface, iface,
		logger.FieldProvider, name,
	))
	return reg.id, nil
}

// Deregister removes a registration by ID. Unknown IDs are a NOT_FOUND error.
func (r *Registry) Deregister(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byID[id]
	if !ok {
		return errors.NotFound("provider registration", id)
	}
	delete(r.byID, id)

	entries := r.byIface[reg.iface]
	for i, e := range entries {
		if e.id == id {
			r.byIface[reg.iface] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	for i, e := range r.order {
		if e.id == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if len(r.byIface[reg.iface]) == 0 {
		delete(r.byIface, reg.iface)
	}

	r.log.Debug("provider deregistered", logger.Fields(
		logger.FieldInterface, reg.iface,
		logger.FieldProvider, reg.name,
	))
	return nil
}

// Locate returns the factory registered under the provider name, searching
// across all interfaces. With multiple registrations under the same name
// the earliest one wins.
func (r *Registry) Locate(name string) (locator.Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, reg := range r.order {
		if reg.name == name {
			return reg.make, true
		}
	}
	return nil, false
}

// LocateAll returns every factory registered under the provider name, in
// registration order.
func (r *Registry) LocateAll(name string) []locator.Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factories := []locator.Factory{}
	for _, reg := range r.order {
		if reg.name == name {
			factories = append(factories, reg.make)
		}
	}
	return factories
}

// GetService builds and returns an instance from the first registration for
// the interface name. A factory failure is a miss; the error is logged, not
// surfaced, because registry reads fail closed.
func (r *Registry) GetService(iface string) (any, bool) {
	r.mu.RLock()
	regs := r.byIface[iface]
	r.mu.RUnlock()

	if len(regs) == 0 {
		return nil, false
	}
	instance, err := regs[0].make()
	if err != nil {
		r.log.Warn("provider factory failed", logger.Fields(
			logger.FieldInterface, iface,
			logger.FieldProvider, regs[0].name,
			logger.FieldError, err.Error(),
		))
		return nil, false
	}
	return instance, true
}

// GetServiceFactory returns the factory from the first registration for the
// interface name.
func (r *Registry) GetServiceFactory(iface string) (locator.Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := r.byIface[iface]
	if len(regs) == 0 {
		return nil, false
	}
	return regs[0].make, true
}

// GetServices builds an instance from every registration for the interface
// name, in registration order. Failing factories contribute nothing.
func (r *Registry) GetServices(iface string) []any {
	r.mu.RLock()
	regs := append([]*registration{}, r.byIface[iface]...)
	r.mu.RUnlock()

	services := []any{}
	for _, reg := range regs {
		instance, err := reg.make()
		if err != nil {
			r.log.Warn("provider factory failed", logger.Fields(
				logger.FieldInterface, iface,
				logger.FieldProvider, reg.name,
				logger.FieldError, err.Error(),
			))
			continue
		}
		services = append(services, instance)
	}
	return services
}

// GetServiceFactories returns every factory registered for the interface
// name, in registration order.
func (r *Registry) GetServiceFactories(iface string) []locator.Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factories := []locator.Factory{}
	for _, reg := range r.byIface[iface] {
		factories = append(factories, reg.make)
	}
	return factories
}

// Interfaces returns the sorted interface names with at least one
// registration.
func (r *Registry) Interfaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byIface))
	for iface := range r.byIface {
		names = append(names, iface)
	}
	sort.Strings(names)
	return names
}

var _ locator.Registry = (*Registry)(nil)
