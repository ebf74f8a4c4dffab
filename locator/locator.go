package locator

import (
	"io/fs"

	"github.com/kbukum/servicekit/errors"
	"github.com/kbukum/servicekit/logger"
)

// Source pairs an ordered search path of manifest roots with a factory set.
// It is the unit of lookup context a caller supplies per call: resources
// answer "which provider names are declared for this interface", factories
// answer "how do I build the provider behind a name". Either half may be
// nil, in which case the corresponding lookup is skipped. The zero Source
// is absent.
type Source struct {
	Resources []fs.FS
	Factories *Factories
}

// Locator resolves interface names to provider factories and instances.
// Discovery merges two avenues: manifest files found in the supplied
// sources, and an optional external registry reached through a Handle.
// The merged result is a union, deduplicated, first-seen order.
//
// A Locator holds no cache and no per-lookup state; calls are independent.
type Locator struct {
	handle *Handle
	prefix string
	log    *logger.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithHandle supplies the external registry handle. Without one, all
// registry-backed paths behave as if no registry existed.
func WithHandle(h *Handle) Option {
	return func(l *Locator) { l.handle = h }
}

// WithManifestPrefix overrides the manifest directory convention.
func WithManifestPrefix(prefix string) Option {
	return func(l *Locator) { l.prefix = prefix }
}

// WithLogger supplies the logger. Defaults to a nop logger.
func WithLogger(log *logger.Logger) Option {
	return func(l *Locator) { l.log = log }
}

// New creates a Locator.
func New(opts ...Option) *Locator {
	l := &Locator{
		prefix: DefaultManifestPrefix,
		log:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.log = l.log.WithComponent("locator")
	return l
}

// LoadFactory resolves a provider name to a factory. It tries, in order,
// the primary source's factories, the context source's factories, and the
// registry handle. The first hit wins; an all-miss is a NOT_FOUND error.
func (l *Locator) LoadFactory(name string, primary, context Source) (Factory, error) {
	if factory, ok := primary.Factories.Lookup(name); ok {
		return factory, nil
	}
	if factory, ok := context.Factories.Lookup(name); ok {
		return factory, nil
	}
	if factory, ok := l.handle.Locate(name); ok {
		return factory, nil
	}
	return nil, errors.NotFound("provider factory", name)
}

// ServiceName returns the first provider name declared by the first
// non-empty manifest for iface, searching the primary source's roots and
// then the context source's.
func (l *Locator) ServiceName(iface string, primary, context Source) (string, bool) {
	if name, ok := firstManifestName(l.prefix, iface, primary); ok {
		return name, true
	}
	return firstManifestName(l.prefix, iface, context)
}

// ServiceNames returns every provider name declared for iface across every
// manifest in both sources, deduplicated, first-seen order. Never nil.
func (l *Locator) ServiceNames(iface string, primary, context Source) []string {
	names := []string{}
	seen := make(map[string]bool)
	manifestNames(l.prefix, iface, primary, seen, &names)
	manifestNames(l.prefix, iface, context, seen, &names)
	l.log.Debug("manifest discovery", logger.Fields(
		logger.FieldInterface, iface,
		logger.FieldCount, len(names),
	))
	return names
}

// LocateFactory resolves iface to the factory behind its first manifest
// entry. A resolvable name that has no factory on any avenue is a NOT_FOUND
// error; no manifest entry at all is (nil, nil).
func (l *Locator) LocateFactory(iface string, primary, context Source) (Factory, error) {
	name, ok := l.ServiceName(iface, primary, context)
	if !ok {
		return nil, nil
	}
	return l.LoadFactory(name, primary, context)
}

// ServiceFactory resolves iface to a single factory: first the manifest
// avenue, then a registry-registered factory. (nil, nil) on a total miss.
func (l *Locator) ServiceFactory(iface string, primary, context Source) (Factory, error) {
	factory, err := l.LocateFactory(iface, primary, context)
	if err != nil {
		return nil, err
	}
	if factory != nil {
		return factory, nil
	}
	if factory, ok := l.handle.GetServiceFactory(iface); ok {
		return factory, nil
	}
	return nil, nil
}

// Service resolves iface to a single provider instance. A manifest-declared
// factory is invoked and its error, if any, propagates unmodified; with no
// manifest entry the registry supplies a registered instance. A total miss
// is (nil, nil), not an error.
func (l *Locator) Service(iface string, primary, context Source) (any, error) {
	factory, err := l.LocateFactory(iface, primary, context)
	if err != nil {
		return nil, err
	}
	if factory != nil {
		return factory()
	}
	if instance, ok := l.handle.GetService(iface); ok {
		return instance, nil
	}
	return nil, nil
}

// Services resolves iface to every discoverable provider instance:
// manifest-declared factories are resolved and invoked in discovery order,
// then registry-registered instances are appended. Factory resolution and
// invocation errors propagate; the result is never nil.
func (l *Locator) Services(iface string, primary, context Source) ([]any, error) {
	services := []any{}
	for _, name := range l.ServiceNames(iface, primary, context) {
		factory, err := l.LoadFactory(name, primary, context)
		if err != nil {
			return nil, err
		}
		instance, err := factory()
		if err != nil {
			return nil, err
		}
		services = append(services, instance)
	}
	services = append(services, l.handle.GetServices(iface)...)
	return services, nil
}

// ServiceFactories resolves iface to every discoverable factory:
// manifest-declared names resolved in discovery order, then registry
// factories appended. Manifest names are deduplicated; resolution errors
// propagate. The result is never nil.
func (l *Locator) ServiceFactories(iface string, primary, context Source) ([]Factory, error) {
	factories := []Factory{}
	for _, name := range l.ServiceNames(iface, primary, context) {
		factory, err := l.LoadFactory(name, primary, context)
		if err != nil {
			return nil, err
		}
		factories = append(factories, factory)
	}
	factories = append(factories, l.handle.GetServiceFactories(iface)...)
	return factories, nil
}
