package locator

// Registry is the external provider registry capability. A host environment
// supplies an implementation (memregistry ships the in-process one); the
// locator only reads from it.
type Registry interface {
	// Locate returns the factory registered for the provider name.
	Locate(name string) (Factory, bool)

	// LocateAll returns every factory registered for the provider name.
	LocateAll(name string) []Factory

	// GetService returns a single registered instance for the interface name.
	GetService(iface string) (any, bool)

	// GetServiceFactory returns a single registered factory for the interface name.
	GetServiceFactory(iface string) (Factory, bool)

	// GetServices returns all registered instances for the interface name.
	GetServices(iface string) []any

	// GetServiceFactories returns all registered factories for the interface name.
	GetServiceFactories(iface string) []Factory
}

// RegistrySource yields the current registry instance. It returns nil when
// the backing service is absent, which readers treat as an empty registry.
type RegistrySource func() Registry

// StaticRegistrySource wraps a fixed registry in a RegistrySource.
func StaticRegistrySource(r Registry) RegistrySource {
	return func() Registry { return r }
}
