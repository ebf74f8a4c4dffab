package spi

import (
	"github.com/kbukum/servicekit/locator"
)

// Attribute describes one qualified attribute of a provider definition.
type Attribute interface {
	// Name returns the attribute name.
	Name() string
	// Qualifiers returns the qualifiers currently attached to the attribute.
	Qualifiers() []Qualifier
}

// ProviderInfo describes the provider definition a lifecycle event refers to.
type ProviderInfo interface {
	// Interface returns the interface name the provider fulfills.
	Interface() string
	// Name returns the discovered provider name.
	Name() string
	// Attributes returns the provider's qualified attributes.
	Attributes() []Attribute
}

// ProcessFactory is the event a hosting runtime fires for every discovered
// provider before its factory is put to use. Observers may inspect the
// definition, replace the factory wholesale, or veto the provider by
// reporting a definition error.
type ProcessFactory interface {
	// Provider returns the provider definition under construction.
	Provider() ProviderInfo

	// Factory returns the factory the runtime is about to install.
	Factory() locator.Factory

	// SetFactory replaces the factory the runtime will install.
	SetFactory(factory locator.Factory)

	// AddDefinitionError marks the provider definition invalid. The runtime
	// aborts its installation after all observers have run.
	AddDefinitionError(err error)

	// ConfigureFactory returns a configurator for fine-grained edits of the
	// factory's qualifiers. Invoking it replaces any factory set via
	// SetFactory.
	ConfigureFactory() FactoryConfigurator
}
