package spi

// FactoryConfigurator edits the qualifiers of a provider factory under
// construction. Methods chain; edits take effect when the firing runtime
// finishes dispatching the event.
type FactoryConfigurator interface {
	// Add attaches a qualifier.
	Add(q Qualifier) FactoryConfigurator

	// Remove detaches every qualifier the predicate matches.
	Remove(match func(Qualifier) bool) FactoryConfigurator

	// RemoveAll detaches every qualifier. Equivalent to Remove with an
	// always-true predicate.
	RemoveAll() FactoryConfigurator
}

// AttributeConfigurator edits the qualifiers of a single provider
// attribute.
type AttributeConfigurator interface {
	// Attribute returns the attribute being configured.
	Attribute() Attribute

	// Add attaches a qualifier.
	Add(q Qualifier) AttributeConfigurator

	// Remove detaches every qualifier the predicate matches.
	Remove(match func(Qualifier) bool) AttributeConfigurator

	// RemoveAll detaches every qualifier. Equivalent to Remove with an
	// always-true predicate.
	RemoveAll() AttributeConfigurator
}
