package spi

import "fmt"

// Qualifier distinguishes providers that satisfy the same interface.
// Implementations are immutable values safe to compare and share.
type Qualifier interface {
	QualifierName() string
}

// Named is the string-valued qualifier literal. The zero value is the
// empty name, which DefaultNamed exposes as a shared instance.
type Named struct {
	value string
}

// DefaultNamed is the Named literal with an empty name.
var DefaultNamed = Named{}

// NamedOf creates a Named literal holding the given name.
func NamedOf(name string) Named {
	return Named{value: name}
}

// Value returns the held name.
func (n Named) Value() string { return n.value }

// QualifierName identifies the qualifier kind.
func (n Named) QualifierName() string { return "named" }

// String returns a readable form of the literal.
func (n Named) String() string {
	return fmt.Sprintf("named(%q)", n.value)
}

// Default is the qualifier carried by providers that declare no qualifier
// of their own.
type Default struct{}

// QualifierName identifies the qualifier kind.
func (Default) QualifierName() string { return "default" }

// Any is the qualifier carried by every provider.
type Any struct{}

// QualifierName identifies the qualifier kind.
func (Any) QualifierName() string { return "any" }
