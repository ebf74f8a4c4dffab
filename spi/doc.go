// Package spi defines the contracts between a provider-hosting runtime and
// its extensions. Nothing here has behavior: a runtime implements the event
// types and fires them while assembling providers; extensions observe them
// to inspect, replace, or veto provider definitions.
//
// The package also carries immutable qualifier literals (Named, Default,
// Any) that extensions and runtimes exchange through the configurator
// contracts.
package spi
