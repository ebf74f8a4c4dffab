// Package memregistry is the in-process implementation of the locator's
// external registry capability.
//
// Hosts register named provider factories against interface names at
// runtime and hand the registry to a locator.Handle:
//
//	reg := memregistry.New(nil)
//	id, _ := reg.Register("example.Widget", "mem.Widget", newWidget)
//
//	handle := locator.NewHandle(nil)
//	handle.Attach(func() (locator.RegistrySource, error) {
//	    return locator.StaticRegistrySource(reg), nil
//	})
package memregistry
