package locator

import (
	"github.com/kbukum/servicekit/logger"
)

// Handle is the connection to an external provider registry. It has exactly
// two states: unavailable and attached. Every read on an unavailable handle
// misses cleanly; nothing on this path ever returns an error.
//
// Attach and Detach are expected to be called once each by a controlling
// goroutine during host startup and shutdown. They are not synchronized
// against concurrent lookups.
type Handle struct {
	source RegistrySource
	failed bool
	log    *logger.Logger
}

// NewHandle creates a detached handle. A nil logger disables logging.
func NewHandle(log *logger.Logger) *Handle {
	if log == nil {
		log = logger.Nop()
	}
	return &Handle{log: log.WithComponent("registry-handle")}
}

// Attach opens the registry connection via open. An error, or a nil source,
// leaves the handle unavailable for the rest of the process lifetime:
// later Attach calls are no-ops. The error is returned for visibility but
// lookups still fail closed.
func (h *Handle) Attach(open func() (RegistrySource, error)) error {
	if h.source != nil || h.failed {
		return nil
	}
	src, err := open()
	if err != nil || src == nil {
		h.failed = true
		if err != nil {
			h.log.Warn("registry attach failed", logger.ErrorFields("attach", err))
		}
		return err
	}
	h.source = src
	h.log.Debug("registry attached")
	return nil
}

// Detach closes the registry connection and returns to unavailable.
func (h *Handle) Detach() {
	if h.source != nil {
		h.source = nil
		h.log.Debug("registry detached")
	}
}

// Attached reports whether the handle holds a registry connection.
func (h *Handle) Attached() bool {
	return h != nil && h.source != nil
}

// registry returns the current registry, or nil when the handle is
// detached, was never attached, or the backing service is absent.
func (h *Handle) registry() Registry {
	if h == nil || h.source == nil {
		return nil
	}
	return h.source()
}

// Locate returns the registry factory for the provider name.
func (h *Handle) Locate(name string) (Factory, bool) {
	r := h.registry()
	if r == nil {
		return nil, false
	}
	return r.Locate(name)
}

// LocateAll returns every registry factory for the provider name.
func (h *Handle) LocateAll(name string) []Factory {
	r := h.registry()
	if r == nil {
		return []Factory{}
	}
	return r.LocateAll(name)
}

// GetService returns a single registered instance for the interface name.
func (h *Handle) GetService(iface string) (any, bool) {
	r := h.registry()
	if r == nil {
		return nil, false
	}
	return r.GetService(iface)
}

// GetServiceFactory returns a single registered factory for the interface name.
func (h *Handle) GetServiceFactory(iface string) (Factory, bool) {
	r := h.registry()
	if r == nil {
		return nil, false
	}
	return r.GetServiceFactory(iface)
}

// GetServices returns all registered instances for the interface name.
func (h *Handle) GetServices(iface string) []any {
	r := h.registry()
	if r == nil {
		return []any{}
	}
	return r.GetServices(iface)
}

// GetServiceFactories returns all registered factories for the interface name.
func (h *Handle) GetServiceFactories(iface string) []Factory {
	r := h.registry()
	if r == nil {
		return []Factory{}
	}
	return r.GetServiceFactories(iface)
}
