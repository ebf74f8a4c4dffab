package host

import (
	"time"

	"github.com/kbukum/servicekit/config"
	"github.com/kbukum/servicekit/locator"
	"github.com/kbukum/servicekit/logger"
)

// Option configures the Host during creation.
type Option func(*hostOptions)

type hostOptions struct {
	config          *config.Config
	loaderOptions   config.LoaderOptions
	logger          *logger.Logger
	openRegistry    func() (locator.RegistrySource, error)
	gracefulTimeout *time.Duration
}

func resolveOptions(opts []Option) *hostOptions {
	o := &hostOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithConfig supplies an already-loaded configuration, skipping file and
// environment resolution. The config must have defaults applied.
func WithConfig(cfg *config.Config) Option {
	return func(o *hostOptions) { o.config = cfg }
}

// WithLoaderOptions controls where configuration is loaded from.
func WithLoaderOptions(lo config.LoaderOptions) Option {
	return func(o *hostOptions) { o.loaderOptions = lo }
}

// WithLogger sets a custom logger. Without it, the logger is initialized
// from the config's logging section and installed globally.
func WithLogger(l *logger.Logger) Option {
	return func(o *hostOptions) { o.logger = l }
}

// WithRegistry supplies the open function for the external provider
// registry. Without it the host runs manifest-only.
func WithRegistry(open func() (locator.RegistrySource, error)) Option {
	return func(o *hostOptions) { o.openRegistry = open }
}

// WithGracefulTimeout sets the maximum duration for graceful shutdown.
func WithGracefulTimeout(d time.Duration) Option {
	return func(o *hostOptions) { o.gracefulTimeout = &d }
}
