package host

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/kbukum/servicekit/config"
	"github.com/kbukum/servicekit/locator"
	"github.com/kbukum/servicekit/logger"
	"github.com/kbukum/servicekit/observability"
	"github.com/kbukum/servicekit/version"
)

// Host wires the pieces of a provider-hosting service together: loaded
// configuration, a logger, a registry handle, and a locator built on top of
// both. It owns the lifecycle: Start attaches the registry and brings up
// tracing, Stop tears both down.
type Host struct {
	Name    string
	Version string
	Config  *config.Config
	Logger  *logger.Logger
	Handle  *locator.Handle
	Locator *locator.Locator

	// Source is the host's own lookup context: one manifest root per
	// configured manifest directory, plus the factory set hosts register
	// into. It is the primary Source for the convenience lookups below.
	Source locator.Source

	tracer          *sdktrace.TracerProvider
	openRegistry    func() (locator.RegistrySource, error)
	gracefulTimeout time.Duration

	onStart []Hook
	onReady []Hook
	onStop  []Hook
}

// New creates a host for the named service. Configuration is loaded unless
// an explicit config is supplied, the logger is initialized from it, and a
// locator with a detached registry handle is built.
func New(serviceName string, opts ...Option) (*Host, error) {
	o := resolveOptions(opts)

	cfg := o.config
	if cfg == nil {
		loaded, err := config.Load(serviceName, o.loaderOptions)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	log := o.logger
	if log == nil {
		log = logger.New(&cfg.Logging, cfg.Name)
		logger.SetGlobalLogger(log)
	}

	handle := locator.NewHandle(log)

	resources := make([]fs.FS, 0, len(cfg.Locator.ManifestDirs))
	for _, dir := range cfg.Locator.ManifestDirs {
		resources = append(resources, os.DirFS(dir))
	}

	h := &Host{
		Name:    cfg.Name,
		Version: version.Get().Version,
		Config:  cfg,
		Logger:  log,
		Handle:  handle,
		Locator: locator.New(
			locator.WithHandle(handle),
			locator.WithManifestPrefix(cfg.Locator.ManifestPrefix),
			locator.WithLogger(log),
		),
		Source: locator.Source{
			Resources: resources,
			Factories: locator.NewFactories(),
		},
		openRegistry:    o.openRegistry,
		gracefulTimeout: 15 * time.Second,
	}
	if o.gracefulTimeout != nil {
		h.gracefulTimeout = *o.gracefulTimeout
	}
	return h, nil
}

// Register binds a provider factory to a name in the host's factory set.
func (h *Host) Register(name string, factory locator.Factory) error {
	return h.Source.Factories.Register(name, factory)
}

// Service resolves iface against the host's manifest roots, registered
// factories, and registry handle.
func (h *Host) Service(iface string) (any, error) {
	return h.Locator.Service(iface, h.Source, locator.Source{})
}

// Services resolves every discoverable provider for iface.
func (h *Host) Services(iface string) ([]any, error) {
	return h.Locator.Services(iface, h.Source, locator.Source{})
}

// ServiceNames returns the provider names declared for iface across the
// host's manifest roots.
func (h *Host) ServiceNames(iface string) []string {
	return h.Locator.ServiceNames(iface, h.Source, locator.Source{})
}

// Property looks up key in the configured properties file. With no file
// configured, or a configured file that does not exist, every lookup is a
// clean miss.
func (h *Host) Property(key string) (string, bool, error) {
	path := h.Config.Locator.PropertiesPath
	if path == "" {
		return "", false, nil
	}
	return locator.LookupProperty(os.DirFS(filepath.Dir(path)), filepath.Base(path), key)
}

// Start attaches the registry, initializes tracing when enabled, and runs
// OnStart hooks. A registry attach failure is logged and the host continues
// with manifest-only discovery.
func (h *Host) Start(ctx context.Context) error {
	h.Logger.Info("starting host", logger.Fields(
		"name", h.Name,
		"version", h.Version,
	))

	if h.openRegistry != nil {
		if err := h.Handle.Attach(h.openRegistry); err != nil {
			h.Logger.Warn("continuing without registry", logger.ErrorFields("attach", err))
		}
	}

	if h.Config.Tracing.Enabled {
		tp, err := observability.InitTracer(ctx, observability.TracerConfigFrom(h.Config, h.Version))
		if err != nil {
			return fmt.Errorf("initializing tracer: %w", err)
		}
		h.tracer = tp
	}

	if err := runHooks(ctx, h.onStart); err != nil {
		return fmt.Errorf("onStart hook: %w", err)
	}
	if err := runHooks(ctx, h.onReady); err != nil {
		return fmt.Errorf("onReady hook: %w", err)
	}

	h.Logger.Info("host ready")
	return nil
}

// Run starts the host, blocks until an interrupt/term signal or context
// cancellation, then shuts down.
func (h *Host) Run(ctx context.Context) error {
	if err := h.Start(ctx); err != nil {
		return err
	}
	h.WaitForSignal(ctx)
	return h.Stop()
}

// RunTask starts the host, runs a finite task, and shuts down when the task
// completes. Signals cancel the task's context instead of being ignored.
func (h *Host) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := h.Start(ctx); err != nil {
		return err
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			h.Logger.Info("received signal, canceling task", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	taskErr := task(taskCtx)

	if stopErr := h.Stop(); stopErr != nil && taskErr == nil {
		return stopErr
	}
	return taskErr
}

// WaitForSignal blocks until an OS interrupt/term signal or context cancellation.
func (h *Host) WaitForSignal(ctx context.Context) os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		h.Logger.Info("received shutdown signal", logger.Fields("signal", sig.String()))
		return sig
	case <-ctx.Done():
		h.Logger.Info("context canceled, shutting down")
		return nil
	}
}

// Stop runs OnStop hooks, detaches the registry, and flushes the tracer,
// all within the graceful timeout.
func (h *Host) Stop() error {
	h.Logger.Info("shutting down host", logger.Fields("timeout", h.gracefulTimeout.String()))

	ctx, cancel := context.WithTimeout(context.Background(), h.gracefulTimeout)
	defer cancel()

	var stopErr error
	if err := runHooks(ctx, h.onStop); err != nil {
		h.Logger.Error("onStop hook error", logger.ErrorFields("stop", err))
		stopErr = err
	}

	h.Handle.Detach()

	if h.tracer != nil {
		if err := h.tracer.Shutdown(ctx); err != nil {
			h.Logger.Error("tracer shutdown error", logger.ErrorFields("stop", err))
			if stopErr == nil {
				stopErr = err
			}
		}
		h.tracer = nil
	}

	h.Logger.Info("host shutdown complete")
	return stopErr
}

// Health reports the host's health including registry attachment.
func (h *Host) Health() *observability.ServiceHealth {
	sh := observability.NewServiceHealth(h.Name, h.Version)
	sh.AddComponent(observability.RegistryHealth(h.Handle))
	return sh
}
