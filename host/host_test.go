package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kbukum/servicekit/config"
	"github.com/kbukum/servicekit/locator"
	"github.com/kbukum/servicekit/locator/memregistry"
	"github.com/kbukum/servicekit/logger"
	"github.com/kbukum/servicekit/observability"
)

func testConfig() *config.Config {
	cfg := &config.Config{Name: "widget-host"}
	cfg.ApplyDefaults()
	return cfg
}

func newTestHost(t *testing.T, opts ...Option) *Host {
	t.Helper()
	opts = append([]Option{
		WithConfig(testConfig()),
		WithLogger(logger.Nop()),
	}, opts...)
	h, err := New("widget-host", opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return h
}

func TestNew_WithConfig(t *testing.T) {
	h := newTestHost(t)

	if h.Name != "widget-host" {
		t.Errorf("expected name widget-host, got %s", h.Name)
	}
	if h.Locator == nil {
		t.Fatal("expected a locator")
	}
	if h.Handle.Attached() {
		t.Error("expected detached handle before Start")
	}
}

func TestHost_StartAttachesRegistry(t *testing.T) {
	reg := memregistry.New(nil)
	if _, err := reg.Register("codec.Encoder", "json", func() (any, error) {
		return "json-encoder", nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	h := newTestHost(t, WithRegistry(func() (locator.RegistrySource, error) {
		return locator.StaticRegistrySource(reg), nil
	}))

	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	if !h.Handle.Attached() {
		t.Error("expected attached handle after Start")
	}

	svc, err := h.Locator.Service("codec.Encoder", locator.Source{}, locator.Source{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc != "json-encoder" {
		t.Errorf("expected registry-backed service, got %v", svc)
	}

	if err := h.Stop(); err != nil {
		t.Fatalf("unexpected stop error: %v", err)
	}
	if h.Handle.Attached() {
		t.Error("expected detached handle after Stop")
	}
}

func TestHost_StartContinuesOnAttachFailure(t *testing.T) {
	h := newTestHost(t, WithRegistry(func() (locator.RegistrySource, error) {
		return nil, fmt.Errorf("registry down")
	}))

	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("expected start to continue despite attach failure, got %v", err)
	}
	if h.Handle.Attached() {
		t.Error("expected handle to stay detached")
	}
}

func TestHost_HookOrder(t *testing.T) {
	h := newTestHost(t)

	var order []string
	h.OnStart(func(ctx context.Context) error {
		order = append(order, "start")
		return nil
	})
	h.OnReady(func(ctx context.Context) error {
		order = append(order, "ready")
		return nil
	})
	h.OnStop(func(ctx context.Context) error {
		order = append(order, "stop")
		return nil
	})

	if err := h.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Stop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"start", "ready", "stop"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestHost_StartHookError(t *testing.T) {
	h := newTestHost(t)
	h.OnStart(func(ctx context.Context) error {
		return fmt.Errorf("boom")
	})

	if err := h.Start(context.Background()); err == nil {
		t.Fatal("expected start hook error to fail Start")
	}
}

func TestHost_RunTask(t *testing.T) {
	h := newTestHost(t, WithGracefulTimeout(time.Second))

	ran := false
	err := h.RunTask(context.Background(), func(ctx context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Error("expected task to run")
	}
}

func TestHost_RunTaskReturnsTaskError(t *testing.T) {
	h := newTestHost(t)

	err := h.RunTask(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("task failed")
	})
	if err == nil || err.Error() != "task failed" {
		t.Errorf("expected task error, got %v", err)
	}
}

func TestHost_ManifestDirsWired(t *testing.T) {
	dir := t.TempDir()
	manifestDir := filepath.Join(dir, "META-INF", "services")
	if err := os.MkdirAll(manifestDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(manifestDir, "codec.Encoder"), []byte("json\n"), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cfg := testConfig()
	cfg.Locator.ManifestDirs = []string{dir}
	h := newTestHost(t, WithConfig(cfg))

	if err := h.Register("json", func() (any, error) {
		return "json-encoder", nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	names := h.ServiceNames("codec.Encoder")
	if len(names) != 1 || names[0] != "json" {
		t.Fatalf("expected manifest dir to be discovered, got %v", names)
	}

	svc, err := h.Service("codec.Encoder")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc != "json-encoder" {
		t.Errorf("expected json-encoder, got %v", svc)
	}
}

func TestHost_PropertyLookup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "providers.properties")
	if err := os.WriteFile(path, []byte("# overrides\ncodec.Encoder=json\n"), 0o600); err != nil {
		t.Fatalf("write properties: %v", err)
	}

	cfg := testConfig()
	cfg.Locator.PropertiesPath = path
	h := newTestHost(t, WithConfig(cfg))

	value, ok, err := h.Property("codec.Encoder")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || value != "json" {
		t.Errorf("expected json, got %q (ok=%v)", value, ok)
	}

	if _, ok, err := h.Property("codec.Decoder"); err != nil || ok {
		t.Errorf("expected clean miss for unknown key, got ok=%v err=%v", ok, err)
	}
}

func TestHost_Property_Unconfigured(t *testing.T) {
	h := newTestHost(t)

	value, ok, err := h.Property("codec.Encoder")
	if err != nil || ok || value != "" {
		t.Errorf("expected clean miss without a properties file, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestHost_Health(t *testing.T) {
	h := newTestHost(t)

	health := h.Health()
	if health.Status != observability.HealthStatusDegraded {
		t.Errorf("expected degraded without registry, got %s", health.Status)
	}

	reg := memregistry.New(nil)
	if err := h.Handle.Attach(func() (locator.RegistrySource, error) {
		return locator.StaticRegistrySource(reg), nil
	}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	health = h.Health()
	if health.Status != observability.HealthStatusUp {
		t.Errorf("expected up with registry, got %s", health.Status)
	}
}
