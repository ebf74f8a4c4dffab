package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kbukum/servicekit/errors"
	"github.com/kbukum/servicekit/locator"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_Success(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yml", `
name: widget-host
environment: production
logging:
  level: debug
  format: json
locator:
  manifest_dirs:
    - ./providers
tracing:
  enabled: true
  endpoint: collector:4318
`)

	cfg, err := Load("widget-host", LoaderOptions{ConfigFile: configFile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "widget-host" {
		t.Errorf("expected widget-host, got %s", cfg.Name)
	}
	if cfg.Environment != "production" {
		t.Errorf("expected production, got %s", cfg.Environment)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %s", cfg.Logging.Level)
	}
	if len(cfg.Locator.ManifestDirs) != 1 || cfg.Locator.ManifestDirs[0] != "./providers" {
		t.Errorf("unexpected manifest dirs: %v", cfg.Locator.ManifestDirs)
	}
	if cfg.Tracing.Endpoint != "collector:4318" {
		t.Errorf("unexpected tracing endpoint: %s", cfg.Tracing.Endpoint)
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yml", "name: widget-host\n")

	cfg, err := Load("widget-host", LoaderOptions{ConfigFile: configFile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Environment != "development" {
		t.Errorf("expected development default, got %s", cfg.Environment)
	}
	if cfg.Locator.ManifestPrefix != locator.DefaultManifestPrefix {
		t.Errorf("expected default manifest prefix, got %s", cfg.Locator.ManifestPrefix)
	}
	if cfg.Tracing.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %f", cfg.Tracing.SampleRate)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info default, got %s", cfg.Logging.Level)
	}
}

func TestLoad_NameDefaultsToService(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yml", "environment: staging\n")

	cfg, err := Load("widget-host", LoaderOptions{ConfigFile: configFile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "widget-host" {
		t.Errorf("expected service name fallback, got %s", cfg.Name)
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yml", "name: widget-host\nenvironment: qa\n")

	_, err := Load("widget-host", LoaderOptions{ConfigFile: configFile})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestLoad_InvalidSampleRate(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "config.yml", `
name: widget-host
tracing:
  sample_rate: 2.5
`)

	_, err := Load("widget-host", LoaderOptions{ConfigFile: configFile})
	if err == nil {
		t.Fatal("expected validation error for sample_rate > 1")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load("widget-host", LoaderOptions{ConfigFile: "/does/not/exist/config.yml"})
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoad_NoConfigFileUsesDefaults(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	cfg, err := Load("widget-host", LoaderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "widget-host" || cfg.Environment != "development" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}
