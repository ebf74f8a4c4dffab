package config

import (
	"fmt"

	"github.com/kbukum/servicekit/locator"
	"github.com/kbukum/servicekit/logger"
)

// LocatorConfig configures manifest discovery for a host.
type LocatorConfig struct {
	// ManifestPrefix is the directory inside each manifest root where
	// service manifests live.
	ManifestPrefix string `yaml:"manifest_prefix" mapstructure:"manifest_prefix"`
	// ManifestDirs are filesystem directories used as manifest roots.
	ManifestDirs []string `yaml:"manifest_dirs" mapstructure:"manifest_dirs"`
	// PropertiesPath is an optional properties file for name overrides.
	PropertiesPath string `yaml:"properties_path" mapstructure:"properties_path"`
}

// ApplyDefaults applies default values to locator configuration.
func (c *LocatorConfig) ApplyDefaults() {
	if c.ManifestPrefix == "" {
		c.ManifestPrefix = locator.DefaultManifestPrefix
	}
}

// TracingConfig configures the optional OpenTelemetry tracer.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// ApplyDefaults applies default values to tracing configuration.
func (c *TracingConfig) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
}

// Config is the root configuration for a servicekit host.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string        `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Locator     LocatorConfig `yaml:"locator" mapstructure:"locator"`
	Tracing     TracingConfig `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults applies default values to the whole configuration.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
	c.Locator.ApplyDefaults()
	c.Tracing.ApplyDefaults()
}

// Validate validates the configuration: struct tags first, then the
// section-level checks.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
