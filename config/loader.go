package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOptions controls where Load looks for configuration.
type LoaderOptions struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, standard locations
	// are searched.
	EnvFile string
	// EnvPrefix is the prefix for environment variable overrides.
	// Defaults to the upper-cased service name.
	EnvPrefix string
}

// Load resolves and reads configuration for a service: an optional .env
// file, then a config.yml, then environment variable overrides. Defaults
// are applied and the result validated before it is returned.
func Load(serviceName string, opts LoaderOptions) (*Config, error) {
	if envFile := resolveEnvFile(serviceName, opts.EnvFile); envFile != "" {
		// missing .env is fine, a present-but-broken one is not
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = strings.ToUpper(strings.ReplaceAll(serviceName, "-", "_"))
	}
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile := resolveConfigFile(serviceName, opts.ConfigFile); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Name == "" {
		cfg.Name = serviceName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigFile returns the explicit path when given, otherwise the
// first standard location that exists.
func resolveConfigFile(serviceName, explicit string) string {
	if explicit != "" {
		return explicit
	}
	searchPaths := []string{
		fmt.Sprintf("./cmd/%s/config.yml", serviceName),
		"./config/config.yml",
		"./config.yml",
	}
	for _, path := range searchPaths {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// resolveEnvFile returns the explicit path when given, otherwise the first
// standard location that exists.
func resolveEnvFile(serviceName, explicit string) string {
	if explicit != "" {
		return explicit
	}
	candidates := []string{
		fmt.Sprintf(".env.%s", serviceName),
		".env",
	}
	for _, path := range candidates {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
