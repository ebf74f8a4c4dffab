// Package config loads host configuration for servicekit: a config.yml
// read through viper, an optional .env file, and environment variable
// overrides with a per-service prefix. Loaded configuration is defaulted
// and validated before use.
package config
