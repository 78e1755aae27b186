// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default config file name.
const DefaultConfigFile = "reqlens.yaml"

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Server    ServerConfig              `yaml:"server,omitempty"`
	Providers map[string]ProviderConfig `yaml:"providers,omitempty"`
}

// ServerConfig holds HTTP server settings. Timeouts are whole seconds;
// yaml.v3 has no native duration parsing.
type ServerConfig struct {
	Addr                string `yaml:"addr,omitempty"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds,omitempty"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds,omitempty"`
}

// ReadTimeout returns the read timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// ProviderConfig holds per-provider overrides. APIKey set here takes
// precedence over the provider's environment variable.
type ProviderConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
	Model  string `yaml:"model,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 120,
		},
	}
}

// Load loads configuration from the given file path. A missing file is not
// an error; defaults apply and credentials come from the environment.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = Default().Server.Addr
	}

	return cfg, nil
}

// Credential resolves the API key for a provider: config file entry first,
// then the provider's named environment variable. Looked up fresh on every
// call so a rotated key does not require a restart.
func (c *Config) Credential(provider string, envKey string) string {
	if p, ok := c.Providers[provider]; ok && p.APIKey != "" {
		return p.APIKey
	}
	return os.Getenv(envKey)
}

// Model returns the configured model override for a provider, or "" when
// the provider's default should be used.
func (c *Config) Model(provider string) string {
	if p, ok := c.Providers[provider]; ok {
		return p.Model
	}
	return ""
}
