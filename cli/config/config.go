// Package config handles CLI configuration loading and management.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"
)

// Built-in defaults applied to fields the file leaves empty.
const (
	DefaultProvider = "openai"
	DefaultModel    = "dall-e-3"
	DefaultSize     = "square"
	DefaultQuality  = "standard"
	DefaultStyle    = "Natural"
	DefaultOutput   = "."
)

// Config represents the CLI configuration.
type Config struct {
	Provider  string   `yaml:"provider"`
	Model     string   `yaml:"model"`
	BaseURL   string   `yaml:"base_url,omitempty"`
	APIKeyRef string   `yaml:"api_key_ref,omitempty"`
	Defaults  Defaults `yaml:"defaults"`

	// FetchInterval spaces out image downloads in a batch, e.g. "500ms".
	FetchInterval time.Duration `yaml:"fetch_interval,omitempty"`
}

// Defaults holds the generation options used when flags are omitted.
type Defaults struct {
	Size    string `yaml:"size"`
	Quality string `yaml:"quality"`
	Style   string `yaml:"style"`
	Output  string `yaml:"output"`
}

// New returns a config populated with the built-in defaults.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// homeDir returns the user's home directory, or "" when unknown.
func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("USERPROFILE")
	}
	return os.Getenv("HOME")
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.easel/config.yaml
// - Windows: %USERPROFILE%\.easel\config.yaml
func DefaultConfigPath() string {
	home := homeDir()
	if home == "" {
		return "config.yaml"
	}
	return filepath.Join(home, ".easel", "config.yaml")
}

// LoadConfig loads configuration from the specified path.
// If the file doesn't exist, returns the defaults without error.
// Returns an error only if the file exists but cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// KeyName returns the keystore entry holding the provider's API key.
func (c *Config) KeyName() string {
	if c.APIKeyRef != "" {
		return c.APIKeyRef
	}
	return c.Provider
}

func (c *Config) applyDefaults() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Defaults.Size == "" {
		c.Defaults.Size = DefaultSize
	}
	if c.Defaults.Quality == "" {
		c.Defaults.Quality = DefaultQuality
	}
	if c.Defaults.Style == "" {
		c.Defaults.Style = DefaultStyle
	}
	if c.Defaults.Output == "" {
		c.Defaults.Output = DefaultOutput
	}
}
