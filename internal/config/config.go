package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"schema-typegen/internal/common"
	"schema-typegen/internal/registry"
)

// Defaults applied to unset fields.
const (
	DefaultRegistryURL = "https://raw.githubusercontent.com/KhronosGroup/OpenGL-Registry/main/xml/gl.xml"
	DefaultTimeout     = 30 * time.Second
	DefaultRetries     = 3
	DefaultLogLevel    = "info"
	DefaultOutputDir   = "./generated"
	DefaultPackage     = "schema"
)

// Config is the top-level configuration file.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Log      LogConfig      `yaml:"log"`
	Output   OutputConfig   `yaml:"output"`
}

// RegistryConfig locates the symbol registry document.
type RegistryConfig struct {
	// URL is fetched over HTTP unless File is set.
	URL string `yaml:"url,omitempty"`
	// File is a local copy of the registry document.
	File   string `yaml:"file,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration `yaml:"timeout,omitempty"`
	// Retries is the number of retries after a failed fetch. Unset means DefaultRetries.
	Retries *int `yaml:"retries,omitempty"`
}

// RetryCount returns the configured retries or the default.
func (r RegistryConfig) RetryCount() int {
	return common.IntOr(r.Retries, DefaultRetries)
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// OutputConfig configures generated code.
type OutputConfig struct {
	Dir     string `yaml:"dir,omitempty"`
	Package string `yaml:"package,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Registry.Timeout < 0 {
		return errors.New("registry.timeout must not be negative")
	}

	if c.Registry.RetryCount() < 0 {
		return errors.New("registry.retries must not be negative")
	}

	return nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Registry.URL == "" {
		cfg.Registry.URL = DefaultRegistryURL
	}

	if cfg.Registry.Prefix == "" {
		cfg.Registry.Prefix = registry.DefaultPrefix
	}

	if cfg.Registry.Timeout == 0 {
		cfg.Registry.Timeout = DefaultTimeout
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}

	if cfg.Output.Dir == "" {
		cfg.Output.Dir = DefaultOutputDir
	}

	if cfg.Output.Package == "" {
		cfg.Output.Package = DefaultPackage
	}
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
