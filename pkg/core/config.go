// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds hostpkg configuration for one invocation.
// It is built once from the config file plus flags and passed explicitly
// into the core; nothing reads it through globals.
type Config struct {
	PackageManager string `yaml:"package_manager"`
	OverridesDir   string `yaml:"overrides_dir"`
	SkipOverrides  bool   `yaml:"skip_overrides"`
	KeepGoing      bool   `yaml:"keep_going"`
	Debug          bool   `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PackageManager: "auto",
		OverridesDir:   "overrides",
	}
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults, not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "hostpkg", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
