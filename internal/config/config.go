// Package config handles toprofile configuration loading.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the toprofile configuration file.
type Config struct {
	Sieve SieveDefaults `yaml:"sieve"`
	Log   LogConfig     `yaml:"log"`
}

// SieveDefaults are used for any sieve flag not given on the command line.
type SieveDefaults struct {
	Super       bool   `yaml:"super"`
	Happy       bool   `yaml:"happy"`
	Sexy        bool   `yaml:"sexy"`
	Print       bool   `yaml:"print"`
	Count       bool   `yaml:"count"`
	Fingerprint bool   `yaml:"fingerprint"`
	Hash        string `yaml:"hash,omitempty"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn or error.
	Level string `yaml:"level,omitempty"`
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.toprofile/config.yaml
// - Windows: %USERPROFILE%\.toprofile\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".toprofile", "config.yaml")
}

// LoadConfig loads configuration from the specified path.
// If the file doesn't exist, returns an empty config without error.
// Returns an error only if the file exists but cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
