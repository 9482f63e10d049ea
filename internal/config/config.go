// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-pensign.
//
// go-pensign is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package config loads the pensign CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Keys    KeysConfig    `yaml:"keys"`
	Signing SigningConfig `yaml:"signing"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// KeysConfig locates long-lived key material. Only the public key is
// configured; private keys are discovered on removable media per
// invocation and never referenced from configuration.
type KeysConfig struct {
	PublicKeyFile string `yaml:"public_key_file"`
}

// SigningConfig controls signing output behavior.
type SigningConfig struct {
	// Append writes the signature back into the document when true
	// (sign-and-append); otherwise the signature is written to a
	// detached file next to the document.
	Append bool `yaml:"append"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Keys:    KeysConfig{PublicKeyFile: "public-key.pem"},
		Signing: SigningConfig{Append: true},
	}
}

// DefaultPath returns the default config file location,
// $HOME/.pensign.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pensign.yaml"
	}
	return filepath.Join(home, ".pensign.yaml")
}

// Load reads and validates the configuration at path. A missing file
// yields the defaults; a present but invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}

	if c.Keys.PublicKeyFile == "" {
		return fmt.Errorf("keys.public_key_file cannot be empty")
	}

	return nil
}
