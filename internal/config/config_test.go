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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pensign.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Expected default level info, got %q", cfg.Logging.Level)
		}
		if !cfg.Signing.Append {
			t.Error("Expected append signing by default")
		}
	})

	t.Run("ValidFile", func(t *testing.T) {
		path := writeConfig(t, `
logging:
  level: debug
keys:
  public_key_file: /keys/public-key.pem
signing:
  append: false
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Expected level debug, got %q", cfg.Logging.Level)
		}
		if cfg.Keys.PublicKeyFile != "/keys/public-key.pem" {
			t.Errorf("Unexpected public key file %q", cfg.Keys.PublicKeyFile)
		}
		if cfg.Signing.Append {
			t.Error("Expected append disabled")
		}
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: warn\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Logging.Level != "warn" {
			t.Errorf("Expected level warn, got %q", cfg.Logging.Level)
		}
		if cfg.Keys.PublicKeyFile != "public-key.pem" {
			t.Errorf("Expected default public key file, got %q", cfg.Keys.PublicKeyFile)
		}
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		path := writeConfig(t, "logging:\n  level: verbose\n")
		if _, err := Load(path); err == nil {
			t.Error("Expected error for unknown logging level")
		}
	})

	t.Run("EmptyPublicKeyFile", func(t *testing.T) {
		path := writeConfig(t, "keys:\n  public_key_file: \"\"\n")
		if _, err := Load(path); err == nil {
			t.Error("Expected error for empty public key file")
		}
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeConfig(t, "logging: [not a mapping")
		if _, err := Load(path); err == nil {
			t.Error("Expected error for malformed YAML")
		}
	})
}
