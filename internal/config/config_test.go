// internal/config/config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Name != "shuttle-names" {
		t.Errorf("Server.Name = %v, want %v", cfg.Server.Name, "shuttle-names")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %v, want %v", cfg.Server.Port, 8080)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %v, want %v", cfg.Log.Level, "info")
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()

	// Create a valid test config file
	validConfigPath := filepath.Join(tempDir, "config.yaml")
	validConfig := `
server:
  name: "Test Server"
  port: 9090

log:
  level: "debug"
`
	if err := os.WriteFile(validConfigPath, []byte(validConfig), 0600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Test valid config loading
	t.Run("ValidConfig", func(t *testing.T) {
		cfg, err := LoadFromFile(validConfigPath)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}

		// Verify config values
		if cfg.Server.Name != "Test Server" {
			t.Errorf("Server.Name = %v, want %v", cfg.Server.Name, "Test Server")
		}
		if cfg.Server.Port != 9090 {
			t.Errorf("Server.Port = %v, want %v", cfg.Server.Port, 9090)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %v, want %v", cfg.Log.Level, "debug")
		}
	})

	// Omitted keys keep their defaults.
	t.Run("PartialConfig", func(t *testing.T) {
		partialPath := filepath.Join(tempDir, "partial.yaml")
		if err := os.WriteFile(partialPath, []byte("server:\n  port: 7070\n"), 0600); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadFromFile(partialPath)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}
		if cfg.Server.Port != 7070 {
			t.Errorf("Server.Port = %v, want %v", cfg.Server.Port, 7070)
		}
		if cfg.Server.Name != "shuttle-names" {
			t.Errorf("Server.Name = %v, want default %v", cfg.Server.Name, "shuttle-names")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadFromFile(filepath.Join(tempDir, "does-not-exist.yaml")); err == nil {
			t.Error("LoadFromFile() expected error for missing file, got nil")
		}
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		badPath := filepath.Join(tempDir, "bad.yaml")
		if err := os.WriteFile(badPath, []byte("server: [not a map"), 0600); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadFromFile(badPath); err == nil {
			t.Error("LoadFromFile() expected error for malformed YAML, got nil")
		}
	})
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SHUTTLE_SERVER_PORT", "6060")
	t.Setenv("SHUTTLE_LOG_LEVEL", "warn")

	cfg := DefaultConfig()

	if cfg.Server.Port != 6060 {
		t.Errorf("Server.Port = %v, want env override %v", cfg.Server.Port, 6060)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %v, want env override %v", cfg.Log.Level, "warn")
	}
}

func TestEnvironmentOverrideInvalidPort(t *testing.T) {
	t.Setenv("SHUTTLE_SERVER_PORT", "not-a-port")

	cfg := DefaultConfig()

	// Invalid override is ignored; default stays.
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %v, want default %v", cfg.Server.Port, 8080)
	}
}
