// Package config handles loading, parsing, and validating application configuration.
// It defines the structure for configuration settings, provides default values,
// loads settings from files (e.g., YAML), and applies overrides from environment variables.
// file: internal/config/config.go.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/d4ckard/shuttle/internal/logging"
)

// ServerConfig contains settings specific to the name validation API server.
type ServerConfig struct {
	// Name is the human-readable name for the server, displayed in logs.
	Name string `yaml:"name"`
	// Port is the network port the HTTP server listens on.
	Port int `yaml:"port"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is the minimum log level: debug, info, warn, or error.
	Level string `yaml:"level"`
}

// Config is the root configuration structure for the application.
//
// Note that neither the reserved-word list nor the moderation sensitivity
// is configurable; both are fixed process-lifetime policy.
type Config struct {
	// Server holds general server settings (name, port).
	Server ServerConfig `yaml:"server"`
	// Log holds logging settings.
	Log LogConfig `yaml:"log"`
}

// DefaultConfig returns a configuration populated with default values,
// with any environment overrides already applied.
func DefaultConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Name: "shuttle-names", // Default server name.
			Port: 8080,            // Default HTTP port.
		},
		Log: LogConfig{
			Level: "info",
		},
	}
	applyEnvironmentOverrides(cfg, logging.GetLogger("config_default"))
	return cfg
}

// LoadFromFile loads configuration from the specified YAML file path.
// It starts with default values, merges the values from the YAML file,
// and finally applies any environment variable overrides.
// Supports '~' expansion in the file path.
func LoadFromFile(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	// Expand ~ character in path to user's home directory.
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get home directory to expand path")
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Read the configuration file.
	// #nosec G304 -- Path comes from command-line flag or default, considered trusted input.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	// Start from defaults so omitted keys keep their default values.
	cfg := &Config{
		Server: ServerConfig{
			Name: "shuttle-names",
			Port: 8080,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file: %s", path)
	}

	applyEnvironmentOverrides(cfg, logger)

	logger.Debug("Configuration loaded.",
		"path", path,
		"serverName", cfg.Server.Name,
		"port", cfg.Server.Port,
		"logLevel", cfg.Log.Level)

	return cfg, nil
}

// applyEnvironmentOverrides applies SHUTTLE_* environment variables on top
// of the current configuration values.
func applyEnvironmentOverrides(cfg *Config, logger logging.Logger) {
	if name := os.Getenv("SHUTTLE_SERVER_NAME"); name != "" {
		cfg.Server.Name = name
	}

	if portStr := os.Getenv("SHUTTLE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			logger.Warn("Ignoring invalid SHUTTLE_SERVER_PORT value.", "value", portStr)
		} else {
			cfg.Server.Port = port
		}
	}

	if level := os.Getenv("SHUTTLE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}
