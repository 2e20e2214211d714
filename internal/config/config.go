// Package config loads the uikit-mcp configuration file.
//
// Configuration is YAML. ${VAR_NAME} references are expanded from the
// environment before parsing. Every field has a default, so a missing file
// is not an error for callers that use Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that overrides the config path.
const EnvConfigPath = "UIKIT_MCP_CONFIG"

// Config represents the complete uikit-mcp configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Install InstallConfig `yaml:"install"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the identity the MCP server advertises.
type ServerConfig struct {
	Name         string `yaml:"name"`
	Version      string `yaml:"version"`
	Instructions string `yaml:"instructions"`
}

// CatalogConfig selects the catalog source.
type CatalogConfig struct {
	// Path is a YAML catalog file. Empty uses the embedded catalog.
	Path string `yaml:"path"`
}

// InstallConfig configures the install-component collaborator.
type InstallConfig struct {
	// SourceDir holds one directory per component. Empty disables installs.
	SourceDir   string `yaml:"source_dir"`
	Root        string `yaml:"root"`
	Overwrite   bool   `yaml:"overwrite"`
	Concurrency int    `yaml:"concurrency"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:         "uikit-mcp",
			Version:      "dev",
			Instructions: "Look up UI components: list categories, search by keyword, fetch props and usage, install sources.",
		},
		Install: InstallConfig{
			Root:        ".",
			Concurrency: 4,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a configuration file from path and layers it over Default.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal([]byte(expandEnvVars(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} with the variable's value, or with the
// empty string when it is unset.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if c.Server.Name == "" {
		return errors.New("server.name is required")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}

	if c.Install.Concurrency < 0 {
		return fmt.Errorf("install.concurrency must not be negative, got %d", c.Install.Concurrency)
	}

	return nil
}

// ResolvePath picks the config file to load. Priority: explicit flag value,
// then $UIKIT_MCP_CONFIG, then $XDG_CONFIG_HOME/uikit-mcp/config.yaml (or
// ~/.config/uikit-mcp/config.yaml) if that file exists. It returns "" when
// no file applies.
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}

		configDir = filepath.Join(homeDir, ".config")
	}

	candidate := filepath.Join(configDir, "uikit-mcp", "config.yaml")
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}

	return candidate
}
