package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the pong configuration.
// Search order: customPath -> ~/.pong/config.yaml -> ./config.yaml -> embedded default.
// Files overlay the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return embeddedDefault(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return parseFile(data, customPath)
	}

	for _, path := range []string{userConfigPath("config.yaml"), "config.yaml"} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parseFile(data, path)
	}

	return embeddedDefault(), nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := embeddedDefault()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

// embeddedDefault decodes the embedded YAML, falling back to Default.
func embeddedDefault() Config {
	cfg := Default()
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

func parseFile(data []byte, path string) (Config, error) {
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}
