package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	userDir   = ".adventure"
	fileName  = "config.yaml"
	localPath = "configs/adventure.yaml"
)

// Load reads adventure settings.
// Search order: customPath -> ~/.adventure/config.yaml ->
// ./configs/adventure.yaml -> embedded default -> hardcoded default.
// Fields missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are skipped.
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data, customPath)
		if err != nil {
			return Settings{}, err
		}
		return cfg, cfg.Validate()
	}

	if p := userConfigPath(); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := parse(data, p); err == nil {
				return cfg, cfg.Validate()
			}
		}
	}

	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data, localPath); err == nil {
			return cfg, cfg.Validate()
		}
	}

	if cfg, err := parse(defaultSettingsYAML, "embedded"); err == nil {
		return cfg, cfg.Validate()
	}
	return DefaultSettings(), nil
}

// parse decodes YAML over the hardcoded defaults.
func parse(data []byte, source string) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// userConfigPath returns the per-user settings file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDir, fileName)
}
