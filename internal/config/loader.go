package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSTG loads the shooter configuration.
// Search order: customPath -> ~/.stg/configs/stg.yaml -> ./configs/stg.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides
// the keys it sets.
func LoadSTG(customPath string) (STGConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return STGConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSTG(data)
		if err != nil {
			return STGConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stg.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSTG(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/stg.yaml"); err == nil {
		if cfg, err := parseSTG(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSTG(defaultSTGYAML)
	if err != nil {
		return DefaultSTGConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSTG decodes YAML on top of the hardcoded defaults and validates the result.
func parseSTG(data []byte) (STGConfig, error) {
	cfg := DefaultSTGConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return STGConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return STGConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stg", "configs", filename)
}
