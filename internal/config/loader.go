package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads the scene configuration.
// Search order: customPath -> ~/.depthscroll/scene.{yaml,toml} -> ./configs/scene.yaml -> embedded default
func Load(customPath string) (SceneConfig, error) {
	// Try custom path first; a broken explicit file is an error, not a fallback
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	for _, name := range []string{"scene.yaml", "scene.toml"} {
		if userCfgPath := userConfigPath(name); userCfgPath != "" {
			if cfg, err := LoadFile(userCfgPath); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", "scene.yaml")); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	var cfg SceneConfig
	if err := yaml.Unmarshal(defaultSceneYAML, &cfg); err != nil {
		return DefaultSceneConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile decodes a single config file. Files ending in .toml are decoded
// as TOML, everything else as YAML. Fields missing from the file keep their
// default values.
func LoadFile(path string) (SceneConfig, error) {
	cfg := DefaultSceneConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".depthscroll", filename)
}
