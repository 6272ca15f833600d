package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWheel loads the wheel configuration.
// Search order: customPath -> ~/.wheeljam/configs/wheel.yaml -> ./configs/wheel.yaml -> embedded default
func LoadWheel(customPath string) (WheelConfig, error) {
	var cfg WheelConfig

	// An explicit path must load and validate
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Discovered files are skipped when unreadable or invalid
	candidates := []string{userConfigPath("wheel.yaml"), filepath.Join("configs", "wheel.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if c, ok := tryLoad(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultWheelYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultWheelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and validates a config file, reporting false on any failure.
func tryLoad(path string) (WheelConfig, bool) {
	var cfg WheelConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wheeljam", "configs", filename)
}

// Encode renders the config as YAML in the same layout LoadWheel reads.
func Encode(cfg WheelConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
