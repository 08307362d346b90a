package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/traffic.yaml"

// Load loads the traffic configuration.
// Search order: customPath -> ~/.arcade/configs/traffic.yaml -> ./configs/traffic.yaml -> embedded default.
// Fields missing from a file keep their default values. The result is validated.
func Load(customPath string) (TrafficConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{LocalPath}
	if userPath := userConfigPath("traffic.yaml"); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}

	// Search-path files are optional; unreadable or malformed ones are skipped.
	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	cfg, err := Parse(defaultTrafficYAML)
	if err != nil {
		return DefaultTrafficConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML on top of the hardcoded defaults.
func Parse(data []byte) (TrafficConfig, error) {
	cfg := DefaultTrafficConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse yaml: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TrafficConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
	}
	return data, nil
}

func loadFile(path string) (TrafficConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultTrafficConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
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
	return filepath.Join(home, ".arcade", "configs", filename)
}
