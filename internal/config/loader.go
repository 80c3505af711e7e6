package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalPath is the project-relative config location.
const LocalPath = "configs/t2048.yaml"

// Source describes where a configuration was loaded from.
type Source string

const SourceEmbedded Source = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
//
// Files are applied on top of Default, so a partial file only overrides the
// keys it names. An explicit customPath that cannot be read or parsed is an
// error; unreadable search-path files are skipped.
func Load(customPath string) (Config, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), "", err
		}
		return cfg, Source(customPath), validated(cfg, customPath)
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), LocalPath} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			continue
		}
		return cfg, Source(path), validated(cfg, path)
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile reads and parses one YAML file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config file %s not found: %w", path, err)
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes data on top of the defaults.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func validated(cfg Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
