package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLayout loads a board layout.
// Search order: customPath -> ~/.ladders/configs/<id>.yaml -> ./configs/<id>.yaml
// -> embedded default -> hardcoded classic.
// Only a bad customPath is an error; other candidates are skipped if unreadable.
func LoadLayout(customPath, layoutID string) (LayoutConfig, error) {
	if customPath != "" {
		return LoadLayoutFile(customPath)
	}

	filename := layoutID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := LoadLayoutFile(userCfgPath); err == nil {
			return withID(cfg, layoutID), nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadLayoutFile(filepath.Join("configs", filename)); err == nil {
		return withID(cfg, layoutID), nil
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(layoutID); data != nil {
		if cfg, err := ParseLayout(data); err == nil {
			return cfg, nil
		}
	}

	if layoutID != LayoutClassic && layoutID != "" {
		return LayoutConfig{}, fmt.Errorf("config: unknown layout %q", layoutID)
	}
	return DefaultLayout(), nil
}

// LoadLayoutFile reads and parses a layout file.
func LoadLayoutFile(path string) (LayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutConfig{}, fmt.Errorf("failed to read layout %s: %w", path, err)
	}
	cfg, err := ParseLayout(data)
	if err != nil {
		return LayoutConfig{}, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	return cfg, nil
}

// ParseLayout decodes layout YAML and applies defaults.
// Pacing keys the file leaves out keep their default values.
// Unknown keys are rejected so typos don't silently drop links.
func ParseLayout(data []byte) (LayoutConfig, error) {
	cfg := LayoutConfig{Pacing: DefaultPacing()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("empty layout")
		}
		return cfg, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// MarshalLayout encodes a layout back to YAML.
func MarshalLayout(cfg LayoutConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func withID(cfg LayoutConfig, id string) LayoutConfig {
	if cfg.ID == "" {
		cfg.ID = id
	}
	if cfg.Name == "" {
		cfg.Name = id
	}
	return cfg
}

// userConfigPath returns the path to a user layout file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ladders", "configs", filename)
}
