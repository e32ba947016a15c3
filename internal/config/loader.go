package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "eggshot.yaml"

// LoadEggshot loads the game configuration.
// Search order: customPath -> ~/.eggshot/configs/eggshot.yaml -> ./configs/eggshot.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
// Missing search path files are skipped; one that exists but does not load is an error.
func LoadEggshot(customPath string) (EggshotConfig, error) {
	if customPath != "" {
		return loadFile(customPath)
	}

	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		return cfg, err
	}

	embedded := DefaultEggshotConfig()
	if err := yaml.Unmarshal(defaultEggshotYAML, &embedded); err != nil {
		return DefaultEggshotConfig(), fmt.Errorf("config: parse embedded default: %w", err)
	}
	return embedded, nil
}

// loadFile decodes path over the defaults. On error the defaults are returned.
func loadFile(path string) (EggshotConfig, error) {
	cfg := DefaultEggshotConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultEggshotConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultEggshotConfig(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eggshot", "configs", filename)
}

// ParsePreset validates a difficulty preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// ApplyEggshotPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyEggshotPreset(cfg *EggshotConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Enemies.BaseSpeed = 0.8
		cfg.Targets.GoldenDuration = 7
	case DifficultyHard:
		cfg.Enemies.BaseSpeed = 1.2
		cfg.Enemies.SpeedStep = 0.15
		cfg.Targets.GoldenDuration = 3
	}
}
