package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	embedded := EggshotConfig{}
	if err := yaml.Unmarshal(defaultEggshotYAML, &embedded); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if embedded != DefaultEggshotConfig() {
		t.Errorf("embedded defaults drifted from DefaultEggshotConfig:\n%+v\n%+v", embedded, DefaultEggshotConfig())
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded defaults invalid: %v", err)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "physics:\n  gravity: 9.8\ntargets:\n  min_count: 4\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEggshot(path)
	if err != nil {
		t.Fatalf("LoadEggshot: %v", err)
	}
	if cfg.Physics.Gravity != 9.8 {
		t.Errorf("gravity = %v, expected 9.8", cfg.Physics.Gravity)
	}
	if cfg.Targets.MinCount != 4 {
		t.Errorf("min_count = %v, expected 4", cfg.Targets.MinCount)
	}
	if cfg.Player.MaxPower != 10 {
		t.Errorf("unset fields should keep defaults, max_power = %v", cfg.Player.MaxPower)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadEggshot(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	garbage := filepath.Join(dir, "garbage.yaml")
	if err := os.WriteFile(garbage, []byte("physics: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEggshot(garbage); err == nil {
		t.Error("unparseable custom file should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  min_angle: 170\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadEggshot(invalid)
	if err == nil || !strings.Contains(err.Error(), "min_angle") {
		t.Errorf("invalid custom file error = %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := LoadEggshot("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultEggshotConfig() {
		t.Error("expected embedded defaults")
	}

	writeConfig := func(dir, body string) {
		t.Helper()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	writeConfig(filepath.Join(work, "configs"), "physics:\n  gravity: 2.0\n")
	cfg, _ = LoadEggshot("")
	if cfg.Physics.Gravity != 2.0 {
		t.Errorf("local config not used, gravity = %v", cfg.Physics.Gravity)
	}

	writeConfig(filepath.Join(home, ".eggshot", "configs"), "physics:\n  gravity: 3.0\n")
	cfg, _ = LoadEggshot("")
	if cfg.Physics.Gravity != 3.0 {
		t.Errorf("user config should win over local, gravity = %v", cfg.Physics.Gravity)
	}

	// A broken user file is reported, not skipped.
	writeConfig(filepath.Join(home, ".eggshot", "configs"), "physics: {")
	cfg, err = LoadEggshot("")
	if err == nil || !strings.Contains(err.Error(), filepath.Join(".eggshot", "configs", ConfigFile)) {
		t.Errorf("broken user config error = %v", err)
	}
	if cfg != DefaultEggshotConfig() {
		t.Error("a failed load should hand back the defaults")
	}

	// So is one that parses but does not validate.
	writeConfig(filepath.Join(home, ".eggshot", "configs"), "enemies:\n  spawn_every: 0\n")
	if _, err := LoadEggshot(""); err == nil || !strings.Contains(err.Error(), "spawn_every") {
		t.Errorf("invalid user config error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EggshotConfig)
		want   string
	}{
		{"defaults", func(*EggshotConfig) {}, ""},
		{"inverted angles", func(c *EggshotConfig) { c.Player.MinAngle = 160; c.Player.MaxAngle = 20 }, "min_angle"},
		{"zero power", func(c *EggshotConfig) { c.Player.MaxPower = 0 }, "max_power"},
		{"negative radius", func(c *EggshotConfig) { c.Targets.Radius = -1 }, "targets.radius"},
		{"no weights", func(c *EggshotConfig) { c.AI.Weights = Weights{} }, "weights"},
		{"inverted duration", func(c *EggshotConfig) { c.AI.StateDuration = Range{Min: 6, Max: 2} }, "state_duration"},
		{"default angle outside", func(c *EggshotConfig) { c.Player.DefaultAngle = 5 }, "default_angle"},
		{"unknown progression", func(c *EggshotConfig) { c.Difficulty.Progression.Type = "lunar" }, "lunar"},
		{"zero spawn interval", func(c *EggshotConfig) { c.Enemies.SpawnEvery = 0 }, "spawn_every"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultEggshotConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.want)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "Normal", " HARD ", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) = %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyEggshotPreset(t *testing.T) {
	cfg := DefaultEggshotConfig()
	ApplyEggshotPreset(&cfg, "")
	if cfg != DefaultEggshotConfig() {
		t.Error("empty preset should not change the config")
	}

	ApplyEggshotPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Enemies.BaseSpeed <= DefaultEggshotConfig().Enemies.BaseSpeed {
		t.Error("hard should speed enemies up")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	ApplyEggshotPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed should disable progression")
	}

	easy := DefaultEggshotConfig()
	ApplyEggshotPreset(&easy, DifficultyEasy)
	if easy.Targets.GoldenDuration <= DefaultEggshotConfig().Targets.GoldenDuration {
		t.Error("easy should lengthen the golden window")
	}
}
