package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		t.Fatalf("Parse(default yaml): %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("size: 6\nmode: ai\nai_delay: 250ms\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Size != 6 {
		t.Errorf("Size = %d, want 6", cfg.Size)
	}
	if cfg.Mode != ModeAI {
		t.Errorf("Mode = %q, want ai", cfg.Mode)
	}
	if cfg.AIDelay != 250*time.Millisecond {
		t.Errorf("AIDelay = %s, want 250ms", cfg.AIDelay)
	}
	if cfg.Spawn4Prob != 0.1 {
		t.Errorf("Spawn4Prob = %g, want default 0.1", cfg.Spawn4Prob)
	}
	if cfg.Weights != DefaultWeights() {
		t.Errorf("Weights = %+v, want defaults", cfg.Weights)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("size: [not, a, number]")); err == nil {
		t.Error("Parse should fail on a type mismatch")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"size 2", func(c *Config) { c.Size = 2 }, true},
		{"size 1", func(c *Config) { c.Size = 1 }, false},
		{"size 0", func(c *Config) { c.Size = 0 }, false},
		{"negative size", func(c *Config) { c.Size = -4 }, false},
		{"heuristic mode", func(c *Config) { c.Mode = ModeHeuristic }, true},
		{"unknown mode", func(c *Config) { c.Mode = "robot" }, false},
		{"negative delay", func(c *Config) { c.AIDelay = -time.Second }, false},
		{"zero delay", func(c *Config) { c.AIDelay = 0 }, true},
		{"spawn prob above one", func(c *Config) { c.Spawn4Prob = 1.5 }, false},
		{"spawn prob negative", func(c *Config) { c.Spawn4Prob = -0.1 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestModePolicyID(t *testing.T) {
	tests := []struct {
		mode Mode
		id   string
		ai   bool
	}{
		{ModeHuman, "", false},
		{ModeAI, "greedy", true},
		{ModeHeuristic, "heuristic", true},
	}
	for _, tt := range tests {
		if got := tt.mode.PolicyID(); got != tt.id {
			t.Errorf("%s.PolicyID() = %q, want %q", tt.mode, got, tt.id)
		}
		if got := tt.mode.IsAI(); got != tt.ai {
			t.Errorf("%s.IsAI() = %v, want %v", tt.mode, got, tt.ai)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("size: 5\nmode: heuristic\nweights:\n  empty: 99\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Size != 5 || cfg.Mode != ModeHeuristic {
		t.Errorf("Load = %+v, want size 5 heuristic", cfg)
	}
	if cfg.Weights.Empty != 99 {
		t.Errorf("Weights.Empty = %g, want 99", cfg.Weights.Empty)
	}
	if cfg.Weights.Corner != DefaultWeights().Corner {
		t.Errorf("Weights.Corner = %g, want default", cfg.Weights.Corner)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".t2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("size: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Size != 7 {
		t.Errorf("Size = %d, want 7 from user config", cfg.Size)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}
