package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultTrafficConfig() {
		t.Errorf("embedded YAML differs from DefaultTrafficConfig():\n%+v\n%+v", cfg, DefaultTrafficConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.yaml")
	data := "enemies:\n  speed: 240\n  reward: 25\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Enemies.Speed != 240 || cfg.Enemies.Reward != 25 {
		t.Errorf("overrides not applied: %+v", cfg.Enemies)
	}
	// Untouched fields keep defaults
	if cfg.Enemies.SpawnPeriodMS != 1000 || cfg.World.Width != 600 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("enemies:\n  spawn_period_ms: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "spawn_period_ms") {
		t.Errorf("Load() should reject a zero spawn period, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TrafficConfig)
		field  string
	}{
		{"zero world width", func(c *TrafficConfig) { c.World.Width = 0 }, "world.width"},
		{"negative player speed", func(c *TrafficConfig) { c.Player.Speed = -1 }, "player.speed"},
		{"player wider than world", func(c *TrafficConfig) { c.Player.Width = 700 }, "player.width"},
		{"start offset off screen", func(c *TrafficConfig) { c.Player.StartOffset = 601 }, "player.start_offset"},
		{"negative reward", func(c *TrafficConfig) { c.Enemies.Reward = -10 }, "enemies.reward"},
		{"negative scroll", func(c *TrafficConfig) { c.Road.ScrollRate = -3 }, "road.scroll_rate"},
		{"negative hold", func(c *TrafficConfig) { c.Input.HoldMS = -1 }, "input.hold_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTrafficConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTrafficConfig()
	cfg.Enemies.Reward = 15

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn_period_ms: 1000") {
		t.Errorf("yaml keys should use snake_case tags:\n%s", data)
	}

	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip mismatch: %+v", back)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultTrafficConfig()
	if cfg.Enemies.SpawnPeriod().Milliseconds() != 1000 {
		t.Errorf("SpawnPeriod() = %v", cfg.Enemies.SpawnPeriod())
	}
	if cfg.Input.HoldWindow().Milliseconds() != 180 {
		t.Errorf("HoldWindow() = %v", cfg.Input.HoldWindow())
	}
}
