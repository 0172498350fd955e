package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func lookupMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}
	if cfg.World.Width != 300 || cfg.World.Height != 800 {
		t.Errorf("Expected 300x800 world, got %gx%g", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Gesture.MinConfidence != 0.3 {
		t.Errorf("Expected min confidence 0.3, got %g", cfg.Gesture.MinConfidence)
	}
}

func TestLoadTOMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "balance.toml", `
seed = 42

[gameplay]
fill_at_most = 2
first_spawn_time = 3

[audio]
master_volume = 0.25

[gesture]
enabled = true
addr = "127.0.0.1:9000"
`)

	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Gameplay.FillAtMost != 2 {
		t.Errorf("Expected fill_at_most 2, got %d", cfg.Gameplay.FillAtMost)
	}
	if cfg.Gameplay.FirstSpawnTime != 3 {
		t.Errorf("Expected first_spawn_time 3, got %d", cfg.Gameplay.FirstSpawnTime)
	}
	if cfg.Audio.MasterVolume != 0.25 {
		t.Errorf("Expected master volume 0.25, got %g", cfg.Audio.MasterVolume)
	}
	if !cfg.Gesture.Enabled || cfg.Gesture.Addr != "127.0.0.1:9000" {
		t.Errorf("Expected gesture bridge on 127.0.0.1:9000, got %v %q", cfg.Gesture.Enabled, cfg.Gesture.Addr)
	}
	// Untouched sections keep defaults
	if cfg.Gameplay.BlockSpawnRate != 3 {
		t.Errorf("Expected default block spawn rate 3, got %d", cfg.Gameplay.BlockSpawnRate)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "balance.toml", "[gameplay]\nfill_at_mots = 2\n")

	_, err := Load(path, "")
	if err == nil {
		t.Fatal("Expected unknown key error")
	}
	if !strings.Contains(err.Error(), "fill_at_mots") {
		t.Errorf("Expected error to name the key, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "balance.toml", "[gameplay]\nfill_at_most = 3\n")

	_, err := Load(path, "")
	if err == nil || !strings.Contains(err.Error(), "fill_at_most") {
		t.Errorf("Expected fill_at_most validation error, got %v", err)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), ""); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoadMissingEnvFileIgnored(t *testing.T) {
	if _, err := Load("", filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("Expected missing env file to be ignored, got %v", err)
	}
}

func TestEnvFileFeedsOverrides(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "BALANCE_SCORES_PATH="+filepath.Join(dir, "s.msgpack")+"\n")
	t.Setenv("BALANCE_SCORES_PATH", "")
	os.Unsetenv("BALANCE_SCORES_PATH")

	cfg, err := Load("", envFile)
	if err != nil {
		t.Fatalf("Expected load to succeed, got %v", err)
	}
	if cfg.Scores.Path != filepath.Join(dir, "s.msgpack") {
		t.Errorf("Expected scores path from env file, got %q", cfg.Scores.Path)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	cfg := Default()
	cfg.Gameplay.FillAtMost = 2

	err := cfg.ApplyEnv(lookupMap(map[string]string{
		"BALANCE_FILL_AT_MOST":           "1",
		"BALANCE_MASTER_VOLUME":          "40",
		"BALANCE_GESTURE_MIN_CONFIDENCE": "0.5",
		"BALANCE_SEED":                   "99",
		"BALANCE_AUDIO_ENABLED":          "false",
	}))
	if err != nil {
		t.Fatalf("Expected env overlay to succeed, got %v", err)
	}
	if cfg.Gameplay.FillAtMost != 1 {
		t.Errorf("Expected env to win with fill_at_most 1, got %d", cfg.Gameplay.FillAtMost)
	}
	if cfg.Audio.MasterVolume != 0.4 {
		t.Errorf("Expected master volume 0.4, got %g", cfg.Audio.MasterVolume)
	}
	if cfg.Gesture.MinConfidence != 0.5 {
		t.Errorf("Expected min confidence 0.5, got %g", cfg.Gesture.MinConfidence)
	}
	if cfg.Seed != 99 {
		t.Errorf("Expected seed 99, got %d", cfg.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled by env")
	}
}

func TestEnvParseError(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(lookupMap(map[string]string{"BALANCE_SEED": "abc"}))
	if err == nil || !strings.Contains(err.Error(), "BALANCE_SEED") {
		t.Errorf("Expected parse error naming BALANCE_SEED, got %v", err)
	}
}

func TestTuningCarriesGameplay(t *testing.T) {
	cfg := Default()
	cfg.Gameplay.FillAtMost = 2
	cfg.Gameplay.BlockDamage = 25
	cfg.World.Width = 400

	tn := cfg.Tuning()
	if tn.Blocks.FillAtMost != 2 {
		t.Errorf("Expected block fill_at_most 2, got %d", tn.Blocks.FillAtMost)
	}
	if tn.Blocks.Effects.BlockDamage != 25 || tn.Healers.Effects.BlockDamage != 25 {
		t.Error("Expected block damage propagated to both managers")
	}
	if tn.Width != 400 {
		t.Errorf("Expected width 400, got %g", tn.Width)
	}
	if tn.Seek.ArrivalRadius != 100 {
		t.Errorf("Expected arrival radius of one lane (100), got %g", tn.Seek.ArrivalRadius)
	}
	if tn.ScoreInterval != 240 {
		t.Errorf("Expected score interval 240, got %d", tn.ScoreInterval)
	}
}

func TestValidateRejectsGameplayRanges(t *testing.T) {
	cases := []struct {
		key   string
		apply func(*Config)
	}{
		{"speed_ramp", func(c *Config) { c.Gameplay.SpeedRamp = 0.5 }},
		{"speed_ramp", func(c *Config) { c.Gameplay.SpeedRamp = 0 }},
		{"initial_speed", func(c *Config) { c.Gameplay.InitialSpeed = c.Gameplay.MaxSpeed + 1 }},
		{"initial_speed", func(c *Config) { c.Gameplay.InitialSpeed = c.Gameplay.MinSpeed - 1 }},
		{"block_damage", func(c *Config) { c.Gameplay.BlockDamage = -10 }},
		{"heal_amount", func(c *Config) { c.Gameplay.HealAmount = -1 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.apply(cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.key) {
			t.Errorf("Expected %s validation error, got %v", tc.key, err)
		}
	}

	cfg := Default()
	cfg.Gameplay.SpeedRamp = 1
	cfg.Gameplay.BlockDamage = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected flat ramp and zero damage to be valid, got %v", err)
	}
}

func TestLoadRejectsShrinkingSpeedRamp(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "balance.toml", "[gameplay]\nspeed_ramp = 0.5\ninitial_speed = 20\n")

	_, err := Load(path, "")
	if err == nil || !strings.Contains(err.Error(), "speed_ramp") {
		t.Errorf("Expected speed_ramp rejection on load, got %v", err)
	}
}
