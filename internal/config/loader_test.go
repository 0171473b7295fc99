package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSTGEmbeddedDefault(t *testing.T) {
	// Run from a temp dir so no ./configs/stg.yaml is picked up
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSTG("")
	if err != nil {
		t.Fatalf("LoadSTG() failed: %v", err)
	}
	if cfg != DefaultSTGConfig() {
		t.Errorf("LoadSTG() = %+v, expected embedded default %+v", cfg, DefaultSTGConfig())
	}
}

func TestLoadSTGCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("session:\n  lives: 7\naudio:\n  enabled: false\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSTG(path)
	if err != nil {
		t.Fatalf("LoadSTG() failed: %v", err)
	}
	if cfg.Session.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Session.Lives)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled should be overridden to false")
	}
	// Unset keys keep their defaults
	if cfg.Session.DropRate != 0.5 {
		t.Errorf("DropRate = %v, expected default 0.5", cfg.Session.DropRate)
	}
	if cfg.Input.HoldFrames != 6 {
		t.Errorf("HoldFrames = %d, expected default 6", cfg.Input.HoldFrames)
	}
}

func TestLoadSTGCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSTG(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadSTG() with missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("session:\n  drop_rate: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSTG(bad); err == nil {
		t.Error("LoadSTG() with out-of-range drop_rate should fail")
	}
}

func TestLoadSTGLocalDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "stg.yaml"), []byte("session:\n  boss_after_seconds: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSTG("")
	if err != nil {
		t.Fatalf("LoadSTG() failed: %v", err)
	}
	if cfg.Session.BossAfterSeconds != 5 {
		t.Errorf("BossAfterSeconds = %d, expected 5", cfg.Session.BossAfterSeconds)
	}
}

func TestApplySTGPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		lives    int
		dropRate float64
	}{
		{DifficultyEasy, 5, 0.7},
		{DifficultyNormal, 3, 0.5},
		{DifficultyHard, 2, 0.3},
		{"", 3, 0.5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSTGConfig()
			ApplySTGPreset(&cfg, tc.preset)
			if cfg.Session.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Session.Lives, tc.lives)
			}
			if cfg.Session.DropRate != tc.dropRate {
				t.Errorf("DropRate = %v, expected %v", cfg.Session.DropRate, tc.dropRate)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	if ParseDifficulty("hard") != DifficultyHard {
		t.Error(`ParseDifficulty("hard") should be DifficultyHard`)
	}
	if ParseDifficulty("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
