// Package config provides YAML-based game configuration loading and
// difficulty presets for the shooter.
package config

import "fmt"

// STGConfig contains all tunable settings for the shooter.
// Entity stats are compiled in; only session, audio and input knobs live here.
type STGConfig struct {
	Session SessionConfig `yaml:"session"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
}

// SessionConfig defines run-level parameters.
type SessionConfig struct {
	Lives            int     `yaml:"lives"`
	DropRate         float64 `yaml:"drop_rate"` // 0.0 - 1.0
	DropStep         float64 `yaml:"drop_step"`
	BossAfterSeconds int     `yaml:"boss_after_seconds"`
}

// AudioConfig defines background music playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Track   string  `yaml:"track"`  // path to an mp3 file
	Volume  float64 `yaml:"volume"` // gain exponent, 0 = unchanged, negative = quieter
}

// InputConfig defines terminal key handling.
type InputConfig struct {
	// HoldFrames is how long a movement or fire key stays active after its
	// last key event. Terminals report repeats, not key-up events.
	HoldFrames int `yaml:"hold_frames"`
}

// Validate reports the first out-of-range value.
func (c STGConfig) Validate() error {
	if c.Session.Lives < 1 {
		return fmt.Errorf("session.lives must be at least 1, got %d", c.Session.Lives)
	}
	if c.Session.DropRate < 0 || c.Session.DropRate > 1 {
		return fmt.Errorf("session.drop_rate must be within [0, 1], got %g", c.Session.DropRate)
	}
	if c.Session.DropStep <= 0 {
		return fmt.Errorf("session.drop_step must be positive, got %g", c.Session.DropStep)
	}
	if c.Session.BossAfterSeconds < 1 {
		return fmt.Errorf("session.boss_after_seconds must be at least 1, got %d", c.Session.BossAfterSeconds)
	}
	if c.Input.HoldFrames < 1 {
		return fmt.Errorf("input.hold_frames must be at least 1, got %d", c.Input.HoldFrames)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty maps a CLI string to a preset. Unknown values yield "".
func ParseDifficulty(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplySTGPreset adjusts the config for a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplySTGPreset(cfg *STGConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.Lives = 5
		cfg.Session.DropRate = 0.7
	case DifficultyHard:
		cfg.Session.Lives = 2
		cfg.Session.DropRate = 0.3
	}
}
