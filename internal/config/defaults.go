package config

import (
	_ "embed"
)

//go:embed defaults/stg.yaml
var defaultSTGYAML []byte

// DefaultSTGConfig returns the default shooter configuration.
func DefaultSTGConfig() STGConfig {
	return STGConfig{
		Session: SessionConfig{
			Lives:            3,
			DropRate:         0.5,
			DropStep:         0.05,
			BossAfterSeconds: 60,
		},
		Audio: AudioConfig{
			Enabled: true,
			Track:   "stage1.mp3",
			Volume:  0,
		},
		Input: InputConfig{
			HoldFrames: 6,
		},
	}
}
