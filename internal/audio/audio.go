// Package audio plays the looping background track.
package audio

import (
	"os"
	"path/filepath"
)

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player plays one looping track at a time.
type Player interface {
	// PlayLoop starts looping the track at path, replacing any current one.
	// A missing file is not an error; nothing plays.
	PlayLoop(path string) error
	// Stop silences playback. Safe to call when nothing plays.
	Stop()
}

// Nop is a Player that never makes a sound. Used when audio is disabled.
type Nop struct{}

// PlayLoop does nothing.
func (Nop) PlayLoop(string) error { return nil }

// Stop does nothing.
func (Nop) Stop() {}

// ResolveTrack finds a track file.
// Search order: absolute path -> ./assets/<track> -> ~/.stg/assets/<track> -> ./<track>
// Returns "" when the track is not found anywhere.
func ResolveTrack(track string) string {
	if track == "" {
		return ""
	}
	if filepath.IsAbs(track) {
		if fileExists(track) {
			return track
		}
		return ""
	}

	candidates := []string{filepath.Join("assets", track)}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".stg", "assets", track))
	}
	candidates = append(candidates, track)

	for _, c := range candidates {
		if fileExists(c) {
			return c
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
