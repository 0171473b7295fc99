// Package stg implements a vertical shoot-'em-up: a fixed-timestep session
// that advances the player, enemies, bullets, bells and a boss, resolves
// their collisions and drives score, lives and power-ups.
package stg

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/registry"
)

// GameID is the registry identifier of the shooter.
const GameID = "stg"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events; nil discards them
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficulty(preset)
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

// OptionsFromConfig converts the session section of a config into Options.
func OptionsFromConfig(cfg config.STGConfig) Options {
	return Options{
		Lives:           cfg.Session.Lives,
		DropRate:        cfg.Session.DropRate,
		DropStep:        cfg.Session.DropStep,
		BossAfterFrames: cfg.Session.BossAfterSeconds * FPS,
	}
}

// Game adapts a Session to the platform's registry.Game contract.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
}

// New creates a new shooter game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Vertical STG"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSTG(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "error", err)
		}
		cfg = config.DefaultSTGConfig()
	}
	if difficultyPreset != "" {
		config.ApplySTGPreset(&cfg, difficultyPreset)
	}

	g.session = NewSession(OptionsFromConfig(cfg), NewRand(runtime.Seed), logger)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	ended := g.session.Step(in)
	return core.StepResult{State: g.State(), Finished: ended}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: st.Terminal(),
		Phase:    strings.ToLower(st.String()),
	}
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
