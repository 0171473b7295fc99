package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-stg/internal/audio"
	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/games/stg"
	"github.com/vovakirdan/tui-stg/internal/platform/tui"
	"github.com/vovakirdan/tui-stg/internal/registry"
	"github.com/vovakirdan/tui-stg/internal/storage"
)

var flagNoAudio bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to the shooter.

Controls:
  Arrows/WASD  - Move
  Z/Space      - Fire
  M            - Use an invincibility charge
  R            - Retry (after game over or clear)
  Q/Ctrl+C     - Quit
Run 'stg controls' for the debug keys.

Difficulty options:
  easy   - 5 lives, bells drop from 70% of kills
  normal - config values
  hard   - 2 lives, bells drop from 30% of kills

Examples:
  stg play
  stg play --difficulty easy
  stg play --seed 42 --log-file stg.log --log-level debug
  stg play --config ./my-stg.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable background music")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := stg.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'stg list' to see available games.")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		exitErr("%v", err)
	}

	// The alt screen owns the terminal, so logs go to a file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	stg.SetConfigPath(flagConfig)
	stg.SetDifficultyPreset(flagDifficulty)
	stg.SetLogger(logger)

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitErr("creating game: %v", err)
	}

	// Runs only live for this process
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: run table unavailable: %v\n", err)
		store = nil
	}

	opts := tui.Options{
		HoldFrames: cfg.Input.HoldFrames,
		Logger:     logger,
	}
	if cfg.Audio.Enabled && !flagNoAudio {
		opts.Audio = audio.NewBeepPlayer(cfg.Audio.Volume, logger)
		opts.Track = audio.ResolveTrack(cfg.Audio.Track)
		if opts.Track == "" {
			logger.Debug("music track not found", "track", cfg.Audio.Track)
		}
	}

	runErr := tui.Run(game, store, runtime, opts)

	if store != nil {
		printRuns(store, game.Title(), gameID)
		store.Close()
	}

	if runErr != nil {
		exitErr("running game: %v", runErr)
	}
}

// printRuns prints the runs finished in this process.
func printRuns(store *storage.Store, title, gameID string) {
	runs, err := store.Runs(gameID, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	stats, err := store.GameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	fmt.Print(tui.RenderRuns("Runs - "+title, runs, stats))
}
