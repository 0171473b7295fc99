// stg is a vertical shoot-'em-up that runs in the terminal.
//
// Usage:
//
//	stg play [game]          - Play (default: stg)
//	stg sim                  - Run sessions headless and print their digests
//	stg controls             - Show key bindings
//	stg list                 - List available games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - easy, normal or hard
//	--log-file <path>    - Write logs to a file while playing
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stg/internal/config"
	"github.com/vovakirdan/tui-stg/internal/games/stg"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stg",
	Short: "Vertical STG - a shoot-'em-up in your terminal",
	Long: `Vertical STG is a terminal shoot-'em-up. Dodge bullets, shoot bells
to pick a power-up, and survive until the boss arrives.

Available commands:
  play      - Play the game
  sim       - Run sessions without a terminal
  controls  - Show key bindings
  list      - Show all available games

Examples:
  stg play
  stg play --difficulty hard --seed 42
  stg sim --frames 3600 --runs 8 --script weave
  stg controls`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", stg.FPS, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (play discards logs when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(controlsCmd)
	rootCmd.AddCommand(listCmd)
}

// newLogger builds the process logger. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "stg",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)
	return logger, closeFn, nil
}

// loadConfig loads the game config and applies the difficulty preset.
// A config file given explicitly must parse.
func loadConfig() (config.STGConfig, error) {
	if flagDifficulty != "" && config.ParseDifficulty(flagDifficulty) == "" {
		return config.STGConfig{}, fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}
	cfg, err := config.LoadSTG(flagConfig)
	if err != nil {
		return config.STGConfig{}, err
	}
	config.ApplySTGPreset(&cfg, config.ParseDifficulty(flagDifficulty))
	return cfg, nil
}

// exitErr prints an error the way every command reports failures and exits.
func exitErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
