package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-stg/internal/audio"
	"github.com/vovakirdan/tui-stg/internal/core"
	"github.com/vovakirdan/tui-stg/internal/registry"
	"github.com/vovakirdan/tui-stg/internal/storage"
)

// statusRows is the space kept below the playfield for the status line.
const statusRows = 1

// Options are the platform settings that are not part of the game config.
type Options struct {
	HoldFrames int          // frames a held key stays active after its last repeat
	Audio      audio.Player // nil plays nothing
	Track      string       // resolved music file, "" for silence
	Logger     *log.Logger  // nil discards
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	store   *storage.Store
	config  core.RuntimeConfig
	opts    Options
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	clock   *frameClock
	held    *heldKeys
	pending *core.InputFrame // one-shot actions waiting for the next step

	gameState core.GameState
	runFrames int  // steps since the current run started
	recorded  bool // whether the current run is in the run table
	best      int
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	pending := core.NewInputFrame()
	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-statusRows)),
		store:   store,
		config:  cfg,
		opts:    opts,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		clock:   newFrameClock(cfg.TickRate),
		held:    newHeldKeys(opts.HoldFrames),
		pending: &pending,
	}
	m.best = m.bestScore()
	return m
}

// Init initializes the model, starts the game and the music.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)

	if m.opts.Track != "" {
		if err := m.opts.Audio.PlayLoop(m.opts.Track); err != nil {
			m.logger.Warn("music disabled", "error", err)
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action := m.keys.Action(msg)
	switch {
	case action == core.ActionQuit:
		m.quit()
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case action.IsHeld():
		m.held.Press(action)
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-statusRows))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs every fixed step that is due and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for range m.clock.Advance(now) {
		m.step()
	}
	return m, tickCmd(m.config.TickRate)
}

// step advances the game once with the current input.
func (m *Model) step() {
	frame := m.pending.Clone()
	m.pending.Clear()
	m.held.Apply(&frame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		// Retry started a new run
		m.runFrames = 0
		m.recorded = false
		m.held.Release()
		m.logger.Info("run started", "game", m.game.ID())
	} else if !m.gameState.GameOver {
		m.runFrames++
	}

	if result.Finished {
		m.recordRun(outcomeOf(m.gameState))
	}
}

func outcomeOf(st core.GameState) string {
	if st.Phase == "clear" {
		return storage.OutcomeClear
	}
	return storage.OutcomeGameOver
}

// recordRun stores the current run once.
func (m *Model) recordRun(outcome string) {
	if m.recorded {
		return
	}
	m.recorded = true

	if m.gameState.Score > m.best {
		m.best = m.gameState.Score
	}
	if m.store == nil {
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Seed:    m.config.Seed,
		Score:   m.gameState.Score,
		Outcome: outcome,
		Frames:  m.runFrames,
	})
	if err != nil {
		m.logger.Warn("run not recorded", "error", err)
		return
	}
	m.logger.Info("run recorded", "id", run.ID, "score", run.Score, "outcome", outcome, "frames", run.Frames)
}

// quit records an unfinished run that scored and stops the music.
func (m *Model) quit() {
	m.quitting = true
	if !m.gameState.GameOver && m.gameState.Score > 0 {
		m.recordRun(storage.OutcomeQuit)
	}
	m.opts.Audio.Stop()
}

func (m Model) bestScore() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.BestScore(m.game.ID())
	if err != nil {
		m.logger.Warn("best score unavailable", "error", err)
		return 0
	}
	return best
}

// saveScreenshot saves the current screen to a text file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".stg", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// statusLine is the text shown below the playfield.
func (m Model) statusLine() string {
	return fmt.Sprintf("BEST %d  %s", m.best, m.help.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(m.statusLine())
}

// Best returns the best score seen by this model.
func (m Model) Best() int {
	return m.best
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
