package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stg/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Debug      key.Binding
	DropDown   key.Binding
	DropUp     key.Binding
	Boss       key.Binding
	Invincible key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fire, k.Invincible, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Fire, k.Invincible, k.Restart},
		{k.Debug, k.DropDown, k.DropUp, k.Boss},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys("z", " "),
			key.WithHelp("z/space", "fire"),
		),
		Debug: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "hitboxes"),
		),
		DropDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "bell rate -"),
		),
		DropUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "bell rate +"),
		),
		Boss: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "boss"),
		),
		Invincible: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "invincible"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Screenshot has no game action and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Debug):
		return core.ActionToggleDebug
	case key.Matches(msg, k.DropDown):
		return core.ActionDropRateDown
	case key.Matches(msg, k.DropUp):
		return core.ActionDropRateUp
	case key.Matches(msg, k.Boss):
		return core.ActionForceBoss
	case key.Matches(msg, k.Invincible):
		return core.ActionUseInvincible
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// heldKeys emulates key-up events the terminal never sends: a held action
// stays active for a few frames after its last key repeat.
type heldKeys struct {
	frames int
	left   map[core.Action]int
}

func newHeldKeys(frames int) *heldKeys {
	if frames < 1 {
		frames = 1
	}
	return &heldKeys{frames: frames, left: make(map[core.Action]int)}
}

// Press refreshes the hold window of an action.
func (h *heldKeys) Press(a core.Action) {
	h.left[a] = h.frames
}

// Apply sets every action still held on the frame and ages the holds by one frame.
func (h *heldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.left {
		frame.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
}

// Release drops every hold.
func (h *heldKeys) Release() {
	clear(h.left)
}
