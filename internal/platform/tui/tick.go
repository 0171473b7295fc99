// Package tui runs a registered game in the terminal with Bubble Tea.
// It owns the frame clock, key handling, audio and the run table; games
// only see one InputFrame per fixed step.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxCatchUp bounds the simulation steps run for a single late tick.
const maxCatchUp = 5

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(stepDuration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func stepDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 30
	}
	return time.Second / time.Duration(tickRate)
}

// frameClock turns wall-clock ticks into a whole number of fixed steps.
type frameClock struct {
	step time.Duration
	acc  time.Duration
	last time.Time
}

func newFrameClock(tickRate int) *frameClock {
	return &frameClock{step: stepDuration(tickRate)}
}

// Advance returns how many steps are due at now. The first call yields one
// step. When more than maxCatchUp steps are owed the backlog is dropped.
func (c *frameClock) Advance(now time.Time) int {
	if c.last.IsZero() {
		c.last = now.Add(-c.step)
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}

	c.acc += elapsed
	n := int(c.acc / c.step)
	if n > maxCatchUp {
		c.acc = 0
		return maxCatchUp
	}
	c.acc -= time.Duration(n) * c.step
	return n
}
