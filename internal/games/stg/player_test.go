package stg

import (
	"testing"

	"github.com/vovakirdan/tui-stg/internal/core"
)

func TestPlayerHit(t *testing.T) {
	tests := []struct {
		name       string
		lives      int
		invuln     int
		invincible int
		wantLives  int
		wantLost   bool
		wantState  State
	}{
		{"normal hit", 3, 0, 0, 2, true, StatePlaying},
		{"last life", 1, 0, 0, 0, true, StateGameOver},
		{"post-hit invulnerability", 3, 5, 0, 3, false, StatePlaying},
		{"invincible", 1, 0, 10, 1, false, StatePlaying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			p := s.Player()
			p.Lives = tt.lives
			p.Invuln = tt.invuln
			p.InvincibleTimer = tt.invincible

			lost := p.Hit(s)

			if lost != tt.wantLost {
				t.Errorf("Hit() = %v, expected %v", lost, tt.wantLost)
			}
			if p.Lives != tt.wantLives {
				t.Errorf("Lives = %d, expected %d", p.Lives, tt.wantLives)
			}
			if s.State() != tt.wantState {
				t.Errorf("State = %v, expected %v", s.State(), tt.wantState)
			}
			if tt.wantLost && p.Invuln != HitInvulnFrames {
				t.Errorf("Invuln = %d, expected %d", p.Invuln, HitInvulnFrames)
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		dx, dy  float64
	}{
		{"right", []core.Action{core.ActionRight}, PlayerSpeed, 0},
		{"up", []core.Action{core.ActionUp}, 0, -PlayerSpeed},
		{"diagonal", []core.Action{core.ActionLeft, core.ActionDown}, -PlayerSpeed * diagonalScale, PlayerSpeed * diagonalScale},
		{"opposed", []core.Action{core.ActionLeft, core.ActionRight}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			p := s.Player()
			x, y := p.X, p.Y

			p.input = core.NewInputFrame(tt.actions...)
			p.advance(s)

			if !almostEqual(p.X-x, tt.dx) || !almostEqual(p.Y-y, tt.dy) {
				t.Errorf("moved (%v, %v), expected (%v, %v)", p.X-x, p.Y-y, tt.dx, tt.dy)
			}
		})
	}
}

func TestPlayerStaysInArena(t *testing.T) {
	s, _ := newTestSession(t)
	p := s.Player()
	p.X, p.Y = 1, 1

	p.input = core.NewInputFrame(core.ActionLeft, core.ActionUp)
	p.advance(s)

	if p.X != p.R || p.Y != p.R {
		t.Errorf("position = (%v, %v), expected clamped to (%v, %v)", p.X, p.Y, p.R, p.R)
	}
}

func TestPlayerFire(t *testing.T) {
	tests := []struct {
		name   string
		spread bool
		want   int
	}{
		{"single", false, 1},
		{"spread", true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			p := s.Player()
			p.Loadout.Spread = tt.spread

			p.input = core.NewInputFrame(core.ActionFire)
			p.advance(s)

			if len(s.playerBullets) != tt.want {
				t.Errorf("bullets = %d, expected %d", len(s.playerBullets), tt.want)
			}
			if p.ShotCooldown != p.Loadout.ShotInterval {
				t.Errorf("ShotCooldown = %d, expected %d", p.ShotCooldown, p.Loadout.ShotInterval)
			}

			// Held fire during cooldown does not shoot again
			p.advance(s)
			if len(s.playerBullets) != tt.want {
				t.Errorf("bullets after cooldown frame = %d, expected %d", len(s.playerBullets), tt.want)
			}
		})
	}
}

func TestPlayerReflectShots(t *testing.T) {
	s, rng := newTestSession(t)
	p := s.Player()
	p.Loadout.Reflect = true
	rng.floats = []float64{0.1}

	p.input = core.NewInputFrame(core.ActionFire)
	p.advance(s)

	if !s.playerBullets[0].Reflecting() || s.playerBullets[0].Bounces != reflectBounces {
		t.Errorf("Bounces = %d, expected reflecting bullet with %d", s.playerBullets[0].Bounces, reflectBounces)
	}
}

func TestActivateInvincibility(t *testing.T) {
	s, _ := newTestSession(t)
	p := s.Player()

	if p.ActivateInvincibility() {
		t.Error("ActivateInvincibility() without charges = true, expected false")
	}

	p.Loadout.Charges = 2
	if !p.ActivateInvincibility() {
		t.Fatal("ActivateInvincibility() = false, expected true")
	}
	if p.InvincibleTimer != InvincibleFrames || p.Loadout.Charges != 1 {
		t.Errorf("timer=%d charges=%d, expected %d and 1", p.InvincibleTimer, p.Loadout.Charges, InvincibleFrames)
	}

	// A running charge blocks another activation
	if p.ActivateInvincibility() {
		t.Error("ActivateInvincibility() while active = true, expected false")
	}
	if p.Loadout.Charges != 1 {
		t.Errorf("Charges = %d, expected 1", p.Loadout.Charges)
	}
}
