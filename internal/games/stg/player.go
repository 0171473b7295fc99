package stg

import "github.com/vovakirdan/tui-stg/internal/core"

// Player tuning.
const (
	PlayerRadius       = 6.0
	PlayerSpeed        = 3.0
	PlayerStartLives   = 3
	BaseShotInterval   = 6 // frames between shots
	MinShotInterval    = 2
	MaxScoreMultiplier = 4
	HitInvulnFrames    = FPS     // 1 second after a hit
	InvincibleFrames   = FPS * 5 // 5 seconds per stored charge
	diagonalScale      = 0.7071
	playerShotSpeed    = 6.0
	reflectChance      = 0.25
	reflectBounces     = 2
)

// Loadout is the set of power-ups the player has collected.
type Loadout struct {
	Spread       bool
	ShotInterval int
	ScoreMult    int
	Reflect      bool
	Shield       int // enemy bullets that can still be absorbed
	Charges      int // stored invincibility activations
}

// DefaultLoadout returns the loadout a fresh player starts with.
func DefaultLoadout() Loadout {
	return Loadout{
		ShotInterval: BaseShotInterval,
		ScoreMult:    1,
	}
}

// Player is the ship controlled by the input frame.
type Player struct {
	Body
	Lives           int
	Invuln          int // frames of post-hit invulnerability left
	InvincibleTimer int // frames of full invincibility left
	ShotCooldown    int
	Loadout         Loadout

	// input is the frame sampled for the current tick
	input core.InputFrame
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y float64, lives int) *Player {
	return &Player{
		Body:    newBody(x, y, PlayerRadius),
		Lives:   lives,
		Loadout: DefaultLoadout(),
		input:   core.NewInputFrame(),
	}
}

// Invincible reports whether the player is under an active invincibility charge.
func (p *Player) Invincible() bool {
	return p.InvincibleTimer > 0
}

func (p *Player) advance(s *Session) {
	dx, dy := 0.0, 0.0
	if p.input.Has(core.ActionRight) {
		dx++
	}
	if p.input.Has(core.ActionLeft) {
		dx--
	}
	if p.input.Has(core.ActionDown) {
		dy++
	}
	if p.input.Has(core.ActionUp) {
		dy--
	}
	if dx != 0 && dy != 0 {
		dx *= diagonalScale
		dy *= diagonalScale
	}
	p.X = core.ClampF(p.X+dx*PlayerSpeed, p.R, ArenaW-p.R)
	p.Y = core.ClampF(p.Y+dy*PlayerSpeed, p.R, ArenaH-p.R)

	if p.Invuln > 0 {
		p.Invuln--
	}
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
	}
	if p.ShotCooldown > 0 {
		p.ShotCooldown--
	}

	if p.input.Has(core.ActionFire) && p.ShotCooldown == 0 {
		p.fire(s)
		p.ShotCooldown = p.Loadout.ShotInterval
	}
}

// fireAngles returns the shot headings for the current loadout.
func (p *Player) fireAngles() []float64 {
	if p.Loadout.Spread {
		return []float64{-90, -120, -60}
	}
	return []float64{-90}
}

func (p *Player) fire(s *Session) {
	for _, ang := range p.fireAngles() {
		vx, vy := core.VecFromAngle(ang, playerShotSpeed)
		bounces := -1
		if p.Loadout.Reflect && s.rng.Float64() < reflectChance {
			bounces = reflectBounces
		}
		s.playerBullets = append(s.playerBullets, newPlayerBullet(p.X, p.Y-6, vx, vy, bounces))
	}
}

// Hit costs a life unless the player is protected.
// It reports whether a life was actually lost.
func (p *Player) Hit(s *Session) bool {
	if p.Invuln > 0 || p.InvincibleTimer > 0 {
		return false
	}
	p.Lives--
	p.Invuln = HitInvulnFrames
	if p.Lives <= 0 {
		s.gameOver()
	}
	return true
}

// ActivateInvincibility spends one stored charge if none is running.
func (p *Player) ActivateInvincibility() bool {
	if p.Loadout.Charges <= 0 || p.InvincibleTimer != 0 {
		return false
	}
	p.Loadout.Charges--
	p.InvincibleTimer = InvincibleFrames
	return true
}
