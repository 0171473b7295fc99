package stg

import "math"

// EnemyKind identifies an enemy archetype.
type EnemyKind int

const (
	KindZigZag EnemyKind = iota // weaves side to side while descending
	KindCharge                  // drifts in, then rams the player
	KindTank                    // slow and tough
)

// String returns the name of the archetype.
func (k EnemyKind) String() string {
	switch k {
	case KindZigZag:
		return "zigzag"
	case KindCharge:
		return "charge"
	case KindTank:
		return "tank"
	default:
		return "?"
	}
}

// archetype holds the compiled-in stats for one enemy kind.
type archetype struct {
	radius      float64
	hp          int
	score       int
	vy          float64
	bulletSpeed float64
}

var archetypes = map[EnemyKind]archetype{
	KindZigZag: {radius: 7, hp: 2, score: 100, vy: 1.2, bulletSpeed: 2.0},
	KindCharge: {radius: 7, hp: 2, score: 120, vy: 0.8, bulletSpeed: 2.0},
	KindTank:   {radius: 9, hp: 6, score: 200, vy: 0.7, bulletSpeed: 1.7},
}

const (
	chargeTriggerY = 60.0
	chargeSpeed    = 4.0
	zigzagPeriod   = 18.0
	zigzagAmp      = 1.3
)

// Enemy is a regular foe.
type Enemy struct {
	Body
	Kind      EnemyKind
	HP        int
	Score     int
	VX, VY    float64
	ShotTimer int
	Phase     float64 // zigzag phase offset
	Charged   bool    // charge enemies lock their heading once
}

// NewEnemy creates an enemy of the given kind, drawing its initial shot
// timer (and zigzag phase) from rng.
func NewEnemy(kind EnemyKind, x, y float64, rng Rand) *Enemy {
	a := archetypes[kind]
	e := &Enemy{
		Body:      newBody(x, y, a.radius),
		Kind:      kind,
		HP:        a.hp,
		Score:     a.score,
		VY:        a.vy,
		ShotTimer: rng.IntRange(30, 90),
	}
	if kind == KindZigZag {
		e.Phase = rng.Float64() * math.Pi * 2
	}
	return e
}

func (e *Enemy) advance(s *Session) {
	switch e.Kind {
	case KindZigZag:
		e.Y += e.VY
		e.X += math.Sin(e.Y/zigzagPeriod+e.Phase) * zigzagAmp
		e.tryShoot(s)
		if e.Y > ArenaH+20 {
			e.Kill()
		}

	case KindCharge:
		if !e.Charged && e.Y > chargeTriggerY {
			dx := s.player.X - e.X
			dy := s.player.Y - e.Y
			dist := math.Hypot(dx, dy)
			if dist == 0 {
				dist = 1
			}
			e.VX = dx / dist * chargeSpeed
			e.VY = dy / dist * chargeSpeed
			e.Charged = true
		}
		e.X += e.VX
		e.Y += e.VY
		e.tryShoot(s)
		if e.Y > ArenaH+20 || e.X < -20 || e.X > ArenaW+20 {
			e.Kill()
		}

	case KindTank:
		e.Y += e.VY
		e.tryShoot(s)
		if e.Y > ArenaH+30 {
			e.Kill()
		}
	}
}

// tryShoot counts down the shot timer and fires one aimed bullet when it expires.
func (e *Enemy) tryShoot(s *Session) {
	if e.ShotTimer > 0 {
		e.ShotTimer--
		return
	}
	e.ShotTimer = s.rng.IntRange(40, 100)

	dx := s.player.X - e.X
	dy := s.player.Y - e.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	speed := archetypes[e.Kind].bulletSpeed
	s.enemyBullets = append(s.enemyBullets, newEnemyBullet(e.X, e.Y, dx/dist*speed, dy/dist*speed))
}

// TakeDamage applies damage; at zero hp the enemy dies, pays out its score
// and may drop a bell.
func (e *Enemy) TakeDamage(dmg int, s *Session) {
	if !e.Alive {
		return
	}
	e.HP -= dmg
	if e.HP > 0 {
		return
	}
	e.Kill()
	s.AddScore(e.Score)
	if s.rng.Float64() < s.dropRate {
		s.bells = append(s.bells, NewBell(e.X, e.Y))
	}
}

// pickKind maps a uniform draw in [0, 1) to an archetype.
func pickKind(t float64) EnemyKind {
	switch {
	case t < 0.40:
		return KindZigZag
	case t < 0.75:
		return KindCharge
	default:
		return KindTank
	}
}
