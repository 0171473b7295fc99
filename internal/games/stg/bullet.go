package stg

import "github.com/vovakirdan/tui-stg/internal/core"

// Bullet tuning.
const (
	PlayerBulletRadius = 2.0
	EnemyBulletRadius  = 3.0
	ExplodeFuseFrames  = FPS * 3
	explodeFragments   = 8
	explodeSpeed       = 2.0
	bulletMargin       = 10.0
	reflectMargin      = 20.0
)

// PlayerBullet is a shot fired by the player. A bullet with Bounces >= 0
// is a reflecting bullet that ricochets off the arena walls.
type PlayerBullet struct {
	Body
	VX, VY  float64
	Bounces int // remaining bounces; -1 for a plain bullet
}

func newPlayerBullet(x, y, vx, vy float64, bounces int) *PlayerBullet {
	return &PlayerBullet{
		Body:    newBody(x, y, PlayerBulletRadius),
		VX:      vx,
		VY:      vy,
		Bounces: bounces,
	}
}

// Reflecting reports whether this bullet bounces off walls.
func (b *PlayerBullet) Reflecting() bool {
	return b.Bounces >= 0
}

func (b *PlayerBullet) advance(_ *Session) {
	b.X += b.VX
	b.Y += b.VY

	if !b.Reflecting() {
		if b.outside(bulletMargin) {
			b.Kill()
		}
		return
	}

	// A corner contact inverts both components but costs a single bounce.
	hitWall := false
	if b.X-b.R <= 0 || b.X+b.R >= ArenaW {
		hitWall = true
		b.VX = -b.VX
		b.X = core.ClampF(b.X, b.R, ArenaW-b.R)
	}
	if b.Y-b.R <= 0 || b.Y+b.R >= ArenaH {
		hitWall = true
		b.VY = -b.VY
		b.Y = core.ClampF(b.Y, b.R, ArenaH-b.R)
	}
	if hitWall {
		if b.Bounces > 0 {
			b.Bounces--
		} else {
			b.Kill()
		}
	}

	if b.outside(reflectMargin) {
		b.Kill()
	}
}

// EnemyBullet is a shot fired by an enemy or the boss. A bullet with a
// positive Fuse is explosive and bursts into fragments when it runs out.
type EnemyBullet struct {
	Body
	VX, VY float64
	Fuse   int // frames until detonation; 0 for a plain bullet
}

func newEnemyBullet(x, y, vx, vy float64) *EnemyBullet {
	return &EnemyBullet{
		Body: newBody(x, y, EnemyBulletRadius),
		VX:   vx,
		VY:   vy,
	}
}

func newExplodeBullet(x, y, vx, vy float64, fuse int) *EnemyBullet {
	b := newEnemyBullet(x, y, vx, vy)
	b.Fuse = fuse
	return b
}

// Explosive reports whether the bullet carries a fuse.
func (b *EnemyBullet) Explosive() bool {
	return b.Fuse > 0
}

func (b *EnemyBullet) advance(s *Session) {
	b.X += b.VX
	b.Y += b.VY

	if b.Explosive() {
		b.Fuse--
		if b.Fuse <= 0 {
			b.explode(s)
			b.Kill()
			return
		}
	}

	if b.outside(bulletMargin) {
		b.Kill()
	}
}

func (b *EnemyBullet) explode(s *Session) {
	for i := range explodeFragments {
		vx, vy := core.VecFromAngle(float64(i)*360/explodeFragments, explodeSpeed)
		s.enemyBullets = append(s.enemyBullets, newEnemyBullet(b.X, b.Y, vx, vy))
	}
}
