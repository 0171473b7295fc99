package stg

import (
	"math"

	"github.com/vovakirdan/tui-stg/internal/core"
)

// BossPhase is the boss behavior state.
type BossPhase int

const (
	BossEnter BossPhase = iota // descending into the arena
	BossFight                  // oscillating and firing
)

// String returns the phase name.
func (p BossPhase) String() string {
	if p == BossEnter {
		return "ENTER"
	}
	return "FIGHT"
}

// Boss tuning.
const (
	BossRadius       = 16.0
	BossHP           = 400
	bossSpawnY       = -30.0
	bossEnterSpeed   = 1.0
	bossFightY       = 60.0
	bossSwayAmp      = 0.6
	bossSwayPeriodMs = 400.0
	FanShotInterval  = 30
	BurstInterval    = 180
	FanSpreadDeg     = 70.0
	fanMinCount      = 4
	fanMaxCount      = 6
	fanSpeed         = 2.2
	BurstCount       = 16
	burstSpeed       = 2.0
	explosiveChance  = 0.1
	msPerFrame       = 1000.0 / FPS
)

// Boss is the end-of-stage foe.
type Boss struct {
	Body
	HP           int
	VY           float64
	Phase        BossPhase
	ShotTimer    int
	SpecialTimer int
}

// NewBoss creates the boss at its spawn point above the arena.
func NewBoss() *Boss {
	return &Boss{
		Body:         newBody(ArenaW/2, bossSpawnY, BossRadius),
		HP:           BossHP,
		VY:           bossEnterSpeed,
		Phase:        BossEnter,
		ShotTimer:    FanShotInterval,
		SpecialTimer: BurstInterval,
	}
}

func (b *Boss) advance(s *Session) {
	if b.Phase == BossEnter {
		b.Y += b.VY
		if b.Y >= bossFightY {
			b.Phase = BossFight
		}
		return
	}

	b.X += math.Sin(s.elapsedMs()/bossSwayPeriodMs) * bossSwayAmp

	b.ShotTimer--
	if b.ShotTimer <= 0 {
		b.ShotTimer = FanShotInterval
		b.emit(s, FanAngles(b.X, b.Y, s.player.X, s.player.Y, s.rng.IntRange(fanMinCount, fanMaxCount)), fanSpeed)
	}
	b.SpecialTimer--
	if b.SpecialTimer <= 0 {
		b.SpecialTimer = BurstInterval
		b.emit(s, BurstAngles(), burstSpeed)
	}
}

// emit fires one bullet per heading; each independently may be explosive.
func (b *Boss) emit(s *Session, angles []float64, speed float64) {
	for _, ang := range angles {
		vx, vy := core.VecFromAngle(ang, speed)
		if s.rng.Float64() < explosiveChance {
			s.enemyBullets = append(s.enemyBullets, newExplodeBullet(b.X, b.Y, vx, vy, ExplodeFuseFrames))
		} else {
			s.enemyBullets = append(s.enemyBullets, newEnemyBullet(b.X, b.Y, vx, vy))
		}
	}
}

// FanAngles returns count headings spread evenly over FanSpreadDeg,
// centered on the bearing from (x, y) to the target.
func FanAngles(x, y, tx, ty float64, count int) []float64 {
	base := core.BearingDeg(x, y, tx, ty)
	if count < 2 {
		return []float64{base}
	}
	start := base - FanSpreadDeg/2
	step := FanSpreadDeg / float64(count-1)
	angles := make([]float64, count)
	for i := range angles {
		angles[i] = start + step*float64(i)
	}
	return angles
}

// BurstAngles returns the evenly spaced headings of the radial burst.
func BurstAngles() []float64 {
	angles := make([]float64, BurstCount)
	for i := range angles {
		angles[i] = float64(i) * 360 / BurstCount
	}
	return angles
}

// TakeDamage applies damage; defeat clears the stage.
func (b *Boss) TakeDamage(dmg int, s *Session) {
	if !b.Alive {
		return
	}
	b.HP -= dmg
	if b.HP <= 0 {
		b.Kill()
		s.clear()
	}
}
