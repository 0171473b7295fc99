package stg

// Spawn cadence, in frames, for each phase.
const (
	playingSpawnMin = 40
	playingSpawnMax = 80
	bossSpawnMin    = 50
	bossSpawnMax    = 90
	spawnMargin     = 20
	spawnY          = -10.0
)

// direct runs the phase director: it counts down to the boss and feeds
// regular enemies in both phases.
func (s *Session) direct() {
	switch s.state {
	case StatePlaying:
		s.phaseTime++
		if s.phaseTime >= s.opts.BossAfterFrames {
			s.StartBoss()
			return
		}
		s.tickSpawn(playingSpawnMin, playingSpawnMax)
	case StateBoss:
		s.tickSpawn(bossSpawnMin, bossSpawnMax)
	}
}

func (s *Session) tickSpawn(lo, hi int) {
	s.spawnTimer--
	if s.spawnTimer > 0 {
		return
	}
	s.spawnTimer = s.rng.IntRange(lo, hi)
	s.spawnEnemy()
}

// spawnEnemy drops one enemy of a random archetype just above the arena.
func (s *Session) spawnEnemy() {
	x := float64(s.rng.IntRange(spawnMargin, int(ArenaW)-spawnMargin))
	kind := pickKind(s.rng.Float64())
	s.enemies = append(s.enemies, NewEnemy(kind, x, spawnY, s.rng))
}
