package stg

import "github.com/vovakirdan/tui-stg/internal/core"

func circleHit(a, b *Body) bool {
	return core.CircleHit(a.X, a.Y, a.R, b.X, b.Y, b.R)
}

// settled marks what existed before a frame's advance passes. Anything
// appended after it is only collided from the next frame on.
type settled struct {
	enemies       int
	playerBullets int
	enemyBullets  int
	bells         int
	boss          *Boss
}

func (s *Session) settle() settled {
	return settled{
		enemies:       len(s.enemies),
		playerBullets: len(s.playerBullets),
		enemyBullets:  len(s.enemyBullets),
		bells:         len(s.bells),
		boss:          s.boss,
	}
}

// prefix returns the first n items, or all of them if the collection
// was cleared and refilled to fewer.
func prefix[T any](items []T, n int) []T {
	return items[:min(n, len(items))]
}

// resolveCollisions checks everything currently on the field.
func (s *Session) resolveCollisions() {
	s.resolveSettled(s.settle())
}

// resolveSettled runs every contact check of a frame in a fixed order,
// limited to entities in n.
func (s *Session) resolveSettled(n settled) {
	enemies := prefix(s.enemies, n.enemies)
	bells := prefix(s.bells, n.bells)
	boss := n.boss
	if boss != s.boss {
		boss = nil
	}

	s.resolvePlayerShots(prefix(s.playerBullets, n.playerBullets), enemies, boss, bells)
	s.resolveEnemyShots(prefix(s.enemyBullets, n.enemyBullets))
	s.resolveRamming(enemies, boss)
	s.resolvePickups(bells)
}

// resolvePlayerShots checks each player bullet against enemies, then the
// boss, then bells. A bullet is spent on its first contact.
func (s *Session) resolvePlayerShots(shots []*PlayerBullet, enemies []*Enemy, boss *Boss, bells []*Bell) {
	for _, pb := range shots {
		if !pb.Alive {
			continue
		}
		for _, e := range enemies {
			if e.Alive && pb.Touches(&e.Body) {
				pb.Kill()
				e.TakeDamage(1, s)
				break
			}
		}
		if boss != nil && boss.Alive && pb.Alive && pb.Touches(&boss.Body) {
			pb.Kill()
			boss.TakeDamage(1, s)
		}
		if !pb.Alive {
			continue
		}
		for _, b := range bells {
			if b.Alive && pb.Touches(&b.Body) {
				pb.Kill()
				b.Cycle()
				break
			}
		}
	}
}

// resolveEnemyShots checks hostile bullets against the player. Invincibility
// eats the bullet outright; otherwise a shield charge absorbs it before a hit.
func (s *Session) resolveEnemyShots(shots []*EnemyBullet) {
	p := s.player
	for _, eb := range shots {
		if !eb.Alive || !eb.Touches(&p.Body) {
			continue
		}
		eb.Kill()
		if p.Invincible() {
			continue
		}
		if p.Loadout.Shield > 0 {
			p.Loadout.Shield--
			continue
		}
		p.Hit(s)
	}
}

// resolveRamming handles body contact with enemies and the boss.
func (s *Session) resolveRamming(enemies []*Enemy, boss *Boss) {
	p := s.player
	for _, e := range enemies {
		if e.Alive && e.Touches(&p.Body) {
			e.Kill()
			p.Hit(s)
		}
	}
	if boss != nil && s.boss != nil && boss.Alive && boss.Touches(&p.Body) {
		p.Hit(s)
	}
}

// resolvePickups collects bells the player touches.
func (s *Session) resolvePickups(bells []*Bell) {
	p := s.player
	for _, b := range bells {
		if b.Alive && b.Touches(&p.Body) {
			b.Kill()
			b.Effect.Apply(&p.Loadout)
			s.logger.Debug("bell collected", "effect", b.Effect)
		}
	}
}
