package stg

import "github.com/vovakirdan/tui-stg/internal/core"

// Shape tells the renderer how to draw a sprite.
type Shape int

const (
	ShapeShip Shape = iota
	ShapePlayerShot
	ShapeReflectShot
	ShapeEnemyShot
	ShapeExplosive
	ShapeEnemy
	ShapeBell
	ShapeBoss
	ShapeRing // debug collision outline
)

// Sprite is one draw call in arena coordinates.
type Sprite struct {
	Shape Shape
	X, Y  float64
	R     float64
	Color core.Color
	Glyph rune
}

// Player colors.
const (
	playerColor     = core.ColorGreen
	playerDimColor  = core.ColorGray
	invincibleColor = core.ColorLightBlue
	ringColor       = core.ColorRed
)

var enemyLook = map[EnemyKind]struct {
	glyph rune
	color core.Color
}{
	KindZigZag: {'W', core.ColorBlue},
	KindCharge: {'V', core.ColorRed},
	KindTank:   {'H', core.ColorGreen},
}

// Sprites returns the draw list for the current frame, back to front.
// With the debug overlay on, a ring per entity is appended.
func (s *Session) Sprites() []Sprite {
	out := make([]Sprite, 0, 1+len(s.enemies)+len(s.playerBullets)+len(s.enemyBullets)+len(s.bells)+1)

	p := s.player
	out = append(out, Sprite{Shape: ShapeShip, X: p.X, Y: p.Y, R: p.R, Color: s.playerColor(), Glyph: '▲'})

	for _, e := range s.enemies {
		look := enemyLook[e.Kind]
		out = append(out, Sprite{Shape: ShapeEnemy, X: e.X, Y: e.Y, R: e.R, Color: look.color, Glyph: look.glyph})
	}
	for _, b := range s.playerBullets {
		if b.Reflecting() {
			out = append(out, Sprite{Shape: ShapeReflectShot, X: b.X, Y: b.Y, R: b.R, Color: core.ColorSilver, Glyph: '◇'})
			continue
		}
		out = append(out, Sprite{Shape: ShapePlayerShot, X: b.X, Y: b.Y, R: b.R, Color: core.ColorWhite, Glyph: '|'})
	}
	for _, b := range s.enemyBullets {
		if b.Explosive() {
			// Drawn larger than its hit circle
			out = append(out, Sprite{Shape: ShapeExplosive, X: b.X, Y: b.Y, R: 4, Color: core.ColorOrange, Glyph: '✶'})
			continue
		}
		out = append(out, Sprite{Shape: ShapeEnemyShot, X: b.X, Y: b.Y, R: b.R, Color: core.ColorYellow, Glyph: '•'})
	}
	for _, b := range s.bells {
		out = append(out, Sprite{Shape: ShapeBell, X: b.X, Y: b.Y, R: b.R, Color: b.Effect.Color(), Glyph: '●'})
	}
	if s.boss != nil {
		out = append(out, Sprite{Shape: ShapeBoss, X: s.boss.X, Y: s.boss.Y, R: s.boss.R, Color: core.ColorOrange, Glyph: '█'})
	}

	if s.debug {
		out = append(out, s.debugRings()...)
	}
	return out
}

func (s *Session) playerColor() core.Color {
	p := s.player
	switch {
	case p.Invincible():
		return invincibleColor
	case p.Invuln > 0 && (p.Invuln/4)%2 == 1:
		return playerDimColor
	default:
		return playerColor
	}
}

// debugRings outlines every collision circle using its true radius.
func (s *Session) debugRings() []Sprite {
	var rings []Sprite
	add := func(b *Body) {
		rings = append(rings, Sprite{Shape: ShapeRing, X: b.X, Y: b.Y, R: b.R, Color: ringColor, Glyph: '·'})
	}
	add(&s.player.Body)
	for _, e := range s.enemies {
		add(&e.Body)
	}
	for _, b := range s.playerBullets {
		add(&b.Body)
	}
	for _, b := range s.enemyBullets {
		add(&b.Body)
	}
	for _, b := range s.bells {
		add(&b.Body)
	}
	if s.boss != nil {
		add(&s.boss.Body)
	}
	return rings
}
