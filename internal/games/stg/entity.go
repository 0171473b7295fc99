package stg

// Arena dimensions in logical pixels and the fixed simulation rate.
const (
	ArenaW = 320.0
	ArenaH = 288.0
	FPS    = 30
)

// Body is the shared state of every simulated object: a circle that is
// alive until killed.
type Body struct {
	X, Y  float64
	R     float64
	Alive bool
}

func newBody(x, y, r float64) Body {
	return Body{X: x, Y: y, R: r, Alive: true}
}

// Kill marks the body dead. Dead bodies never come back.
func (b *Body) Kill() {
	b.Alive = false
}

// IsAlive reports whether the body is still in play.
func (b *Body) IsAlive() bool {
	return b.Alive
}

// Touches reports whether two bodies overlap.
func (b *Body) Touches(o *Body) bool {
	return circleHit(b, o)
}

// outside reports whether the body center has left the arena by more than margin.
func (b *Body) outside(margin float64) bool {
	return b.X < -margin || b.X > ArenaW+margin || b.Y < -margin || b.Y > ArenaH+margin
}

// entity is anything the session advances once per frame.
type entity interface {
	IsAlive() bool
	advance(s *Session)
}

// prune keeps only live entries, reusing the backing array.
func prune[T interface{ IsAlive() bool }](items []T) []T {
	kept := items[:0]
	for _, it := range items {
		if it.IsAlive() {
			kept = append(kept, it)
		}
	}
	// Drop references held past the new length
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
