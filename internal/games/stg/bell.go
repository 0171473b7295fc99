package stg

import "github.com/vovakirdan/tui-stg/internal/core"

// Effect is the power-up a bell grants, selected by its color.
type Effect int

const (
	EffectSpread Effect = iota
	EffectRapid
	EffectScore
	EffectShield
	EffectInvincible
	EffectReflect
	effectCount
)

const (
	BellRadius = 6.0
	bellFall   = 1.0
)

// String returns the HUD name of the effect.
func (e Effect) String() string {
	switch e {
	case EffectSpread:
		return "SPREAD"
	case EffectRapid:
		return "RAPID"
	case EffectScore:
		return "SCORE"
	case EffectShield:
		return "SHIELD"
	case EffectInvincible:
		return "INVINCIBLE"
	case EffectReflect:
		return "REFLECT"
	default:
		return "?"
	}
}

// Color returns the bell color that carries this effect.
func (e Effect) Color() core.Color {
	switch e {
	case EffectSpread:
		return core.ColorYellow
	case EffectRapid:
		return core.ColorMagenta
	case EffectScore:
		return core.ColorCyan
	case EffectShield:
		return core.ColorOrange
	case EffectInvincible:
		return core.ColorPurple
	case EffectReflect:
		return core.ColorSilver
	default:
		return core.ColorDefault
	}
}

// effectTable maps each effect to its loadout mutation.
var effectTable = map[Effect]func(*Loadout){
	EffectSpread:     func(l *Loadout) { l.Spread = true },
	EffectRapid:      func(l *Loadout) { l.ShotInterval = max(MinShotInterval, l.ShotInterval-2) },
	EffectScore:      func(l *Loadout) { l.ScoreMult = min(MaxScoreMultiplier, l.ScoreMult+1) },
	EffectShield:     func(l *Loadout) { l.Shield++ },
	EffectInvincible: func(l *Loadout) { l.Charges++ },
	EffectReflect:    func(l *Loadout) { l.Reflect = true },
}

// Apply mutates the loadout according to the effect.
func (e Effect) Apply(l *Loadout) {
	if fn, ok := effectTable[e]; ok {
		fn(l)
	}
}

// Bell is a falling power-up. Shooting it cycles its color; touching it
// grants the current color's effect.
type Bell struct {
	Body
	VY     float64
	Effect Effect
}

// NewBell creates a bell at the given position showing the first effect.
func NewBell(x, y float64) *Bell {
	return &Bell{
		Body:   newBody(x, y, BellRadius),
		VY:     bellFall,
		Effect: EffectSpread,
	}
}

// Cycle advances the bell to the next color, wrapping after the last.
func (b *Bell) Cycle() {
	b.Effect = (b.Effect + 1) % effectCount
}

func (b *Bell) advance(_ *Session) {
	b.Y += b.VY
	if b.Y > ArenaH+10 {
		b.Kill()
	}
}
