package stg

import "fmt"

// HUD is the text overlay for the current frame.
type HUD struct {
	Stats      []string // score, lives and drop rate, always present
	Indicators []string // active power-ups, in a fixed order
	Boss       string   // boss hit points, empty without a boss
	Banner     []string // end-of-run message lines
}

// HUD builds the overlay text from the session state.
func (s *Session) HUD() HUD {
	p := s.player
	h := HUD{
		Stats: []string{
			fmt.Sprintf("SCORE %d", s.score),
			fmt.Sprintf("LIFE %d", p.Lives),
			// The epsilon absorbs drift from repeated ±0.05 steps:
			// 0.29999999999999993 shows 30%, not 29%.
			fmt.Sprintf("BELL %d%%", int(s.dropRate*100+1e-9)),
		},
	}

	l := p.Loadout
	if l.Spread {
		h.Indicators = append(h.Indicators, "SPREAD")
	}
	if l.ShotInterval < BaseShotInterval {
		h.Indicators = append(h.Indicators, "RAPID")
	}
	if l.ScoreMult > 1 {
		h.Indicators = append(h.Indicators, fmt.Sprintf("X%d", l.ScoreMult))
	}
	if l.Reflect {
		h.Indicators = append(h.Indicators, "REFLECT")
	}
	if l.Shield > 0 {
		h.Indicators = append(h.Indicators, fmt.Sprintf("SHIELD %d", l.Shield))
	}
	if l.Charges > 0 {
		h.Indicators = append(h.Indicators, fmt.Sprintf("INV %d (M)", l.Charges))
	}
	if p.Invincible() {
		h.Indicators = append(h.Indicators, "INVINCIBLE")
	}

	if s.boss != nil {
		h.Boss = fmt.Sprintf("BOSS %d", s.boss.HP)
	}

	switch s.state {
	case StateGameOver:
		h.Banner = []string{"GAME OVER - R to Retry"}
	case StateClear:
		h.Banner = []string{"CLEAR! - R to Retry", fmt.Sprintf("FINAL SCORE %d", s.score)}
	}
	return h
}
