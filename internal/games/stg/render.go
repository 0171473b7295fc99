package stg

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-stg/internal/core"
)

// Layout constants for the terminal view.
const (
	hudRows    = 2  // stats row + indicators row
	minFieldW  = 32 // smallest playfield in cells
	minFieldH  = 14
	cellAspect = 2.0 // terminal cells are about twice as tall as wide
	ringPoints = 12
)

// viewport maps arena pixels onto screen cells, keeping the aspect ratio.
type viewport struct {
	ox, oy     int // screen cell of arena pixel (0, 0)
	cols, rows int
	pxPerCol   float64
	pxPerRow   float64
}

// newViewport fits the arena into a screen of w x h cells below the HUD,
// leaving room for a one-cell border. ok is false when it cannot fit.
func newViewport(w, h int) (vp viewport, ok bool) {
	availW := w - 2
	availH := h - hudRows - 2
	if availW < minFieldW || availH < minFieldH {
		return viewport{}, false
	}

	vp.pxPerCol = math.Max(ArenaW/float64(availW), ArenaH/(float64(availH)*cellAspect))
	vp.pxPerRow = vp.pxPerCol * cellAspect
	vp.cols = core.Min(availW, int(math.Ceil(ArenaW/vp.pxPerCol)))
	vp.rows = core.Min(availH, int(math.Ceil(ArenaH/vp.pxPerRow)))
	vp.ox = (w - vp.cols) / 2
	vp.oy = hudRows + 1 + (availH-vp.rows)/2
	return vp, true
}

// cell converts an arena position to screen coordinates; inside is false
// when the point is outside the playfield.
func (vp viewport) cell(x, y float64) (cx, cy int, inside bool) {
	col := int(math.Floor(x / vp.pxPerCol))
	row := int(math.Floor(y / vp.pxPerRow))
	if col < 0 || col >= vp.cols || row < 0 || row >= vp.rows {
		return 0, 0, false
	}
	return vp.ox + col, vp.oy + row, true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp, ok := newViewport(dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minFieldW+2, minFieldH+hudRows+2))
		return
	}

	hud := g.session.HUD()
	renderHUD(dst, hud)

	dst.DrawBox(core.NewRect(vp.ox-1, vp.oy-1, vp.cols+2, vp.rows+2))
	for _, sp := range g.session.Sprites() {
		drawSprite(dst, vp, sp)
	}

	if len(hud.Banner) > 0 {
		drawCenteredBox(dst, hud.Banner)
	}
}

func renderHUD(dst *core.Screen, hud HUD) {
	dst.DrawTextColor(1, 0, strings.Join(hud.Stats, "  "), core.ColorWhite)
	if hud.Boss != "" {
		dst.DrawTextColor(dst.Width()-len(hud.Boss)-1, 0, hud.Boss, core.ColorOrange)
	}
	if len(hud.Indicators) > 0 {
		dst.DrawTextColor(1, 1, strings.Join(hud.Indicators, " "), core.ColorBrightCyan)
	}
}

func drawSprite(dst *core.Screen, vp viewport, sp Sprite) {
	switch {
	case sp.Shape == ShapeRing:
		for i := range ringPoints {
			a := float64(i) * 2 * math.Pi / ringPoints
			if cx, cy, in := vp.cell(sp.X+math.Cos(a)*sp.R, sp.Y+math.Sin(a)*sp.R); in {
				dst.SetWithColor(cx, cy, sp.Glyph, sp.Color)
			}
		}

	case sp.R >= vp.pxPerCol*1.5:
		// Big enough to cover several cells: fill the disk
		fillDisk(dst, vp, sp)

	default:
		if cx, cy, in := vp.cell(sp.X, sp.Y); in {
			dst.SetWithColor(cx, cy, sp.Glyph, sp.Color)
		}
	}
}

func fillDisk(dst *core.Screen, vp viewport, sp Sprite) {
	minCol := int(math.Floor((sp.X - sp.R) / vp.pxPerCol))
	maxCol := int(math.Floor((sp.X + sp.R) / vp.pxPerCol))
	minRow := int(math.Floor((sp.Y - sp.R) / vp.pxPerRow))
	maxRow := int(math.Floor((sp.Y + sp.R) / vp.pxPerRow))
	drawn := false

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			// Test the cell center against the circle
			px := (float64(col) + 0.5) * vp.pxPerCol
			py := (float64(row) + 0.5) * vp.pxPerRow
			if !core.CircleHit(px, py, 0, sp.X, sp.Y, sp.R) {
				continue
			}
			if cx, cy, in := vp.cell(px, py); in {
				dst.SetWithColor(cx, cy, sp.Glyph, sp.Color)
				drawn = true
			}
		}
	}

	// Coarse grids can miss every cell center; keep at least the middle.
	if !drawn {
		if cx, cy, in := vp.cell(sp.X, sp.Y); in {
			dst.SetWithColor(cx, cy, sp.Glyph, sp.Color)
		}
	}
}

// drawCenteredBox draws a centered message box with one line per entry.
func drawCenteredBox(dst *core.Screen, lines []string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len(l))
	}
	boxW := w + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, l := range lines {
		dst.DrawTextColor(boxX+(boxW-len(l))/2, boxY+1+i, l, core.ColorBrightCyan)
	}
}
