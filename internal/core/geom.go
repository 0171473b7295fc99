// Package core provides fundamental types and utilities for the shooter platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells, used for HUD layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CircleHit reports whether two circles touch or overlap.
// Touching circles (distance exactly r1+r2) count as a hit.
func CircleHit(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x1 - x2
	dy := y1 - y2
	rs := r1 + r2
	return dx*dx+dy*dy <= rs*rs
}

// VecFromAngle returns the velocity for a heading in degrees at the given speed.
// 0° points right and angles grow clockwise on screen (y down), so -90° is up.
func VecFromAngle(deg, speed float64) (vx, vy float64) {
	rad := deg * math.Pi / 180
	return math.Cos(rad) * speed, math.Sin(rad) * speed
}

// BearingDeg returns the heading in degrees from (x1, y1) toward (x2, y2).
func BearingDeg(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1) * 180 / math.Pi
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
