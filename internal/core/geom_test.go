package core

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestCircleHit(t *testing.T) {
	tests := []struct {
		name       string
		x1, y1, r1 float64
		x2, y2, r2 float64
		expected   bool
	}{
		{"overlapping", 0, 0, 5, 3, 4, 5, true},
		{"touching exactly", 0, 0, 6, 10, 0, 4, true},
		{"just apart", 0, 0, 6, 10.01, 0, 4, false},
		{"far apart", 0, 0, 2, 100, 100, 2, false},
		{"concentric", 50, 50, 3, 50, 50, 1, true},
		{"zero radii same point", 7, 7, 0, 7, 7, 0, true},
		{"zero radii different point", 7, 7, 0, 8, 7, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CircleHit(tc.x1, tc.y1, tc.r1, tc.x2, tc.y2, tc.r2)
			if result != tc.expected {
				t.Errorf("CircleHit() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestCircleHitSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x1 := rapid.Float64Range(-400, 400).Draw(t, "x1")
		y1 := rapid.Float64Range(-400, 400).Draw(t, "y1")
		r1 := rapid.Float64Range(0, 20).Draw(t, "r1")
		x2 := rapid.Float64Range(-400, 400).Draw(t, "x2")
		y2 := rapid.Float64Range(-400, 400).Draw(t, "y2")
		r2 := rapid.Float64Range(0, 20).Draw(t, "r2")

		if CircleHit(x1, y1, r1, x2, y2, r2) != CircleHit(x2, y2, r2, x1, y1, r1) {
			t.Fatalf("CircleHit not symmetric for (%v,%v,%v) and (%v,%v,%v)", x1, y1, r1, x2, y2, r2)
		}
	})
}

func TestVecFromAngle(t *testing.T) {
	tests := []struct {
		deg, speed float64
		vx, vy     float64
	}{
		{-90, 6, 0, -6},
		{0, 2, 2, 0},
		{90, 2, 0, 2},
		{180, 1.5, -1.5, 0},
		{45, math.Sqrt2, 1, 1},
	}

	for _, tc := range tests {
		vx, vy := VecFromAngle(tc.deg, tc.speed)
		if math.Abs(vx-tc.vx) > 1e-9 || math.Abs(vy-tc.vy) > 1e-9 {
			t.Errorf("VecFromAngle(%v, %v) = (%v, %v), expected (%v, %v)", tc.deg, tc.speed, vx, vy, tc.vx, tc.vy)
		}
	}
}

func TestBearingDeg(t *testing.T) {
	if got := BearingDeg(0, 0, 0, 10); math.Abs(got-90) > 1e-9 {
		t.Errorf("BearingDeg(down) = %v, expected 90", got)
	}
	if got := BearingDeg(10, 10, 0, 10); math.Abs(got-180) > 1e-9 {
		t.Errorf("BearingDeg(left) = %v, expected 180", got)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
