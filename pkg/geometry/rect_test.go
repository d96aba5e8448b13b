package geometry

import (
	"math"
	"testing"
)

func TestRect_Contains(t *testing.T) {
	r := NewRect(10, 10, 100, 50)

	tests := []struct {
		name string
		p    Vector2D
		want bool
	}{
		{"Center", Vector2D{60, 35}, true},
		{"Top-left corner", Vector2D{10, 10}, true},
		{"Bottom-right corner", Vector2D{110, 60}, true},
		{"Left of rect", Vector2D{9, 35}, false},
		{"Below rect", Vector2D{60, 61}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v; want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect_Clamp(t *testing.T) {
	r := NewRect(0, 0, 100, 100)

	tests := []struct {
		name  string
		p     Vector2D
		inset float64
		want  Vector2D
	}{
		{"Inside untouched", Vector2D{50, 50}, 5, Vector2D{50, 50}},
		{"Past right wall", Vector2D{150, 50}, 5, Vector2D{95, 50}},
		{"Past left wall", Vector2D{-20, 50}, 5, Vector2D{5, 50}},
		{"Past floor", Vector2D{50, 140}, 5, Vector2D{50, 95}},
		{"Past ceiling", Vector2D{50, -1}, 5, Vector2D{50, 5}},
		{"Corner overshoot clamps both axes", Vector2D{999, -999}, 10, Vector2D{90, 10}},
		{"Zero inset clamps to the edge", Vector2D{101, 101}, 0, Vector2D{100, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Clamp(tt.p, tt.inset); !got.Eq(tt.want) {
				t.Errorf("Clamp(%v, %v) = %v; want %v", tt.p, tt.inset, got, tt.want)
			}
		})
	}
}

// Clamp must always land inside the inset rectangle, for any input point,
// as long as inset <= min(w, h)/2.
func TestRect_ClampAlwaysInside(t *testing.T) {
	r := NewRect(-30, 20, 200, 80)
	inset := 8.0

	points := []Vector2D{
		{0, 0},
		{-1e6, 1e6},
		{math.Inf(1), -42},
		{170, 99.999},
		{-30, 20},
		{12345.678, -9876.543},
	}

	for _, p := range points {
		got := r.Clamp(p, inset)
		if got.X < r.X+inset || got.X > r.X+r.W-inset {
			t.Errorf("Clamp(%v).X = %v; want within [%v, %v]", p, got.X, r.X+inset, r.X+r.W-inset)
		}
		if got.Y < r.Y+inset || got.Y > r.Y+r.H-inset {
			t.Errorf("Clamp(%v).Y = %v; want within [%v, %v]", p, got.Y, r.Y+inset, r.Y+r.H-inset)
		}
	}
}
