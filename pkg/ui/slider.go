package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a horizontal drag widget for a float value in [Min, Max]
type Slider struct {
	Label    string
	X, Y     float64
	W, H     float64
	Min, Max float64
	Value    float64
	dragging bool

	// Styling
	TrackColor color.RGBA
	KnobColor  color.RGBA
}

// NewSlider creates a new slider instance
func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return &Slider{
		Label:      label,
		X:          x,
		Y:          y,
		W:          w,
		H:          8, // Track height
		Min:        min,
		Max:        max,
		Value:      value,
		TrackColor: color.RGBA{R: 70, G: 70, B: 80, A: 255},
		KnobColor:  color.RGBA{R: 180, G: 180, B: 200, A: 255},
	}
}

// Update checks for mouse interaction and drags the knob
func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// Start a drag only on the track, keep it while the button stays down
	if pressed && !s.dragging {
		isOver := fx >= s.X-6 && fx <= s.X+s.W+6 &&
			fy >= s.Y-6 && fy <= s.Y+s.H+6
		if isOver {
			s.dragging = true
		}
	}
	if !pressed {
		s.dragging = false
	}

	if s.dragging {
		ratio := (fx - s.X) / s.W
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		s.Value = s.Min + ratio*(s.Max-s.Min)
	}
}

// Draw renders the track, the knob and the current value
func (s *Slider) Draw(screen *ebiten.Image) {
	// Track
	vector.FillRect(screen,
		float32(s.X), float32(s.Y),
		float32(s.W), float32(s.H),
		s.TrackColor, true)

	// Knob
	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	knobX := s.X + ratio*s.W
	vector.FillCircle(screen,
		float32(knobX), float32(s.Y+s.H/2),
		7, s.KnobColor, true)

	// Current value, right-aligned on the label line above the track
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%.2f", s.Value),
		int(s.X+s.W-44), int(s.Y-16))
}
