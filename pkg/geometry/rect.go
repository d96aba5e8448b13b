package geometry

import "fmt"

// Rect is an axis-aligned rectangle given by its origin (top-left in screen
// space) and its size. It is pure geometry: width and height are expected to
// be finite, but no sign constraint is enforced here; degenerate rectangles
// are the caller's responsibility.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewRect creates a new Rect from origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// String implements the fmt.Stringer interface.
func (r Rect) String() string {
	return fmt.Sprintf("[%.2f, %.2f, %.2fx%.2f]", r.X, r.Y, r.W, r.H)
}

// Contains reports whether p lies inside the rectangle (edges included).
func (r Rect) Contains(p Vector2D) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Clamp confines p to the rectangle inset by the given amount on every side,
// clamping each axis independently. The inset is meant to be a point's visual
// radius, so the point's edge rather than its center stays inside. There is
// no velocity reflection: a clamped point simply sticks at the wall.
func (r Rect) Clamp(p Vector2D, inset float64) Vector2D {
	if p.X > r.X+r.W-inset {
		p.X = r.X + r.W - inset
	}
	if p.X < r.X+inset {
		p.X = r.X + inset
	}
	if p.Y > r.Y+r.H-inset {
		p.Y = r.Y + r.H - inset
	}
	if p.Y < r.Y+inset {
		p.Y = r.Y + inset
	}
	return p
}
