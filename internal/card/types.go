// Package card implements the greeting card's interaction state machine: a
// prompt with an evasive rejecting control, and a terminal celebration screen
// entered once the accepting control is clicked.
package card

// Source is a uniform random source returning values in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

// Point is a screen coordinate in logical pixels.
type Point struct {
	X, Y float64
}

// Offset is the displacement of the evasive control from its natural position.
type Offset = Point

// Rect is an on-screen bounding rectangle.
type Rect struct {
	Left, Top, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Left+r.Width &&
		y >= r.Top && y <= r.Top+r.Height
}

// Translate returns the rectangle moved by o.
func (r Rect) Translate(o Offset) Rect {
	r.Left += o.X
	r.Top += o.Y
	return r
}

// Viewport is the size of the visible area at the time of an event.
type Viewport struct {
	Width, Height float64
}

// Measurer reports the current bounds of a mounted control. ok is false when
// the control is not mounted or has not been laid out yet.
type Measurer interface {
	Bounds() (r Rect, ok bool)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func() (Rect, bool)

func (f MeasureFunc) Bounds() (Rect, bool) { return f() }

// Trigger identifies the input that caused an evasion.
type Trigger int

const (
	PointerEnter Trigger = iota
	TouchStart
	PointerDown
)

func (t Trigger) String() string {
	switch t {
	case PointerEnter:
		return "pointer-enter"
	case TouchStart:
		return "touch-start"
	case PointerDown:
		return "pointer-down"
	default:
		return "unknown"
	}
}

// Screen is the rendered state of the card: either Prompt or Celebration.
type Screen interface {
	screen()
}

// Prompt is the initial screen. Offset is where the rejecting control
// currently wants to be relative to its natural position.
type Prompt struct {
	Offset Offset
}

// Celebration is the terminal screen. All fields are set together by the
// accepting transition and never change afterwards.
type Celebration struct {
	Origin         Point
	ViewportHeight float64
	Particles      []Particle
}

func (Prompt) screen()      {}
func (Celebration) screen() {}
