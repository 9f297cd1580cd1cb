// Package motion interprets the card's declarative animation records into
// per-frame positions.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/sorry-card/internal/card"
)

// restEpsilon is how close to the target a spring must be, in both position
// and velocity, before it snaps and reports rest.
const restEpsilon = 0.01

// Spring follows a moving 1D target.
type Spring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

// NewSpring returns a spring stepped at fps frames per second, starting at
// rest on pos. Stiffness is taken against a unit mass.
func NewSpring(fps int, t card.SpringTransition, pos float64) *Spring {
	return &Spring{
		spring: harmonica.NewSpring(harmonica.FPS(fps), math.Sqrt(t.Stiffness), t.DampingRatio),
		pos:    pos,
		target: pos,
	}
}

// Retarget sets a new target. Position and velocity are kept so motion in
// progress bends toward the new target without a jump.
func (s *Spring) Retarget(target float64) { s.target = target }

// Step advances one frame and returns the new position.
func (s *Spring) Step() float64 {
	if s.AtRest() {
		return s.pos
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < restEpsilon && math.Abs(s.vel) < restEpsilon {
		s.pos, s.vel = s.target, 0
	}
	return s.pos
}

func (s *Spring) Position() float64 { return s.pos }
func (s *Spring) Target() float64   { return s.target }

// AtRest reports whether the spring sits on its target with no velocity.
func (s *Spring) AtRest() bool { return s.pos == s.target && s.vel == 0 }

// Spring2D follows a moving point with independent springs per axis.
type Spring2D struct {
	x, y *Spring
}

func NewSpring2D(fps int, t card.SpringTransition, at card.Point) *Spring2D {
	return &Spring2D{
		x: NewSpring(fps, t, at.X),
		y: NewSpring(fps, t, at.Y),
	}
}

func (s *Spring2D) Retarget(p card.Point) {
	s.x.Retarget(p.X)
	s.y.Retarget(p.Y)
}

func (s *Spring2D) Step() card.Point {
	return card.Point{X: s.x.Step(), Y: s.y.Step()}
}

func (s *Spring2D) Position() card.Point {
	return card.Point{X: s.x.Position(), Y: s.y.Position()}
}

func (s *Spring2D) AtRest() bool { return s.x.AtRest() && s.y.AtRest() }
