package card

import "github.com/iburimskiy/sorry-card/internal/config"

// Curve names a timing curve for tweened motion.
type Curve int

const (
	Linear Curve = iota
	EaseOut
)

// SpringTransition describes motion toward a target driven by a spring.
type SpringTransition struct {
	Stiffness    float64
	DampingRatio float64
}

// TweenTransition describes motion over a fixed duration.
type TweenTransition struct {
	Duration float64 // seconds
	Curve    Curve
}

// ParticleMotion is the start and end pose of one particle.
type ParticleMotion struct {
	From, To   Point
	Rotation   float64 // degrees turned by the end
	FromScale  float64
	ToScale    float64
	Transition TweenTransition
}

// EvasionTransition is how the rejecting control moves to a new offset.
func EvasionTransition() SpringTransition {
	return SpringTransition{Stiffness: config.EvasionStiffness, DampingRatio: 1}
}

// PopupTransition is how the celebration card appears.
func PopupTransition() SpringTransition {
	return SpringTransition{Stiffness: config.PopupStiffness, DampingRatio: 1}
}

// Motion returns the fall of p from origin to below a viewport of height vh.
func (p Particle) Motion(origin Point, vh float64) ParticleMotion {
	return ParticleMotion{
		From:      origin,
		To:        Point{X: origin.X + p.Drift, Y: vh + config.ParticleFallExtra},
		Rotation:  360,
		FromScale: 0,
		ToScale:   1,
		Transition: TweenTransition{
			Duration: p.FallDuration,
			Curve:    EaseOut,
		},
	}
}

// Motions returns the fall of every particle in the burst.
func (s Celebration) Motions() []ParticleMotion {
	out := make([]ParticleMotion, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = p.Motion(s.Origin, s.ViewportHeight)
	}
	return out
}
