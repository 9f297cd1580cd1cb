package motion

import "github.com/iburimskiy/sorry-card/internal/card"

// Pose is where a particle is drawn on a given frame.
type Pose struct {
	At       card.Point
	Rotation float64 // degrees
	Scale    float64
	Done     bool
}

// Sample evaluates m at elapsed seconds since the burst started.
func Sample(m card.ParticleMotion, elapsed float64) Pose {
	progress := 1.0
	if d := m.Transition.Duration; d > 0 {
		progress = clamp01(elapsed / d)
	}
	e := Ease(m.Transition.Curve, progress)
	return Pose{
		At: card.Point{
			X: lerp(m.From.X, m.To.X, e),
			Y: lerp(m.From.Y, m.To.Y, e),
		},
		Rotation: m.Rotation * e,
		Scale:    lerp(m.FromScale, m.ToScale, e),
		Done:     progress >= 1,
	}
}

// Burst holds the motions of a celebration and the time since it started.
type Burst struct {
	motions []card.ParticleMotion
	elapsed float64
}

func NewBurst(s card.Celebration) *Burst {
	return &Burst{motions: s.Motions()}
}

// Advance moves the burst clock forward by dt seconds.
func (b *Burst) Advance(dt float64) { b.elapsed += dt }

// Poses returns the current pose of every particle, appended to dst.
func (b *Burst) Poses(dst []Pose) []Pose {
	for _, m := range b.motions {
		dst = append(dst, Sample(m, b.elapsed))
	}
	return dst
}

// Finished reports whether every particle has left the screen.
func (b *Burst) Finished() bool {
	for _, m := range b.motions {
		if b.elapsed < m.Transition.Duration {
			return false
		}
	}
	return true
}
