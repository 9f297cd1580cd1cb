package card

import "github.com/iburimskiy/sorry-card/internal/config"

// Particle is one ribbon of the celebration burst.
type Particle struct {
	ID           int
	Drift        float64 // horizontal displacement at the end of the fall
	FallDuration float64 // seconds
}

// ParticleSpec bounds the random draws of GenerateParticles.
type ParticleSpec struct {
	Count       int
	Drift       float64 // drift is drawn from [-Drift, Drift]
	MinDuration float64
	MaxDuration float64
}

// DefaultParticleSpec is the burst emitted on acceptance.
var DefaultParticleSpec = ParticleSpec{
	Count:       config.ParticleCount,
	Drift:       config.ParticleDrift,
	MinDuration: config.ParticleMinDuration,
	MaxDuration: config.ParticleMaxDuration,
}

// GenerateParticles draws spec.Count particles with sequential ids starting
// at zero. Each particle consumes two draws from src: drift, then duration.
func GenerateParticles(src Source, spec ParticleSpec) []Particle {
	if spec.Count <= 0 {
		return nil
	}
	particles := make([]Particle, spec.Count)
	for i := range particles {
		drift := (src.Float64() - 0.5) * 2 * spec.Drift
		duration := spec.MinDuration + src.Float64()*(spec.MaxDuration-spec.MinDuration)
		particles[i] = Particle{ID: i, Drift: drift, FallDuration: duration}
	}
	return particles
}
