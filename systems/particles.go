package systems

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/vmath"
)

// ParticleField owns destruction particles for one manager
type ParticleField struct {
	Particles []components.Particle

	field components.Field
	rng   *rand.Rand
	count int
}

// NewParticleField creates an empty field emitting count particles per burst
func NewParticleField(field components.Field, count int, rng *rand.Rand) *ParticleField {
	if count <= 0 {
		count = constants.DestructionParticles
	}
	return &ParticleField{
		Particles: make([]components.Particle, 0, count*2),
		field:     field,
		rng:       rng,
		count:     count,
	}
}

// Burst emits a ring of particles around center; angles evenly partition [0, 2π)
func (f *ParticleField) Burst(center vmath.Vec2F, shade uint8) {
	for i := 0; i < f.count; i++ {
		a := vmath.MapRange(float64(i), 0, float64(f.count), 0, 2*math.Pi)
		p := vmath.V2FPolar(center, constants.DestructionRadius, a)
		speed := uniform(f.rng, constants.ParticleMinSpeed, constants.ParticleMaxSpeed)
		life := uniform(f.rng, constants.ParticleMinLifetime, constants.ParticleMaxLifetime)
		f.Particles = append(f.Particles, components.NewParticle(p.X, p.Y, speed, a, constants.ParticleSize, shade, life))
	}
}

// Update advances every particle then drops dead or out-of-bounds ones
func (f *ParticleField) Update() {
	for i := range f.Particles {
		f.Particles[i].Update()
	}
	for i := len(f.Particles) - 1; i >= 0; i-- {
		p := &f.Particles[i]
		if p.Dead || p.OutOfBounds(f.field.Width, f.field.Height) {
			f.Particles = append(f.Particles[:i], f.Particles[i+1:]...)
		}
	}
}

// Len returns the live particle count
func (f *ParticleField) Len() int {
	return len(f.Particles)
}

// uniform returns a value in [lo, hi)
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
