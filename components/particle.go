package components

import (
	"math"

	"github.com/lixenwraith/balance/constants"
)

// Particle is a short-lived radial feedback dot
type Particle struct {
	X, Y            float64
	Speed           float64
	Angle           float64
	Size            float64
	Shade           uint8
	InitialLifetime float64
	Lifetime        float64
	Dead            bool
}

// NewParticle creates a live particle
func NewParticle(x, y, speed, angle, size float64, shade uint8, lifetime float64) Particle {
	return Particle{
		X:               x,
		Y:               y,
		Speed:           speed,
		Angle:           angle,
		Size:            size,
		Shade:           shade,
		InitialLifetime: lifetime,
		Lifetime:        lifetime,
	}
}

// Update moves along the angle while lifetime remains; marks dead once exhausted.
// Screen Y grows downward so positive angles travel up
func (p *Particle) Update() {
	if p.Lifetime > 0 {
		p.X += p.Speed * math.Cos(p.Angle)
		p.Y -= p.Speed * math.Sin(p.Angle)
		p.Lifetime -= constants.ParticleLifetimeDecay
		return
	}
	p.Dead = true
}

// OutOfBounds reports whether the particle left the field, including its size margin
func (p *Particle) OutOfBounds(width, height float64) bool {
	return p.X < -p.Size || p.X > width+p.Size || p.Y < -p.Size || p.Y > height+p.Size
}

// Life returns remaining lifetime as a fraction of the initial lifetime
func (p *Particle) Life() float64 {
	if p.InitialLifetime <= 0 {
		return 0
	}
	return math.Max(0, p.Lifetime/p.InitialLifetime)
}
