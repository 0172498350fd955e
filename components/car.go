package components

import (
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/physics"
	"github.com/lixenwraith/balance/vmath"
)

// Car is a player-controlled entity that seeks between its two lanes
type Car struct {
	physics.Kinetic

	Side   Side
	Radius float64
	Health int

	// Lane state
	Lanes     [2]float64
	LaneIndex int
	Seeking   bool
	Target    vmath.Vec2F

	// DamageFlash is set on any health change and decays by one per update
	DamageFlash int

	profile *physics.SeekProfile
}

// NewCar places a car on the first lane of its side at height y
func NewCar(side Side, lanes [2]float64, y float64, profile *physics.SeekProfile) *Car {
	if profile == nil {
		profile = &physics.LaneChange
	}
	c := &Car{
		Side:    side,
		Radius:  constants.CarRadius,
		Health:  constants.MaxHealth,
		Lanes:   lanes,
		profile: profile,
	}
	c.Pos = vmath.V2F(lanes[0], y)
	return c
}

// Move requests a lane change. Ignored at the boundary lane and while a change is in flight.
// Returns true when a new seek started
func (c *Car) Move(dir Direction) bool {
	if c.Seeking {
		return false
	}
	next := c.LaneIndex
	switch dir {
	case DirLeft:
		next--
	case DirRight:
		next++
	default:
		return false
	}
	if next < 0 || next >= len(c.Lanes) {
		return false
	}
	c.LaneIndex = next
	c.Target = vmath.V2F(c.Lanes[next], c.Pos.Y)
	c.Seeking = true
	return true
}

// Update advances steering and integration by one frame
func (c *Car) Update() {
	if c.Seeking {
		if physics.Seek(&c.Kinetic, c.Target, c.profile) {
			c.Seeking = false
			c.Pos.X = c.Target.X
		}
	}
	physics.Integrate(&c.Kinetic)

	c.DamageFlash--
	if c.DamageFlash < 0 {
		c.DamageFlash = 0
	}
}

// TakeDamage adds a signed delta to health, clamped to [0, MaxHealth]
func (c *Car) TakeDamage(delta int) {
	c.DamageFlash = constants.DamageFlash
	c.Health = vmath.ConstrainInt(c.Health+delta, 0, constants.MaxHealth)
}

// Alive reports whether health is above zero
func (c *Car) Alive() bool {
	return c.Health > 0
}

// LaneX returns the x position of the lane the car occupies or is heading to
func (c *Car) LaneX() float64 {
	return c.Lanes[c.LaneIndex]
}
