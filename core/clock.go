package core

import (
	"github.com/lixenwraith/balance/vmath"
)

// SimulationClock carries per-round frame index and fall speed.
// Frame only advances on unpaused gameplay frames
type SimulationClock struct {
	Frame int64
	Speed float64

	MinSpeed float64
	MaxSpeed float64
}

// NewSimulationClock starts a round clock at frame zero
func NewSimulationClock(speed, minSpeed, maxSpeed float64) *SimulationClock {
	return &SimulationClock{
		Speed:    vmath.Constrain(speed, minSpeed, maxSpeed),
		MinSpeed: minSpeed,
		MaxSpeed: maxSpeed,
	}
}

// Tick advances one frame
func (c *SimulationClock) Tick() {
	c.Frame++
}

// Every reports whether the current frame lands on a multiple of n frames
func (c *SimulationClock) Every(n int64) bool {
	return n > 0 && c.Frame > 0 && c.Frame%n == 0
}

// EverySeconds reports whether the current frame lands on a multiple of secs at fps
func (c *SimulationClock) EverySeconds(secs, fps int) bool {
	return c.Every(int64(secs) * int64(fps))
}

// ScaleSpeed multiplies the fall speed, clamped to [MinSpeed, MaxSpeed]
func (c *SimulationClock) ScaleSpeed(factor float64) {
	c.Speed = vmath.Constrain(c.Speed*factor, c.MinSpeed, c.MaxSpeed)
}
