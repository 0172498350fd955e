package components

import (
	"github.com/lixenwraith/balance/physics"
)

// Player owns the two cars
type Player struct {
	Left  *Car
	Right *Car
}

// NewPlayer creates both cars on their first lane at height y
func NewPlayer(layout LaneLayout, y float64, profile *physics.SeekProfile) *Player {
	return &Player{
		Left:  NewCar(SideLeft, layout.SideLanes(SideLeft), y, profile),
		Right: NewCar(SideRight, layout.SideLanes(SideRight), y, profile),
	}
}

// Update advances both cars
func (p *Player) Update() {
	p.Left.Update()
	p.Right.Update()
}

// Car returns the car on a side
func (p *Player) Car(s Side) *Car {
	if s == SideRight {
		return p.Right
	}
	return p.Left
}

// Defeated reports whether either car ran out of health
func (p *Player) Defeated() bool {
	return !p.Left.Alive() || !p.Right.Alive()
}
