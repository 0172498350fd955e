package engine

import (
	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/constants"
)

// Autopilot is a deterministic steering policy driven by snapshots.
// Each car leaves its lane when a block is about to reach it and heads for healers otherwise
type Autopilot struct {
	// Lookahead is the vertical distance above a car within which a block counts as a threat
	Lookahead float64
}

// NewAutopilot creates a policy reacting to blocks within lookahead world units
func NewAutopilot(lookahead float64) *Autopilot {
	return &Autopilot{Lookahead: lookahead}
}

// Decide returns the lane move for each car given a snapshot
func (a *Autopilot) Decide(s Snapshot) [2]components.Direction {
	var out [2]components.Direction
	for side := components.SideLeft; side <= components.SideRight; side++ {
		out[side] = a.decideCar(s, side)
	}
	return out
}

// Steer applies Decide to a game
func (a *Autopilot) Steer(g *Game) {
	moves := a.Decide(g.Snapshot())
	for side, dir := range moves {
		if dir != components.DirNone {
			g.MoveCar(components.Side(side), dir)
		}
	}
}

func (a *Autopilot) decideCar(s Snapshot, side components.Side) components.Direction {
	car := s.Cars[side]
	if car.Seeking {
		return components.DirNone
	}

	current := laneOf(s, car.Pos.X)
	other := siblingLane(current, side)
	if current < 0 || other < 0 {
		return components.DirNone
	}

	toward := components.DirRight
	if other < current {
		toward = components.DirLeft
	}

	threatHere := a.threat(s, car, current)
	threatThere := a.threat(s, car, other)
	if threatHere && !threatThere {
		return toward
	}
	if threatHere {
		return components.DirNone
	}

	if car.Health < constants.MaxHealth && a.healerIn(s, car, other) && !a.healerIn(s, car, current) && !threatThere {
		return toward
	}
	return components.DirNone
}

// threat reports whether a block in lane is within lookahead above the car
func (a *Autopilot) threat(s Snapshot, car CarView, lane int) bool {
	for _, b := range s.Blocks {
		if laneOf(s, b.Pos.X) != lane {
			continue
		}
		dy := car.Pos.Y - b.Pos.Y
		if dy > -(b.Size*0.5+car.Radius) && dy < a.Lookahead {
			return true
		}
	}
	return false
}

func (a *Autopilot) healerIn(s Snapshot, car CarView, lane int) bool {
	for _, h := range s.Healers {
		if laneOf(s, h.Pos.X) == lane && h.Pos.Y < car.Pos.Y {
			return true
		}
	}
	return false
}

func laneOf(s Snapshot, x float64) int {
	if s.LaneSpacing <= 0 || x < 0 {
		return -1
	}
	idx := int(x / s.LaneSpacing)
	if idx >= len(s.Lanes) {
		return -1
	}
	return idx
}

// siblingLane returns the other lane owned by the same side
func siblingLane(lane int, side components.Side) int {
	base := 0
	if side == components.SideRight {
		base = 2
	}
	switch lane {
	case base:
		return base + 1
	case base + 1:
		return base
	}
	return -1
}
