package physics

import (
	"github.com/lixenwraith/balance/constants"
)

// SeekProfile defines arrival steering parameters
type SeekProfile struct {
	MaxSpeed      float64 // Desired speed cap (world units/frame)
	MaxForce      float64 // Steering force magnitude limit per frame
	ArrivalRadius float64 // Distance below which desired speed ramps down linearly
	ArriveEpsilon float64 // Distance at which seeking stops (snap-to-rest)
}

// LaneChange is the car lane-change profile
var LaneChange = SeekProfile{
	MaxSpeed:      constants.CarMaxSpeed,
	MaxForce:      constants.CarMaxForce,
	ArrivalRadius: constants.LaneSpacing,
	ArriveEpsilon: constants.CarArriveEpsilon,
}
