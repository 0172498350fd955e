package engine

import (
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/physics"
	"github.com/lixenwraith/balance/systems"
)

// Tuning gathers every gameplay parameter of a round
type Tuning struct {
	Width  float64
	Height float64
	FPS    int

	InitialSpeed float64
	MinSpeed     float64
	MaxSpeed     float64
	SpeedRamp    float64

	FirstSpawnTime int   // Countdown seconds before spawning
	ScoreInterval  int64 // Frames between score/difficulty ramps
	MaxScore       int

	CarYRatio float64
	Seek      physics.SeekProfile

	Blocks  systems.BlockTuning
	Healers systems.HealerTuning
}

// DefaultTuning returns the stock gameplay parameters
func DefaultTuning() Tuning {
	return Tuning{
		Width:          constants.WorldWidth,
		Height:         constants.WorldHeight,
		FPS:            constants.FramesPerSecond,
		InitialSpeed:   constants.InitialSpeed,
		MinSpeed:       constants.MinSpeed,
		MaxSpeed:       constants.MaxSpeed,
		SpeedRamp:      constants.SpeedRamp,
		FirstSpawnTime: constants.FirstSpawnTime,
		ScoreInterval:  constants.ScoreInterval,
		MaxScore:       constants.MaxScore,
		CarYRatio:      constants.CarYRatio,
		Seek:           physics.LaneChange,
		Blocks:         systems.DefaultBlockTuning(),
		Healers:        systems.DefaultHealerTuning(),
	}
}
