package config

import (
	"fmt"

	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/physics"
	"github.com/lixenwraith/balance/systems"
)

// World is the simulation area
type World struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	FPS    int     `toml:"fps"`
}

// Gameplay holds difficulty and spawn parameters
type Gameplay struct {
	InitialSpeed float64 `toml:"initial_speed"`
	MinSpeed     float64 `toml:"min_speed"`
	MaxSpeed     float64 `toml:"max_speed"`
	SpeedRamp    float64 `toml:"speed_ramp"`

	FirstSpawnTime int `toml:"first_spawn_time"`
	ScoreInterval  int `toml:"score_interval"`
	MaxScore       int `toml:"max_score"`

	BlockSpawnRate    int     `toml:"block_spawn_rate"`
	MinBlockSpawnRate int     `toml:"min_block_spawn_rate"`
	MaxBlockSpawnRate int     `toml:"max_block_spawn_rate"`
	SpawnRateRamp     float64 `toml:"spawn_rate_ramp"`
	FillAtMost        int     `toml:"fill_at_most"`
	BlockDamage       int     `toml:"block_damage"`

	HealerSpawnRate   int `toml:"healer_spawn_rate"`
	HealerMaxAttempts int `toml:"healer_max_attempts"`
	HealAmount        int `toml:"heal_amount"`
}

// Car holds steering parameters
type Car struct {
	YRatio        float64 `toml:"y_ratio"`
	MaxSpeed      float64 `toml:"max_speed"`
	MaxForce      float64 `toml:"max_force"`
	ArriveEpsilon float64 `toml:"arrive_epsilon"`
}

// Audio holds sound output settings
type Audio struct {
	Enabled       bool               `toml:"enabled"`
	MasterVolume  float64            `toml:"master_volume"`
	SampleRate    int                `toml:"sample_rate"`
	EffectVolumes map[string]float64 `toml:"effect_volumes"`
}

// Gesture holds the classifier bridge settings
type Gesture struct {
	Enabled        bool     `toml:"enabled"`
	Addr           string   `toml:"addr"`
	MinConfidence  float64  `toml:"min_confidence"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Scores holds score table persistence
type Scores struct {
	Path string `toml:"path"`
	Keep int    `toml:"keep"`
}

// Config is the complete application configuration
type Config struct {
	Seed  int64 `toml:"seed"`
	Debug bool  `toml:"debug"`

	World    World    `toml:"world"`
	Gameplay Gameplay `toml:"gameplay"`
	Car      Car      `toml:"car"`
	Audio    Audio    `toml:"audio"`
	Gesture  Gesture  `toml:"gesture"`
	Scores   Scores   `toml:"scores"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		World: World{
			Width:  constants.WorldWidth,
			Height: constants.WorldHeight,
			FPS:    constants.FramesPerSecond,
		},
		Gameplay: Gameplay{
			InitialSpeed:      constants.InitialSpeed,
			MinSpeed:          constants.MinSpeed,
			MaxSpeed:          constants.MaxSpeed,
			SpeedRamp:         constants.SpeedRamp,
			FirstSpawnTime:    constants.FirstSpawnTime,
			ScoreInterval:     constants.ScoreInterval,
			MaxScore:          constants.MaxScore,
			BlockSpawnRate:    constants.BlockSpawnRate,
			MinBlockSpawnRate: constants.MinBlockSpawnRate,
			MaxBlockSpawnRate: constants.MaxBlockSpawnRate,
			SpawnRateRamp:     constants.SpawnRateRamp,
			FillAtMost:        constants.FillAtMost,
			BlockDamage:       constants.BlockDamage,
			HealerSpawnRate:   constants.HealerSpawnRate,
			HealerMaxAttempts: constants.HealerMaxAttempts,
			HealAmount:        constants.HealAmount,
		},
		Car: Car{
			YRatio:        constants.CarYRatio,
			MaxSpeed:      constants.CarMaxSpeed,
			MaxForce:      constants.CarMaxForce,
			ArriveEpsilon: constants.CarArriveEpsilon,
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.DefaultSampleRate,
			EffectVolumes: map[string]float64{
				"hit":      1.0,
				"heal":     0.8,
				"whoosh":   0.5,
				"gameover": 1.0,
				"chime":    0.7,
			},
		},
		Gesture: Gesture{
			Addr:           constants.DefaultGestureAddr,
			MinConfidence:  constants.DefaultMinConfidence,
			AllowedOrigins: []string{"*"},
		},
		Scores: Scores{
			Path: constants.DefaultScoresPath,
			Keep: constants.ScoresKeep,
		},
	}
}

// Validate reports the first invalid field
func (c *Config) Validate() error {
	w, g, car := c.World, c.Gameplay, c.Car

	switch {
	case w.Width <= 0 || w.Height <= 0:
		return fmt.Errorf("world: dimensions must be positive, got %gx%g", w.Width, w.Height)
	case w.FPS <= 0:
		return fmt.Errorf("world.fps: must be positive, got %d", w.FPS)
	case g.MinSpeed <= 0 || g.MinSpeed > g.MaxSpeed:
		return fmt.Errorf("gameplay: speed range [%g, %g] invalid", g.MinSpeed, g.MaxSpeed)
	case g.InitialSpeed < g.MinSpeed || g.InitialSpeed > g.MaxSpeed:
		return fmt.Errorf("gameplay.initial_speed: must be in [%g, %g], got %g", g.MinSpeed, g.MaxSpeed, g.InitialSpeed)
	case g.SpeedRamp < 1:
		return fmt.Errorf("gameplay.speed_ramp: must be >= 1, got %g", g.SpeedRamp)
	case g.BlockDamage < 0:
		return fmt.Errorf("gameplay.block_damage: must not be negative, got %d", g.BlockDamage)
	case g.HealAmount < 0:
		return fmt.Errorf("gameplay.heal_amount: must not be negative, got %d", g.HealAmount)
	case g.FirstSpawnTime < 0:
		return fmt.Errorf("gameplay.first_spawn_time: must not be negative, got %d", g.FirstSpawnTime)
	case g.ScoreInterval <= 0:
		return fmt.Errorf("gameplay.score_interval: must be positive, got %d", g.ScoreInterval)
	case g.MaxScore < 0:
		return fmt.Errorf("gameplay.max_score: must not be negative, got %d", g.MaxScore)
	case g.MinBlockSpawnRate <= 0 || g.MinBlockSpawnRate > g.MaxBlockSpawnRate:
		return fmt.Errorf("gameplay: block spawn rate range [%d, %d] invalid", g.MinBlockSpawnRate, g.MaxBlockSpawnRate)
	case g.SpawnRateRamp <= 0 || g.SpawnRateRamp > 1:
		return fmt.Errorf("gameplay.spawn_rate_ramp: must be in (0, 1], got %g", g.SpawnRateRamp)
	case g.FillAtMost < 1 || g.FillAtMost > constants.LanesPerSide:
		return fmt.Errorf("gameplay.fill_at_most: must be in [1, %d], got %d", constants.LanesPerSide, g.FillAtMost)
	case g.HealerSpawnRate <= 0:
		return fmt.Errorf("gameplay.healer_spawn_rate: must be positive, got %d", g.HealerSpawnRate)
	case g.HealerMaxAttempts <= 0:
		return fmt.Errorf("gameplay.healer_max_attempts: must be positive, got %d", g.HealerMaxAttempts)
	case car.YRatio <= 0 || car.YRatio >= 1:
		return fmt.Errorf("car.y_ratio: must be in (0, 1), got %g", car.YRatio)
	case car.MaxSpeed <= 0 || car.MaxForce <= 0 || car.ArriveEpsilon <= 0:
		return fmt.Errorf("car: steering parameters must be positive")
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("audio.master_volume: must be in [0, 1], got %g", c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio.sample_rate: must be positive, got %d", c.Audio.SampleRate)
	case c.Gesture.MinConfidence < 0 || c.Gesture.MinConfidence > 1:
		return fmt.Errorf("gesture.min_confidence: must be in [0, 1], got %g", c.Gesture.MinConfidence)
	case c.Gesture.Enabled && c.Gesture.Addr == "":
		return fmt.Errorf("gesture.addr: required when gesture bridge is enabled")
	case c.Scores.Keep < 0:
		return fmt.Errorf("scores.keep: must not be negative, got %d", c.Scores.Keep)
	}

	for name, v := range c.Audio.EffectVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("audio.effect_volumes.%s: must be in [0, 1], got %g", name, v)
		}
	}
	return nil
}

// Tuning converts the gameplay sections into engine parameters
func (c *Config) Tuning() engine.Tuning {
	w, g := c.World, c.Gameplay
	effects := systems.Effects{BlockDamage: g.BlockDamage, HealAmount: g.HealAmount}

	t := engine.DefaultTuning()
	t.Width = w.Width
	t.Height = w.Height
	t.FPS = w.FPS
	t.InitialSpeed = g.InitialSpeed
	t.MinSpeed = g.MinSpeed
	t.MaxSpeed = g.MaxSpeed
	t.SpeedRamp = g.SpeedRamp
	t.FirstSpawnTime = g.FirstSpawnTime
	t.ScoreInterval = int64(g.ScoreInterval)
	t.MaxScore = g.MaxScore
	t.CarYRatio = c.Car.YRatio
	t.Seek = physics.SeekProfile{
		MaxSpeed:      c.Car.MaxSpeed,
		MaxForce:      c.Car.MaxForce,
		ArrivalRadius: w.Width / float64(constants.LaneCount),
		ArriveEpsilon: c.Car.ArriveEpsilon,
	}

	t.Blocks.SpawnRate = g.BlockSpawnRate
	t.Blocks.MinSpawnRate = g.MinBlockSpawnRate
	t.Blocks.MaxSpawnRate = g.MaxBlockSpawnRate
	t.Blocks.RateRamp = g.SpawnRateRamp
	t.Blocks.FillAtMost = g.FillAtMost
	t.Blocks.FPS = w.FPS
	t.Blocks.Effects = effects

	t.Healers.SpawnRate = g.HealerSpawnRate
	t.Healers.MaxAttempts = g.HealerMaxAttempts
	t.Healers.FPS = w.FPS
	t.Healers.Effects = effects
	return t
}
