// @focus: #constants { gameplay }
package constants

// Car
const (
	// CarRadius is the collision radius of a car
	CarRadius = 10.0

	// CarYRatio places cars at this fraction of world height
	CarYRatio = 0.8

	// CarMaxSpeed caps the seek desired speed (units/frame)
	CarMaxSpeed = 20.0

	// CarMaxForce limits the steering force per frame
	CarMaxForce = 0.6

	// CarArriveEpsilon is the distance at which a lane change completes
	CarArriveEpsilon = 5.0

	// MaxHealth is the health ceiling and starting value
	MaxHealth = 100

	// DamageFlash is the flash intensity set on any health change, decays 1/frame
	DamageFlash = 200
)

// Fall Speed
const (
	// InitialSpeed is the fall speed at round start
	InitialSpeed = 8.0

	// MinSpeed and MaxSpeed clamp the fall speed
	MinSpeed = 8.0
	MaxSpeed = 20.0

	// SpeedRamp multiplies fall speed every score interval
	SpeedRamp = 1.05
)

// Hazards
const (
	// BlockSpawnRate is the initial seconds between block spawn opportunities
	BlockSpawnRate = 3

	// MinBlockSpawnRate and MaxBlockSpawnRate clamp the block spawn rate
	MinBlockSpawnRate = 1
	MaxBlockSpawnRate = 3

	// SpawnRateRamp multiplies (then floors) the block spawn rate every score interval
	SpawnRateRamp = 0.9

	// FillAtMost is the per-group hazard roll ceiling
	FillAtMost = 1

	// LeftSpawnY and RightSpawnY are the spawn rows for each lane group
	LeftSpawnY  = -50.0
	RightSpawnY = -100.0

	// BlockDamage is the health removed by a block hit
	BlockDamage = 10
)

// Healers
const (
	// HealerSpawnRate is the seconds between healer spawn opportunities
	HealerSpawnRate = 15

	// HealerSpawnMinY and HealerSpawnMaxY bound the spawn row
	HealerSpawnMinY = -100.0
	HealerSpawnMaxY = -50.0

	// HealerExclusionLanes is the vertical exclusion around blocks in lane spacings
	HealerExclusionLanes = 2

	// HealerMaxAttempts is the placement retry budget before giving up silently
	HealerMaxAttempts = 200

	// HealAmount is the health restored by a healer pickup
	HealAmount = 10
)

// Destruction Particles
const (
	DestructionParticles  = 40
	DestructionRadius     = 10.0
	ParticleSize          = 4.0
	ParticleMinSpeed      = 3.0
	ParticleMaxSpeed      = 7.0
	ParticleMinLifetime   = 5.0
	ParticleMaxLifetime   = 8.0
	ParticleLifetimeDecay = 0.1
)

// Round Progression
const (
	// FirstSpawnTime is the countdown in seconds before spawning starts
	FirstSpawnTime = 5

	// ScoreInterval is the frame cadence of score and difficulty ramps
	ScoreInterval = 240

	// MaxScore caps the score
	MaxScore = 10000
)
