package systems

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/core"
	"github.com/lixenwraith/balance/vmath"
)

// BlockTuning configures hazard spawning
type BlockTuning struct {
	SpawnRate    int     // Seconds between spawn opportunities
	MinSpawnRate int     // Lower clamp for SpawnRate
	MaxSpawnRate int     // Upper clamp for SpawnRate
	RateRamp     float64 // Multiplier applied (then floored) by Ramp
	FillAtMost   int     // Per-group roll ceiling for FillSlots
	LeftY        float64 // Spawn row of the left lane group
	RightY       float64 // Spawn row of the right lane group
	FPS          int
	Particles    int
	Effects      Effects
}

// DefaultBlockTuning returns the stock gameplay values
func DefaultBlockTuning() BlockTuning {
	return BlockTuning{
		SpawnRate:    constants.BlockSpawnRate,
		MinSpawnRate: constants.MinBlockSpawnRate,
		MaxSpawnRate: constants.MaxBlockSpawnRate,
		RateRamp:     constants.SpawnRateRamp,
		FillAtMost:   constants.FillAtMost,
		LeftY:        constants.LeftSpawnY,
		RightY:       constants.RightSpawnY,
		FPS:          constants.FramesPerSecond,
		Particles:    constants.DestructionParticles,
		Effects:      Effects{BlockDamage: constants.BlockDamage, HealAmount: constants.HealAmount},
	}
}

// BlockManager owns live hazards and their destruction particles
type BlockManager struct {
	Blocks    []components.FallingEntity
	Particles *ParticleField
	SpawnRate int

	field  components.Field
	tuning BlockTuning
	rng    *rand.Rand
}

// NewBlockManager creates an empty manager
func NewBlockManager(field components.Field, tuning BlockTuning, rng *rand.Rand) *BlockManager {
	return &BlockManager{
		Blocks:    make([]components.FallingEntity, 0, 16),
		Particles: NewParticleField(field, tuning.Particles, rng),
		SpawnRate: vmath.ConstrainInt(tuning.SpawnRate, tuning.MinSpawnRate, tuning.MaxSpawnRate),
		field:     field,
		tuning:    tuning,
		rng:       rng,
	}
}

// Update advances blocks and particles, then spawns when the cadence matches and spawning is enabled
func (m *BlockManager) Update(clock *core.SimulationClock, startSpawning bool) {
	for i := range m.Blocks {
		m.Blocks[i].Fall(clock.Speed)
	}
	m.Particles.Update()

	if startSpawning && clock.EverySeconds(m.SpawnRate, m.tuning.FPS) {
		m.Spawn()
	}
}

// Spawn rolls each lane group independently and appends the filled lanes
func (m *BlockManager) Spawn() {
	size := m.field.EntitySize()
	groups := [2]struct {
		side components.Side
		y    float64
	}{
		{components.SideLeft, m.tuning.LeftY},
		{components.SideRight, m.tuning.RightY},
	}

	for _, g := range groups {
		lanes := m.field.Lanes.SideLanes(g.side)
		fill := FillSlots(m.rng, len(lanes), m.tuning.FillAtMost)
		for i, filled := range fill {
			if filled {
				m.Blocks = append(m.Blocks, components.NewBlock(lanes[i], g.y, size, g.side))
			}
		}
	}
}

// CheckCollisions retires off-field blocks and applies hits to the player
func (m *BlockManager) CheckCollisions(player *components.Player) []Collision {
	var hits []Collision
	m.Blocks, hits = checkCollisions(m.Blocks, player, m.field, m.tuning.Effects, m.Particles)
	return hits
}

// Ramp shortens the spawn interval: floor(rate * ramp), clamped
func (m *BlockManager) Ramp() {
	rate := int(math.Floor(float64(m.SpawnRate) * m.tuning.RateRamp))
	m.SpawnRate = vmath.ConstrainInt(rate, m.tuning.MinSpawnRate, m.tuning.MaxSpawnRate)
}
