package systems

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/core"
)

// HealerTuning configures heal pickup spawning
type HealerTuning struct {
	SpawnRate      int     // Seconds between spawn opportunities
	MinY, MaxY     float64 // Spawn row range
	ExclusionLanes float64 // Vertical exclusion around blocks, in lane spacings
	MaxAttempts    int     // Placement retries before giving up
	FPS            int
	Particles      int
	Effects        Effects
}

// DefaultHealerTuning returns the stock gameplay values
func DefaultHealerTuning() HealerTuning {
	return HealerTuning{
		SpawnRate:      constants.HealerSpawnRate,
		MinY:           constants.HealerSpawnMinY,
		MaxY:           constants.HealerSpawnMaxY,
		ExclusionLanes: constants.HealerExclusionLanes,
		MaxAttempts:    constants.HealerMaxAttempts,
		FPS:            constants.FramesPerSecond,
		Particles:      constants.DestructionParticles,
		Effects:        Effects{BlockDamage: constants.BlockDamage, HealAmount: constants.HealAmount},
	}
}

// HealerManager owns live heal pickups and their destruction particles
type HealerManager struct {
	Healers   []components.FallingEntity
	Particles *ParticleField

	field  components.Field
	tuning HealerTuning
	rng    *rand.Rand
}

// NewHealerManager creates an empty manager
func NewHealerManager(field components.Field, tuning HealerTuning, rng *rand.Rand) *HealerManager {
	return &HealerManager{
		Healers:   make([]components.FallingEntity, 0, 4),
		Particles: NewParticleField(field, tuning.Particles, rng),
		field:     field,
		tuning:    tuning,
		rng:       rng,
	}
}

// Update spawns on cadence, then advances healers and particles.
// blocks are the live hazards used for placement rejection
func (m *HealerManager) Update(clock *core.SimulationClock, startSpawning bool, blocks []components.FallingEntity) {
	if startSpawning && clock.EverySeconds(m.tuning.SpawnRate, m.tuning.FPS) {
		m.Spawn(blocks)
	}
	for i := len(m.Healers) - 1; i >= 0; i-- {
		m.Healers[i].Fall(clock.Speed)
	}
	m.Particles.Update()
}

// Spawn places one healer by rejection sampling against live blocks.
// Returns false when every attempt collided; nothing is added in that case
func (m *HealerManager) Spawn(blocks []components.FallingEntity) bool {
	spacing := m.field.Lanes.Spacing
	exclusion := spacing * m.tuning.ExclusionLanes

	for attempt := 0; attempt < m.tuning.MaxAttempts; attempt++ {
		lane := m.rng.Intn(len(m.field.Lanes.Positions))
		x := float64(lane)*spacing + spacing*0.5
		y := uniform(m.rng, m.tuning.MinY, m.tuning.MaxY)

		if m.blocked(blocks, lane, y, exclusion) {
			continue
		}
		m.Healers = append(m.Healers, components.NewHealer(x, y, m.field.EntitySize(), components.LaneSide(lane)))
		return true
	}
	return false
}

// blocked reports whether any block in lane sits within exclusion of y
func (m *HealerManager) blocked(blocks []components.FallingEntity, lane int, y, exclusion float64) bool {
	for i := range blocks {
		if m.field.Lanes.LaneIndex(blocks[i].Pos.X) != lane {
			continue
		}
		if math.Abs(blocks[i].Pos.Y-y) < exclusion {
			return true
		}
	}
	return false
}

// CheckCollisions retires off-field healers and applies heals to the player
func (m *HealerManager) CheckCollisions(player *components.Player) []Collision {
	var hits []Collision
	m.Healers, hits = checkCollisions(m.Healers, player, m.field, m.tuning.Effects, m.Particles)
	return hits
}
