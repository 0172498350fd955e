package systems

import (
	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/physics"
	"github.com/lixenwraith/balance/vmath"
)

// OutcomeKind is the effect of a falling entity reaching a car
type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	OutcomeDamage
	OutcomeHeal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeDamage:
		return "damage"
	case OutcomeHeal:
		return "heal"
	default:
		return "none"
	}
}

// Outcome is the typed result of a pairwise collision test
type Outcome struct {
	Kind   OutcomeKind
	Amount int
}

// Hit reports whether the outcome affects the car
func (o Outcome) Hit() bool {
	return o.Kind != OutcomeNone
}

// Delta is the signed health change
func (o Outcome) Delta() int {
	switch o.Kind {
	case OutcomeDamage:
		return -o.Amount
	case OutcomeHeal:
		return o.Amount
	default:
		return 0
	}
}

// Effects holds the health change applied per entity kind
type Effects struct {
	BlockDamage int
	HealAmount  int
}

// Resolve tests one entity against one car. Circle test on half width plus car radius.
// Does not mutate either side
func Resolve(e *components.FallingEntity, car *components.Car, fx Effects) Outcome {
	if !physics.CirclesOverlap(e.Pos, e.HalfWidth(), car.Pos, car.Radius) {
		return Outcome{}
	}
	switch e.Kind {
	case components.KindHealer:
		return Outcome{Kind: OutcomeHeal, Amount: fx.HealAmount}
	default:
		return Outcome{Kind: OutcomeDamage, Amount: fx.BlockDamage}
	}
}

// Collision records an applied hit
type Collision struct {
	Entity  components.EntityKind
	Side    components.Side
	Outcome Outcome
	Pos     vmath.Vec2F
}

// resolvePlayer tests the left car first, then the right car only when the left missed.
// An entity registers at most one collision per pass
func resolvePlayer(e *components.FallingEntity, player *components.Player, fx Effects) (Outcome, *components.Car) {
	if o := Resolve(e, player.Left, fx); o.Hit() {
		return o, player.Left
	}
	if o := Resolve(e, player.Right, fx); o.Hit() {
		return o, player.Right
	}
	return Outcome{}, nil
}

// checkCollisions retires entities below the field and resolves hits against the player.
// Iterates in reverse so in-place removal is safe; returns the remaining entities and applied hits
func checkCollisions(
	entities []components.FallingEntity,
	player *components.Player,
	field components.Field,
	fx Effects,
	particles *ParticleField,
) ([]components.FallingEntity, []Collision) {
	var hits []Collision
	for i := len(entities) - 1; i >= 0; i-- {
		e := &entities[i]
		if e.BelowField(field.Height) {
			entities = removeAt(entities, i)
			continue
		}

		outcome, car := resolvePlayer(e, player, fx)
		if car == nil {
			continue
		}
		car.TakeDamage(outcome.Delta())
		particles.Burst(e.Pos, e.Side.Shade())
		hits = append(hits, Collision{Entity: e.Kind, Side: car.Side, Outcome: outcome, Pos: e.Pos})
		entities = removeAt(entities, i)
	}
	return entities, hits
}

// removeAt deletes index i preserving order
func removeAt(s []components.FallingEntity, i int) []components.FallingEntity {
	copy(s[i:], s[i+1:])
	s[len(s)-1] = components.FallingEntity{}
	return s[:len(s)-1]
}
