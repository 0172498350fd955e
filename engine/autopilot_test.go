package engine

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/balance/components"
)

func TestAutopilotDodgesBlock(t *testing.T) {
	g := NewGame(DefaultTuning(), rand.New(rand.NewSource(3)), nil)
	g.Start()

	car := g.Player.Left
	size := g.Field().EntitySize()
	g.Blocks.Blocks = append(g.Blocks.Blocks, components.NewBlock(car.Pos.X, car.Pos.Y-100, size, components.SideLeft))

	ap := NewAutopilot(200)
	moves := ap.Decide(g.Snapshot())

	if moves[components.SideLeft] != components.DirRight {
		t.Errorf("Expected left car to dodge right, got %s", moves[components.SideLeft])
	}
	if moves[components.SideRight] != components.DirNone {
		t.Errorf("Expected right car to hold, got %s", moves[components.SideRight])
	}
}

func TestAutopilotHoldsWhenBothLanesBlocked(t *testing.T) {
	g := NewGame(DefaultTuning(), rand.New(rand.NewSource(3)), nil)
	g.Start()

	lanes := g.Field().Lanes.Positions
	y := g.Player.Left.Pos.Y - 100
	size := g.Field().EntitySize()
	g.Blocks.Blocks = append(g.Blocks.Blocks,
		components.NewBlock(lanes[0], y, size, components.SideLeft),
		components.NewBlock(lanes[1], y, size, components.SideLeft),
	)

	moves := NewAutopilot(200).Decide(g.Snapshot())
	if moves[components.SideLeft] != components.DirNone {
		t.Errorf("Expected hold with both lanes blocked, got %s", moves[components.SideLeft])
	}
}

func TestAutopilotSeeksHealer(t *testing.T) {
	g := NewGame(DefaultTuning(), rand.New(rand.NewSource(3)), nil)
	g.Start()

	car := g.Player.Right
	car.Health = 40
	lanes := g.Field().Lanes.Positions
	g.Healers.Healers = append(g.Healers.Healers, components.NewHealer(lanes[3], 100, g.Field().EntitySize(), components.SideRight))

	moves := NewAutopilot(200).Decide(g.Snapshot())
	if moves[components.SideRight] != components.DirRight {
		t.Errorf("Expected right car to go for the healer, got %s", moves[components.SideRight])
	}
}

func TestAutopilotSteerAppliesMoves(t *testing.T) {
	g := NewGame(DefaultTuning(), rand.New(rand.NewSource(3)), nil)
	g.Start()

	car := g.Player.Left
	g.Blocks.Blocks = append(g.Blocks.Blocks, components.NewBlock(car.Pos.X, car.Pos.Y-50, g.Field().EntitySize(), components.SideLeft))

	NewAutopilot(200).Steer(g)
	if !car.Seeking || car.LaneIndex != 1 {
		t.Errorf("Expected left car seeking lane 1, got seeking=%v lane=%d", car.Seeking, car.LaneIndex)
	}
}
