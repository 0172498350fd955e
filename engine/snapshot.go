package engine

import (
	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/vmath"
)

// CarView is the render-facing state of one car
type CarView struct {
	Side        components.Side
	Pos         vmath.Vec2F
	Radius      float64
	Health      int
	DamageFlash int
	Seeking     bool
	LaneIndex   int
}

// EntityView is the render-facing state of a block or healer
type EntityView struct {
	Kind components.EntityKind
	Pos  vmath.Vec2F
	Size float64
	Side components.Side
}

// ParticleView is the render-facing state of a particle
type ParticleView struct {
	X, Y  float64
	Size  float64
	Shade uint8
	Life  float64
}

// LabelView is the render-facing state of a text label
type LabelView struct {
	Text  string
	X, Y  float64
	Size  float64
	Alpha int
}

// Snapshot is a value copy of the game state; safe to hold across frames
type Snapshot struct {
	Phase Phase
	Frame int64
	Speed float64

	Score     int
	BestScore int

	Countdown       int
	Spawning        bool
	BackgroundAlpha int
	SpawnRate       int

	Width, Height float64
	Lanes         [4]float64
	LaneSpacing   float64

	Cars      [2]CarView
	Blocks    []EntityView
	Healers   []EntityView
	Particles []ParticleView

	Start      LabelView
	Pause      LabelView
	ScoreLabel LabelView
}

// Snapshot copies the current state for renderers and policies
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:           g.Phase,
		Frame:           g.Clock.Frame,
		Speed:           g.Clock.Speed,
		Score:           g.Score,
		BestScore:       g.BestScore,
		Countdown:       g.FirstSpawnTime,
		Spawning:        g.StartSpawning,
		BackgroundAlpha: g.BackgroundAlpha,
		SpawnRate:       g.Blocks.SpawnRate,
		Width:           g.field.Width,
		Height:          g.field.Height,
		Lanes:           g.field.Lanes.Positions,
		LaneSpacing:     g.field.Lanes.Spacing,
		Start:           labelView(g.StartLabel),
		Pause:           labelView(g.PauseLabel),
		ScoreLabel:      labelView(g.ScoreLabel),
	}

	s.Cars[components.SideLeft] = carView(g.Player.Left)
	s.Cars[components.SideRight] = carView(g.Player.Right)

	s.Blocks = entityViews(g.Blocks.Blocks)
	s.Healers = entityViews(g.Healers.Healers)

	n := g.Blocks.Particles.Len() + g.Healers.Particles.Len()
	s.Particles = make([]ParticleView, 0, n)
	for _, ps := range [2][]components.Particle{g.Blocks.Particles.Particles, g.Healers.Particles.Particles} {
		for i := range ps {
			p := &ps[i]
			s.Particles = append(s.Particles, ParticleView{X: p.X, Y: p.Y, Size: p.Size, Shade: p.Shade, Life: p.Life()})
		}
	}
	return s
}

func carView(c *components.Car) CarView {
	return CarView{
		Side:        c.Side,
		Pos:         c.Pos,
		Radius:      c.Radius,
		Health:      c.Health,
		DamageFlash: c.DamageFlash,
		Seeking:     c.Seeking,
		LaneIndex:   c.LaneIndex,
	}
}

func entityViews(src []components.FallingEntity) []EntityView {
	out := make([]EntityView, len(src))
	for i := range src {
		out[i] = EntityView{Kind: src[i].Kind, Pos: src[i].Pos, Size: src[i].W, Side: src[i].Side}
	}
	return out
}

func labelView(l *components.TextLabel) LabelView {
	return LabelView{Text: l.Text, X: l.X, Y: l.Y, Size: l.CurrentSize, Alpha: l.Alpha}
}
