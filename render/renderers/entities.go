package renderers

import (
	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/render"
)

// EntityRenderer draws blocks or healers
type EntityRenderer struct {
	kind components.EntityKind
}

func NewBlockRenderer() *EntityRenderer {
	return &EntityRenderer{kind: components.KindBlock}
}

func NewHealerRenderer() *EntityRenderer {
	return &EntityRenderer{kind: components.KindHealer}
}

func (r *EntityRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	list := ctx.State.Blocks
	if r.kind == components.KindHealer {
		list = ctx.State.Healers
	}
	for _, e := range list {
		if r.kind == components.KindHealer {
			drawHealer(ctx, buf, e)
			continue
		}
		fillRect(ctx, buf, e.Pos.X, e.Pos.Y, e.Size, e.Size, ' ', sideColor(e.Side), 1)
	}
}

// drawHealer draws a plus sign spanning the entity size
func drawHealer(ctx render.RenderContext, buf *render.RenderBuffer, e engine.EntityView) {
	c := sideColor(e.Side)
	thin := e.Size * 0.2
	fillRect(ctx, buf, e.Pos.X, e.Pos.Y, thin, e.Size, ' ', c, 1)
	fillRect(ctx, buf, e.Pos.X, e.Pos.Y, e.Size, thin, ' ', c, 1)
	if cx, cy, ok := ctx.WorldToScreen(e.Pos.X, e.Pos.Y); ok {
		buf.SetFgOnly(cx, cy, '+', contrast(c))
	}
}

// ParticleRenderer draws destruction particles, fading with remaining life
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, p := range ctx.State.Particles {
		cx, cy, ok := ctx.WorldToScreen(p.X, p.Y)
		if !ok {
			continue
		}
		c := sideColor(components.SideLeft)
		if p.X >= ctx.State.Width*0.5 {
			c = sideColor(components.SideRight)
		}
		alpha := (50 + 150*p.Life) / 255
		bg := buf.Get(cx, cy).Bg
		buf.SetFgOnly(cx, cy, '•', bg.Blend(c, alpha))
	}
}
