package renderers

import (
	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/core"
	"github.com/lixenwraith/balance/render"
)

// sideColor is the entity tone of a side: black on the white half, white on the black half
func sideColor(s components.Side) core.RGB {
	return core.Gray(s.Shade())
}

// halfColor is the background of the half containing world x
func halfColor(ctx render.RenderContext, x float64) core.RGB {
	if x < ctx.State.Width*0.5 {
		return core.RGBWhite
	}
	return core.RGBBlack
}

// contrast picks black or white text over bg
func contrast(bg core.RGB) core.RGB {
	if int(bg.R)+int(bg.G)+int(bg.B) > 3*127 {
		return core.RGBBlack
	}
	return core.RGBWhite
}

// fillRect paints a block of cells centered on a world point
func fillRect(ctx render.RenderContext, buf *render.RenderBuffer, x, y, w, h float64, r rune, fg core.RGB, alpha float64) {
	cx, cy := ctx.View.ToCell(x, y)
	cw, ch := ctx.View.SpanX(w), ctx.View.SpanY(h)
	x0, y0 := cx-cw/2, cy-ch/2
	for dy := 0; dy < ch; dy++ {
		for dx := 0; dx < cw; dx++ {
			px, py := x0+dx, y0+dy
			if !ctx.View.Contains(px, py) {
				continue
			}
			if alpha >= 1 {
				buf.SetWithBg(px, py, r, fg, fg)
				continue
			}
			buf.BlendBg(px, py, fg, alpha)
		}
	}
}

// RegisterAll installs the game renderers in draw order
func RegisterAll(o *render.RenderOrchestrator) {
	o.Register(NewFieldRenderer(), render.PriorityBackground)
	o.Register(NewLaneRenderer(), render.PriorityLanes)
	o.Register(NewOverlayRenderer(), render.PriorityOverlay)
	o.Register(NewCarRenderer(), render.PriorityCars)
	o.Register(NewHealerRenderer(), render.PriorityHealers)
	o.Register(NewBlockRenderer(), render.PriorityBlocks)
	o.Register(NewParticleRenderer(), render.PriorityParticle)
	o.Register(NewLabelRenderer(), render.PriorityUI)
	o.Register(NewStatusRenderer(), render.PriorityStatus)
}
