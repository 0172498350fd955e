package renderers

import (
	"github.com/lixenwraith/balance/core"
	"github.com/lixenwraith/balance/render"
)

// FieldRenderer paints the two halves and the lane separators
type FieldRenderer struct{}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := ctx.View
	mid := v.OffsetX + v.Cols/2

	for y := v.OffsetY; y < v.OffsetY+v.Rows; y++ {
		for x := v.OffsetX; x < v.OffsetX+v.Cols; x++ {
			bg := core.RGBBlack
			if x < mid {
				bg = core.RGBWhite
			}
			buf.SetWithBg(x, y, ' ', bg, bg)
		}
	}
}

// LaneRenderer draws the separator inside each half
type LaneRenderer struct{}

func NewLaneRenderer() *LaneRenderer {
	return &LaneRenderer{}
}

func (r *LaneRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.State
	seps := [2]float64{s.LaneSpacing, s.Width*0.5 + s.LaneSpacing}
	for _, wx := range seps {
		cx, _ := ctx.View.ToCell(wx, 0)
		fg := contrast(halfColor(ctx, wx))
		for y := ctx.View.OffsetY; y < ctx.View.OffsetY+ctx.View.Rows; y++ {
			buf.SetFgOnly(cx, y, '│', fg)
		}
	}
}

// OverlayRenderer dims the field with the background alpha on title, pause and game over
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

func (r *OverlayRenderer) Active(ctx render.RenderContext) bool {
	return ctx.State.BackgroundAlpha > 0
}

func (r *OverlayRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	alpha := core.Alpha255(ctx.State.BackgroundAlpha)
	v := ctx.View
	for y := v.OffsetY; y < v.OffsetY+v.Rows; y++ {
		for x := v.OffsetX; x < v.OffsetX+v.Cols; x++ {
			buf.BlendBg(x, y, core.RGBWhite, alpha)
		}
	}
}
