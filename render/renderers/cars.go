package renderers

import (
	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/core"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/render"
)

// CarRenderer draws both cars, their health bars and the damage flash
type CarRenderer struct{}

func NewCarRenderer() *CarRenderer {
	return &CarRenderer{}
}

func (r *CarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, car := range ctx.State.Cars {
		r.drawCar(ctx, buf, car)
		r.drawHealth(ctx, buf, car)
		r.drawFlash(ctx, buf, car)
	}
}

func (r *CarRenderer) drawCar(ctx render.RenderContext, buf *render.RenderBuffer, car engine.CarView) {
	c := sideColor(car.Side)
	fillRect(ctx, buf, car.Pos.X, car.Pos.Y, car.Radius*4, car.Radius*4, ' ', c, 0.35)
	if cx, cy, ok := ctx.WorldToScreen(car.Pos.X, car.Pos.Y); ok {
		buf.SetFgOnly(cx, cy, '●', c)
	}
}

// drawHealth fills a bar from the top of the field proportional to health
func (r *CarRenderer) drawHealth(ctx render.RenderContext, buf *render.RenderBuffer, car engine.CarView) {
	s := ctx.State
	x := s.Width * 0.02
	if car.Side == components.SideRight {
		x = s.Width * 0.96
	}
	length := float64(car.Health) / float64(constants.MaxHealth) * s.Height * 0.3
	if length <= 0 {
		return
	}
	cx, top := ctx.View.ToCell(x, 0)
	rows := ctx.View.SpanY(length)
	c := sideColor(car.Side)
	for dy := 0; dy < rows; dy++ {
		buf.BlendBg(cx, top+dy, c, core.Alpha255(200))
	}
}

// drawFlash tints the car's half after a hit or heal
func (r *CarRenderer) drawFlash(ctx render.RenderContext, buf *render.RenderBuffer, car engine.CarView) {
	if car.DamageFlash <= 0 {
		return
	}
	v := ctx.View
	mid := v.OffsetX + v.Cols/2
	x0, x1 := v.OffsetX, mid
	if car.Side == components.SideRight {
		x0, x1 = mid, v.OffsetX+v.Cols
	}
	alpha := core.Alpha255(car.DamageFlash) * 0.5
	c := sideColor(car.Side)
	for y := v.OffsetY; y < v.OffsetY+v.Rows; y++ {
		for x := x0; x < x1; x++ {
			buf.BlendBg(x, y, c, alpha)
		}
	}
}
