package renderers

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/balance/core"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/render"
	"github.com/lixenwraith/balance/status"
)

// LabelRenderer draws the start control, pause hint, score and best score
type LabelRenderer struct{}

func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{}
}

func (r *LabelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.State

	start := s.Start
	if start.Size > 30 {
		start.Text = "[ " + start.Text + " ]"
	}
	drawLabel(ctx, buf, start)
	drawLabel(ctx, buf, s.Pause)

	score := s.ScoreLabel
	if score.Size >= 60 {
		score.Text = "« " + score.Text + " »"
	}
	drawLabel(ctx, buf, score)

	if s.Phase.CanStart() && s.BestScore > 0 {
		best := engine.LabelView{
			Text:  fmt.Sprintf("BEST %d", s.BestScore),
			X:     s.Width * 0.5,
			Y:     s.Height * 0.58,
			Alpha: start.Alpha,
		}
		drawLabel(ctx, buf, best)
	}
	if s.Phase == engine.PhasePlaying && !s.Spawning && s.Countdown > 0 {
		drawLabel(ctx, buf, engine.LabelView{
			Text:  fmt.Sprintf("%d", s.Countdown),
			X:     s.Width * 0.5,
			Y:     s.Height * 0.4,
			Alpha: 255,
		})
	}
}

// drawLabel centers text on the label point, fading from the cell background by alpha
func drawLabel(ctx render.RenderContext, buf *render.RenderBuffer, l engine.LabelView) {
	if l.Alpha <= 0 || l.Text == "" {
		return
	}
	cx, cy := ctx.View.ToCell(l.X, l.Y)
	x := cx - utf8.RuneCountInString(l.Text)/2
	alpha := core.Alpha255(l.Alpha)
	buf.Text(x, cy, l.Text, func(bg core.RGB) core.RGB {
		return bg.Blend(contrast(bg), alpha)
	})
}

// StatusRenderer draws the bottom status row
type StatusRenderer struct{}

func NewStatusRenderer() *StatusRenderer {
	return &StatusRenderer{}
}

func (r *StatusRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.State
	y := ctx.ScreenHeight - 1
	bg := core.Gray(40)
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, y, ' ', core.RGBWhite, bg)
	}

	text := fmt.Sprintf(" %s  score %d  best %d  speed %.1f  spawn %ds  L%d R%d",
		s.Phase, s.Score, s.BestScore, s.Speed, s.SpawnRate,
		s.Cars[0].Health, s.Cars[1].Health)
	if ctx.Muted {
		text += "  muted"
	}
	if ctx.GestureClients > 0 {
		text += fmt.Sprintf("  gesture %d (%d ok)", ctx.GestureClients, ctx.Metrics.Int(status.GestureAccepted))
	}
	if ctx.Autopilot {
		text += "  autopilot"
	}
	if ctx.Metrics != nil {
		text += fmt.Sprintf("  %.1fms", ctx.Metrics.Floats.Get(status.FrameMillis).Get())
	}
	buf.Text(0, y, text, func(core.RGB) core.RGB { return core.RGBWhite })
}
