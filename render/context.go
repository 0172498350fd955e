package render

import (
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/status"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	State engine.Snapshot
	View  Viewport

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Session flags shown in the status row
	Muted          bool
	GestureClients int
	Autopilot      bool

	// Metrics is the session registry; nil in headless tests
	Metrics *status.Registry
}

// WorldToScreen maps a world point to a screen cell.
// visible is false when the cell falls outside the field
func (rc *RenderContext) WorldToScreen(x, y float64) (int, int, bool) {
	cx, cy := rc.View.ToCell(x, y)
	return cx, cy, rc.View.Contains(cx, cy)
}
