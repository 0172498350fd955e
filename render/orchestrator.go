package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

type layer struct {
	r        SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator composites registered layers into a buffer and flushes it to the screen
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []layer
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(width, height),
		layers: make([]layer, 0, 16),
	}
}

// Register adds r at priority. Equal priorities draw in registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	o.layers = append(o.layers, layer{r: r, priority: priority})
	slices.SortStableFunc(o.layers, func(a, b layer) int {
		return int(a.priority) - int(b.priority)
	})
}

// Resize updates buffer dimensions and repaints the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	if o.screen != nil {
		o.screen.Sync()
	}
}

// Buffer exposes the composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame clears the buffer, draws every active layer and flushes
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()
	for _, l := range o.layers {
		if g, ok := l.r.(Gated); ok && !g.Active(ctx) {
			continue
		}
		l.r.Render(ctx, o.buffer)
	}
	o.buffer.FlushToScreen(o.screen)
}
