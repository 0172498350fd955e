package render

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// Gated renderers are skipped for frames where Active returns false
type Gated interface {
	Active(ctx RenderContext) bool
}
