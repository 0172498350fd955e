package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balance/core"
)

// RenderBuffer is a cell compositor with touch tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Fg: core.RGBWhite, Bg: RgbBackground}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x, y; zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetWithBg writes an opaque cell
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Fg: fg, Bg: bg}
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground, keeping the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
}

// SetBgOnly replaces the background, keeping rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// BlendBg alpha-blends color over the background and foreground of a cell
func (b *RenderBuffer) BlendBg(x, y int, c core.RGB, alpha float64) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Bg = dst.Bg.Blend(c, alpha)
	dst.Fg = dst.Fg.Blend(c, alpha)
	b.touched[idx] = true
}

// Text writes s starting at x with a foreground chosen per cell by fg
func (b *RenderBuffer) Text(x, y int, s string, fg func(bg core.RGB) core.RGB) {
	for _, r := range s {
		if b.inBounds(x, y) {
			b.SetFgOnly(x, y, r, fg(b.cells[y*b.width+x].Bg))
		}
		x++
	}
}

// finalize sets default background to untouched cells before flush
func (b *RenderBuffer) finalize() {
	for i := range b.cells {
		if !b.touched[i] {
			b.cells[i].Bg = RgbBackground
		}
	}
}

func toColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FlushToScreen writes the buffer to a tcell screen and shows it
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	b.finalize()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.Foreground(toColor(c.Fg)).Background(toColor(c.Bg))
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
