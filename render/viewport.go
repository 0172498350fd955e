package render

import (
	"math"
)

// CellAspect is the height-to-width ratio of a terminal cell
const CellAspect = 2.0

// Viewport maps world coordinates onto a centered block of terminal cells,
// preserving the world aspect ratio for tall cells
type Viewport struct {
	OffsetX, OffsetY int
	Cols, Rows       int

	WorldW, WorldH float64
}

// NewViewport fits the world into a screen, leaving statusRows at the bottom
func NewViewport(screenW, screenH, statusRows int, worldW, worldH float64) Viewport {
	availH := max(screenH-statusRows, 1)
	screenW = max(screenW, 1)

	rows := availH
	cols := int(math.Round(worldW / worldH * float64(rows) * CellAspect))
	if cols > screenW {
		cols = screenW
		rows = int(math.Round(float64(cols) * worldH / worldW / CellAspect))
	}
	cols = max(cols, 1)
	rows = max(min(rows, availH), 1)

	return Viewport{
		OffsetX: (screenW - cols) / 2,
		OffsetY: (availH - rows) / 2,
		Cols:    cols,
		Rows:    rows,
		WorldW:  worldW,
		WorldH:  worldH,
	}
}

// ToCell returns the cell containing a world point
func (v Viewport) ToCell(x, y float64) (int, int) {
	cx := int(math.Floor(x / v.WorldW * float64(v.Cols)))
	cy := int(math.Floor(y / v.WorldH * float64(v.Rows)))
	return v.OffsetX + cx, v.OffsetY + cy
}

// ToWorld returns the world point at the center of a cell
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	x := (float64(cx-v.OffsetX) + 0.5) * v.WorldW / float64(v.Cols)
	y := (float64(cy-v.OffsetY) + 0.5) * v.WorldH / float64(v.Rows)
	return x, y
}

// Contains reports whether a cell lies inside the mapped field
func (v Viewport) Contains(cx, cy int) bool {
	return cx >= v.OffsetX && cx < v.OffsetX+v.Cols && cy >= v.OffsetY && cy < v.OffsetY+v.Rows
}

// SpanX converts a world width into a cell count, at least one
func (v Viewport) SpanX(d float64) int {
	return max(int(math.Round(d/v.WorldW*float64(v.Cols))), 1)
}

// SpanY converts a world height into a cell count, at least one
func (v Viewport) SpanY(d float64) int {
	return max(int(math.Round(d/v.WorldH*float64(v.Rows))), 1)
}
