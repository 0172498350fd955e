package render

import (
	"github.com/lixenwraith/balance/core"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
}

// RgbBackground fills cells no renderer touched
var RgbBackground = core.Gray(24)
