package components

import (
	"github.com/lixenwraith/balance/constants"
)

// TextLabel is a centered text with an optional hit box and alpha fade
type TextLabel struct {
	Text string
	X, Y float64

	NormalSize  float64
	HoverSize   float64
	CurrentSize float64

	// Hit box, zero width disables hover
	BoxX, BoxY, BoxW, BoxH float64

	Alpha     int
	disappear bool
	reappear  bool
}

// NewTextLabel creates a fully visible label. The hit box spans upward from boxBaseY by boxH
func NewTextLabel(text string, x, y, boxX, boxBaseY, boxW, boxH, normalSize, hoverSize float64) *TextLabel {
	return &TextLabel{
		Text:        text,
		X:           x,
		Y:           y,
		NormalSize:  normalSize,
		HoverSize:   hoverSize,
		CurrentSize: normalSize,
		BoxX:        boxX,
		BoxY:        boxBaseY - boxH,
		BoxW:        boxW,
		BoxH:        boxH,
		Alpha:       255,
	}
}

// Hover tests the hit box and swaps the current size accordingly
func (t *TextLabel) Hover(mx, my float64) bool {
	if t.BoxW > 0 && mx > t.BoxX && mx < t.BoxX+t.BoxW && my > t.BoxY && my < t.BoxY+t.BoxH {
		t.CurrentSize = t.HoverSize
		return true
	}
	t.CurrentSize = t.NormalSize
	return false
}

// Disappear starts fading out
func (t *TextLabel) Disappear() {
	t.disappear = true
	t.reappear = false
}

// Reappear starts fading in
func (t *TextLabel) Reappear() {
	t.reappear = true
	t.disappear = false
}

// Animate advances the fade by one frame
func (t *TextLabel) Animate() {
	switch {
	case t.reappear:
		t.Alpha += constants.TextFadeStep
		if t.Alpha > 255 {
			t.Alpha = 255
			t.reappear = false
		}
	case t.disappear:
		t.Alpha -= constants.TextFadeStep
		if t.Alpha < 0 {
			t.Alpha = 0
			t.disappear = false
		}
	}
}

// Visible reports whether any part of the label is drawn
func (t *TextLabel) Visible() bool {
	return t.Alpha > 0
}
