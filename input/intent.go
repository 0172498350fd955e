package input

import (
	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/engine"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents, handled by the session
	IntentQuit            // q, Esc, Ctrl+C, Ctrl+Q
	IntentToggleMute      // m
	IntentToggleAutopilot // t
	IntentResize          // Terminal resize event

	// Game intents
	IntentGameKey // Raw key forwarded to engine.Game.HandleKey
	IntentStart
	IntentPause
	IntentMove    // Lane change for one car
	IntentPointer // Mouse motion or click in world coordinates
)

// Intent is a translated input action
type Intent struct {
	Type IntentType

	// IntentMove
	Side components.Side
	Dir  components.Direction

	// IntentGameKey
	Rune rune
	Code engine.KeyCode

	// IntentPointer
	X, Y  float64
	Click bool

	// IntentResize
	Width, Height int
}
