// @focus: #constants { ui }
package constants

import "time"

// Overlay
const (
	// BackgroundAlpha is the dim overlay level on title, pause and game over
	BackgroundAlpha = 200

	// TextFadeStep is the per-frame alpha change of fading labels
	TextFadeStep = 2
)

// Labels
const (
	StartText = "START GAME"
	PauseText = "Press P for pause"

	// StartHitHeight is the height of the start control hit box above its baseline
	StartHitHeight = 50.0

	ScoreTextSize     = 40.0
	ScoreTextMaxSize  = 80.0
	ScoreGrowFactor   = 1.02
	ScoreDropPerFrame = 2.0
)

// Frame pacing
const (
	// FrameUpdateInterval is the wall-clock duration of one simulation frame
	FrameUpdateInterval = time.Second / FramesPerSecond
)

// Terminal
const (
	// MinViewportRows is the smallest usable terminal height
	MinViewportRows = 16
)
