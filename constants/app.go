// @focus: #constants { app }
package constants

import "time"

// Environment
const (
	// EnvPrefix is prepended to every environment override key
	EnvPrefix = "BALANCE_"

	// DefaultEnvFile is loaded when present; missing file is not an error
	DefaultEnvFile = ".env"
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "balance.log"
)

// Gesture Bridge
const (
	DefaultGestureAddr   = "127.0.0.1:7777"
	DefaultMinConfidence = 0.3

	// GesturePingInterval must stay below GesturePongWait
	GesturePingInterval = 10 * time.Second
	GesturePongWait     = 60 * time.Second
	GestureWriteWait    = 10 * time.Second

	// GestureSendBuffer is the per-client outbound message backlog
	GestureSendBuffer = 16

	// GestureMaxMessage caps inbound websocket frames and POST bodies
	GestureMaxMessage = 4096
)

// Scores
const (
	DefaultScoresPath = "balance_scores.msgpack"
	ScoresKeep        = 20
)

// Simulate
const (
	DefaultSimulateFrames = 60 * 60 * 5
	AutopilotLookahead    = 250.0
)
