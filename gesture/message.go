package gesture

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/events"
)

var (
	ErrUnknownSide   = errors.New("unknown side")
	ErrEmptyLabel    = errors.New("empty label")
	ErrLowConfidence = errors.New("confidence below threshold")
)

// Message is one classifier result, sent over HTTP or websocket
type Message struct {
	Side       string  `json:"side"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// PhaseMessage is broadcast to websocket clients when the round phase changes
type PhaseMessage struct {
	Type  string `json:"type"`
	Phase string `json:"phase"`
}

// DecodeMessage parses and validates a JSON message body
func DecodeMessage(data []byte) (Message, components.Side, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return m, 0, fmt.Errorf("decode gesture: %w", err)
	}
	side, err := parseSide(m.Side)
	if err != nil {
		return m, 0, err
	}
	if strings.TrimSpace(m.Label) == "" {
		return m, 0, ErrEmptyLabel
	}
	return m, side, nil
}

func parseSide(s string) (components.Side, error) {
	switch strings.ToLower(s) {
	case "left":
		return components.SideLeft, nil
	case "right":
		return components.SideRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSide, s)
	}
}

// Event builds the queue event for an accepted message
func Event(side components.Side, label string) events.GameEvent {
	return events.GameEvent{Type: events.EventGesture, Side: uint8(side), Label: label}
}

// Apply steers a car from a gesture event. Game ignores moves unless playing
func Apply(g *engine.Game, ev events.GameEvent) bool {
	if ev.Type != events.EventGesture {
		return false
	}
	if components.Side(ev.Side) == components.SideLeft {
		return g.MoveLeftCar(ev.Label)
	}
	return g.MoveRightCar(ev.Label)
}
