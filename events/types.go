package events

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStart marks a fresh round
	// Trigger: start control clicked or Enter | Payload: nil
	EventRoundStart EventType = iota

	// EventSpawnStarted marks the end of the first-spawn countdown
	// Trigger: Game countdown reaches zero | Payload: nil
	EventSpawnStarted

	// EventPauseToggled signals pause state change
	// Trigger: 'p' key | Amount: 1 paused, 0 resumed
	EventPauseToggled

	// EventLaneChange signals an accepted lane change
	// Trigger: Car.Move accepted | Side: moving car
	EventLaneChange

	// EventBlockHit signals a hazard striking a car
	// Trigger: BlockManager collision | Side: struck car, Amount: damage
	EventBlockHit

	// EventHealerPicked signals a heal pickup
	// Trigger: HealerManager collision | Side: healed car, Amount: heal
	EventHealerPicked

	// EventScoreTick signals score and difficulty ramp
	// Trigger: score interval | Amount: new score
	EventScoreTick

	// EventGameOver signals the end of a round
	// Trigger: a car health reaches zero | Amount: final score
	EventGameOver

	// EventGesture carries a classifier label from the gesture bridge
	// Consumer: main loop -> Game.MoveLeftCar/MoveRightCar | Side, Label
	EventGesture

	// EventMuteToggled signals audio mute change
	// Trigger: 'm' key | Amount: 1 muted, 0 unmuted
	EventMuteToggled
)

var eventNames = map[EventType]string{
	EventRoundStart:   "round_start",
	EventSpawnStarted: "spawn_started",
	EventPauseToggled: "pause_toggled",
	EventLaneChange:   "lane_change",
	EventBlockHit:     "block_hit",
	EventHealerPicked: "healer_picked",
	EventScoreTick:    "score_tick",
	EventGameOver:     "game_over",
	EventGesture:      "gesture",
	EventMuteToggled:  "mute_toggled",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued event. Side uses components.Side values (0 left, 1 right)
type GameEvent struct {
	Type   EventType
	Side   uint8
	Frame  int64
	Amount int
	Label  string
}
