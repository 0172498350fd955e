package engine

// Phase is the round lifecycle state
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

var phaseNames = [...]string{
	PhaseNotStarted: "not_started",
	PhasePlaying:    "playing",
	PhasePaused:     "paused",
	PhaseGameOver:   "game_over",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// CanStart reports whether the start control is live in this phase
func (p Phase) CanStart() bool {
	return p == PhaseNotStarted || p == PhaseGameOver
}
