package engine

import (
	"log"
	"math/rand"

	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/constants"
	"github.com/lixenwraith/balance/core"
	"github.com/lixenwraith/balance/events"
	"github.com/lixenwraith/balance/systems"
	"github.com/lixenwraith/balance/vmath"
)

// Classifier labels that select the outer lane of each side
const (
	LabelLeftSide  = "LEFTSIDE"
	LabelRightSide = "RIGHTSIDE"
)

// KeyCode identifies non-rune keys routed to HandleKey
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyArrowLeft
	KeyArrowRight
	KeyEnter
)

// Game orchestrates a Balance round. All methods must be called from a single goroutine;
// concurrent producers talk to it through the event queue
type Game struct {
	tuning Tuning
	field  components.Field
	rng    *rand.Rand
	queue  *events.EventQueue

	Phase   Phase
	Clock   *core.SimulationClock
	Player  *components.Player
	Blocks  *systems.BlockManager
	Healers *systems.HealerManager

	Score     int
	BestScore int

	// Countdown seconds before hazards and healers spawn
	FirstSpawnTime int
	StartSpawning  bool

	// BackgroundAlpha dims the field on title, pause and game over
	BackgroundAlpha int
	fadeBackground  bool

	StartLabel *components.TextLabel
	PauseLabel *components.TextLabel
	ScoreLabel *components.TextLabel

	mouseX, mouseY float64
}

// NewGame creates a game on the title screen. queue may be nil when events are not consumed
func NewGame(tuning Tuning, rng *rand.Rand, queue *events.EventQueue) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if queue == nil {
		queue = events.NewEventQueue()
	}
	g := &Game{
		tuning:          tuning,
		field:           components.NewField(tuning.Width, tuning.Height),
		rng:             rng,
		queue:           queue,
		Phase:           PhaseNotStarted,
		BackgroundAlpha: constants.BackgroundAlpha,
	}

	w, h := tuning.Width, tuning.Height
	g.StartLabel = components.NewTextLabel(constants.StartText, w*0.5, h*0.5, 0, h*0.5, w, constants.StartHitHeight, 30, 40)
	g.PauseLabel = components.NewTextLabel(constants.PauseText, w*0.5, h*0.65, 0, 0, 0, 0, 30, 30)
	g.resetRound()
	return g
}

// resetRound rebuilds player, managers, clock and score
func (g *Game) resetRound() {
	t := g.tuning
	g.Clock = core.NewSimulationClock(t.InitialSpeed, t.MinSpeed, t.MaxSpeed)
	seek := t.Seek
	g.Player = components.NewPlayer(g.field.Lanes, t.Height*t.CarYRatio, &seek)
	g.Blocks = systems.NewBlockManager(g.field, t.Blocks, g.rng)
	g.Healers = systems.NewHealerManager(g.field, t.Healers, g.rng)
	g.Score = 0
	g.FirstSpawnTime = t.FirstSpawnTime
	g.StartSpawning = false
	g.ScoreLabel = components.NewTextLabel(FormatScore(0), t.Width*0.5, t.Height*0.1, 0, 0, 0, 0, constants.ScoreTextSize, constants.ScoreTextSize)
}

// Field returns the simulation area
func (g *Game) Field() components.Field {
	return g.field
}

// Tuning returns the round parameters
func (g *Game) Tuning() Tuning {
	return g.tuning
}

// Events returns the queue the game publishes to
func (g *Game) Events() *events.EventQueue {
	return g.queue
}

func (g *Game) emit(t events.EventType, side components.Side, amount int) {
	g.queue.Push(events.GameEvent{
		Type:   t,
		Side:   uint8(side),
		Frame:  g.Clock.Frame,
		Amount: amount,
	})
}

// Start begins a new round. Ignored unless the phase allows starting
func (g *Game) Start() bool {
	if !g.Phase.CanStart() {
		return false
	}
	g.resetRound()
	g.Phase = PhasePlaying

	g.StartLabel.Disappear()
	g.PauseLabel.Disappear()
	g.fadeBackground = true

	log.Printf("round started: speed=%.2f spawnRate=%d", g.Clock.Speed, g.Blocks.SpawnRate)
	g.emit(events.EventRoundStart, components.SideLeft, 0)
	return true
}

// TogglePause flips between playing and paused
func (g *Game) TogglePause() bool {
	switch g.Phase {
	case PhasePlaying:
		g.Phase = PhasePaused
		g.BackgroundAlpha = constants.BackgroundAlpha
		g.emit(events.EventPauseToggled, components.SideLeft, 1)
	case PhasePaused:
		g.Phase = PhasePlaying
		g.fadeBackground = true
		g.emit(events.EventPauseToggled, components.SideLeft, 0)
	default:
		return false
	}
	return true
}

// Paused reports whether gameplay is frozen by pause
func (g *Game) Paused() bool {
	return g.Phase == PhasePaused
}

// GameOver reports whether the round has ended
func (g *Game) GameOver() bool {
	return g.Phase == PhaseGameOver
}

// Update advances the whole simulation by one rendered frame
func (g *Game) Update() {
	g.animateLabels()
	if g.Phase == PhasePaused {
		return
	}

	g.StartLabel.Hover(g.mouseX, g.mouseY)
	if g.fadeBackground {
		g.BackgroundAlpha--
		if g.BackgroundAlpha < 0 {
			g.BackgroundAlpha = 0
			g.fadeBackground = false
		}
	}

	if g.Phase != PhasePlaying {
		return
	}

	g.Clock.Tick()
	g.countdown()

	g.Player.Update()

	g.Blocks.Update(g.Clock, g.StartSpawning)
	for _, hit := range g.Blocks.CheckCollisions(g.Player) {
		g.emit(events.EventBlockHit, hit.Side, hit.Outcome.Amount)
	}
	if g.Player.Defeated() {
		g.endRound()
		return
	}

	g.Healers.Update(g.Clock, g.StartSpawning, g.Blocks.Blocks)
	for _, hit := range g.Healers.CheckCollisions(g.Player) {
		g.emit(events.EventHealerPicked, hit.Side, hit.Outcome.Amount)
	}

	if g.StartSpawning && g.Clock.Every(g.tuning.ScoreInterval) {
		g.ramp()
	}
}

// countdown decrements the first-spawn timer once per second of gameplay
func (g *Game) countdown() {
	if g.StartSpawning || !g.Clock.Every(int64(g.tuning.FPS)) {
		return
	}
	g.FirstSpawnTime--
	if g.FirstSpawnTime <= 0 {
		g.StartSpawning = true
		g.emit(events.EventSpawnStarted, components.SideLeft, 0)
	}
}

// ramp raises score, fall speed and hazard frequency together
func (g *Game) ramp() {
	g.Score = vmath.ConstrainInt(g.Score+1, 0, g.tuning.MaxScore)
	g.Clock.ScaleSpeed(g.tuning.SpeedRamp)
	g.Blocks.Ramp()
	g.ScoreLabel.Text = FormatScore(g.Score)
	g.emit(events.EventScoreTick, components.SideLeft, g.Score)
}

func (g *Game) endRound() {
	g.Phase = PhaseGameOver
	g.BackgroundAlpha = constants.BackgroundAlpha
	g.fadeBackground = false
	g.StartLabel.Reappear()
	g.PauseLabel.Reappear()
	if g.Score > g.BestScore {
		g.BestScore = g.Score
	}

	loser := components.SideLeft
	if !g.Player.Right.Alive() {
		loser = components.SideRight
	}
	log.Printf("round over: score=%d frames=%d loser=%s", g.Score, g.Clock.Frame, loser)
	g.emit(events.EventGameOver, loser, g.Score)
}

// animateLabels runs the cosmetic layer, which keeps moving while paused
func (g *Game) animateLabels() {
	g.StartLabel.Animate()
	g.PauseLabel.Animate()

	if g.Phase == PhaseGameOver {
		l := g.ScoreLabel
		l.CurrentSize = vmath.Constrain(l.CurrentSize*constants.ScoreGrowFactor, l.NormalSize, constants.ScoreTextMaxSize)
		l.Y = vmath.Constrain(l.Y+constants.ScoreDropPerFrame, g.tuning.Height*0.1, g.tuning.Height*0.2)
	}
}

// HandleMouse records the pointer in world coordinates and starts a round on a start-control click
func (g *Game) HandleMouse(x, y float64, click bool) {
	g.mouseX, g.mouseY = x, y
	if g.StartLabel.Hover(x, y) && click {
		g.Start()
	}
}

// HandleKey routes keyboard input: p pauses, a/d steer the left car, arrows steer the right car
func (g *Game) HandleKey(r rune, code KeyCode) {
	switch r {
	case 'p', 'P':
		g.TogglePause()
	case 'a', 'A':
		g.MoveCar(components.SideLeft, components.DirLeft)
	case 'd', 'D':
		g.MoveCar(components.SideLeft, components.DirRight)
	case ' ':
		g.Start()
	}

	switch code {
	case KeyArrowLeft:
		g.MoveCar(components.SideRight, components.DirLeft)
	case KeyArrowRight:
		g.MoveCar(components.SideRight, components.DirRight)
	case KeyEnter:
		g.Start()
	}
}

// MoveCar requests a lane change on one side. Only honoured while playing
func (g *Game) MoveCar(side components.Side, dir components.Direction) bool {
	if g.Phase != PhasePlaying {
		return false
	}
	if !g.Player.Car(side).Move(dir) {
		return false
	}
	g.emit(events.EventLaneChange, side, int(dir))
	return true
}

// MoveLeftCar applies a classifier label: LEFTSIDE moves left, anything else moves right
func (g *Game) MoveLeftCar(label string) bool {
	if label == LabelLeftSide {
		return g.MoveCar(components.SideLeft, components.DirLeft)
	}
	return g.MoveCar(components.SideLeft, components.DirRight)
}

// MoveRightCar applies a classifier label: RIGHTSIDE moves right, anything else moves left
func (g *Game) MoveRightCar(label string) bool {
	if label == LabelRightSide {
		return g.MoveCar(components.SideRight, components.DirRight)
	}
	return g.MoveCar(components.SideRight, components.DirLeft)
}
