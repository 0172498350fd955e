package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal wraps a tcell screen and pumps its input into a channel
type Terminal struct {
	screen tcell.Screen

	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// New creates a terminal on the controlling tty
func New() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s), nil
}

// NewWithScreen wraps an existing screen, e.g. tcell.NewSimulationScreen
func NewWithScreen(s tcell.Screen) *Terminal {
	return &Terminal{
		screen:  s,
		eventCh: make(chan Event, 256),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Init enters full-screen mode with mouse reporting
func (t *Terminal) Init() error {
	saveState(os.Stdin)
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseMotionEvents)
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Fini stops input and restores the terminal
func (t *Terminal) Fini() {
	t.Stop()
	t.screen.DisableMouse()
	t.screen.Fini()
}

// Screen exposes the underlying tcell screen for renderers
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the terminal size in cells
func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

// Show flushes pending cell changes
func (t *Terminal) Show() {
	t.screen.Show()
}

// Sync repaints the whole screen, used after resize
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// Events returns the translated input channel. Start must be called first
func (t *Terminal) Events() <-chan Event {
	return t.eventCh
}

// Start begins polling input in a goroutine
func (t *Terminal) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	go t.pollLoop()
}

// Stop ends the polling goroutine
func (t *Terminal) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	t.mu.Unlock()

	close(t.stopCh)
	// Unblock PollEvent
	t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-t.doneCh
}

func (t *Terminal) pollLoop() {
	defer close(t.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		raw := t.screen.PollEvent()
		select {
		case <-t.stopCh:
			return
		default:
		}
		if raw == nil {
			t.send(Event{Type: EventClosed})
			return
		}
		if ev, ok := Translate(raw); ok {
			t.send(ev)
		}
	}
}

// send drops the event when the consumer is stopping
func (t *Terminal) send(ev Event) {
	select {
	case t.eventCh <- ev:
	case <-t.stopCh:
	}
}

// Translate converts a tcell event; ok is false for events the game ignores
func Translate(raw tcell.Event) (Event, bool) {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		return translateKey(ev), true
	case *tcell.EventMouse:
		x, y := ev.Position()
		out := Event{Type: EventMouse, MouseX: x, MouseY: y, MouseAction: MouseActionMove}
		switch btn := ev.Buttons(); {
		case btn&tcell.Button1 != 0:
			out.MouseBtn, out.MouseAction = MouseBtnLeft, MouseActionPress
		case btn&tcell.Button3 != 0:
			out.MouseBtn, out.MouseAction = MouseBtnMiddle, MouseActionPress
		case btn&tcell.Button2 != 0:
			out.MouseBtn, out.MouseAction = MouseBtnRight, MouseActionPress
		}
		return out, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventError:
		return Event{Type: EventError, Err: ev}, true
	default:
		return Event{}, false
	}
}

func translateKey(ev *tcell.EventKey) Event {
	out := Event{Type: EventKey, Modifiers: translateMods(ev.Modifiers())}
	switch ev.Key() {
	case tcell.KeyRune:
		out.Key, out.Rune = KeyRune, ev.Rune()
	case tcell.KeyEscape:
		out.Key = KeyEscape
	case tcell.KeyEnter:
		out.Key = KeyEnter
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = KeyBackspace
	case tcell.KeyTab:
		out.Key = KeyTab
	case tcell.KeyUp:
		out.Key = KeyUp
	case tcell.KeyDown:
		out.Key = KeyDown
	case tcell.KeyLeft:
		out.Key = KeyLeft
	case tcell.KeyRight:
		out.Key = KeyRight
	case tcell.KeyCtrlC:
		out.Key = KeyCtrlC
	case tcell.KeyCtrlQ:
		out.Key = KeyCtrlQ
	}
	return out
}

func translateMods(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	return out
}
