package input

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/render"
	"github.com/lixenwraith/balance/terminal"
)

func keyEvent(r rune) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: r}
}

func namedKey(k terminal.Key) terminal.Event {
	return terminal.Event{Type: terminal.EventKey, Key: k}
}

func newGame() *engine.Game {
	return engine.NewGame(engine.DefaultTuning(), rand.New(rand.NewSource(1)), nil)
}

func TestDefaultSystemKeys(t *testing.T) {
	h := NewHandler(nil)
	cases := []struct {
		ev   terminal.Event
		want IntentType
	}{
		{keyEvent('q'), IntentQuit},
		{namedKey(terminal.KeyEscape), IntentQuit},
		{namedKey(terminal.KeyCtrlC), IntentQuit},
		{keyEvent('m'), IntentToggleMute},
		{keyEvent('t'), IntentToggleAutopilot},
		{keyEvent('z'), IntentNone},
		{terminal.Event{Type: terminal.EventClosed}, IntentQuit},
	}
	for _, c := range cases {
		if got := h.Translate(c.ev).Type; got != c.want {
			t.Errorf("Expected intent %d for %+v, got %d", c.want, c.ev, got)
		}
	}
}

func TestGameKeysReachEngine(t *testing.T) {
	h := NewHandler(nil)
	g := newGame()

	if !Apply(g, h.Translate(namedKey(terminal.KeyEnter))) {
		t.Fatal("Expected Enter to be a game intent")
	}
	if g.Phase != engine.PhasePlaying {
		t.Fatalf("Expected Enter to start the round, got %s", g.Phase)
	}

	Apply(g, h.Translate(keyEvent('d')))
	if g.Player.Left.LaneIndex != 1 {
		t.Errorf("Expected d to move the left car right, got lane %d", g.Player.Left.LaneIndex)
	}
	Apply(g, h.Translate(namedKey(terminal.KeyRight)))
	if g.Player.Right.LaneIndex != 1 {
		t.Errorf("Expected right arrow to move the right car, got lane %d", g.Player.Right.LaneIndex)
	}

	Apply(g, h.Translate(keyEvent('p')))
	if !g.Paused() {
		t.Error("Expected p to pause")
	}
}

func TestSystemIntentsNotApplied(t *testing.T) {
	g := newGame()
	if Apply(g, Intent{Type: IntentQuit}) {
		t.Error("Expected quit to be left to the session")
	}
	if Apply(g, Intent{Type: IntentResize, Width: 10, Height: 10}) {
		t.Error("Expected resize to be left to the session")
	}
}

func TestMouseUsesViewport(t *testing.T) {
	h := NewHandler(nil)
	ev := terminal.Event{Type: terminal.EventMouse, MouseX: 5, MouseY: 5, MouseAction: terminal.MouseActionMove}
	if h.Translate(ev).Type != IntentNone {
		t.Error("Expected mouse ignored before a view is set")
	}

	g := newGame()
	v := render.NewViewport(120, 41, 1, 300, 800)
	h.SetView(v)

	// Cell on the start control row
	cx, cy := v.ToCell(150, 380)
	click := terminal.Event{Type: terminal.EventMouse, MouseX: cx, MouseY: cy,
		MouseBtn: terminal.MouseBtnLeft, MouseAction: terminal.MouseActionPress}
	in := h.Translate(click)
	if in.Type != IntentPointer || !in.Click {
		t.Fatalf("Expected pointer click, got %+v", in)
	}
	if in.Y < 380 || in.Y > 400 {
		t.Errorf("Expected world y within the clicked cell, got %g", in.Y)
	}

	Apply(g, in)
	if g.Phase != engine.PhasePlaying {
		t.Errorf("Expected click on start control to start, got %s", g.Phase)
	}

	right := click
	right.MouseBtn = terminal.MouseBtnRight
	if h.Translate(right).Type != IntentNone {
		t.Error("Expected right click ignored")
	}
}

func TestResizeIntent(t *testing.T) {
	in := NewHandler(nil).Translate(terminal.Event{Type: terminal.EventResize, Width: 90, Height: 30})
	if in.Type != IntentResize || in.Width != 90 || in.Height != 30 {
		t.Errorf("Expected resize 90x30, got %+v", in)
	}
}

func TestLoadKeyConfigMerges(t *testing.T) {
	override, err := LoadKeyConfig([]byte(`
[runes]
j = "left_car_left"
space = "start"
q = "none"

[keys]
left = "right_car_left"
`))
	if err != nil {
		t.Fatalf("Expected keymap to parse, got %v", err)
	}

	h := NewHandler(MergeKeyTable(DefaultKeyTable(), override))

	in := h.Translate(keyEvent('j'))
	if in.Type != IntentMove || in.Side != components.SideLeft || in.Dir != components.DirLeft {
		t.Errorf("Expected j bound to left car left, got %+v", in)
	}
	if h.Translate(keyEvent(' ')).Type != IntentStart {
		t.Error("Expected space rebound to start")
	}
	if h.Translate(keyEvent('q')).Type != IntentNone {
		t.Error("Expected q unbound")
	}
	if h.Translate(namedKey(terminal.KeyLeft)).Type != IntentMove {
		t.Error("Expected left arrow rebound to a move")
	}
	// Untouched defaults survive
	if h.Translate(keyEvent('m')).Type != IntentToggleMute {
		t.Error("Expected m still bound to mute")
	}
}

func TestMergeLeavesBaseUntouched(t *testing.T) {
	base := DefaultKeyTable()
	MergeKeyTable(base, &KeyTable{Runes: map[rune]KeyEntry{'q': {}}})
	if _, ok := base.Runes['q']; !ok {
		t.Error("Expected base table unchanged by merge")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown action":  "[runes]\nj = \"fly\"\n",
		"unknown key":     "[keys]\nf13 = \"quit\"\n",
		"multi-char rune": "[runes]\njk = \"quit\"\n",
		"unknown section": "[modes]\nx = \"quit\"\n",
	}
	for name, data := range cases {
		if _, err := LoadKeyConfig([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}

	_, err := LoadKeyConfig([]byte("[runes]\nj = \"fly\"\n"))
	if err == nil || !strings.Contains(err.Error(), "fly") {
		t.Errorf("Expected error naming the action, got %v", err)
	}
}
