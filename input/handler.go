package input

import (
	"github.com/lixenwraith/balance/engine"
	"github.com/lixenwraith/balance/terminal"
)

// CellMapper converts screen cells to world coordinates
type CellMapper interface {
	ToWorld(cx, cy int) (float64, float64)
}

// Handler translates terminal events into intents
type Handler struct {
	table *KeyTable
	view  CellMapper
}

// NewHandler creates a handler; nil table uses the defaults
func NewHandler(table *KeyTable) *Handler {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Handler{table: table}
}

// SetView updates the cell mapping after a resize
func (h *Handler) SetView(v CellMapper) {
	h.view = v
}

// Translate converts one terminal event. Unbound input yields IntentNone
func (h *Handler) Translate(ev terminal.Event) Intent {
	switch ev.Type {
	case terminal.EventKey:
		return h.translateKey(ev)
	case terminal.EventMouse:
		if h.view == nil {
			return Intent{}
		}
		if ev.MouseAction != terminal.MouseActionMove && ev.MouseBtn != terminal.MouseBtnLeft {
			return Intent{}
		}
		x, y := h.view.ToWorld(ev.MouseX, ev.MouseY)
		return Intent{Type: IntentPointer, X: x, Y: y, Click: ev.MouseAction == terminal.MouseActionPress}
	case terminal.EventResize:
		return Intent{Type: IntentResize, Width: ev.Width, Height: ev.Height}
	case terminal.EventClosed:
		return Intent{Type: IntentQuit}
	}
	return Intent{}
}

func (h *Handler) translateKey(ev terminal.Event) Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key == terminal.KeyRune {
		entry, ok = h.table.Runes[ev.Rune]
	} else {
		entry, ok = h.table.Keys[ev.Key]
	}
	if !ok {
		return Intent{}
	}

	in := Intent{Type: entry.Intent, Side: entry.Side, Dir: entry.Dir}
	if entry.Intent == IntentGameKey {
		in.Rune = ev.Rune
		in.Code = gameKeyCode(ev.Key)
	}
	return in
}

func gameKeyCode(k terminal.Key) engine.KeyCode {
	switch k {
	case terminal.KeyLeft:
		return engine.KeyArrowLeft
	case terminal.KeyRight:
		return engine.KeyArrowRight
	case terminal.KeyEnter:
		return engine.KeyEnter
	default:
		return engine.KeyNone
	}
}

// Apply executes a game intent. Returns false for intents the session must handle
func Apply(g *engine.Game, in Intent) bool {
	switch in.Type {
	case IntentGameKey:
		g.HandleKey(in.Rune, in.Code)
	case IntentStart:
		g.Start()
	case IntentPause:
		g.TogglePause()
	case IntentMove:
		g.MoveCar(in.Side, in.Dir)
	case IntentPointer:
		g.HandleMouse(in.X, in.Y, in.Click)
	default:
		return false
	}
	return true
}
