package terminal

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventMouse
	EventError
	EventClosed
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyCtrlC
	KeyCtrlQ
)

// Modifier is a keyboard modifier bitmask
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError

	MouseX      int
	MouseY      int
	MouseBtn    MouseButton
	MouseAction MouseAction
}

var keyNames = map[string]Key{
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"ctrl+c":    KeyCtrlC,
	"ctrl+q":    KeyCtrlQ,
}

// KeyByName resolves a lower-case key name used in keymap files
func KeyByName(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
