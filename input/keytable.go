package input

import (
	"maps"

	"github.com/lixenwraith/balance/components"
	"github.com/lixenwraith/balance/terminal"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Side   components.Side
	Dir    components.Direction
}

// KeyTable maps keys to entries
type KeyTable struct {
	// Printable keys
	Runes map[rune]KeyEntry

	// Named keys (arrows, Enter, Ctrl+*)
	Keys map[terminal.Key]KeyEntry
}

var (
	entryNone      = KeyEntry{}
	entryQuit      = KeyEntry{Intent: IntentQuit}
	entryMute      = KeyEntry{Intent: IntentToggleMute}
	entryAutopilot = KeyEntry{Intent: IntentToggleAutopilot}
	entryGame      = KeyEntry{Intent: IntentGameKey}
	entryStart     = KeyEntry{Intent: IntentStart}
	entryPause     = KeyEntry{Intent: IntentPause}
)

func moveEntry(side components.Side, dir components.Direction) KeyEntry {
	return KeyEntry{Intent: IntentMove, Side: side, Dir: dir}
}

// actionRegistry maps keymap action names to entries
var actionRegistry = map[string]KeyEntry{
	"none":            entryNone,
	"quit":            entryQuit,
	"mute":            entryMute,
	"autopilot":       entryAutopilot,
	"game":            entryGame,
	"start":           entryStart,
	"pause":           entryPause,
	"left_car_left":   moveEntry(components.SideLeft, components.DirLeft),
	"left_car_right":  moveEntry(components.SideLeft, components.DirRight),
	"right_car_left":  moveEntry(components.SideRight, components.DirLeft),
	"right_car_right": moveEntry(components.SideRight, components.DirRight),
}

// ActionEntry returns the entry for an action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}

// DefaultKeyTable returns the default bindings. Game keys pass through to the engine's own routing
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]KeyEntry{
			'q': entryQuit,
			'Q': entryQuit,
			'm': entryMute,
			'M': entryMute,
			't': entryAutopilot,
			'T': entryAutopilot,
			'p': entryGame,
			'P': entryGame,
			'a': entryGame,
			'A': entryGame,
			'd': entryGame,
			'D': entryGame,
			' ': entryGame,
		},
		Keys: map[terminal.Key]KeyEntry{
			terminal.KeyEscape: entryQuit,
			terminal.KeyCtrlC:  entryQuit,
			terminal.KeyCtrlQ:  entryQuit,
			terminal.KeyEnter:  entryGame,
			terminal.KeyLeft:   entryGame,
			terminal.KeyRight:  entryGame,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}
