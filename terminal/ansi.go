// @focus: #terminal { ansi }
package terminal

// Control sequences written during emergency restore
var (
	csiRIS  = []byte("\x1bc") // Reset to Initial State
	csiSGR0 = []byte("\x1b[0m")

	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")

	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseDragOff   = []byte("\x1b[?1002l")
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
)
