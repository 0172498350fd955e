package terminal

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

var (
	savedMu    sync.Mutex
	savedState *term.State
	savedFd    int
)

// saveState records the cooked tty mode so EmergencyReset can restore it
func saveState(f *os.File) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	st, err := term.GetState(fd)
	if err != nil {
		return
	}
	savedMu.Lock()
	savedState, savedFd = st, fd
	savedMu.Unlock()
}

// IsTerminal reports whether f is attached to a tty
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// EmergencyReset attempts to restore terminal to a sane state.
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	savedMu.Lock()
	st, fd := savedState, savedFd
	savedMu.Unlock()
	if st != nil {
		term.Restore(fd, st)
	}
}
