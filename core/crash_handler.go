package core

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/balance/terminal"
)

// HandleCrash restores the terminal, records the panic in the debug log and on stderr, then exits.
// No-op for a nil value
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	terminal.EmergencyReset(os.Stdout)
	os.Stdout.Sync()

	log.Printf("crash: %v\n%s", r, stack)
	WriteCrashReport(os.Stderr, r, stack)
	os.Stderr.Sync()
	os.Exit(1)
}

// WriteCrashReport prints the panic banner and stack. Lines end in \r\n since the tty may still be raw
func WriteCrashReport(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n\x1b[31mbalance crashed: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "stack:\r\n%s\r\n", stack)
}

// Go runs fn on a new goroutine; a panic goes through HandleCrash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
