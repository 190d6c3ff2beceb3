// Package tui implements the kiosk terminal user interface using Bubble Tea.
package tui

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoTerminal is returned when the kiosk is started without a terminal.
var ErrNoTerminal = errors.New("the kiosk needs an interactive terminal")

// FallbackRunner handles non-TTY execution by guiding users to CLI commands.
type FallbackRunner struct {
	out io.Writer
}

// NewFallbackRunner creates a new FallbackRunner writing to out.
func NewFallbackRunner(out io.Writer) *FallbackRunner {
	return &FallbackRunner{out: out}
}

// Run prints guidance for non-interactive use and returns ErrNoTerminal.
func (f *FallbackRunner) Run() error {
	fmt.Fprintln(f.out, "Non-TTY environment detected.")
	fmt.Fprintln(f.out, "Use 'wishkiosk preview <attract|compose|processing|success>' to render a screen,")
	fmt.Fprintln(f.out, "or 'wishkiosk report' to summarize the event log.")
	return ErrNoTerminal
}
