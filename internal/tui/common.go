// Package tui implements the kiosk terminal user interface using Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the kiosk program with the given model.
// If stdout is a TTY, it runs full screen with mouse support so touch
// presses count as input. Otherwise, it delegates to the FallbackRunner.
func Run(ctx context.Context, m tea.Model) error {
	if IsTTY() {
		p := tea.NewProgram(m,
			tea.WithContext(ctx),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		_, err := p.Run()
		return err
	}
	return NewFallbackRunner(os.Stdout).Run()
}

// IsPress reports whether msg is a pointer or touch press. Wheel and
// touchpad scrolls report a press action too and are not counted.
func IsPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel()
}

// IdleTimerCmd fires IdleTimeoutMsg for generation gen after timeout.
func IdleTimerCmd(gen int, timeout time.Duration) tea.Cmd {
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return IdleTimeoutMsg{Gen: gen}
	})
}

// SnowTickCmd schedules the next snowfall frame.
func SnowTickCmd() tea.Cmd {
	return tea.Tick(SnowInterval, func(time.Time) tea.Msg {
		return SnowTickMsg{}
	})
}

// CtrlCResetCmd clears the Ctrl+C confirmation after a second.
func CtrlCResetCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CtrlCResetMsg{}
	})
}

// IsQuitError reports whether err only reflects the program being cancelled.
func IsQuitError(err error) bool {
	return err == nil || errors.Is(err, tea.ErrProgramKilled)
}

// Describe renders a short program exit reason for the CLI.
func Describe(err error) string {
	if IsQuitError(err) {
		return "kiosk stopped"
	}
	return fmt.Sprintf("kiosk stopped: %v", err)
}
