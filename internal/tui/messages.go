// Package tui implements the kiosk terminal user interface using Bubble Tea.
package tui

import (
	"time"

	"github.com/berth-dev/wishkiosk/internal/kiosk"
)

// ============================================================================
// Submission Messages
// ============================================================================

// WishCompleteMsg signals that the submission pipeline for a cycle settled.
type WishCompleteMsg struct {
	Cycle    string
	Result   kiosk.PipelineResult
	Duration time.Duration
}

// ============================================================================
// Timer Messages
// ============================================================================

// IdleTimeoutMsg fires when the idle window armed at generation Gen elapses.
type IdleTimeoutMsg struct {
	Gen int
}

// SnowTickMsg advances the snowfall animation.
type SnowTickMsg struct{}

// CtrlCResetMsg clears the pending Ctrl+C confirmation.
type CtrlCResetMsg struct{}
