// Package commands provides Bubble Tea commands for kiosk operations.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/berth-dev/wishkiosk/internal/kiosk"
	"github.com/berth-dev/wishkiosk/internal/tui"
)

// SubmitWishCmd runs the submission pipeline for one cycle in the
// background and reports the outcome as tui.WishCompleteMsg.
func SubmitWishCmd(ctx context.Context, p *kiosk.Pipeline, sub kiosk.WishSubmission, cycle string) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		result := p.Run(ctx, sub)
		return tui.WishCompleteMsg{
			Cycle:    cycle,
			Result:   result,
			Duration: time.Since(start),
		}
	}
}
