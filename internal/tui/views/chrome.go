// Package views provides one view model per kiosk screen.
package views

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/berth-dev/wishkiosk/internal/tui"
)

// Chrome is the campaign copy shared by every screen.
type Chrome struct {
	Title    string
	Subtitle string
	Sponsor  string
	// PerWish is the formatted donation pledged for each wish.
	PerWish string
}

// Header renders the campaign header line across width.
func (c Chrome) Header(width int) string {
	left := tui.AccentStyle.Render(c.Sponsor)
	right := lipgloss.JoinVertical(lipgloss.Right,
		tui.HeaderStyle.Render(c.Title),
		tui.DimStyle.Render(c.Subtitle),
	)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, lipgloss.NewStyle().Width(gap).Render(""), right)
}
