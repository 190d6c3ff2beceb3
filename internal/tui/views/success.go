package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/berth-dev/wishkiosk/internal/tui"
)

// NewWishMsg is sent when the visitor asks to send another wish.
type NewWishMsg struct{}

// SuccessModel thanks the visitor and shows the generated note.
type SuccessModel struct {
	chrome Chrome
	width  int
}

// NewSuccessModel creates the success screen.
func NewSuccessModel(chrome Chrome, width int) SuccessModel {
	return SuccessModel{chrome: chrome, width: width}
}

// Update turns the new-wish key or a press into NewWishMsg.
func (m SuccessModel) Update(msg tea.Msg) (SuccessModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, tui.DefaultKeyMap.NewWish) {
			return m, func() tea.Msg { return NewWishMsg{} }
		}
	case tea.MouseMsg:
		if tui.IsPress(msg) {
			return m, func() tea.Msg { return NewWishMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the thank-you screen around note.
func (m SuccessModel) View(note string) string {
	quoteWidth := min(max(m.width-20, 20), 60)
	quote := tui.QuoteStyle.Width(quoteWidth).Align(lipgloss.Center).Render(`"` + note + `"`)

	return lipgloss.JoinVertical(lipgloss.Center,
		tui.SuccessStyle.Render("✔"),
		"",
		tui.TitleStyle.Render("Thank You!"),
		tui.AccentStyle.Render(m.chrome.PerWish+" has been donated on your behalf."),
		"",
		tui.BoxStyle.Render(quote),
		"",
		tui.ButtonStyle.Render("Send Another Wish"),
	)
}
