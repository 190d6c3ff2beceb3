package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/berth-dev/wishkiosk/internal/tui"
)

// StartMsg is sent when a visitor starts composing a wish.
type StartMsg struct{}

// AttractModel is the idle screen inviting visitors to send a wish.
type AttractModel struct {
	chrome Chrome
	width  int
}

// NewAttractModel creates the attract screen.
func NewAttractModel(chrome Chrome, width int) AttractModel {
	return AttractModel{chrome: chrome, width: width}
}

// Update turns any start key or press into StartMsg.
func (m AttractModel) Update(msg tea.Msg) (AttractModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, tui.DefaultKeyMap.Start) {
			return m, func() tea.Msg { return StartMsg{} }
		}
	case tea.MouseMsg:
		if tui.IsPress(msg) {
			return m, func() tea.Msg { return StartMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the attract screen with the formatted running total.
func (m AttractModel) View(total string) string {
	var b strings.Builder

	b.WriteString(tui.AccentStyle.Render("♥ SHARE HOPE THIS CHRISTMAS"))
	b.WriteString("\n\n")

	title := m.chrome.Title
	if i := strings.LastIndex(title, " "); i > 0 {
		title = tui.TitleStyle.Render(title[:i+1]) + tui.AccentStyle.Italic(true).Render(title[i+1:])
	} else {
		title = tui.TitleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	body := "Send a heartfelt message to the families affected by the floods.\n" +
		"For every wish you send, " + tui.AccentStyle.Render(m.chrome.Sponsor+" donates "+m.chrome.PerWish) +
		" towards relief efforts."
	b.WriteString(tui.BodyStyle.Render(body))
	b.WriteString("\n\n")

	b.WriteString(tui.ButtonStyle.Render("Send a Wish →"))
	b.WriteString("\n\n")

	counter := tui.CounterStyle.Render(
		tui.AccentStyle.Render("TOTAL PLEDGED SO FAR") + "\n" + total,
	)
	b.WriteString(counter)

	return lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
}
