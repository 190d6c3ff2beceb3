package views

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/berth-dev/wishkiosk/internal/tui"
)

// ProcessingModel shows progress while a wish is delivered.
// It accepts no input.
type ProcessingModel struct {
	spinner spinner.Model
}

// NewProcessingModel creates the processing screen.
func NewProcessingModel() ProcessingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = tui.AccentStyle
	return ProcessingModel{spinner: s}
}

// Init starts the spinner.
func (m ProcessingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update advances the spinner.
func (m ProcessingModel) Update(msg tea.Msg) (ProcessingModel, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner and status copy.
func (m ProcessingModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		m.spinner.View(),
		"",
		tui.TitleStyle.Render("Sending your love..."),
		tui.AccentStyle.Render("Processing donation"),
	)
}
