package tui

import "github.com/charmbracelet/lipgloss"

// Color constants matching the campaign artwork.
const (
	darkColor   = "#00214D" // Navy
	blueColor   = "#005BAA" // Bank blue
	yellowColor = "#FFCC00" // Bank yellow
	paleColor   = "#DBEAFE" // Pale blue text
	greenColor  = "#22C55E" // Success
	dimColor    = "#6B7280" // Gray
)

// Style variables for consistent kiosk rendering.
var (
	// BoxStyle provides a rounded border card.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(paleColor)).
			Padding(1, 3)

	// TitleStyle renders headline text.
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	// AccentStyle renders highlighted campaign text in yellow.
	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(yellowColor)).
			Bold(true)

	// BodyStyle renders regular copy.
	BodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(paleColor))

	// QuoteStyle renders the generated thank-you note.
	QuoteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(paleColor)).
			Italic(true)

	// LabelStyle renders form labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(paleColor)).
			Bold(true)

	// DimStyle renders dim/muted text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// SuccessStyle renders the success check mark.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(greenColor)).
			Bold(true)

	// ButtonStyle renders an enabled call to action.
	ButtonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(yellowColor)).
			Foreground(lipgloss.Color(darkColor)).
			Bold(true).
			Padding(0, 3)

	// DisabledButtonStyle renders a call to action that cannot be used yet.
	DisabledButtonStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#374151")).
				Foreground(lipgloss.Color("#9CA3AF")).
				Padding(0, 3)

	// CounterStyle renders the running donation total.
	CounterStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(yellowColor)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 4).
			Align(lipgloss.Center)

	// HeaderStyle renders the campaign header line.
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(yellowColor)).
			Italic(true).
			Bold(true)

	// StatusBarStyle provides styling for the bottom hint bar.
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(blueColor)).
			Foreground(lipgloss.Color(paleColor)).
			Padding(0, 1)
)
