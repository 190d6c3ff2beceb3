package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/berth-dev/wishkiosk/internal/kiosk"
	"github.com/berth-dev/wishkiosk/internal/tui"
)

// SubmitWishMsg is sent when a complete form is submitted.
type SubmitWishMsg struct {
	Form kiosk.WishForm
}

// CancelComposeMsg is sent when the visitor backs out of the form.
type CancelComposeMsg struct{}

// Form fields in focus order.
const (
	fieldName = iota
	fieldContact
	fieldWish
	fieldCount
)

const (
	maxNameLength    = 80
	maxContactLength = 20
	maxWishLength    = 500
)

// ComposeModel is the wish entry form.
type ComposeModel struct {
	chrome  Chrome
	name    textinput.Model
	contact textinput.Model
	wish    textarea.Model
	focus   int
	width   int
}

// NewComposeModel creates an empty form focused on the name field.
func NewComposeModel(chrome Chrome, width int) ComposeModel {
	name := textinput.New()
	name.Placeholder = "Enter your name"
	name.CharLimit = maxNameLength
	name.Prompt = ""

	contact := textinput.New()
	contact.Placeholder = "07X XXX XXXX"
	contact.CharLimit = maxContactLength
	contact.Prompt = ""

	wish := textarea.New()
	wish.Placeholder = "Write a message of hope..."
	wish.CharLimit = maxWishLength
	wish.ShowLineNumbers = false
	wish.SetHeight(4)
	wish.KeyMap.InsertNewline.SetEnabled(false)

	m := ComposeModel{
		chrome:  chrome,
		name:    name,
		contact: contact,
		wish:    wish,
		width:   width,
	}
	m.setWidth(width)
	m.name.Focus()
	return m
}

// Init starts the cursor blinking.
func (m ComposeModel) Init() tea.Cmd {
	return textinput.Blink
}

// Form returns the current field values.
func (m ComposeModel) Form() kiosk.WishForm {
	return kiosk.WishForm{
		Name:          m.name.Value(),
		ContactNumber: m.contact.Value(),
		Wish:          m.wish.Value(),
	}
}

// Focused returns the index of the focused field.
func (m ComposeModel) Focused() int {
	return m.focus
}

// Update handles navigation, submission and text entry.
func (m ComposeModel) Update(msg tea.Msg) (ComposeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, tui.DefaultKeyMap.Cancel):
			return m, func() tea.Msg { return CancelComposeMsg{} }

		case key.Matches(msg, tui.DefaultKeyMap.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)

		case key.Matches(msg, tui.DefaultKeyMap.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

		case key.Matches(msg, tui.DefaultKeyMap.Submit):
			if msg.Type == tea.KeyEnter && m.focus < fieldWish {
				return m, m.setFocus(m.focus + 1)
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldContact:
		m.contact, cmd = m.contact.Update(msg)
	case fieldWish:
		m.wish, cmd = m.wish.Update(msg)
	}
	return m, cmd
}

// submit emits SubmitWishMsg when every field is filled.
func (m *ComposeModel) submit() tea.Cmd {
	form := m.Form()
	if !form.Valid() {
		return nil
	}
	return func() tea.Msg { return SubmitWishMsg{Form: form} }
}

func (m *ComposeModel) setFocus(field int) tea.Cmd {
	m.focus = field
	m.name.Blur()
	m.contact.Blur()
	m.wish.Blur()
	switch field {
	case fieldName:
		return m.name.Focus()
	case fieldContact:
		return m.contact.Focus()
	default:
		return m.wish.Focus()
	}
}

func (m *ComposeModel) setWidth(width int) {
	m.width = width
	w := min(max(width-16, 20), 60)
	m.name.Width = w
	m.contact.Width = w
	m.wish.SetWidth(w)
}

// View renders the form.
func (m ComposeModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Make a Wish"))
	b.WriteString("\n")
	b.WriteString(tui.BodyStyle.Render("Your message will bring hope to those in need."))
	b.WriteString("\n\n")

	m.field(&b, "Your Name", m.name.View(), fieldName)
	m.field(&b, "Contact Number", m.contact.View(), fieldContact)
	m.field(&b, "Your Wish", m.wish.View(), fieldWish)

	label := "Send Wish & Donate " + m.chrome.PerWish
	if m.Form().Valid() {
		b.WriteString(tui.ButtonStyle.Render(label))
	} else {
		b.WriteString(tui.DisabledButtonStyle.Render(label))
	}

	return tui.BoxStyle.Render(b.String())
}

func (m ComposeModel) field(b *strings.Builder, label, input string, idx int) {
	marker := "  "
	if m.focus == idx {
		marker = tui.AccentStyle.Render("› ")
	}
	b.WriteString(marker + tui.LabelStyle.Render(label))
	b.WriteString("\n")
	b.WriteString("  " + strings.ReplaceAll(input, "\n", "\n  "))
	b.WriteString("\n\n")
}
