package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/berth-dev/wishkiosk/internal/kiosk"
)

var testChrome = Chrome{
	Title:    "Wish for the Nation",
	Subtitle: "Christmas Relief Drive 2025",
	Sponsor:  "Commercial Bank",
	PerWish:  "Rs. 1,000",
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// runCmd executes cmd and returns its message, or nil.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestAttractStartsOnEnterAndPress(t *testing.T) {
	m := NewAttractModel(testChrome, 80)

	inputs := []tea.Msg{
		keyPress(tea.KeyEnter),
		tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}},
		tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
	}
	for _, in := range inputs {
		_, cmd := m.Update(in)
		if _, ok := runCmd(cmd).(StartMsg); !ok {
			t.Errorf("input %#v did not start a wish", in)
		}
	}

	_, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionMotion})
	if cmd != nil {
		t.Error("mouse motion should not start a wish")
	}
}

func TestScrollDoesNotAdvance(t *testing.T) {
	wheels := []tea.MouseMsg{
		{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown},
		{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
	}
	for _, w := range wheels {
		if _, cmd := NewAttractModel(testChrome, 80).Update(w); cmd != nil {
			t.Errorf("attract: %v should not start a wish", w.Button)
		}
		if _, cmd := NewSuccessModel(testChrome, 80).Update(w); cmd != nil {
			t.Errorf("success: %v should not request a new wish", w.Button)
		}
	}
}

func TestAttractViewShowsCampaign(t *testing.T) {
	m := NewAttractModel(testChrome, 80)
	out := m.View("Rs. 5,240,000")

	for _, want := range []string{"5,240,000", "Send a Wish", "Commercial Bank donates Rs. 1,000", "TOTAL PLEDGED SO FAR"} {
		if !strings.Contains(out, want) {
			t.Errorf("attract view missing %q", want)
		}
	}
}

func TestComposeFocusCycles(t *testing.T) {
	m := NewComposeModel(testChrome, 80)
	if m.Focused() != fieldName {
		t.Fatalf("initial focus = %d, want name", m.Focused())
	}

	steps := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{keyPress(tea.KeyTab), fieldContact},
		{keyPress(tea.KeyTab), fieldWish},
		{keyPress(tea.KeyTab), fieldName},
		{keyPress(tea.KeyShiftTab), fieldWish},
	}
	for i, step := range steps {
		m, _ = m.Update(step.msg)
		if m.Focused() != step.want {
			t.Errorf("step %d: focus = %d, want %d", i, m.Focused(), step.want)
		}
	}
}

func TestComposeEnterAdvancesThenSubmits(t *testing.T) {
	m := NewComposeModel(testChrome, 80)

	m, _ = m.Update(keyRunes("Nimal"))
	m, _ = m.Update(keyPress(tea.KeyEnter))
	if m.Focused() != fieldContact {
		t.Fatalf("enter on name: focus = %d", m.Focused())
	}
	m, _ = m.Update(keyRunes("0771234567"))
	m, _ = m.Update(keyPress(tea.KeyEnter))
	if m.Focused() != fieldWish {
		t.Fatalf("enter on contact: focus = %d", m.Focused())
	}
	m, _ = m.Update(keyRunes("Stay strong"))

	want := kiosk.WishForm{Name: "Nimal", ContactNumber: "0771234567", Wish: "Stay strong"}
	if got := m.Form(); got != want {
		t.Fatalf("Form() = %+v, want %+v", got, want)
	}

	m, cmd := m.Update(keyPress(tea.KeyEnter))
	msg, ok := runCmd(cmd).(SubmitWishMsg)
	if !ok {
		t.Fatal("enter on a complete wish should submit")
	}
	if msg.Form != want {
		t.Errorf("submitted %+v, want %+v", msg.Form, want)
	}
	if strings.Contains(m.Form().Wish, "\n") {
		t.Error("enter must not insert a newline into the wish")
	}
}

func TestComposeIncompleteDoesNotSubmit(t *testing.T) {
	m := NewComposeModel(testChrome, 80)
	m, _ = m.Update(keyRunes("Nimal"))
	m, _ = m.Update(keyPress(tea.KeyTab))
	m, _ = m.Update(keyPress(tea.KeyTab))
	m, _ = m.Update(keyRunes("   "))

	_, cmd := m.Update(keyPress(tea.KeyEnter))
	if cmd != nil {
		t.Error("incomplete form should not submit")
	}
	_, cmd = m.Update(keyPress(tea.KeyCtrlS))
	if cmd != nil {
		t.Error("ctrl+s on an incomplete form should not submit")
	}
}

func TestComposeCtrlSSubmitsFromAnyField(t *testing.T) {
	m := NewComposeModel(testChrome, 80)
	m, _ = m.Update(keyRunes("Nimal"))
	m, _ = m.Update(keyPress(tea.KeyTab))
	m, _ = m.Update(keyRunes("077"))
	m, _ = m.Update(keyPress(tea.KeyTab))
	m, _ = m.Update(keyRunes("Hope"))
	m, _ = m.Update(keyPress(tea.KeyShiftTab))

	_, cmd := m.Update(keyPress(tea.KeyCtrlS))
	if _, ok := runCmd(cmd).(SubmitWishMsg); !ok {
		t.Error("ctrl+s should submit a complete form")
	}
}

func TestComposeEscCancels(t *testing.T) {
	m := NewComposeModel(testChrome, 80)
	m, _ = m.Update(keyRunes("Nimal"))

	_, cmd := m.Update(keyPress(tea.KeyEsc))
	if _, ok := runCmd(cmd).(CancelComposeMsg); !ok {
		t.Error("esc should cancel")
	}
}

func TestComposeViewShowsButton(t *testing.T) {
	m := NewComposeModel(testChrome, 80)
	out := m.View()

	for _, want := range []string{"Your Name", "Contact Number", "Your Wish", "Send Wish & Donate Rs. 1,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("compose view missing %q", want)
		}
	}
}

func TestProcessingIgnoresKeys(t *testing.T) {
	m := NewProcessingModel()
	_, cmd := m.Update(keyPress(tea.KeyEnter))
	if cmd != nil {
		t.Error("processing should ignore keys")
	}

	out := m.View()
	for _, want := range []string{"Sending your love...", "Processing donation"} {
		if !strings.Contains(out, want) {
			t.Errorf("processing view missing %q", want)
		}
	}
}

func TestSuccessNewWish(t *testing.T) {
	m := NewSuccessModel(testChrome, 80)

	_, cmd := m.Update(keyPress(tea.KeyEnter))
	if _, ok := runCmd(cmd).(NewWishMsg); !ok {
		t.Error("enter should request a new wish")
	}

	_, cmd = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if _, ok := runCmd(cmd).(NewWishMsg); !ok {
		t.Error("press should request a new wish")
	}
}

func TestSuccessViewShowsNote(t *testing.T) {
	m := NewSuccessModel(testChrome, 80)
	out := m.View("Your hope is shelter tonight.")

	for _, want := range []string{"Thank You!", "Rs. 1,000 has been donated on your behalf.", "Your hope is shelter tonight.", "Send Another Wish"} {
		if !strings.Contains(out, want) {
			t.Errorf("success view missing %q", want)
		}
	}
}

func TestHeaderShowsCampaign(t *testing.T) {
	out := testChrome.Header(100)
	for _, want := range []string{"Commercial Bank", "Wish for the Nation", "Christmas Relief Drive 2025"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}
