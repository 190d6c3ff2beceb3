package kiosk

import (
	"time"

	"github.com/google/uuid"
)

// Session owns the screen, form, donation stats and thank-you text for
// one kiosk run. It is not safe for concurrent use; the TUI drives it
// from its update loop.
type Session struct {
	screen Screen
	form   WishForm
	stats  DonationStats
	aiText string

	// cycle identifies the submission currently in Processing.
	cycle string

	donationPerWish int64
}

// NewSession creates a session on the Attract screen.
func NewSession(start DonationStats, donationPerWish int64) *Session {
	if donationPerWish <= 0 {
		donationPerWish = DefaultDonationPerWish
	}
	return &Session{
		screen:          ScreenAttract,
		stats:           start,
		donationPerWish: donationPerWish,
	}
}

// Screen returns the current screen.
func (s *Session) Screen() Screen { return s.screen }

// Form returns a copy of the in-progress form.
func (s *Session) Form() WishForm { return s.form }

// Stats returns the running donation stats.
func (s *Session) Stats() DonationStats { return s.stats }

// AIResponse returns the thank-you text for the last completed cycle.
func (s *Session) AIResponse() string { return s.aiText }

// Cycle returns the ID of the submission in flight, or "".
func (s *Session) Cycle() string { return s.cycle }

// DonationPerWish returns the amount pledged per completed wish.
func (s *Session) DonationPerWish() int64 { return s.donationPerWish }

// Start moves from Attract to Compose with an empty form.
func (s *Session) Start() bool {
	if s.screen != ScreenAttract {
		return false
	}
	s.form = WishForm{}
	s.screen = ScreenCompose
	return true
}

// UpdateForm replaces the form while composing.
func (s *Session) UpdateForm(form WishForm) bool {
	if s.screen != ScreenCompose {
		return false
	}
	s.form = form
	return true
}

// SetField sets one form field while composing.
func (s *Session) SetField(field Field, value string) bool {
	if s.screen != ScreenCompose {
		return false
	}
	switch field {
	case FieldName:
		s.form.Name = value
	case FieldContactNumber:
		s.form.ContactNumber = value
	case FieldWish:
		s.form.Wish = value
	default:
		return false
	}
	return true
}

// CanSubmit reports whether BeginSubmit would succeed.
func (s *Session) CanSubmit() bool {
	return s.screen == ScreenCompose && s.form.Valid()
}

// BeginSubmit snapshots the form and enters Processing. It returns false
// and leaves the session untouched when the form is incomplete.
func (s *Session) BeginSubmit(now time.Time) (WishSubmission, string, bool) {
	if !s.CanSubmit() {
		return WishSubmission{}, "", false
	}
	sub := s.form.Snapshot(now)
	s.cycle = uuid.NewString()
	s.screen = ScreenProcessing
	return sub, s.cycle, true
}

// Complete applies a pipeline result and shows Success. Results for a
// cycle that is no longer current are dropped and false is returned.
func (s *Session) Complete(cycle string, res PipelineResult) bool {
	if s.screen != ScreenProcessing || cycle == "" || cycle != s.cycle {
		return false
	}
	if res.Err != nil {
		s.aiText = PipelineFallback
	} else {
		s.aiText = res.Text
		s.stats.TotalDonated += s.donationPerWish
		s.stats.MessageCount++
	}
	s.cycle = ""
	s.screen = ScreenSuccess
	return true
}

// Cancel abandons the compose screen.
func (s *Session) Cancel() bool {
	if s.screen != ScreenCompose {
		return false
	}
	s.Reset()
	return true
}

// NewWish returns from Success to Attract.
func (s *Session) NewWish() bool {
	if s.screen != ScreenSuccess {
		return false
	}
	s.Reset()
	return true
}

// IdleReset forces the session back to Attract after inactivity.
func (s *Session) IdleReset() bool {
	if s.screen == ScreenAttract {
		return false
	}
	s.Reset()
	return true
}

// Reset clears the form and thank-you text and shows Attract. Donation
// stats are kept.
func (s *Session) Reset() {
	s.screen = ScreenAttract
	s.form = WishForm{}
	s.aiText = ""
	s.cycle = ""
}
