// Package kiosk holds the wish kiosk session state machine and the
// submission pipeline that runs between Compose and Success.
package kiosk

import (
	"context"
	"strings"
	"time"
)

// Screen is the view the kiosk is currently showing.
type Screen int

const (
	ScreenAttract Screen = iota
	ScreenCompose
	ScreenProcessing
	ScreenSuccess
)

func (s Screen) String() string {
	switch s {
	case ScreenAttract:
		return "attract"
	case ScreenCompose:
		return "compose"
	case ScreenProcessing:
		return "processing"
	case ScreenSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// ParseScreen maps a screen name back to its Screen value.
func ParseScreen(name string) (Screen, bool) {
	for _, s := range []Screen{ScreenAttract, ScreenCompose, ScreenProcessing, ScreenSuccess} {
		if strings.EqualFold(name, s.String()) {
			return s, true
		}
	}
	return ScreenAttract, false
}

// Field names one WishForm field.
type Field int

const (
	FieldName Field = iota
	FieldContactNumber
	FieldWish
)

// WishForm holds the in-progress compose fields as typed.
type WishForm struct {
	Name          string
	ContactNumber string
	Wish          string
}

// Valid reports whether every field is non-empty after trimming.
func (f WishForm) Valid() bool {
	return strings.TrimSpace(f.Name) != "" &&
		strings.TrimSpace(f.ContactNumber) != "" &&
		strings.TrimSpace(f.Wish) != ""
}

// Snapshot builds the immutable submission record for this form.
func (f WishForm) Snapshot(now time.Time) WishSubmission {
	return WishSubmission{
		Timestamp:     now,
		Name:          strings.TrimSpace(f.Name),
		ContactNumber: strings.TrimSpace(f.ContactNumber),
		Message:       strings.TrimSpace(f.Wish),
	}
}

// WishSubmission is the trimmed record handed to the submission sink.
type WishSubmission struct {
	Timestamp     time.Time
	Name          string
	ContactNumber string
	Message       string
}

// DonationStats is the locally simulated running donation total.
type DonationStats struct {
	TotalDonated int64
	MessageCount int
}

// Default donation figures shown when the kiosk boots.
const (
	DefaultStartingTotal   int64 = 5240000
	DefaultStartingCount         = 5240
	DefaultDonationPerWish int64 = 1000
)

// PipelineFallback replaces the thank-you text when the submission
// pipeline itself fails.
const PipelineFallback = "Thank you for your warmth and generosity."

// MessageGenerator produces the personalized thank-you text for a wish.
// Implementations recover their own failures and always return text.
type MessageGenerator interface {
	Generate(ctx context.Context, wish string) string
}

// SubmissionSink delivers a wish to the external collection endpoint.
// The returned flag only says whether the request was dispatched.
type SubmissionSink interface {
	Submit(ctx context.Context, sub WishSubmission) bool
}
