// Package report summarizes the kiosk event log.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/berth-dev/wishkiosk/internal/format"
	"github.com/berth-dev/wishkiosk/internal/log"
)

// Report holds the aggregated statistics of one or more kiosk sessions.
type Report struct {
	Sessions     int
	Started      int
	Submitted    int
	Completed    int
	Fallbacks    int
	Undelivered  int
	Cancelled    int
	IdleResets   int
	StaleResults int

	// Last known donation figures.
	TotalDonated int64
	MessageCount int

	AvgProcessing time.Duration
	Duration      time.Duration
}

// GenerateReport reads the event log under dir and summarizes it.
func GenerateReport(dir string) (*Report, error) {
	events, err := log.ReadFile(log.LogPath(dir))
	if err != nil {
		return nil, fmt.Errorf("reading event log: %w", err)
	}
	return Summarize(events), nil
}

// Summarize aggregates events in log order.
func Summarize(events []log.LogEvent) *Report {
	r := &Report{}
	var processing time.Duration

	for _, e := range events {
		switch e.Event {
		case log.EventSessionStarted:
			r.Sessions++
		case log.EventComposeStarted:
			r.Started++
		case log.EventWishSubmitted:
			r.Submitted++
		case log.EventWishCompleted:
			r.Completed++
			processing += time.Duration(e.DurationMs) * time.Millisecond
			if e.Fallback {
				r.Fallbacks++
			}
			if e.Delivered != nil && !*e.Delivered {
				r.Undelivered++
			}
		case log.EventWishCancelled:
			r.Cancelled++
		case log.EventIdleReset:
			r.IdleResets++
		case log.EventStaleResult:
			r.StaleResults++
		}

		if e.TotalDonated > 0 {
			r.TotalDonated = e.TotalDonated
			r.MessageCount = e.MessageCount
		}
	}

	if r.Completed > 0 {
		r.AvgProcessing = processing / time.Duration(r.Completed)
	}
	r.Duration = computeDuration(events)
	return r
}

// FormatReport produces a terminal-friendly, human-readable summary string.
func FormatReport(r *Report, f *format.Formatter) string {
	var b strings.Builder

	b.WriteString("========================================\n")
	b.WriteString("  Wish Kiosk Report\n")
	b.WriteString("========================================\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "Sessions:    %d\n", r.Sessions)
	if r.Duration > 0 {
		fmt.Fprintf(&b, "Duration:    %s\n", formatDuration(r.Duration))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Wishes:      %d started\n", r.Started)
	fmt.Fprintf(&b, "  Submitted: %d\n", r.Submitted)
	fmt.Fprintf(&b, "  Completed: %d\n", r.Completed)
	fmt.Fprintf(&b, "  Cancelled: %d\n", r.Cancelled)
	fmt.Fprintf(&b, "  Idle:      %d\n", r.IdleResets)
	b.WriteString("\n")

	if r.Fallbacks > 0 || r.Undelivered > 0 || r.StaleResults > 0 {
		b.WriteString("Problems:\n")
		fmt.Fprintf(&b, "  Fallback notes:  %d\n", r.Fallbacks)
		fmt.Fprintf(&b, "  Not delivered:   %d\n", r.Undelivered)
		fmt.Fprintf(&b, "  Stale results:   %d\n", r.StaleResults)
		b.WriteString("\n")
	}

	if r.AvgProcessing > 0 {
		fmt.Fprintf(&b, "Processing:  %s average\n", r.AvgProcessing.Round(100*time.Millisecond))
	}
	if r.TotalDonated > 0 {
		fmt.Fprintf(&b, "Total:       %s (%d wishes)\n", f.Format(r.TotalDonated), r.MessageCount)
	}

	b.WriteString("========================================\n")

	return b.String()
}

// computeDuration returns the span between the first and last events.
func computeDuration(events []log.LogEvent) time.Duration {
	var start, end time.Time
	for _, e := range events {
		if e.Time.IsZero() {
			continue
		}
		if start.IsZero() {
			start = e.Time
		}
		end = e.Time
	}

	if start.IsZero() || end.IsZero() {
		return 0
	}

	d := end.Sub(start)
	if d < 0 {
		return 0
	}

	return d
}

// formatDuration produces a human-readable duration string such as "5m 32s"
// or "1h 12m 5s". Sub-second durations are shown as "< 1s".
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
