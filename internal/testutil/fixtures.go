// Package testutil provides test helper utilities for kiosk tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/berth-dev/wishkiosk/internal/log"
)

// StateDir is the kiosk state directory name inside a working directory.
const StateDir = ".wishkiosk"

// TempKiosk creates a temporary working directory whose .wishkiosk/ holds
// the given files and returns the working directory.
// Files is a map of path relative to .wishkiosk/ -> content.
func TempKiosk(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	for relPath, content := range files {
		absPath := filepath.Join(dir, StateDir, relPath)
		if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", relPath, err)
		}
		if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", relPath, err)
		}
	}

	return dir
}

// WriteEvents appends events to the event log of the working directory dir.
func WriteEvents(t *testing.T, dir string, events []log.LogEvent) {
	t.Helper()
	logger, err := log.NewLogger(dir)
	if err != nil {
		t.Fatalf("opening event log: %v", err)
	}
	for _, e := range events {
		if err := logger.Append(e); err != nil {
			t.Fatalf("appending %s: %v", e.Event, err)
		}
	}
}

// CompletedCycle returns the events of one wish that was composed,
// submitted and answered, starting at start with totals before the wish.
func CompletedCycle(start time.Time, cycle string, total int64, count int, fallback, delivered bool) []log.LogEvent {
	after, afterCount := total, count
	if !fallback {
		after += 1000
		afterCount++
	}
	return []log.LogEvent{
		{Time: start, Event: log.EventComposeStarted, Screen: "compose", TotalDonated: total, MessageCount: count},
		{Time: start.Add(20 * time.Second), Event: log.EventWishSubmitted, Cycle: cycle, Screen: "processing", TotalDonated: total, MessageCount: count},
		{Time: start.Add(23 * time.Second), Event: log.EventWishCompleted, Cycle: cycle, Screen: "success",
			Fallback: fallback, Delivered: &delivered, DurationMs: 3000, TotalDonated: after, MessageCount: afterCount},
		{Time: start.Add(30 * time.Second), Event: log.EventNewWish, Screen: "attract", TotalDonated: after, MessageCount: afterCount},
	}
}
