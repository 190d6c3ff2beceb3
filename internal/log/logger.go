// Package log provides the kiosk event log and diagnostic logger.
// This file appends JSON events to log.jsonl.
package log

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event type constants.
const (
	EventSessionStarted = "session_started"
	EventComposeStarted = "compose_started"
	EventWishSubmitted  = "wish_submitted"
	EventWishCompleted  = "wish_completed"
	EventWishCancelled  = "wish_cancelled"
	EventIdleReset      = "idle_reset"
	EventNewWish        = "new_wish"
	EventStaleResult    = "stale_result"
)

// LogEvent represents a single structured event written to the log.
// Wish text and contact numbers are never recorded here.
type LogEvent struct {
	Time         time.Time              `json:"time"`
	Event        string                 `json:"event"`
	Cycle        string                 `json:"cycle,omitempty"`
	Screen       string                 `json:"screen,omitempty"`
	Fallback     bool                   `json:"fallback,omitempty"`
	Delivered    *bool                  `json:"delivered,omitempty"`
	TotalDonated int64                  `json:"total_donated,omitempty"`
	MessageCount int                    `json:"message_count,omitempty"`
	WishLength   int                    `json:"wish_length,omitempty"`
	DurationMs   int64                  `json:"duration_ms,omitempty"`
	Error        string                 `json:"error,omitempty"`
	Data         map[string]interface{} `json:"data,omitempty"`
}

// Logger writes append-only JSONL events to a log file.
type Logger struct {
	path string
	mu   sync.Mutex
}

// LogPath returns the event log location inside dir.
func LogPath(dir string) string {
	return filepath.Join(dir, ".wishkiosk", "log.jsonl")
}

// NewLogger creates a Logger that writes to .wishkiosk/log.jsonl inside dir.
// Creates the .wishkiosk/ directory if it does not already exist.
// Does not truncate an existing log file.
func NewLogger(dir string) (*Logger, error) {
	stateDir := filepath.Join(dir, ".wishkiosk")
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("create .wishkiosk directory: %w", err)
	}

	return &Logger{
		path: LogPath(dir),
	}, nil
}

// Path returns the log file location.
func (l *Logger) Path() string {
	return l.path
}

// Append writes a single LogEvent as one JSON line to the log file.
// If event.Time is the zero value, it is automatically set to time.Now().UTC().
// The file is opened in append mode, written to, and then closed.
// Thread-safe via mutex.
func (l *Logger) Append(event LogEvent) error {
	if event.Time.IsZero() {
		event.Time = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal log event: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	// Write the JSON line followed by a newline.
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write log event: %w", err)
	}

	return nil
}

// ReadAll reads and parses all events from the log file.
// Returns an empty slice (not an error) if the file does not exist.
func (l *Logger) ReadAll() ([]LogEvent, error) {
	return ReadFile(l.path)
}

// ReadFile parses the events in the log file at path without creating
// anything. A missing file yields an empty slice.
func ReadFile(path string) ([]LogEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []LogEvent{}, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	var events []LogEvent
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var event LogEvent
		if err := json.Unmarshal(line, &event); err != nil {
			return nil, fmt.Errorf("parse log line %d: %w", lineNum, err)
		}
		events = append(events, event)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}

	return events, nil
}
