package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	delivered := true
	events := []LogEvent{
		{Event: EventSessionStarted, TotalDonated: 5240000, MessageCount: 5240},
		{Event: EventWishSubmitted, Cycle: "c1", WishLength: 11},
		{Event: EventWishCompleted, Cycle: "c1", Delivered: &delivered, DurationMs: 2004},
	}
	for _, ev := range events {
		if err := l.Append(ev); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	got, err := l.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(got) != len(events) {
		t.Fatalf("got %d events, want %d", len(got), len(events))
	}
	for i, ev := range got {
		if ev.Event != events[i].Event {
			t.Errorf("event %d = %q, want %q", i, ev.Event, events[i].Event)
		}
		if ev.Time.IsZero() {
			t.Errorf("event %d has no timestamp", i)
		}
	}
	if got[2].Delivered == nil || !*got[2].Delivered {
		t.Errorf("delivered flag not preserved: %+v", got[2])
	}
	if got[1].Cycle != "c1" || got[1].WishLength != 11 {
		t.Errorf("submitted event fields lost: %+v", got[1])
	}
}

func TestAppendKeepsExplicitTime(t *testing.T) {
	l, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	at := time.Date(2025, 12, 25, 9, 30, 0, 0, time.UTC)
	if err := l.Append(LogEvent{Time: at, Event: EventIdleReset}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := l.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if !got[0].Time.Equal(at) {
		t.Errorf("Time = %v, want %v", got[0].Time, at)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	l := &Logger{path: filepath.Join(t.TempDir(), "missing.jsonl")}
	got, err := l.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d events, want 0", len(got))
	}
}

func TestReadFileMatchesLogPath(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if l.Path() != LogPath(dir) {
		t.Errorf("Path() = %q, want %q", l.Path(), LogPath(dir))
	}
	if err := l.Append(LogEvent{Event: EventNewWish}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	got, err := ReadFile(LogPath(dir))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 1 || got[0].Event != EventNewWish {
		t.Errorf("got %+v", got)
	}
}

func TestReadAllRejectsCorruptLine(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLogger(dir)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if err := os.WriteFile(l.Path(), []byte("{\"event\":\"new_wish\"}\nnot json\n"), 0644); err != nil {
		t.Fatalf("writing log: %v", err)
	}

	if _, err := l.ReadAll(); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("expected a line 2 parse error, got %v", err)
	}
}

func TestNewSlogFormats(t *testing.T) {
	var buf bytes.Buffer
	NewSlog(&buf, "debug", "json").Debug("hello", "screen", "compose")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("json handler output not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "hello" || rec["screen"] != "compose" {
		t.Errorf("unexpected record: %v", rec)
	}

	buf.Reset()
	NewSlog(&buf, "warn", "text").Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewDiagnosticWritesFile(t *testing.T) {
	dir := t.TempDir()
	logger, closer, err := NewDiagnostic(dir, "info", "text")
	if err != nil {
		t.Fatalf("NewDiagnostic failed: %v", err)
	}
	logger.Info("kiosk booted")
	if err := closer.Close(); err != nil {
		t.Fatalf("closing diagnostic log: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".wishkiosk", "kiosk.log"))
	if err != nil {
		t.Fatalf("reading diagnostic log: %v", err)
	}
	if !strings.Contains(string(data), "kiosk booted") {
		t.Errorf("diagnostic log missing message: %q", data)
	}
}
