package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/berth-dev/wishkiosk/internal/testutil"
)

// createMockArchive creates an archive directory with the given timestamp-based name.
func createMockArchive(t *testing.T, archiveDir string, ts time.Time) string {
	t.Helper()
	name := ts.Format(archiveTimestampLayout)
	if err := os.MkdirAll(filepath.Join(archiveDir, name), 0755); err != nil {
		t.Fatalf("creating mock archive %s: %v", name, err)
	}
	return name
}

func TestArchiveMovesLogs(t *testing.T) {
	dir := testutil.TempKiosk(t, map[string]string{
		"log.jsonl":   `{"event":"session_started"}` + "\n",
		"kiosk.log":   "level=INFO msg=\"kiosk starting\"\n",
		"config.yaml": "version: 1\n",
	})
	stateDir := filepath.Join(dir, testutil.StateDir)
	now := time.Date(2025, 12, 26, 9, 30, 0, 0, time.Local)

	name, err := Archive(stateDir, now)
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if name != "20251226-093000" {
		t.Errorf("archive name = %q", name)
	}

	for _, f := range LogFiles {
		if _, err := os.Stat(filepath.Join(stateDir, f)); !os.IsNotExist(err) {
			t.Errorf("expected %s to be moved out of the state dir", f)
		}
		if _, err := os.Stat(filepath.Join(stateDir, ArchiveDir, name, f)); err != nil {
			t.Errorf("expected %s in archive: %v", f, err)
		}
	}

	// Config stays in place.
	if _, err := os.Stat(filepath.Join(stateDir, "config.yaml")); err != nil {
		t.Errorf("config.yaml should not be archived: %v", err)
	}
}

func TestArchiveNothingToDo(t *testing.T) {
	dir := testutil.TempKiosk(t, map[string]string{"config.yaml": "version: 1\n"})

	name, err := Archive(filepath.Join(dir, testutil.StateDir), time.Now())
	if err != nil {
		t.Fatalf("Archive failed: %v", err)
	}
	if name != "" {
		t.Errorf("expected no archive, got %q", name)
	}
}

func TestPruneByAge(t *testing.T) {
	archiveDir := t.TempDir()

	now := time.Now()
	old := createMockArchive(t, archiveDir, now.AddDate(0, 0, -60))
	recent := createMockArchive(t, archiveDir, now.AddDate(0, 0, -5))
	if err := os.MkdirAll(filepath.Join(archiveDir, "not-a-timestamp"), 0755); err != nil {
		t.Fatal(err)
	}

	pruned, err := PruneByAge(archiveDir, 30, true)
	if err != nil {
		t.Fatalf("PruneByAge dry-run failed: %v", err)
	}
	if len(pruned) != 1 || pruned[0] != old {
		t.Errorf("dry-run pruned = %v, want [%s]", pruned, old)
	}
	if _, err := os.Stat(filepath.Join(archiveDir, old)); err != nil {
		t.Errorf("dry-run removed %s", old)
	}

	pruned, err = PruneByAge(archiveDir, 30, false)
	if err != nil {
		t.Fatalf("PruneByAge failed: %v", err)
	}
	if len(pruned) != 1 || pruned[0] != old {
		t.Errorf("pruned = %v, want [%s]", pruned, old)
	}
	if _, err := os.Stat(filepath.Join(archiveDir, old)); !os.IsNotExist(err) {
		t.Errorf("expected %s to be deleted", old)
	}
	for _, keep := range []string{recent, "not-a-timestamp"} {
		if _, err := os.Stat(filepath.Join(archiveDir, keep)); err != nil {
			t.Errorf("expected %s to remain: %v", keep, err)
		}
	}
}

func TestPruneKeepRecent(t *testing.T) {
	archiveDir := t.TempDir()

	now := time.Now()
	d1 := createMockArchive(t, archiveDir, now.AddDate(0, 0, -4))
	d2 := createMockArchive(t, archiveDir, now.AddDate(0, 0, -3))
	createMockArchive(t, archiveDir, now.AddDate(0, 0, -2))
	createMockArchive(t, archiveDir, now.AddDate(0, 0, -1))

	pruned, err := PruneKeepRecent(archiveDir, 2, false)
	if err != nil {
		t.Fatalf("PruneKeepRecent failed: %v", err)
	}
	if len(pruned) != 2 || pruned[0] != d1 || pruned[1] != d2 {
		t.Errorf("pruned = %v, want [%s %s]", pruned, d1, d2)
	}

	entries, _ := os.ReadDir(archiveDir)
	if len(entries) != 2 {
		t.Errorf("expected 2 remaining archives, got %d", len(entries))
	}

	pruned, err = PruneKeepRecent(archiveDir, 5, false)
	if err != nil || len(pruned) != 0 {
		t.Errorf("keep > count: pruned=%v err=%v", pruned, err)
	}
}

func TestPruneMissingArchiveDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "archive")

	if pruned, err := PruneByAge(missing, 30, false); err != nil || len(pruned) != 0 {
		t.Errorf("PruneByAge: pruned=%v err=%v", pruned, err)
	}
	if pruned, err := PruneKeepRecent(missing, 5, false); err != nil || len(pruned) != 0 {
		t.Errorf("PruneKeepRecent: pruned=%v err=%v", pruned, err)
	}
}
