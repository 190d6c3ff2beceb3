// Package cleanup archives kiosk log files and prunes old archives.
package cleanup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// archiveTimestampLayout is the format used for archive directory names.
const archiveTimestampLayout = "20060102-150405"

// ArchiveDir is the archive root inside the kiosk state directory.
const ArchiveDir = "archive"

// LogFiles are the state files moved by Archive.
var LogFiles = []string{"log.jsonl", "kiosk.log"}

// Archive moves the current log files of stateDir into a new timestamped
// directory under stateDir/archive and returns its name. Returns "" when
// there was nothing to archive.
func Archive(stateDir string, now time.Time) (string, error) {
	var present []string
	for _, name := range LogFiles {
		if _, err := os.Stat(filepath.Join(stateDir, name)); err == nil {
			present = append(present, name)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", name, err)
		}
	}
	if len(present) == 0 {
		return "", nil
	}

	name := now.Format(archiveTimestampLayout)
	dest := filepath.Join(stateDir, ArchiveDir, name)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return "", fmt.Errorf("creating archive directory: %w", err)
	}

	for _, file := range present {
		if err := os.Rename(filepath.Join(stateDir, file), filepath.Join(dest, file)); err != nil {
			return name, fmt.Errorf("archiving %s: %w", file, err)
		}
	}

	return name, nil
}

// PruneByAge removes archive directories older than maxAgeDays.
// If dryRun is true, no directories are deleted; the function only returns
// the names that would be removed. Returns the list of pruned directory names.
func PruneByAge(archiveDir string, maxAgeDays int, dryRun bool) ([]string, error) {
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading archive directory: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)
	var pruned []string

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t, parseErr := time.ParseInLocation(archiveTimestampLayout, entry.Name(), time.Local)
		if parseErr != nil {
			// Skip directories that don't match the timestamp format.
			continue
		}

		if t.Before(cutoff) {
			if !dryRun {
				path := filepath.Join(archiveDir, entry.Name())
				if rmErr := os.RemoveAll(path); rmErr != nil {
					return pruned, fmt.Errorf("removing %s: %w", entry.Name(), rmErr)
				}
			}
			pruned = append(pruned, entry.Name())
		}
	}

	return pruned, nil
}

// PruneKeepRecent removes all archive directories except the most recent
// keep directories. If dryRun is true, no directories are deleted. Returns
// the list of pruned directory names.
func PruneKeepRecent(archiveDir string, keep int, dryRun bool) ([]string, error) {
	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading archive directory: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, parseErr := time.Parse(archiveTimestampLayout, entry.Name()); parseErr == nil {
			dirs = append(dirs, entry.Name())
		}
	}

	// Timestamp names sort chronologically.
	sort.Strings(dirs)

	if len(dirs) <= keep {
		return nil, nil
	}

	toRemove := dirs[:len(dirs)-keep]
	var pruned []string

	for _, name := range toRemove {
		if !dryRun {
			if rmErr := os.RemoveAll(filepath.Join(archiveDir, name)); rmErr != nil {
				return pruned, fmt.Errorf("removing %s: %w", name, rmErr)
			}
		}
		pruned = append(pruned, name)
	}

	return pruned, nil
}
