// clean.go implements the "wishkiosk clean" command for archiving and pruning logs.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/berth-dev/wishkiosk/internal/cleanup"
	"github.com/berth-dev/wishkiosk/internal/config"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Archive the current logs and remove old archives",
	Long: `Move .wishkiosk/log.jsonl and .wishkiosk/kiosk.log into a timestamped
directory under .wishkiosk/archive/, then remove old archives.

By default, removes archives older than archive.max_age_days (default 30).
Use --keep to keep only the N most recent archives instead.
Use --dry-run to preview what would be removed without archiving.`,
	RunE: runClean,
}

var (
	keepFlag   int
	dryRunFlag bool
)

func init() {
	cleanCmd.Flags().IntVar(&keepFlag, "keep", 0, "Keep only the last N archives (0 = use age-based cleanup)")
	cleanCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Preview what would be removed without deleting")
}

func runClean(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	return cleanKiosk(cmd, dir, keepFlag, dryRunFlag)
}

func cleanKiosk(cmd *cobra.Command, dir string, keep int, dryRun bool) error {
	out := cmd.OutOrStdout()
	stateDir := filepath.Join(dir, config.Dir)
	if _, err := os.Stat(stateDir); os.IsNotExist(err) {
		return fmt.Errorf("%s/ not found. Run 'wishkiosk init' first", config.Dir)
	}

	if !dryRun {
		name, err := cleanup.Archive(stateDir, time.Now())
		if err != nil {
			return fmt.Errorf("archiving logs: %w", err)
		}
		if name != "" {
			fmt.Fprintf(out, "Archived logs to %s\n", filepath.Join(config.Dir, cleanup.ArchiveDir, name))
		}
	}

	archiveDir := filepath.Join(stateDir, cleanup.ArchiveDir)

	var (
		pruned []string
		err    error
	)
	if keep > 0 {
		pruned, err = cleanup.PruneKeepRecent(archiveDir, keep, dryRun)
	} else {
		maxAge := 30
		if cfg, cfgErr := loadConfig(dir); cfgErr == nil && cfg.Archive.MaxAgeDays > 0 {
			maxAge = cfg.Archive.MaxAgeDays
		}
		pruned, err = cleanup.PruneByAge(archiveDir, maxAge, dryRun)
	}
	if err != nil {
		return fmt.Errorf("cleanup failed: %w", err)
	}

	if len(pruned) == 0 {
		fmt.Fprintln(out, "No archives to clean up.")
		return nil
	}

	verb := "Removed"
	if dryRun {
		verb = "Would remove"
	}

	for _, name := range pruned {
		fmt.Fprintf(out, "  %s %s\n", verb, name)
	}
	fmt.Fprintf(out, "%s %d archive(s).\n", verb, len(pruned))

	return nil
}
