// init.go implements the "wishkiosk init" command.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/berth-dev/wishkiosk/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default kiosk configuration",
	Long: `Create .wishkiosk/config.yaml with the default campaign copy, timings
and webhook placeholder. Runtime files under .wishkiosk/ are added to
.gitignore because the config may hold an API key.`,
	RunE: runInit,
}

var forceFlag bool

func init() {
	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	return initKiosk(cmd, dir, forceFlag)
}

func initKiosk(cmd *cobra.Command, dir string, force bool) error {
	out := cmd.OutOrStdout()

	path := config.Path(dir)
	if _, statErr := os.Stat(path); statErr == nil && !force {
		return fmt.Errorf("%s already exists; rerun with --force to overwrite", path)
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, statErr)
	}

	if err := config.WriteConfig(dir, config.DefaultConfig()); err != nil {
		return err
	}

	if err := ensureGitignore(dir); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to set up .gitignore: %v\n", err)
	}

	fmt.Fprintf(out, "Wrote %s\n", path)
	fmt.Fprintln(out, "Set sink.url (or WISHKIOSK_SINK_URL) to the spreadsheet webhook")
	fmt.Fprintln(out, "and GEMINI_API_KEY for generated thank-you notes, then run: wishkiosk")
	return nil
}

// ensureGitignore creates or appends to .gitignore with the kiosk's
// runtime files. Entries already present are left alone.
func ensureGitignore(dir string) error {
	gitignorePath := filepath.Join(dir, ".gitignore")

	requiredEntries := []string{
		// Secrets
		".env",
		".env.*",
		// Kiosk runtime
		config.Dir + "/config.yaml",
		config.Dir + "/log.jsonl",
		config.Dir + "/kiosk.log",
	}

	// Read existing content.
	existing := ""
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = string(data)
	}

	// Find entries that are missing.
	var missing []string
	for _, entry := range requiredEntries {
		if !strings.Contains(existing, entry) {
			missing = append(missing, entry)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	var toAppend strings.Builder
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		toAppend.WriteString("\n")
	}
	if existing != "" {
		toAppend.WriteString("\n# Added by wishkiosk init\n")
	}
	for _, entry := range missing {
		toAppend.WriteString(entry + "\n")
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening .gitignore: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(toAppend.String()); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	return nil
}
