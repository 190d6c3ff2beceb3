// report.go implements the "wishkiosk report" command for summarizing the event log.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/berth-dev/wishkiosk/internal/format"
	kioskreport "github.com/berth-dev/wishkiosk/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize kiosk activity",
	Long: `Read .wishkiosk/log.jsonl and print how many wishes were started,
completed, cancelled or reset for inactivity, along with fallback notes,
undelivered submissions and the last donation total.`,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	return reportKiosk(cmd, dir)
}

func reportKiosk(cmd *cobra.Command, dir string) error {
	f := format.Default()
	if cfg, err := loadConfig(dir); err == nil {
		if custom, ferr := newFormatter(cfg); ferr == nil {
			f = custom
		}
	}

	r, err := kioskreport.GenerateReport(dir)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	if r.Sessions == 0 && r.Started == 0 {
		return fmt.Errorf("no kiosk activity found. Start the kiosk with: wishkiosk")
	}

	fmt.Fprint(cmd.OutOrStdout(), kioskreport.FormatReport(r, f))
	return nil
}
