// Package cli defines Cobra command definitions for the wishkiosk CLI.
// This file contains the root command, which runs the kiosk.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/berth-dev/wishkiosk/internal/log"
	"github.com/berth-dev/wishkiosk/internal/tui"
)

var (
	configPath string
	verbose    bool
	version    = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "wishkiosk",
	Short: "Charity wish kiosk for the Christmas relief drive",
	Long: `wishkiosk runs a full-screen donation kiosk. Visitors leave a name,
contact number and a wish; each wish pledges a fixed donation, is sent to
the campaign spreadsheet and is answered with a short thank-you note.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runKiosk,
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default .wishkiosk/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Write debug diagnostics to .wishkiosk/kiosk.log")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runKiosk(cmd *cobra.Command, args []string) error {
	// Without a terminal, show help and point at the non-interactive commands.
	if !tui.IsTTY() {
		_ = cmd.Help()
		err := tui.NewFallbackRunner(cmd.ErrOrStderr()).Run()
		if errors.Is(err, tui.ErrNoTerminal) {
			return nil
		}
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := loadConfig(dir)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	logger, closer, err := log.NewDiagnostic(dir, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	k, err := newKiosk(ctx, dir, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("kiosk starting",
		"version", version,
		"sink_demo", k.demo,
		"model", cfg.Generator.Model,
	)

	err = tui.Run(ctx, k.app)
	logger.Info(tui.Describe(err))
	if tui.IsQuitError(err) {
		return nil
	}
	return err
}
