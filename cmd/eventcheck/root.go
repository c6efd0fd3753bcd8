// Copyright 2026 The Eventcheck Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	eclog "github.com/davetashner/eventcheck/internal/log"
	"github.com/davetashner/eventcheck/internal/pipeline"
	"github.com/davetashner/eventcheck/internal/report"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// Root command flag values.
var (
	configPath  string
	compactJSON bool
)

// rootCmd validates an event file and writes the report.
var rootCmd = &cobra.Command{
	Use:   "eventcheck <input.csv> [report.json]",
	Short: "Validate an event-record CSV file before ingestion",
	Long: `Eventcheck validates a comma-delimited event file against the fixed
event schema (event_id, timestamp, user_id, ip, country, event_type, amount).

It runs a schema check, then a null check, a type/format check and an allowed
values check on every row, prints a summary and writes a JSON report
(default validation_report.json).

Rows that fail validation do not make the command fail: the exit code is 0
whenever a report was written.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		eclog.Setup(verbose, quiet)
	},
	RunE: runCheck,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (.yaml, .yml or .toml)")
	rootCmd.Flags().BoolVar(&compactJSON, "compact", false, "write the JSON report on a single line")

	rootCmd.AddCommand(versionCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return exitError(ExitInvalidArgs, "eventcheck: %v", err)
	}
	if noColor || cfg.NoColor {
		color.NoColor = true
	}

	var outArg string
	if len(args) > 1 {
		outArg = args[1]
	}
	outPath := cfg.ReportPathFor(outArg)

	logger, _ := eclog.ForRun()
	res, err := pipeline.Run(pipeline.Options{
		InputPath: args[0],
		FS:        cmdFS,
		Logger:    logger,
	})
	if err != nil {
		return exitError(ExitInputError, "eventcheck: %v", err)
	}

	out := cmd.OutOrStdout()
	if err := report.RenderConsole(out, res.Report); err != nil {
		return exitError(ExitWriteFailure, "eventcheck: %v", err)
	}

	abs, err := pipeline.WriteReport(cmdFS, outPath, res.Report, report.JSONOptions{
		Compact: compactJSON || cfg.CompactJSON,
	})
	if err != nil {
		return exitError(ExitWriteFailure, "eventcheck: %v", err)
	}
	logger.Debug("report written", "path", abs, "state", string(res.State))

	_, _ = fmt.Fprintf(out, "\nValidation report written to %s\n", abs)
	return nil
}
