// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for tables. The root command
// opens the interactive shell; subcommands manage the saved connection.
package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tables/cli/internal/config"
	"tables/cli/internal/logging"
)

var (
	dsnFlag     string
	verbose     bool
	showVersion bool
)

// rootCmd starts an interactive session against the resolved database.
var rootCmd = &cobra.Command{
	Use:   "tables",
	Short: "Interactive SQL shell for PostgreSQL and SQLite",
	Long: `tables opens a full-screen shell. Each line you submit is sent to the database
and the result of the latest statement is shown below the transcript.

The connection string is taken from --url, then TABLES_DSN, then DATABASE_URL,
then the config file, then the OS keychain (see "tables connect").

Type quit (or press Ctrl+C) to leave.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("tables %s\n", Version)
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			pterm.Warning.Printfln("Ignoring config file: %v", err)
		}

		src := resolveDSN(defaultSources(cfg))
		if src.DSN == "" {
			pterm.Info.Println("No database configured.")
			pterm.Println("   Pass --url, set TABLES_DSN or run: tables connect")
			return nil
		}

		return runSession(cmd.Context(), src, cfg)
	},
}

// Execute runs the CLI and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dsnFlag, "url", "u", "", "Database connection string (postgres://... or sqlite://...)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug entries to the log file")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
}

func verboseEnabled() bool {
	return verbose || os.Getenv("TABLES_VERBOSE") != ""
}
