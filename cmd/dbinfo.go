// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tables/cli/internal/config"
	"tables/cli/internal/dsn"
	"tables/cli/internal/logging"
)

// dbinfoCmd shows which connection string a session would use, with the
// password masked.
var dbinfoCmd = &cobra.Command{
	Use:   "dbinfo",
	Short: "Show the current database connection string",
	Long: `The dbinfo command displays the connection string the shell would use and
where it was found. Credentials are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			pterm.Warning.Printfln("Ignoring config file: %v", err)
		}

		src := resolveDSN(defaultSources(cfg))
		if src.DSN == "" {
			pterm.Warning.Println("No database connection configured")
			pterm.Println("   Please run: tables connect")
			return nil
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Database Connection")).
			WithPadding(1).
			Println(describe(src))
		pterm.Println()
		pterm.Println("To update this connection, run: tables connect")
		return nil
	},
}

// describe renders the connection details shown inside the dbinfo box.
func describe(src dsnSource) string {
	lines := "Source:   " + src.Origin + "\n" +
		"DSN:      " + logging.Mask(src.DSN)

	info, err := dsn.Resolve(src.DSN)
	if err != nil {
		return lines + "\n" + "Problem:  " + logging.Mask(err.Error())
	}
	return lines + "\n" +
		"Type:     " + string(info.Type) + "\n" +
		"Database: " + info.Name()
}

func init() {
	rootCmd.AddCommand(dbinfoCmd)
}
