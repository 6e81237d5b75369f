// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"tables/cli/internal/keychain"
)

// disconnectCmd forgets the connection string saved by connect.
var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Remove the saved connection string",
	Long: `The disconnect command removes the connection string stored in the OS keychain.
Connection strings passed with --url or set in the environment are not affected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Warning.Println("Secure storage is not available on this system.")
			return err
		}
		if err := km.ClearDSN(); err != nil {
			return err
		}
		pterm.Success.Println("Saved connection removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disconnectCmd)
}
