package main

import (
	"github.com/spf13/cobra"

	"docview/internal/app"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		app.PrintVersion(cmd.OutOrStdout())
	},
}
