package main

import (
	"github.com/spf13/cobra"

	"docview/internal/app"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List AWS profiles usable with the dynamodb source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.PrintProfiles(cmd.OutOrStdout())
	},
}
