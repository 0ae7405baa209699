package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"docview/internal/app"
)

var searchRoot string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search page titles and text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
		defer cancel()
		return app.PrintSearch(ctx, cmd.OutOrStdout(), cfg, strings.Join(args, " "), searchRoot)
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchRoot, "under", "", "only return pages below this page id")
}
