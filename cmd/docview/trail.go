package main

import (
	"context"

	"github.com/spf13/cobra"

	"docview/internal/app"
)

var trailColumns int

var trailCmd = &cobra.Command{
	Use:   "trail [page-id]",
	Short: "Print the breadcrumb trail of a page",
	Long: `Print the breadcrumb trail of a page as the header would show it in a
terminal of the given width. The active page is shown in brackets. Without
a page id the configured active page (or the first block) is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pageID := cfg.ActivePage
		if len(args) == 1 {
			pageID = args[0]
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
		defer cancel()
		return app.PrintTrail(ctx, cmd.OutOrStdout(), cfg, pageID, trailColumns)
	},
}

func init() {
	trailCmd.Flags().IntVarP(&trailColumns, "width", "w", 120, "terminal width in columns")
}
