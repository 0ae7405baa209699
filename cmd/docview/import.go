package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"docview/internal/app"
)

// cmdTimeout bounds non-interactive commands.
const cmdTimeout = 2 * time.Minute

var importTable string

var importCmd = &cobra.Command{
	Use:   "import <file> <sqlite-db>",
	Short: "Import a record map file into a SQLite database",
	Long: `Import a YAML or JSON record map file into a SQLite database, replacing
its blocks. With --to-table the blocks are also written to a DynamoDB table
using the --profile and --region flags.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
		defer cancel()
		return app.Import(ctx, cmd.OutOrStdout(), app.ImportOptions{
			File:       args[0],
			SQLitePath: args[1],
			Table:      importTable,
			Profile:    cfg.Source.Profile,
			Region:     cfg.Source.Region,
		})
	},
}

func init() {
	importCmd.Flags().StringVar(&importTable, "to-table", "", "also write blocks to this DynamoDB table")
}
