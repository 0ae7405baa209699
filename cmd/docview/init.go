package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docview/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file",
	Long:  `Write an example config file to --config (default ~/.docview/config.yaml). An existing file is left untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ExpandPath(configFile)
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if err := config.CreateDefaultConfig(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
		return nil
	},
}
