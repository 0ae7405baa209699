package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"docview/internal/app"
	"docview/internal/config"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// v carries defaults, environment and bound flags.
	v = config.NewViper()

	// cfg is loaded by PersistentPreRunE.
	cfg *config.Config

	runOpts app.Options
)

var rootCmd = &cobra.Command{
	Use:   "docview",
	Short: "Browse a block-structured document in the terminal",
	Long: `docview renders a page tree (a Notion style record map) with a
breadcrumb header, page search and child page navigation.

Navigation:
  ↑/k, ↓/j    Move through child pages
  Enter       Open page
  Esc         Go to parent page
  ←/h         Back
  / or ctrl+p Search
  y           Copy page link
  l           Toggle logs
  q           Quit`,
	Version:           app.Version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cfg, runOpts)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default: ~/.docview/config.yaml)")
	flags.String("source", "", "content source: file, sqlite or dynamodb")
	flags.String("path", "", "record map file or SQLite database")
	flags.String("table", "", "DynamoDB table name")
	flags.String("profile", "", "AWS profile for the dynamodb source")
	flags.String("region", "", "AWS region for the dynamodb source")
	flags.String("root", "", "root page id that bounds search")
	flags.String("theme", "", "color theme: auto, dark or light")

	_ = v.BindPFlag(config.KeySourceKind, flags.Lookup("source"))
	_ = v.BindPFlag(config.KeySourcePath, flags.Lookup("path"))
	_ = v.BindPFlag(config.KeySourceTable, flags.Lookup("table"))
	_ = v.BindPFlag(config.KeySourceProfile, flags.Lookup("profile"))
	_ = v.BindPFlag(config.KeySourceRegion, flags.Lookup("region"))
	_ = v.BindPFlag(config.KeyRootPageID, flags.Lookup("root"))
	_ = v.BindPFlag(config.KeyTheme, flags.Lookup("theme"))

	rootCmd.Flags().String("active", "", "page id to open first")
	_ = v.BindPFlag(config.KeyActivePageID, rootCmd.Flags().Lookup("active"))
	rootCmd.Flags().BoolVar(&runOpts.Debug, "debug", false, "write debug logs to ~/.docview/debug.log")
	rootCmd.Flags().BoolVar(&runOpts.NoAltScreen, "no-alt-screen", false, "disable alternate screen (allows text selection/copy)")

	rootCmd.AddCommand(trailCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "profiles", "init":
		return nil
	}

	path := configFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	loaded, err := config.LoadFrom(v, config.ExpandPath(path))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = loaded
	return nil
}
