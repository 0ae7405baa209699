// Package config manages application configuration from ~/.docview/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileType = "yaml"
	envPrefix      = "DOCVIEW"
)

// Config keys.
const (
	KeySourceKind          = "source.kind"
	KeySourcePath          = "source.path"
	KeySourceTable         = "source.table"
	KeySourceProfile       = "source.profile"
	KeySourceRegion        = "source.region"
	KeyRootPageID          = "root_page_id"
	KeyActivePageID        = "active_page_id"
	KeyURLTemplate         = "url_template"
	KeyTheme               = "theme"
	KeyLogLevel            = "log_level"
	KeySearchEnabled       = "search.enabled"
	KeySearchShortcut      = "search.shortcut"
	KeySearchLabel         = "search.label"
	KeySearchLimit         = "search.limit"
	KeyCellWidth           = "breadcrumbs.cell_width"
	KeyBreakpointNarrow    = "breadcrumbs.breakpoints.narrow"
	KeyBreakpointMedium    = "breadcrumbs.breakpoints.medium"
	KeyLimitNarrow         = "breadcrumbs.limits.narrow"
	KeyLimitMedium         = "breadcrumbs.limits.medium"
	KeyLimitWide           = "breadcrumbs.limits.wide"
	KeyHideParent          = "breadcrumbs.hide_parent"
	defaultURLTemplate     = "https://www.notion.so/{id}"
	defaultSearchShortcut  = "ctrl+p"
	defaultSearchLabel     = "Search"
	defaultCellWidthPixels = 8
)

// Config represents the application configuration
type Config struct {
	Source      SourceConfig      `mapstructure:"source"`
	RootPageID  string            `mapstructure:"root_page_id"`
	ActivePage  string            `mapstructure:"active_page_id"`
	URLTemplate string            `mapstructure:"url_template"`
	Theme       string            `mapstructure:"theme"`
	LogLevel    string            `mapstructure:"log_level"`
	Search      SearchConfig      `mapstructure:"search"`
	Breadcrumbs BreadcrumbsConfig `mapstructure:"breadcrumbs"`

	// Path is the config file that was read, empty when none was found.
	Path string `mapstructure:"-"`
}

// SourceConfig selects where blocks are loaded from.
type SourceConfig struct {
	// Kind is "file", "sqlite" or "dynamodb"
	Kind string `mapstructure:"kind"`

	// Path is the record map file or SQLite database
	Path string `mapstructure:"path"`

	// Table is the DynamoDB table name
	Table string `mapstructure:"table"`

	// Profile and Region select AWS credentials for the dynamodb source
	Profile string `mapstructure:"profile"`
	Region  string `mapstructure:"region"`
}

// SearchConfig configures the search trigger and dialog.
type SearchConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Shortcut string `mapstructure:"shortcut"`
	Label    string `mapstructure:"label"`
	Limit    int    `mapstructure:"limit"`
}

// BreadcrumbsConfig configures breadcrumb truncation.
type BreadcrumbsConfig struct {
	// CellWidth converts terminal columns to pixels for the breakpoints
	CellWidth   int               `mapstructure:"cell_width"`
	Breakpoints BreakpointsConfig `mapstructure:"breakpoints"`
	Limits      LimitsConfig      `mapstructure:"limits"`
	HideParent  bool              `mapstructure:"hide_parent"`
}

// BreakpointsConfig holds width thresholds in pixels.
type BreakpointsConfig struct {
	Narrow int `mapstructure:"narrow"`
	Medium int `mapstructure:"medium"`
}

// LimitsConfig holds the visible entry count per width class.
type LimitsConfig struct {
	Narrow int `mapstructure:"narrow"`
	Medium int `mapstructure:"medium"`
	Wide   int `mapstructure:"wide"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".docview")
}

// DefaultConfigPath returns the default config file path
func DefaultConfigPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// DefaultDebugLogPath returns where --debug writes its log file
func DefaultDebugLogPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return filepath.Join(os.TempDir(), "docview-debug.log")
	}
	return filepath.Join(dir, "debug.log")
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeySourceKind, "file")
	v.SetDefault(KeySourcePath, "")
	v.SetDefault(KeySourceTable, "")
	v.SetDefault(KeySourceProfile, "")
	v.SetDefault(KeySourceRegion, "")
	v.SetDefault(KeyRootPageID, "")
	v.SetDefault(KeyActivePageID, "")
	v.SetDefault(KeyURLTemplate, defaultURLTemplate)
	v.SetDefault(KeyTheme, "auto")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySearchEnabled, true)
	v.SetDefault(KeySearchShortcut, defaultSearchShortcut)
	v.SetDefault(KeySearchLabel, defaultSearchLabel)
	v.SetDefault(KeySearchLimit, 20)
	v.SetDefault(KeyCellWidth, defaultCellWidthPixels)
	v.SetDefault(KeyBreakpointNarrow, 500)
	v.SetDefault(KeyBreakpointMedium, 830)
	v.SetDefault(KeyLimitNarrow, 2)
	v.SetDefault(KeyLimitMedium, 3)
	v.SetDefault(KeyLimitWide, 6)
	v.SetDefault(KeyHideParent, true)
}

// Load loads the configuration from the default path
func Load(v *viper.Viper) (*Config, error) {
	return LoadFrom(v, DefaultConfigPath())
}

// LoadFrom loads the configuration from a specific path. A missing file is
// not an error; defaults, environment and bound flags still apply.
func LoadFrom(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configFileType)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Source.Path = ExpandPath(cfg.Source.Path)
	cfg.Path = v.ConfigFileUsed()
	if _, err := os.Stat(cfg.Path); err != nil {
		cfg.Path = ""
	}

	return cfg, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// PageURL maps a page ID to a link using the configured template.
func (c *Config) PageURL(pageID string) string {
	tmpl := c.URLTemplate
	if tmpl == "" {
		tmpl = defaultURLTemplate
	}
	compact := strings.ReplaceAll(pageID, "-", "")
	r := strings.NewReplacer("{id}", pageID, "{compact_id}", compact)
	return r.Replace(tmpl)
}

// Validate checks that the source is usable.
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case "file", "sqlite":
		if c.Source.Path == "" {
			return fmt.Errorf("source.path is required for %s source", c.Source.Kind)
		}
	case "dynamodb":
		if c.Source.Table == "" {
			return fmt.Errorf("source.table is required for dynamodb source")
		}
	default:
		return fmt.Errorf("unknown source kind %q", c.Source.Kind)
	}
	if c.Breadcrumbs.CellWidth <= 0 {
		return fmt.Errorf("breadcrumbs.cell_width must be positive")
	}
	return nil
}

// defaultConfigYAML is written by CreateDefaultConfig.
const defaultConfigYAML = `# docview configuration

source:
  kind: file            # file, sqlite or dynamodb
  path: ~/notes/workspace.yaml
  # table: docview-blocks
  # profile: default
  # region: eu-west-1

# root_page_id: ""      # search scope; defaults to the active page
url_template: https://www.notion.so/{compact_id}
theme: auto

search:
  enabled: true
  shortcut: ctrl+p
  label: Search

breadcrumbs:
  cell_width: 8         # pixels per terminal column
  hide_parent: true
  breakpoints:
    narrow: 500
    medium: 830
  limits:
    narrow: 2
    medium: 3
    wide: 6
`

// CreateDefaultConfig writes an example config file if none exists
func CreateDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0644)
}
