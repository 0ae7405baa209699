// Package app handles application lifecycle and dependency wiring.
package app

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"docview/internal/aws"
	"docview/internal/breadcrumb"
	"docview/internal/config"
	"docview/internal/log"
	"docview/internal/model"
	"docview/internal/search"
	"docview/internal/store"
	"docview/internal/ui"
	"docview/internal/ui/components"
	"docview/internal/ui/theme"
)

const (
	logBufferSize = 500
	cliTimeout    = 60 * time.Second
)

// Options holds runtime flags that are not part of the config file.
type Options struct {
	Debug       bool
	NoAltScreen bool // Disable alternate screen for easier copy/paste
}

// Backend is an opened content source plus the matching search factory.
type Backend struct {
	Source      store.Source
	NewSearcher ui.SearcherFactory
	client      *aws.Client
}

// OpenBackend builds the content source described by cfg. An AWS client is
// only created for the dynamodb source.
func OpenBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &Backend{}
	var table store.BlockTable
	if cfg.Source.Kind == store.KindDynamoDB {
		client, err := aws.NewClient(ctx, cfg.Source.Profile, cfg.Source.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS client: %w", err)
		}
		log.Info("Using DynamoDB table %s in %s (profile %q)", cfg.Source.Table, client.Region(), client.Profile())
		b.client = client
		table = client
	}

	source, err := store.Open(store.Spec{
		Kind:  cfg.Source.Kind,
		Path:  cfg.Source.Path,
		Table: cfg.Source.Table,
	}, table)
	if err != nil {
		return nil, err
	}
	b.Source = source
	if b.client != nil {
		b.NewSearcher = searcherFactory(b.client, cfg.Source.Table)
	} else {
		b.NewSearcher = searcherFactory(nil, "")
	}
	return b, nil
}

// searcherFactory picks the DynamoDB searcher when a client is given and the
// in-memory one otherwise.
func searcherFactory(client search.BlockSearcher, table string) ui.SearcherFactory {
	return func(rm *model.RecordMap) search.Searcher {
		if client != nil && table != "" {
			return search.NewDynamo(client, table, rm)
		}
		return search.NewLocal(rm)
	}
}

// setupLogging points the default logger at the UI buffer and, with debug,
// at a file. The returned func closes the file sink.
func setupLogging(cfg *config.Config, debug bool) (*log.Buffer, func(), error) {
	logger := log.Default()
	buf := log.NewBuffer(logBufferSize)
	logger.SetOutput(buf)
	logger.SetLevel(log.ParseLevel(cfg.LogLevel))

	if !debug {
		return buf, func() {}, nil
	}

	logger.SetLevel(log.LevelDebug)
	file, err := log.NewFileOutput(config.DefaultDebugLogPath())
	if err != nil {
		return nil, nil, err
	}
	logger.AddOutput(file)
	return buf, func() { _ = file.Close() }, nil
}

// Run starts the TUI with the given configuration.
func Run(cfg *config.Config, opts Options) error {
	buf, closeLog, err := setupLogging(cfg, opts.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	name, err := theme.ParseName(cfg.Theme)
	if err != nil {
		log.Warn("%v, detecting background", err)
	}
	theme.SetByName(name)

	if cfg.Path != "" {
		log.Debug("Using config %s", cfg.Path)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cliTimeout)
	backend, err := OpenBackend(ctx, cfg)
	cancel()
	if err != nil {
		return err
	}

	m := ui.New(ui.Options{
		Config:      cfg,
		Source:      backend.Source,
		NewSearcher: backend.NewSearcher,
		Logger:      log.Default(),
		LogBuffer:   buf,
	})

	programOpts := []tea.ProgramOption{
		tea.WithMouseCellMotion(),
	}
	if !opts.NoAltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(m, programOpts...)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// PrintTrail writes the breadcrumb trail of pageID as it would be shown in a
// terminal of the given width in columns.
func PrintTrail(ctx context.Context, w io.Writer, cfg *config.Config, pageID string, columns int) error {
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}
	rm, err := backend.Source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", backend.Source.Describe(), err)
	}
	id, err := store.ResolveActive(rm, pageID)
	if err != nil {
		return err
	}
	return writeTrail(w, cfg, rm, id, columns)
}

func writeTrail(w io.Writer, cfg *config.Config, rm *model.RecordMap, pageID string, columns int) error {
	bc := cfg.Breadcrumbs
	bp := breadcrumb.Breakpoints{
		Narrow:      bc.Breakpoints.Narrow,
		Medium:      bc.Breakpoints.Medium,
		NarrowLimit: bc.Limits.Narrow,
		MediumLimit: bc.Limits.Medium,
		WideLimit:   bc.Limits.Wide,
	}
	trail := breadcrumb.Trail(pageID, rm, columns*bc.CellWidth, bp, breadcrumb.Options{HideParent: bc.HideParent})

	parts := make([]string, 0, len(trail))
	for _, e := range trail {
		label := strings.TrimSpace(components.DefaultIcon(e.Icon) + " " + e.Title)
		if e.Active {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " / "))
	return err
}

// PrintSearch runs query against the configured source and writes one line
// per result. rootID restricts the search to a subtree.
func PrintSearch(ctx context.Context, w io.Writer, cfg *config.Config, query, rootID string) error {
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return err
	}
	rm, err := backend.Source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", backend.Source.Describe(), err)
	}
	if rootID == "" {
		rootID = cfg.RootPageID
	}

	results, err := backend.NewSearcher(rm).Search(ctx, search.Query{
		Text:        query,
		RootBlockID: rootID,
		Limit:       cfg.Search.Limit,
	})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "No results")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\n", r.BlockID, strings.Join(r.Path, " / "))
	}
	return nil
}

// ImportOptions selects the targets of Import.
type ImportOptions struct {
	File       string
	SQLitePath string
	// Table, when set, also writes the blocks to DynamoDB.
	Table   string
	Profile string
	Region  string
}

// Import copies a record map file into a SQLite database and, optionally, a
// DynamoDB table.
func Import(ctx context.Context, w io.Writer, opts ImportOptions) error {
	rm, err := store.NewFileSource(opts.File).Load(ctx)
	if err != nil {
		return err
	}

	if opts.SQLitePath != "" {
		if err := store.NewSQLiteSource(opts.SQLitePath).Import(ctx, rm); err != nil {
			return err
		}
		fmt.Fprintf(w, "Imported %d blocks into %s\n", rm.Len(), opts.SQLitePath)
	}

	if opts.Table != "" {
		client, err := aws.NewClient(ctx, opts.Profile, opts.Region)
		if err != nil {
			return fmt.Errorf("failed to create AWS client: %w", err)
		}
		if err := client.PutBlocks(ctx, opts.Table, rm.Blocks()); err != nil {
			return err
		}
		fmt.Fprintf(w, "Imported %d blocks into dynamodb %s\n", rm.Len(), opts.Table)
	}
	return nil
}

// PrintProfiles prints all available AWS profiles.
func PrintProfiles(w io.Writer) error {
	profiles, err := aws.ListProfiles()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available AWS profiles:")
	for _, p := range profiles {
		fmt.Fprintf(w, "  - %s\n", p)
	}
	return nil
}

// Version information (set by build flags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// PrintVersion prints version information.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "docview %s\n", Version)
	fmt.Fprintf(w, "  Commit:     %s\n", Commit)
	fmt.Fprintf(w, "  Build date: %s\n", BuildDate)
}
