// Package ui implements the terminal user interface using bubbletea.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"docview/internal/breadcrumb"
	"docview/internal/config"
	"docview/internal/log"
	"docview/internal/model"
	"docview/internal/search"
	"docview/internal/state"
	"docview/internal/store"
	"docview/internal/ui/components"
	"docview/internal/ui/hotkey"
	"docview/internal/ui/layout"
)

// SearcherFactory builds the search backend once blocks are loaded.
type SearcherFactory func(rm *model.RecordMap) search.Searcher

// Options holds the dependencies of the UI.
type Options struct {
	Config *config.Config
	Source store.Source
	// NewSearcher may be nil, which disables search.
	NewSearcher SearcherFactory
	Logger      *log.Logger
	LogBuffer   *log.Buffer
}

// Model is the main bubbletea model.
type Model struct {
	// Dependencies
	cfg         *config.Config
	source      store.Source
	newSearcher SearcherFactory
	logger      *log.Logger

	// State
	state   *state.State
	hotkeys *hotkey.Registry

	// UI components
	header   *components.Header
	page     *components.Page
	children *components.List
	footer   *components.Footer
	logs     *components.Logs
	dialog   *components.SearchDialog

	// Key bindings
	keys KeyMap

	// Dimensions
	width  int
	height int
	dims   layout.Dimensions
	ready  bool
}

// New creates a new Model.
func New(opts Options) *Model {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	bc := cfg.Breadcrumbs
	header := components.NewHeader(components.HeaderOptions{
		PageURL: cfg.PageURL,
		Link:    components.HyperlinkRenderer,
		Icon:    components.DefaultIcon,
		Breakpoints: breadcrumb.Breakpoints{
			Narrow:      bc.Breakpoints.Narrow,
			Medium:      bc.Breakpoints.Medium,
			NarrowLimit: bc.Limits.Narrow,
			MediumLimit: bc.Limits.Medium,
			WideLimit:   bc.Limits.Wide,
		},
		Truncate:    breadcrumb.Options{HideParent: bc.HideParent},
		CellWidth:   bc.CellWidth,
		Search:      cfg.Search.Enabled && opts.NewSearcher != nil,
		SearchLabel: cfg.Search.Label,
		Shortcut:    SearchShortcut(cfg.Search.Shortcut),
	})

	st := state.New()
	st.Source = opts.Source.Describe()
	st.RootPageID = cfg.RootPageID

	children := components.NewList("Pages")
	children.SetEmptyMessage("No sub-pages")

	return &Model{
		cfg:         cfg,
		source:      opts.Source,
		newSearcher: opts.NewSearcher,
		logger:      logger,
		state:       st,
		hotkeys:     hotkey.NewRegistry(),
		header:      header,
		page:        components.NewPage(),
		children:    children,
		footer:      components.NewFooter(),
		logs:        components.NewLogs(opts.LogBuffer),
		dialog:      components.NewSearchDialog(nil, cfg.Search.Limit),
		keys:        DefaultKeyMap(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.loadRecordMap()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		if !m.dialog.IsActive() {
			if cmd := m.handleMouse(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateComponentSizes()

	case components.SpinnerTickMsg:
		if cmd := m.children.Spinner().Update(msg, m.state.Loading); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case recordMapLoadedMsg:
		m.handleLoaded(msg)

	case components.NavigateMsg:
		m.navigate(msg.BlockID)

	case components.OpenSearchMsg:
		if cmd := m.openSearch(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case linkCopiedMsg:
		if msg.err != nil {
			m.logger.Warn("Failed to copy link: %v", msg.err)
			m.footer.SetStatus("copy failed")
		} else {
			m.logger.Info("Copied %s", msg.url)
			m.footer.SetStatus("link copied")
		}

	default:
		// Debounce timers and search results belong to the dialog.
		if m.dialog.IsActive() {
			res, cmd := m.dialog.Update(msg)
			m.handleDialogResult(res)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	if m.state.ShowLogs {
		m.logs.Refresh()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.dialog.IsActive() {
		res, cmd := m.dialog.Update(msg)
		m.handleDialogResult(res)
		return cmd
	}

	// Global shortcuts registered by mounted components.
	if cmd, handled := m.hotkeys.Dispatch(msg); handled {
		return cmd
	}

	m.footer.SetStatus("")

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Logs):
		m.state.ShowLogs = !m.state.ShowLogs
		m.updateComponentSizes()
		return nil
	case key.Matches(msg, m.keys.Reload):
		return m.loadRecordMap()
	case m.state.ShowLogs && key.Matches(msg, m.keys.LogScrollUp):
		m.logs.ScrollUp()
		return nil
	case m.state.ShowLogs && key.Matches(msg, m.keys.LogScrollDown):
		m.logs.ScrollDown()
		return nil
	case m.state.ShowLogs && key.Matches(msg, m.keys.LogScrollEnd):
		m.logs.ScrollToBottom()
		return nil
	}

	if m.state.ActivePage() == nil {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.children.Up()
	case key.Matches(msg, m.keys.Down):
		m.children.Down()
	case key.Matches(msg, m.keys.Top):
		m.children.Top()
	case key.Matches(msg, m.keys.Bottom):
		m.children.Bottom()
	case key.Matches(msg, m.keys.Enter):
		if item := m.children.SelectedItem(); item != nil {
			m.navigate(item.ID)
		}
	case key.Matches(msg, m.keys.Parent):
		from := m.state.ActiveID
		if m.state.Parent() {
			m.pageChanged()
			m.children.Select(from)
		}
	case key.Matches(msg, m.keys.Back):
		if m.state.Back() {
			m.pageChanged()
		}
	case key.Matches(msg, m.keys.Search):
		return m.openSearch()
	case key.Matches(msg, m.keys.CopyURL):
		return m.copyLink()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.children.Up()
		return nil
	case tea.MouseButtonWheelDown:
		m.children.Down()
		return nil
	}
	return m.header.HandleMouse(msg)
}

func (m *Model) handleLoaded(msg recordMapLoadedMsg) {
	m.state.Loading = false
	m.children.SetLoading(false)

	if msg.err != nil {
		m.state.LoadError = msg.err
		m.children.SetError(msg.err)
		m.logger.Error("Failed to load blocks: %v", msg.err)
		return
	}

	want := m.state.ActiveID
	if want == "" || msg.rm.Get(want) == nil {
		want = m.cfg.ActivePage
	}
	active, err := store.ResolveActive(msg.rm, want)
	if err == nil && active == "" {
		err = fmt.Errorf("%s has no blocks", m.source.Describe())
	}
	if err != nil {
		m.state.LoadError = err
		m.children.SetError(err)
		m.logger.Error("Failed to open page: %v", err)
		return
	}

	m.state.LoadError = nil
	m.children.SetError(nil)
	m.state.RecordMap = msg.rm
	m.state.ActiveID = active
	m.state.View = state.ViewPage
	m.header.SetRecordMap(msg.rm)
	if m.newSearcher != nil {
		m.dialog.SetSearcher(m.newSearcher(msg.rm))
	}
	m.logger.Info("Loaded %d blocks", msg.rm.Len())
	m.pageChanged()
}

// navigate opens the page with id.
func (m *Model) navigate(id string) {
	if m.state.Navigate(id) {
		m.pageChanged()
		return
	}
	if m.state.RecordMap.Get(id) == nil {
		m.logger.Warn("Page %s not found", id)
	}
}

// pageChanged re-renders everything derived from the active page. The header
// is remounted so its shortcut lives exactly as long as the page view.
func (m *Model) pageChanged() {
	active := m.state.ActivePage()
	m.header.Unmount()
	m.header.SetActive(m.state.ActiveID)
	m.header.Mount(m.hotkeys)

	m.page.SetPage(m.state.RecordMap, active)

	var items []components.ListItem
	for _, child := range m.state.RecordMap.ChildPages(active) {
		items = append(items, components.ListItem{
			ID:          child.ID,
			Icon:        child.Icon,
			Title:       child.Title,
			Description: childSummary(m.state.RecordMap, child),
		})
	}
	m.children.SetItems(items)
	m.logger.Debug("Opened page %s", m.state.ActiveID)
}

func childSummary(rm *model.RecordMap, b *model.Block) string {
	if n := len(rm.ChildPages(b)); n > 0 {
		if n == 1 {
			return "1 page"
		}
		return fmt.Sprintf("%d pages", n)
	}
	return ""
}

func (m *Model) openSearch() tea.Cmd {
	if m.newSearcher == nil || !m.cfg.Search.Enabled || m.state.RecordMap == nil {
		return nil
	}
	m.state.View = state.ViewSearch
	return m.dialog.Open(m.state.SearchRoot())
}

func (m *Model) handleDialogResult(res *components.SearchDialogResult) {
	if res == nil {
		return
	}
	m.state.View = state.ViewPage
	if !res.Cancelled && res.BlockID != "" {
		m.navigate(res.BlockID)
	}
}

func (m *Model) quit() tea.Cmd {
	m.header.Unmount()
	return tea.Quit
}

// updateComponentSizes resizes every component for the current window.
func (m *Model) updateComponentSizes() {
	m.dims = layout.CalculateWithDefaults(m.width, m.height, m.state.ShowLogs)
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.page.SetSize(m.dims.BodyWidth, m.dims.BodyHeight)
	m.children.SetSize(m.dims.ListWidth, m.dims.ListHeight)
	m.logs.SetSize(m.dims.LogsWidth, m.dims.LogsHeight)
	m.dialog.SetSize(m.width, m.height)
}
