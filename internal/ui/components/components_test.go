package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docview/internal/breadcrumb"
	"docview/internal/log"
	"docview/internal/model"
	"docview/internal/search"
	"docview/internal/ui/hotkey"
)

func handbook() *model.RecordMap {
	return model.NewRecordMap(
		&model.Block{ID: "root", Type: model.BlockTypePage, Title: "Handbook", Icon: "📘", Content: []string{"eng"}},
		&model.Block{ID: "eng", Type: model.BlockTypePage, Title: "Engineering", ParentID: "root", Content: []string{"platform"}},
		&model.Block{ID: "platform", Type: model.BlockTypePage, Title: "Platform", ParentID: "eng", Content: []string{"oncall"}},
		&model.Block{ID: "oncall", Type: model.BlockTypePage, Title: "On-call", ParentID: "platform"},
	)
}

func testHeader(searchEnabled bool) *Header {
	h := NewHeader(HeaderOptions{
		PageURL:     func(id string) string { return "https://docs.example/" + id },
		Link:        func(text, href string) string { return text + "<" + href + ">" },
		Breakpoints: breadcrumb.DefaultBreakpoints(),
		Truncate:    breadcrumb.DefaultOptions(),
		CellWidth:   8,
		Search:      searchEnabled,
		Shortcut:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "search")),
	})
	h.SetRecordMap(handbook())
	h.SetActive("oncall")
	return h
}

func trailIDs(entries []model.Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.BlockID
	}
	return ids
}

func TestHeader_TrailFollowsWidth(t *testing.T) {
	h := testHeader(true)

	h.SetWidth(120) // 960px
	assert.Equal(t, []string{"root", "eng", "oncall"}, trailIDs(h.Trail()))

	h.SetWidth(50) // 400px
	assert.Equal(t, []string{"root", "oncall"}, trailIDs(h.Trail()))
}

func TestHeader_View(t *testing.T) {
	h := testHeader(true)
	h.SetWidth(120)

	view := h.View()
	assert.Contains(t, view, "Handbook<https://docs.example/root>")
	assert.Contains(t, view, "Engineering<https://docs.example/eng>")
	assert.Contains(t, view, "On-call")
	assert.NotContains(t, view, "https://docs.example/oncall", "active page is not a link")
	assert.NotContains(t, view, "Platform")
	assert.Equal(t, 2, strings.Count(view, " / "))
	assert.Contains(t, view, "Search")
}

func TestHeader_SingleEntryHasNoDivider(t *testing.T) {
	h := testHeader(false)
	h.SetActive("root")
	h.SetWidth(120)

	view := h.View()
	assert.Contains(t, view, "Handbook")
	assert.NotContains(t, view, " / ")
	assert.NotContains(t, view, "Search")
}

func TestHeader_MissingActiveRendersNothing(t *testing.T) {
	h := testHeader(true)
	h.SetActive("ghost")
	h.SetWidth(120)
	assert.Empty(t, h.View())

	h.SetRecordMap(nil)
	assert.Empty(t, h.View())
}

func TestHeader_MountRegistersShortcut(t *testing.T) {
	reg := hotkey.NewRegistry()
	h := testHeader(true)

	h.Mount(reg)
	h.Mount(reg)
	assert.Equal(t, 1, reg.Len(), "remount replaces the registration")
	assert.True(t, h.Mounted())

	cmd, handled := reg.Dispatch(tea.KeyMsg{Type: tea.KeyCtrlP})
	require.True(t, handled)
	assert.Equal(t, OpenSearchMsg{}, cmd())

	h.Unmount()
	h.Unmount()
	assert.Equal(t, 0, reg.Len())
	_, handled = reg.Dispatch(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.False(t, handled)
}

func TestHeader_MountWithoutSearch(t *testing.T) {
	reg := hotkey.NewRegistry()
	h := testHeader(false)
	h.Mount(reg)
	assert.Equal(t, 0, reg.Len())
	assert.False(t, h.Mounted())
}

func TestHeader_HandleMouse(t *testing.T) {
	h := testHeader(true)
	h.SetWidth(120)
	h.View()

	click := func(x, y int) tea.Cmd {
		return h.HandleMouse(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	}

	cmd := click(h.search.start, 0)
	require.NotNil(t, cmd)
	assert.Equal(t, OpenSearchMsg{}, cmd())

	require.Len(t, h.crumbs, 2)
	cmd = click(h.crumbs[1].start, 0)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateMsg{BlockID: "eng"}, cmd())

	assert.Nil(t, click(h.search.start, 3), "clicks below the header are ignored")
	assert.Nil(t, h.HandleMouse(tea.MouseMsg{X: h.search.start, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}))
}

func longHeader(search bool) *Header {
	h := NewHeader(HeaderOptions{
		PageURL:     func(id string) string { return "https://docs.example/" + id },
		Link:        HyperlinkRenderer,
		Breakpoints: breadcrumb.DefaultBreakpoints(),
		Truncate:    breadcrumb.DefaultOptions(),
		CellWidth:   8,
		Search:      search,
		Shortcut:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "search")),
	})
	h.SetRecordMap(model.NewRecordMap(
		&model.Block{ID: "root", Type: model.BlockTypePage, Title: "Engineering Handbook and Operating Manual"},
		&model.Block{ID: "a", Type: model.BlockTypePage, Title: "Platform Infrastructure Working Group", ParentID: "root"},
		&model.Block{ID: "b", Type: model.BlockTypePage, Title: "Production Readiness Reviews Archive", ParentID: "a"},
		&model.Block{ID: "c", Type: model.BlockTypePage, Title: "Quarterly Incident Retrospectives", ParentID: "b"},
		&model.Block{ID: "d", Type: model.BlockTypePage, Title: "Deploy Pipeline Rollback Procedure For Regions", ParentID: "c"},
	))
	h.SetActive("d")
	return h
}

func TestHeader_ViewFitsWidth(t *testing.T) {
	for _, search := range []bool{true, false} {
		for _, width := range []int{20, 40, 80, 120} {
			h := longHeader(search)
			h.SetWidth(width)

			view := h.View()
			assert.NotContains(t, view, "\n", "width %d search %v", width, search)
			assert.Equal(t, width, lipgloss.Width(view), "width %d search %v", width, search)
			assert.Contains(t, view, "…", "width %d search %v", width, search)

			assert.LessOrEqual(t, h.search.end, width)
			for _, c := range h.crumbs {
				assert.LessOrEqual(t, c.end, width)
			}
			if search && width >= 40 {
				assert.Greater(t, h.search.end, h.search.start, "button stays clickable at %d", width)
			}
		}
	}
}

func TestHeader_ViewKeepsShortTitles(t *testing.T) {
	h := testHeader(true)
	h.SetWidth(120)
	view := h.View()
	assert.NotContains(t, view, "…")
	assert.Equal(t, 120, lipgloss.Width(view))
}

func TestFitLabels(t *testing.T) {
	labels := []string{"Handbook", "Engineering", "Deploy Pipeline Rollback"}

	assert.Equal(t, labels, fitLabels(labels, 2, -1, 3), "no budget only caps")
	assert.Equal(t, labels, fitLabels(labels, 2, 60, 3))

	got := fitLabels(labels, 2, 40, 3)
	assert.Equal(t, labels[:2], got[:2], "ancestors kept while the active entry absorbs the cut")
	assert.Equal(t, 15, lipgloss.Width(got[2]))

	got = fitLabels(labels, 2, 30, 3)
	assert.Equal(t, minCrumbWidth, lipgloss.Width(got[2]))
	assert.Equal(t, "Handbook", got[0])
	assert.Equal(t, 30, lipgloss.Width(got[0])+lipgloss.Width(got[1])+lipgloss.Width(got[2])+6)

	// Below the floor every entry stops at minCrumbWidth.
	for _, l := range fitLabels(labels, 2, 5, 3) {
		assert.LessOrEqual(t, lipgloss.Width(l), minCrumbWidth)
	}
}

func TestDefaultIcon(t *testing.T) {
	assert.Equal(t, "📘", DefaultIcon("📘"))
	assert.Equal(t, "", DefaultIcon("https://example.com/icon.png"))
	assert.Equal(t, "📘 Handbook", label("📘", "Handbook"))
	assert.Equal(t, "Handbook", label("", "Handbook"))
}

func typeText(d *SearchDialog, text string) {
	for _, r := range text {
		d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// settle delivers the pending debounce and runs the search synchronously.
func settle(t *testing.T, d *SearchDialog) {
	t.Helper()
	_, cmd := d.Update(searchDebounceMsg{seq: d.seq})
	require.NotNil(t, cmd)
	d.Update(cmd())
}

func TestSearchDialog_SearchAndNavigate(t *testing.T) {
	d := NewSearchDialog(search.NewLocal(handbook()), 10)
	d.Open("eng")
	require.True(t, d.IsActive())
	assert.Equal(t, "eng", d.RootID())

	typeText(d, "call")
	settle(t, d)
	assert.Equal(t, []string{"oncall"}, resultIDs(d.Results()))

	for range 4 {
		d.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	assert.Empty(t, d.Results())

	// "Handbook" matches too but is outside the eng subtree.
	typeText(d, "n")
	settle(t, d)
	assert.Equal(t, []string{"eng", "oncall"}, resultIDs(d.Results()))

	d.Update(tea.KeyMsg{Type: tea.KeyDown})
	res, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, res)
	assert.Equal(t, "oncall", res.BlockID)
	assert.False(t, d.IsActive())
}

func TestSearchDialog_StaleResultsIgnored(t *testing.T) {
	d := NewSearchDialog(search.NewLocal(handbook()), 10)
	d.Open("root")

	typeText(d, "plat")
	stale := d.seq
	typeText(d, "x")

	_, cmd := d.Update(searchDebounceMsg{seq: stale})
	assert.Nil(t, cmd)

	d.Update(SearchResultsMsg{seq: stale, Results: []search.Result{{BlockID: "platform"}}})
	assert.Empty(t, d.Results())
}

func TestSearchDialog_Escape(t *testing.T) {
	d := NewSearchDialog(search.NewLocal(handbook()), 10)
	d.Open("root")

	res, _ := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, res)
	assert.True(t, res.Cancelled)
	assert.False(t, d.IsActive())
	assert.Empty(t, d.View())

	res, _ = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, res, "closed dialog ignores input")
}

func TestSearchDialog_EnterWithoutResults(t *testing.T) {
	d := NewSearchDialog(search.NewLocal(handbook()), 10)
	d.Open("root")

	res, _ := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, res)
	assert.True(t, d.IsActive())
	assert.Contains(t, d.View(), "Type to search pages")
}

func resultIDs(results []search.Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.BlockID
	}
	return ids
}

func TestLogsPanel(t *testing.T) {
	buf := log.NewBuffer(10)
	buf.Write("INFO", "Loaded 4 blocks")
	buf.Write("ERROR", "search failed")

	l := NewLogs(buf)
	l.SetSize(60, 6)
	l.Refresh()

	view := l.View()
	assert.Contains(t, view, "Loaded 4 blocks")
	assert.Contains(t, view, "search failed")
}

func TestFooter(t *testing.T) {
	bindings := HelpBindings(
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
	require.Len(t, bindings, 3)

	f := NewFooter()
	f.SetWidth(80)
	f.SetBindings(bindings)
	f.SetStatus("link copied")
	view := f.View()
	assert.Contains(t, view, "link copied")
	assert.Contains(t, view, "search")
	assert.NotContains(t, view, "hidden")

	f.SetStatus("")
	f.SetWidth(24)
	view = f.View()
	assert.Contains(t, view, "open")
	assert.NotContains(t, view, "search")
	assert.NotContains(t, view, "quit")
}

func TestList_Navigation(t *testing.T) {
	l := NewList("Pages")
	l.SetSize(40, 10)
	l.SetItems([]ListItem{
		{ID: "a", Title: "Alpha"},
		{ID: "b", Title: "Beta"},
		{ID: "c", Title: "Gamma"},
	})

	assert.Equal(t, "a", l.SelectedItem().ID)
	l.Up()
	assert.Equal(t, "a", l.SelectedItem().ID, "stays on the first item")
	l.Down()
	assert.Equal(t, "b", l.SelectedItem().ID)
	l.Bottom()
	assert.Equal(t, "c", l.SelectedItem().ID)
	l.Down()
	assert.Equal(t, "c", l.SelectedItem().ID, "stays on the last item")
	l.Top()
	assert.Equal(t, "a", l.SelectedItem().ID)
	assert.Contains(t, l.View(), "Pages (3)")

	assert.True(t, l.Select("a"))
	assert.Equal(t, "a", l.SelectedItem().ID)
	assert.False(t, l.Select("missing"))
}

func TestPage_Lines(t *testing.T) {
	rm := model.NewRecordMap(
		&model.Block{ID: "p", Type: model.BlockTypePage, Title: "Guide", Content: []string{"h", "t", "b", "child"}},
		&model.Block{ID: "h", Type: model.BlockTypeHeader, Text: "Overview", ParentID: "p"},
		&model.Block{ID: "t", Type: model.BlockTypeText, Text: "one two three four five six", ParentID: "p"},
		&model.Block{ID: "b", Type: model.BlockTypeBulletedList, Text: "point", ParentID: "p"},
		&model.Block{ID: "child", Type: model.BlockTypePage, Title: "Child", ParentID: "p"},
	)

	p := NewPage()
	p.SetSize(16, 0)
	p.SetPage(rm, rm.Get("p"))

	view := p.View()
	assert.Contains(t, view, "Guide")
	assert.Contains(t, view, "Overview")
	assert.Contains(t, view, "• point")
	assert.NotContains(t, view, "Child", "child pages are listed separately")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len(line), 16, line)
	}

	p.SetPage(rm, nil)
	assert.Empty(t, p.View())
}

func TestSpinner_IgnoresStaleTicks(t *testing.T) {
	s := NewSpinner("Loading...")
	require.NotNil(t, s.Start())
	stale := SpinnerTickMsg{id: s.id}
	require.NotNil(t, s.Start())

	assert.Nil(t, s.Update(stale, true))
	assert.Equal(t, 0, s.frame)

	assert.NotNil(t, s.Update(SpinnerTickMsg{id: s.id}, true))
	assert.Equal(t, 1, s.frame)

	assert.Nil(t, s.Update(SpinnerTickMsg{id: s.id}, false), "stops once loading ends")
	assert.Contains(t, s.View(), "Loading...")
}
