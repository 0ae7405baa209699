package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docview/internal/config"
	"docview/internal/log"
	"docview/internal/model"
	"docview/internal/search"
	"docview/internal/state"
	"docview/internal/ui/components"
)

type fakeSource struct {
	rm *model.RecordMap
}

func (f fakeSource) Load(context.Context) (*model.RecordMap, error) { return f.rm, nil }
func (f fakeSource) Describe() string                               { return "fake" }

func handbook() *model.RecordMap {
	return model.NewRecordMap(
		&model.Block{ID: "root", Type: model.BlockTypePage, Title: "Handbook", Content: []string{"eng", "hr"}},
		&model.Block{ID: "eng", Type: model.BlockTypePage, Title: "Engineering", ParentID: "root", Content: []string{"platform"}},
		&model.Block{ID: "hr", Type: model.BlockTypePage, Title: "People", ParentID: "root"},
		&model.Block{ID: "platform", Type: model.BlockTypePage, Title: "Platform", ParentID: "eng"},
	)
}

func newTestModel(t *testing.T, withSearch bool) *Model {
	t.Helper()
	cfg, err := config.LoadFrom(config.NewViper(), "")
	require.NoError(t, err)

	buf := log.NewBuffer(10)
	logger := log.New(log.LevelDebug)
	logger.SetOutput(buf)
	opts := Options{
		Config:    cfg,
		Source:    fakeSource{rm: handbook()},
		Logger:    logger,
		LogBuffer: buf,
	}
	if withSearch {
		opts.NewSearcher = func(rm *model.RecordMap) search.Searcher { return search.NewLocal(rm) }
	}
	m := New(opts)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(recordMapLoadedMsg{rm: handbook()})
	return m
}

// run feeds the messages produced by cmd back into m, expanding batches.
func run(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			run(m, c)
		}
	case components.OpenSearchMsg:
		m.Update(msg)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadOpensFirstPage(t *testing.T) {
	m := newTestModel(t, true)

	assert.Equal(t, state.ViewPage, m.state.View)
	assert.Equal(t, "root", m.state.ActiveID)
	assert.Len(t, m.children.Items(), 2)
	assert.True(t, m.header.Mounted())
	assert.Contains(t, m.View(), "Handbook")
}

func TestModel_LoadError(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(recordMapLoadedMsg{err: errors.New("boom")})
	assert.Error(t, m.state.LoadError)
	assert.Equal(t, "root", m.state.ActiveID, "previous page stays open")
}

func TestModel_NavigateChildrenAndParent(t *testing.T) {
	m := newTestModel(t, false)

	m.Update(keyMsg("enter"))
	assert.Equal(t, "eng", m.state.ActiveID)
	m.Update(keyMsg("enter"))
	assert.Equal(t, "platform", m.state.ActiveID)

	// Header hides the direct parent: Handbook / Platform.
	trail := m.header.Trail()
	require.Len(t, trail, 2)
	assert.Equal(t, "root", trail[0].BlockID)
	assert.True(t, trail[1].Active)

	m.Update(keyMsg("esc"))
	assert.Equal(t, "eng", m.state.ActiveID)
	assert.Equal(t, "platform", m.children.SelectedItem().ID)

	m.Update(keyMsg("h"))
	assert.Equal(t, "platform", m.state.ActiveID)
}

func TestModel_ShortcutOpensSearch(t *testing.T) {
	m := newTestModel(t, true)

	_, cmd := m.Update(keyMsg("ctrl+p"))
	require.NotNil(t, cmd)
	run(m, cmd)

	assert.True(t, m.dialog.IsActive())
	assert.Equal(t, state.ViewSearch, m.state.View)
	assert.Equal(t, "root", m.dialog.RootID())

	m.Update(keyMsg("esc"))
	assert.False(t, m.dialog.IsActive())
	assert.Equal(t, state.ViewPage, m.state.View)
	assert.Equal(t, "root", m.state.ActiveID)
}

func TestModel_SearchDisabledWithoutSearcher(t *testing.T) {
	m := newTestModel(t, false)

	assert.Equal(t, 0, m.hotkeys.Len())
	m.Update(keyMsg("/"))
	assert.False(t, m.dialog.IsActive())
	assert.NotContains(t, m.header.View(), "Search")
}

func TestModel_QuitReleasesShortcut(t *testing.T) {
	m := newTestModel(t, true)
	require.Equal(t, 1, m.hotkeys.Len())

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.hotkeys.Len())
}

func TestModel_ToggleLogs(t *testing.T) {
	m := newTestModel(t, false)

	m.Update(keyMsg("l"))
	assert.True(t, m.state.ShowLogs)
	assert.Greater(t, m.dims.LogsHeight, 0)
	assert.Contains(t, m.View(), "Loaded 4 blocks")

	m.Update(keyMsg("l"))
	assert.False(t, m.state.ShowLogs)
}

func TestModel_NavigateMsg(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(components.NavigateMsg{BlockID: "hr"})
	assert.Equal(t, "hr", m.state.ActiveID)

	m.Update(components.NavigateMsg{BlockID: "missing"})
	assert.Equal(t, "hr", m.state.ActiveID)
}

func TestModel_CopyLinkUsesConfiguredURL(t *testing.T) {
	m := newTestModel(t, false)
	m.Update(keyMsg("enter"))
	require.Equal(t, "eng", m.state.ActiveID)

	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, m.cfg.PageURL("eng"), copied)
	assert.Equal(t, "https://www.notion.so/eng", copied)

	m.Update(msg)
	assert.Contains(t, m.footer.View(), "link copied")
}

func TestModel_CopyLinkError(t *testing.T) {
	m := newTestModel(t, false)

	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { writeClipboard = orig })

	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Contains(t, m.footer.View(), "copy failed")
}

func TestPickClipboardCommand(t *testing.T) {
	installed := func(names ...string) func(string) (string, error) {
		return func(name string) (string, error) {
			for _, n := range names {
				if n == name {
					return "/usr/bin/" + name, nil
				}
			}
			return "", errors.New("not found")
		}
	}

	assert.Equal(t, []string{"xclip", "-selection", "clipboard"}, pickClipboardCommand("linux", installed("xclip", "xsel")))
	assert.Equal(t, []string{"wl-copy"}, pickClipboardCommand("linux", installed("wl-copy", "xclip")))
	assert.Nil(t, pickClipboardCommand("linux", installed()))
	assert.Nil(t, pickClipboardCommand("plan9", installed("pbcopy")))
}
