package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 60 * time.Second

// loadRecordMap reads all blocks from the configured source.
func (m *Model) loadRecordMap() tea.Cmd {
	m.state.Loading = true
	m.children.SetLoading(true)
	m.logger.Info("Loading blocks from %s...", m.source.Describe())

	source := m.source
	return tea.Batch(
		m.children.Spinner().Start(),
		func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
			defer cancel()
			rm, err := source.Load(ctx)
			return recordMapLoadedMsg{rm: rm, err: err}
		},
	)
}

// copyLink copies the link of the active page to the clipboard.
func (m *Model) copyLink() tea.Cmd {
	if m.state.ActivePage() == nil {
		return nil
	}
	url := m.cfg.PageURL(m.state.ActiveID)
	return func() tea.Msg {
		return linkCopiedMsg{url: url, err: writeClipboard(url)}
	}
}
