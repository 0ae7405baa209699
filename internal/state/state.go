// Package state manages the application state.
package state

import (
	"docview/internal/model"
)

// View represents the current view/screen.
type View int

const (
	ViewLoading View = iota
	ViewPage
	ViewSearch
)

// State holds all application state.
type State struct {
	// Current view
	View View

	// Source description, e.g. "sqlite ~/docs.db"
	Source string

	// Loaded blocks
	RecordMap *model.RecordMap
	Loading   bool
	LoadError error

	// RootPageID scopes search; empty means the active page.
	RootPageID string
	ActiveID   string

	// History of visited pages, most recent last, excluding ActiveID.
	History []string

	ShowLogs bool
}

// New creates a new State.
func New() *State {
	return &State{View: ViewLoading}
}

// ActivePage returns the block of the active page, or nil.
func (s *State) ActivePage() *model.Block {
	return s.RecordMap.Get(s.ActiveID)
}

// SearchRoot returns the page search is scoped to.
func (s *State) SearchRoot() string {
	if s.RootPageID != "" {
		return s.RootPageID
	}
	return s.ActiveID
}

// Navigate makes id the active page. It reports false when id is unknown
// or already active.
func (s *State) Navigate(id string) bool {
	if id == s.ActiveID || s.RecordMap.Get(id) == nil {
		return false
	}
	if s.ActiveID != "" {
		s.History = append(s.History, s.ActiveID)
	}
	s.ActiveID = id
	return true
}

// Parent makes the parent page of the active page active.
func (s *State) Parent() bool {
	parent := s.RecordMap.ParentPage(s.ActivePage())
	if parent == nil {
		return false
	}
	return s.Navigate(parent.ID)
}

// Back returns to the previously visited page.
func (s *State) Back() bool {
	for len(s.History) > 0 {
		prev := s.History[len(s.History)-1]
		s.History = s.History[:len(s.History)-1]
		if s.RecordMap.Get(prev) != nil && prev != s.ActiveID {
			s.ActiveID = prev
			return true
		}
	}
	return false
}
