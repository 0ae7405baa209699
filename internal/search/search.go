// Package search finds pages by title or text within a page subtree.
package search

import (
	"context"
	"strings"

	"docview/internal/breadcrumb"
	"docview/internal/model"
)

// DefaultLimit caps results when a query sets no limit.
const DefaultLimit = 20

// Query is a search request.
type Query struct {
	Text string
	// RootBlockID restricts results to this page and its descendants.
	// Empty searches the whole map.
	RootBlockID string
	Limit       int
}

// Result is a page that matched a query.
type Result struct {
	BlockID string
	Title   string
	Icon    string
	// Path holds the titles from the root down to the page itself.
	Path []string
}

// Searcher runs queries. Implementations must be safe to call from a
// goroutine other than the one rendering the UI.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]Result, error)
}

// normalize trims and lower-cases query text.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func limitOf(q Query) int {
	if q.Limit > 0 {
		return q.Limit
	}
	return DefaultLimit
}

// matches reports whether b's title or text contains needle, which must
// already be normalized.
func matches(b *model.Block, needle string) bool {
	return strings.Contains(strings.ToLower(b.Title), needle) ||
		strings.Contains(strings.ToLower(b.Text), needle)
}

// pageFor returns the page a hit belongs to: b itself when it is a page,
// else its nearest parent page.
func pageFor(rm *model.RecordMap, b *model.Block) *model.Block {
	if b.IsPage() {
		return b
	}
	return rm.ParentPage(b)
}

// within reports whether page is rootID or one of its descendants.
func within(rm *model.RecordMap, page *model.Block, rootID string) bool {
	if rootID == "" {
		return true
	}
	seen := make(map[string]bool)
	for p := page; p != nil && !seen[p.ID]; p = rm.ParentPage(p) {
		if p.ID == rootID {
			return true
		}
		seen[p.ID] = true
	}
	return false
}

// collector turns block hits into de-duplicated page results.
type collector struct {
	rm      *model.RecordMap
	rootID  string
	limit   int
	seen    map[string]bool
	results []Result
}

func newCollector(rm *model.RecordMap, q Query) *collector {
	return &collector{
		rm:     rm,
		rootID: q.RootBlockID,
		limit:  limitOf(q),
		seen:   make(map[string]bool),
	}
}

// add records the page for hit and reports whether more results fit.
func (c *collector) add(hit *model.Block) bool {
	page := pageFor(c.rm, hit)
	if page == nil || c.seen[page.ID] || !within(c.rm, page, c.rootID) {
		return len(c.results) < c.limit
	}
	c.seen[page.ID] = true

	chain := breadcrumb.Build(page.ID, c.rm)
	path := make([]string, 0, len(chain))
	for i := len(chain) - 1; i >= 0; i-- {
		path = append(path, chain[i].Title)
	}
	if len(path) == 0 {
		path = []string{page.Title}
	}
	c.results = append(c.results, Result{
		BlockID: page.ID,
		Title:   page.Title,
		Icon:    page.Icon,
		Path:    path,
	})
	return len(c.results) < c.limit
}
