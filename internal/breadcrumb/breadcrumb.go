// Package breadcrumb derives and truncates the ancestor trail of a page.
package breadcrumb

import "docview/internal/model"

// Build walks parent page links from activeID up to the root.
// The result is ordered active first, root last. The walk stops at a missing
// block, at a block with neither title nor icon, or when an ID repeats.
func Build(activeID string, rm *model.RecordMap) []model.Entry {
	var chain []model.Entry
	seen := make(map[string]bool)

	for id := activeID; id != "" && !seen[id]; {
		seen[id] = true

		block := rm.Get(id)
		if block == nil || !block.HasLabel() {
			break
		}

		chain = append(chain, model.Entry{
			BlockID: id,
			Title:   block.Title,
			Icon:    block.Icon,
			Active:  id == activeID,
		})

		parent := rm.ParentPage(block)
		if parent == nil {
			break
		}
		id = parent.ID
	}

	return chain
}

// Breakpoints maps an available width in pixels to a visible entry limit.
type Breakpoints struct {
	Narrow      int // widths below this get NarrowLimit
	Medium      int // widths below this get MediumLimit
	NarrowLimit int
	MediumLimit int
	WideLimit   int
}

// DefaultBreakpoints returns the stock width thresholds.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Narrow:      500,
		Medium:      830,
		NarrowLimit: 2,
		MediumLimit: 3,
		WideLimit:   6,
	}
}

// Limit returns the maximum number of visible entries for width.
func (b Breakpoints) Limit(width int) int {
	switch {
	case width < b.Narrow:
		return b.NarrowLimit
	case width < b.Medium:
		return b.MediumLimit
	default:
		return b.WideLimit
	}
}

// Limit returns the maximum number of visible entries for width using the
// default breakpoints.
func Limit(width int) int {
	return DefaultBreakpoints().Limit(width)
}

// Options controls truncation.
type Options struct {
	// HideParent drops the active page's immediate parent even when the
	// chain already fits. The root is never dropped this way.
	HideParent bool
}

// DefaultOptions returns the stock truncation options.
func DefaultOptions() Options {
	return Options{HideParent: true}
}

// Truncate reduces chain (active first, as returned by Build) to at most
// limit entries and returns them in render order: root first, active last.
// The root and the active entry are always kept; interior entries nearest
// the root are dropped first.
func Truncate(chain []model.Entry, limit int, opts Options) []model.Entry {
	total := len(chain)
	if total == 0 {
		return nil
	}

	remove := 0
	if total > limit {
		remove = total - limit
	}

	kept := make([]model.Entry, 0, total)
	kept = append(kept, chain[0])
	rest := chain[1:]
	if opts.HideParent && total > 2 {
		rest = rest[1:]
		remove--
	}
	kept = append(kept, rest...)

	// kept is active first; walk it root first.
	out := make([]model.Entry, 0, len(kept))
	for i := len(kept) - 1; i >= 0; i-- {
		isRoot := i == len(kept)-1
		isActive := i == 0
		if remove > 0 && !isRoot && !isActive {
			remove--
			continue
		}
		out = append(out, kept[i])
	}

	return out
}

// Trail builds and truncates the breadcrumb trail for width in one step.
func Trail(activeID string, rm *model.RecordMap, width int, bp Breakpoints, opts Options) []model.Entry {
	return Truncate(Build(activeID, rm), bp.Limit(width), opts)
}
