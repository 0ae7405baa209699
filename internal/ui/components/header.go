package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"docview/internal/breadcrumb"
	"docview/internal/model"
	"docview/internal/ui/hotkey"
	"docview/internal/ui/theme"
)

// maxCrumbWidth caps the columns taken by a single non-active entry.
const maxCrumbWidth = 28

// LinkRenderer turns already styled text into a link to href.
type LinkRenderer func(text, href string) string

// IconRenderer turns a block icon into terminal text.
type IconRenderer func(icon string) string

// HyperlinkRenderer renders links as OSC 8 terminal hyperlinks.
func HyperlinkRenderer(text, href string) string {
	if href == "" {
		return text
	}
	return termenv.Hyperlink(href, text)
}

// HeaderOptions configures a Header.
type HeaderOptions struct {
	PageURL     func(pageID string) string
	Link        LinkRenderer
	Icon        IconRenderer
	Breakpoints breadcrumb.Breakpoints
	Truncate    breadcrumb.Options
	// CellWidth is the assumed pixel width of one terminal column.
	CellWidth int

	// Search shows the search button and enables the shortcut.
	Search      bool
	SearchLabel string
	Shortcut    key.Binding
}

// span is a clickable column range of the rendered header.
type span struct {
	start, end int
	blockID    string
}

// Header renders the breadcrumb trail of the active page and a search button.
type Header struct {
	opts     HeaderOptions
	width    int
	rm       *model.RecordMap
	activeID string

	release func()

	// Hit areas of the last render.
	crumbs []span
	search span
}

// NewHeader creates a new Header component.
func NewHeader(opts HeaderOptions) *Header {
	if opts.Link == nil {
		opts.Link = HyperlinkRenderer
	}
	if opts.Icon == nil {
		opts.Icon = DefaultIcon
	}
	if opts.PageURL == nil {
		opts.PageURL = func(string) string { return "" }
	}
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.SearchLabel == "" {
		opts.SearchLabel = "Search"
	}
	return &Header{opts: opts}
}

// SetWidth sets the header width in columns.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetRecordMap sets the blocks the trail is built from.
func (h *Header) SetRecordMap(rm *model.RecordMap) {
	h.rm = rm
}

// SetActive sets the page being displayed.
func (h *Header) SetActive(blockID string) {
	h.activeID = blockID
}

// Mount registers the search shortcut in reg. Mounting again first releases
// the previous registration.
func (h *Header) Mount(reg *hotkey.Registry) {
	h.Unmount()
	if !h.opts.Search || reg == nil {
		return
	}
	h.release = reg.Register(h.opts.Shortcut, func(tea.KeyMsg) tea.Cmd {
		return openSearch
	})
}

// Unmount releases the search shortcut.
func (h *Header) Unmount() {
	if h.release != nil {
		h.release()
		h.release = nil
	}
}

// Mounted reports whether the shortcut is registered.
func (h *Header) Mounted() bool {
	return h.release != nil
}

func openSearch() tea.Msg {
	return OpenSearchMsg{}
}

// Trail returns the entries the header shows at its current width, root first.
func (h *Header) Trail() []model.Entry {
	return breadcrumb.Trail(h.activeID, h.rm, h.width*h.opts.CellWidth, h.opts.Breakpoints, h.opts.Truncate)
}

// HandleMouse maps a click on the header row to navigation or search.
func (h *Header) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Y != 0 || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if h.opts.Search && h.search.end > h.search.start && msg.X >= h.search.start && msg.X < h.search.end {
		return openSearch
	}
	for _, c := range h.crumbs {
		if msg.X >= c.start && msg.X < c.end {
			id := c.blockID
			return func() tea.Msg { return NavigateMsg{BlockID: id} }
		}
	}
	return nil
}

// View renders the header on a single row of exactly the header width. The
// active entry gives up columns first, then the other entries shrink, and a
// search button that no longer fits collapses to its icon.
func (h *Header) View() string {
	h.crumbs = h.crumbs[:0]
	h.search = span{}

	if h.rm.Get(h.activeID) == nil {
		return ""
	}

	s := theme.DefaultStyles()
	const padLeft = 1
	divider := s.CrumbDivider.Render(" / ")
	dividerWidth := lipgloss.Width(divider)

	// inner < 0 means no width is known yet and nothing is cut.
	inner := -1
	if h.width > 0 {
		inner = max(h.width-2*padLeft, 0)
	}

	var button string
	if h.opts.Search {
		button = h.searchButton(s, inner)
	}
	buttonWidth := lipgloss.Width(button)

	leftBudget := inner
	if inner >= 0 && button != "" {
		leftBudget = inner - minGap - buttonWidth
	}

	trail := h.Trail()
	labels := make([]string, len(trail))
	active := -1
	for i, entry := range trail {
		labels[i] = label(h.opts.Icon(entry.Icon), entry.Title)
		if entry.Active {
			active = i
		}
	}
	labels = fitLabels(labels, active, leftBudget, dividerWidth)

	var left strings.Builder
	col := padLeft
	for i, entry := range trail {
		if i > 0 {
			left.WriteString(divider)
			col += dividerWidth
		}

		var rendered string
		if entry.Active {
			rendered = s.CrumbActive.Render(labels[i])
		} else {
			rendered = h.opts.Link(s.Crumb.Render(labels[i]), h.opts.PageURL(entry.BlockID))
		}

		w := lipgloss.Width(rendered)
		if !entry.Active {
			h.crumbs = append(h.crumbs, span{start: col, end: col + w, blockID: entry.BlockID})
		}
		left.WriteString(rendered)
		col += w
	}

	leftStr := left.String()
	if leftBudget >= 0 && lipgloss.Width(leftStr) > leftBudget {
		leftStr = ansi.Truncate(leftStr, leftBudget, "…")
		h.clampCrumbs(padLeft + leftBudget)
	}
	if button == "" {
		return s.Header.Width(h.width).Render(leftStr)
	}

	gap := minGap
	if inner >= 0 {
		gap = max(inner-lipgloss.Width(leftStr)-buttonWidth, minGap)
	}
	start := padLeft + lipgloss.Width(leftStr) + gap
	h.search = span{start: start, end: start + buttonWidth}

	content := leftStr + strings.Repeat(" ", gap) + button
	return s.Header.Width(h.width).Render(content)
}

const (
	// minGap separates the trail from the search button.
	minGap = 2
	// minTrailWidth is what the trail keeps before the button collapses.
	minTrailWidth = 12
	// minCrumbWidth is the narrowest an entry is cut to.
	minCrumbWidth = 6
)

// searchButton renders the full button when it leaves minTrailWidth columns
// for the trail, else just the icon. It is dropped when even that does not
// fit.
func (h *Header) searchButton(s theme.Styles, inner int) string {
	full := s.SearchButton.Render("⌕ " + h.opts.SearchLabel)
	if help := h.opts.Shortcut.Help().Key; help != "" {
		full += s.Muted.Render(" " + help)
	}
	if inner < 0 || inner >= minTrailWidth+minGap+lipgloss.Width(full) {
		return full
	}
	compact := s.SearchButton.Render("⌕")
	if inner >= minTrailWidth+minGap+lipgloss.Width(compact) {
		return compact
	}
	return ""
}

// clampCrumbs drops click targets past column end and shortens the last one.
func (h *Header) clampCrumbs(end int) {
	kept := h.crumbs[:0]
	for _, c := range h.crumbs {
		if c.start >= end {
			continue
		}
		c.end = min(c.end, end)
		kept = append(kept, c)
	}
	h.crumbs = kept
}

// fitLabels cuts labels so that, joined by sep columns, they take at most
// budget columns. Entries other than active are capped at maxCrumbWidth. The
// active label is cut first, down to minCrumbWidth; then the widest other
// labels shrink, also not below minCrumbWidth. A negative budget only applies
// the cap.
func fitLabels(labels []string, active, budget, sep int) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			out[i] = l
			continue
		}
		out[i] = truncate(l, maxCrumbWidth)
	}
	if budget < 0 {
		return out
	}

	total := func() int {
		n := sep * max(len(out)-1, 0)
		for _, l := range out {
			n += lipgloss.Width(l)
		}
		return n
	}

	excess := total() - budget
	if excess <= 0 {
		return out
	}
	if active >= 0 {
		w := lipgloss.Width(out[active])
		keep := max(w-excess, minCrumbWidth)
		if keep < w {
			out[active] = truncate(out[active], keep)
		}
		excess = total() - budget
	}

	for excess > 0 {
		widest := -1
		for i, l := range out {
			if i == active || lipgloss.Width(l) <= minCrumbWidth {
				continue
			}
			if widest < 0 || lipgloss.Width(l) > lipgloss.Width(out[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		w := lipgloss.Width(out[widest])
		cut := truncate(out[widest], max(w-excess, minCrumbWidth))
		if lipgloss.Width(cut) >= w {
			break
		}
		out[widest] = cut
		excess = total() - budget
	}
	return out
}
