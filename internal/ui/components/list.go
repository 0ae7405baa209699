package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docview/internal/ui/theme"
)

// ListItem represents an item in the list.
type ListItem struct {
	ID          string
	Icon        string
	Title       string
	Description string
}

// List is a scrollable, selectable list component.
type List struct {
	title    string
	items    []ListItem
	cursor   int
	offset   int
	width    int
	height   int
	loading  bool
	errMsg   string
	emptyMsg string
	spinner  *Spinner
}

// NewList creates a new List component.
func NewList(title string) *List {
	return &List{
		title:    title,
		emptyMsg: "No items",
		spinner:  NewSpinner("Loading..."),
	}
}

// Spinner returns the list's spinner for external tick updates.
func (l *List) Spinner() *Spinner {
	return l.spinner
}

// SetTitle sets the list title.
func (l *List) SetTitle(title string) {
	l.title = title
}

// SetItems sets the list items and moves the cursor to the top.
func (l *List) SetItems(items []ListItem) {
	l.items = items
	l.cursor = 0
	l.offset = 0
	l.clampOffset()
}

// Items returns the list items.
func (l *List) Items() []ListItem {
	return l.items
}

// SetSize sets the list dimensions.
func (l *List) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampOffset()
}

// SetLoading sets the loading state.
func (l *List) SetLoading(loading bool) {
	l.loading = loading
}

// SetError sets the error message.
func (l *List) SetError(err error) {
	if err != nil {
		l.errMsg = err.Error()
	} else {
		l.errMsg = ""
	}
}

// SetEmptyMessage sets the message to display when list is empty.
func (l *List) SetEmptyMessage(msg string) {
	l.emptyMsg = msg
}

// SelectedItem returns the currently selected item, or nil if none.
func (l *List) SelectedItem() *ListItem {
	if l.cursor >= 0 && l.cursor < len(l.items) {
		return &l.items[l.cursor]
	}
	return nil
}

// Select moves the cursor to the item with id.
func (l *List) Select(id string) bool {
	for i, item := range l.items {
		if item.ID == id {
			l.cursor = i
			l.clampOffset()
			return true
		}
	}
	return false
}

// Up moves the cursor up.
func (l *List) Up() {
	if l.cursor > 0 {
		l.cursor--
		l.clampOffset()
	}
}

// Down moves the cursor down.
func (l *List) Down() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
		l.clampOffset()
	}
}

// Top moves the cursor to the first item.
func (l *List) Top() {
	l.cursor = 0
	l.offset = 0
}

// Bottom moves the cursor to the last item.
func (l *List) Bottom() {
	l.cursor = max(0, len(l.items)-1)
	l.clampOffset()
}

func (l *List) clampOffset() {
	visibleItems := l.visibleItemCount()
	if l.cursor < l.offset {
		l.offset = l.cursor
	} else if l.cursor >= l.offset+visibleItems {
		l.offset = l.cursor - visibleItems + 1
	}

	maxOffset := max(0, len(l.items)-visibleItems)
	l.offset = max(0, min(l.offset, maxOffset))
}

func (l *List) visibleItemCount() int {
	// title line and scroll indicator
	return max(1, l.height-2)
}

// View renders the list.
func (l *List) View() string {
	s := theme.DefaultStyles()
	var b strings.Builder

	titleText := l.title
	if n := len(l.items); n > 0 {
		titleText = fmt.Sprintf("%s (%d)", l.title, n)
	}
	b.WriteString(s.ListTitle.Render(titleText))
	b.WriteString("\n")

	if l.loading {
		b.WriteString(l.spinner.View())
		return b.String()
	}

	if l.errMsg != "" {
		errStyle := s.StatusError.Width(max(10, l.width-2))
		b.WriteString(errStyle.Render("✗ " + l.errMsg))
		return b.String()
	}

	if len(l.items) == 0 {
		b.WriteString(s.Muted.Render("  " + l.emptyMsg))
		return b.String()
	}

	nameWidth := max(10, l.width-4)
	visibleCount := l.visibleItemCount()
	end := min(l.offset+visibleCount, len(l.items))

	var lines []string
	for i := l.offset; i < end; i++ {
		item := l.items[i]
		name := truncate(label(DefaultIcon(item.Icon), item.Title), nameWidth)
		if item.Description != "" {
			name += s.Muted.Render("  " + truncate(item.Description, max(0, nameWidth-lipgloss.Width(name)-2)))
		}
		if i == l.cursor {
			lines = append(lines, s.ListCursor.Render("▸ ")+s.ListSelected.Render(name))
		} else {
			lines = append(lines, "  "+s.ListItem.Render(name))
		}
	}
	b.WriteString(strings.Join(lines, "\n"))

	if len(l.items) > visibleCount {
		b.WriteString("\n")
		b.WriteString(s.Muted.Render(fmt.Sprintf("↑↓ %d-%d of %d", l.offset+1, end, len(l.items))))
	}

	return b.String()
}
