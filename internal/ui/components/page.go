package components

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"docview/internal/model"
	"docview/internal/ui/theme"
)

// Page renders the title and text blocks of a page.
type Page struct {
	width  int
	height int
	rm     *model.RecordMap
	block  *model.Block
}

// NewPage creates a new Page component.
func NewPage() *Page {
	return &Page{}
}

// SetSize sets the page body size.
func (p *Page) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetPage sets the page to show and the map its content is read from.
func (p *Page) SetPage(rm *model.RecordMap, block *model.Block) {
	p.rm = rm
	p.block = block
}

// Lines returns the rendered body, one entry per terminal line.
func (p *Page) Lines() []string {
	if p.block == nil {
		return nil
	}
	s := theme.DefaultStyles()
	width := max(10, p.width-2)

	title := p.block.Title
	if title == "" {
		title = "Untitled"
	}
	lines := []string{s.PageTitle.UnsetMarginBottom().Render(label(DefaultIcon(p.block.Icon), title)), ""}

	for _, b := range p.rm.ContentBlocks(p.block) {
		lines = append(lines, p.renderBlock(s, b, width)...)
	}
	return lines
}

func (p *Page) renderBlock(s theme.Styles, b *model.Block, width int) []string {
	wrap := func(prefix, text string) []string {
		wrapped := wordwrap.String(text, max(1, width-len([]rune(prefix))))
		var out []string
		indent := strings.Repeat(" ", len([]rune(prefix)))
		for i, line := range strings.Split(wrapped, "\n") {
			if i == 0 {
				out = append(out, prefix+line)
			} else {
				out = append(out, indent+line)
			}
		}
		return out
	}

	text := b.Text
	if text == "" {
		text = b.Title
	}

	switch b.Type {
	case model.BlockTypeHeader, model.BlockTypeSubHeader:
		var out []string
		for _, line := range wrap("", text) {
			out = append(out, s.PageHead.Render(line))
		}
		return out
	case model.BlockTypeBulletedList:
		return wrap("• ", text)
	case model.BlockTypeTodo:
		return wrap("☐ ", text)
	case model.BlockTypeCode:
		var out []string
		for _, line := range strings.Split(text, "\n") {
			out = append(out, s.PageCode.Render(truncate(line, width)))
		}
		return out
	case model.BlockTypeDivider:
		return []string{s.Muted.Render(strings.Repeat("─", min(width, 40)))}
	default:
		if text == "" {
			return []string{""}
		}
		return wrap("", text)
	}
}

// View renders the page body, cut to the page height.
func (p *Page) View() string {
	lines := p.Lines()
	if p.height > 0 && len(lines) > p.height {
		lines = lines[:p.height]
	}
	return strings.Join(lines, "\n")
}
