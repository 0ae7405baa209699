// Package model defines domain types used throughout the application.
// These types are decoupled from storage formats to keep the UI and business logic clean.
package model

// BlockType represents the kind of a content block.
type BlockType string

const (
	BlockTypePage               BlockType = "page"
	BlockTypeCollectionViewPage BlockType = "collection_view_page"
	BlockTypeText               BlockType = "text"
	BlockTypeHeader             BlockType = "header"
	BlockTypeSubHeader          BlockType = "sub_header"
	BlockTypeBulletedList       BlockType = "bulleted_list"
	BlockTypeTodo               BlockType = "to_do"
	BlockTypeCode               BlockType = "code"
	BlockTypeDivider            BlockType = "divider"
)

// IsPage returns true if blocks of this type are navigable pages.
func (t BlockType) IsPage() bool {
	switch t {
	case BlockTypePage, BlockTypeCollectionViewPage:
		return true
	default:
		return false
	}
}

// Block is a node in the document tree.
type Block struct {
	ID       string    `yaml:"id" json:"id"`
	Type     BlockType `yaml:"type" json:"type"`
	Title    string    `yaml:"title,omitempty" json:"title,omitempty"`
	Icon     string    `yaml:"icon,omitempty" json:"icon,omitempty"` // emoji or image URL
	ParentID string    `yaml:"parent_id,omitempty" json:"parent_id,omitempty"`
	Content  []string  `yaml:"content,omitempty" json:"content,omitempty"` // ordered child block IDs
	Text     string    `yaml:"text,omitempty" json:"text,omitempty"`
}

// IsPage returns true if the block is a page.
func (b *Block) IsPage() bool {
	return b.Type.IsPage()
}

// HasLabel returns true if the block has a title or an icon to show.
func (b *Block) HasLabel() bool {
	return b.Title != "" || b.Icon != ""
}

// RecordMap is an ordered mapping of block ID to block.
// The first block added is the page the map was fetched for.
type RecordMap struct {
	ids    []string
	blocks map[string]*Block
}

// NewRecordMap creates a RecordMap from blocks, preserving their order.
// A later block with a duplicate ID replaces the earlier one in place.
func NewRecordMap(blocks ...*Block) *RecordMap {
	rm := &RecordMap{blocks: make(map[string]*Block, len(blocks))}
	for _, b := range blocks {
		rm.Add(b)
	}
	return rm
}

// Add inserts or replaces a block.
func (rm *RecordMap) Add(b *Block) {
	if b == nil || b.ID == "" {
		return
	}
	if rm.blocks == nil {
		rm.blocks = make(map[string]*Block)
	}
	if _, ok := rm.blocks[b.ID]; !ok {
		rm.ids = append(rm.ids, b.ID)
	}
	rm.blocks[b.ID] = b
}

// Get returns the block with the given ID, or nil.
func (rm *RecordMap) Get(id string) *Block {
	if rm == nil || id == "" {
		return nil
	}
	return rm.blocks[id]
}

// IDs returns block IDs in insertion order.
func (rm *RecordMap) IDs() []string {
	if rm == nil {
		return nil
	}
	out := make([]string, len(rm.ids))
	copy(out, rm.ids)
	return out
}

// Blocks returns blocks in insertion order.
func (rm *RecordMap) Blocks() []*Block {
	if rm == nil {
		return nil
	}
	out := make([]*Block, 0, len(rm.ids))
	for _, id := range rm.ids {
		out = append(out, rm.blocks[id])
	}
	return out
}

// First returns the ID of the first block, or "" for an empty map.
func (rm *RecordMap) First() string {
	if rm == nil || len(rm.ids) == 0 {
		return ""
	}
	return rm.ids[0]
}

// Len returns the number of blocks.
func (rm *RecordMap) Len() int {
	if rm == nil {
		return 0
	}
	return len(rm.ids)
}

// ParentPage returns the nearest ancestor of b that is a page, or nil.
// Non-page blocks between b and that page are skipped.
func (rm *RecordMap) ParentPage(b *Block) *Block {
	if b == nil {
		return nil
	}
	seen := map[string]bool{b.ID: true}
	id := b.ParentID
	for id != "" && !seen[id] {
		seen[id] = true
		parent := rm.Get(id)
		if parent == nil {
			return nil
		}
		if parent.IsPage() {
			return parent
		}
		id = parent.ParentID
	}
	return nil
}

// ChildPages returns the page blocks listed in b's content, in order.
func (rm *RecordMap) ChildPages(b *Block) []*Block {
	if b == nil {
		return nil
	}
	var pages []*Block
	for _, id := range b.Content {
		if child := rm.Get(id); child != nil && child.IsPage() {
			pages = append(pages, child)
		}
	}
	return pages
}

// ContentBlocks returns the non-page blocks listed in b's content, in order.
func (rm *RecordMap) ContentBlocks(b *Block) []*Block {
	if b == nil {
		return nil
	}
	var blocks []*Block
	for _, id := range b.Content {
		if child := rm.Get(id); child != nil && !child.IsPage() {
			blocks = append(blocks, child)
		}
	}
	return blocks
}

// Entry is a single breadcrumb: a page on the path from the active page to the root.
type Entry struct {
	BlockID string
	Title   string
	Icon    string
	Active  bool
}
