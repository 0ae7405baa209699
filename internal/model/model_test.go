package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordMap_Order(t *testing.T) {
	rm := NewRecordMap(
		&Block{ID: "b", Type: BlockTypePage, Title: "B"},
		&Block{ID: "a", Type: BlockTypePage, Title: "A"},
		&Block{ID: "b", Type: BlockTypePage, Title: "B2"},
	)

	assert.Equal(t, "b", rm.First())
	assert.Equal(t, []string{"b", "a"}, rm.IDs())
	assert.Equal(t, 2, rm.Len())
	require.NotNil(t, rm.Get("b"))
	assert.Equal(t, "B2", rm.Get("b").Title)
	assert.Nil(t, rm.Get("missing"))
}

func TestRecordMap_NilSafe(t *testing.T) {
	var rm *RecordMap
	assert.Equal(t, "", rm.First())
	assert.Nil(t, rm.Get("x"))
	assert.Zero(t, rm.Len())
}

func TestRecordMap_ParentPage(t *testing.T) {
	rm := NewRecordMap(
		&Block{ID: "child", Type: BlockTypePage, Title: "Child", ParentID: "list"},
		&Block{ID: "list", Type: BlockTypeBulletedList, ParentID: "root"},
		&Block{ID: "root", Type: BlockTypePage, Title: "Root"},
	)

	parent := rm.ParentPage(rm.Get("child"))
	require.NotNil(t, parent)
	assert.Equal(t, "root", parent.ID)
	assert.Nil(t, rm.ParentPage(rm.Get("root")))
}

func TestRecordMap_ParentPageCycle(t *testing.T) {
	rm := NewRecordMap(
		&Block{ID: "a", Type: BlockTypePage, Title: "A", ParentID: "x"},
		&Block{ID: "x", Type: BlockTypeText, ParentID: "y"},
		&Block{ID: "y", Type: BlockTypeText, ParentID: "x"},
	)

	assert.Nil(t, rm.ParentPage(rm.Get("a")))
}

func TestRecordMap_Children(t *testing.T) {
	rm := NewRecordMap(
		&Block{ID: "root", Type: BlockTypePage, Title: "Root", Content: []string{"t1", "p1", "gone", "p2"}},
		&Block{ID: "t1", Type: BlockTypeText, Text: "hello", ParentID: "root"},
		&Block{ID: "p1", Type: BlockTypePage, Title: "One", ParentID: "root"},
		&Block{ID: "p2", Type: BlockTypeCollectionViewPage, Title: "Two", ParentID: "root"},
	)

	root := rm.Get("root")
	pages := rm.ChildPages(root)
	require.Len(t, pages, 2)
	assert.Equal(t, "p1", pages[0].ID)
	assert.Equal(t, "p2", pages[1].ID)

	blocks := rm.ContentBlocks(root)
	require.Len(t, blocks, 1)
	assert.Equal(t, "t1", blocks[0].ID)
}
