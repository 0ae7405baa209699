package breadcrumb

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docview/internal/model"
)

// linearMap builds pages ids[0] <- ids[1] <- ... where ids[0] is the active
// page and ids[len-1] is the root.
func linearMap(ids ...string) *model.RecordMap {
	rm := model.NewRecordMap()
	for i, id := range ids {
		b := &model.Block{ID: id, Type: model.BlockTypePage, Title: id}
		if i+1 < len(ids) {
			b.ParentID = ids[i+1]
		}
		rm.Add(b)
	}
	return rm
}

func ids(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.BlockID
	}
	return out
}

func TestBuild(t *testing.T) {
	rm := linearMap("A", "B", "C")

	chain := Build("A", rm)
	require.Len(t, chain, 3)
	assert.Equal(t, []string{"A", "B", "C"}, ids(chain))
	assert.True(t, chain[0].Active)
	assert.False(t, chain[1].Active)
	assert.False(t, chain[2].Active)
}

func TestBuild_SkipsNonPageParents(t *testing.T) {
	rm := model.NewRecordMap(
		&model.Block{ID: "page", Type: model.BlockTypePage, Title: "Page", ParentID: "toggle"},
		&model.Block{ID: "toggle", Type: model.BlockTypeText, ParentID: "root"},
		&model.Block{ID: "root", Type: model.BlockTypePage, Icon: "📚"},
	)

	chain := Build("page", rm)
	assert.Equal(t, []string{"page", "root"}, ids(chain))
	assert.Equal(t, "📚", chain[1].Icon)
	assert.Empty(t, chain[1].Title)
}

func TestBuild_StopsSilently(t *testing.T) {
	t.Run("missing active page", func(t *testing.T) {
		assert.Empty(t, Build("nope", linearMap("A")))
	})

	t.Run("empty active id", func(t *testing.T) {
		assert.Empty(t, Build("", linearMap("A")))
	})

	t.Run("missing parent", func(t *testing.T) {
		rm := model.NewRecordMap(
			&model.Block{ID: "A", Type: model.BlockTypePage, Title: "A", ParentID: "ghost"},
		)
		assert.Equal(t, []string{"A"}, ids(Build("A", rm)))
	})

	t.Run("unlabelled ancestor", func(t *testing.T) {
		rm := model.NewRecordMap(
			&model.Block{ID: "A", Type: model.BlockTypePage, Title: "A", ParentID: "B"},
			&model.Block{ID: "B", Type: model.BlockTypePage, ParentID: "C"},
			&model.Block{ID: "C", Type: model.BlockTypePage, Title: "C"},
		)
		assert.Equal(t, []string{"A"}, ids(Build("A", rm)))
	})
}

func TestBuild_Cycle(t *testing.T) {
	rm := model.NewRecordMap(
		&model.Block{ID: "A", Type: model.BlockTypePage, Title: "A", ParentID: "B"},
		&model.Block{ID: "B", Type: model.BlockTypePage, Title: "B", ParentID: "C"},
		&model.Block{ID: "C", Type: model.BlockTypePage, Title: "C", ParentID: "A"},
	)

	assert.Equal(t, []string{"A", "B", "C"}, ids(Build("A", rm)))
}

func TestLimit(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 2},
		{400, 2},
		{499, 2},
		{500, 3},
		{829, 3},
		{830, 6},
		{1920, 6},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("width %d", tt.width), func(t *testing.T) {
			assert.Equal(t, tt.want, Limit(tt.width))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		chain []string
		width int
		opts  Options
		want  []string
	}{
		{
			name:  "single page",
			chain: []string{"A"},
			width: 400,
			opts:  DefaultOptions(),
			want:  []string{"A"},
		},
		{
			name:  "parent is root",
			chain: []string{"A", "B"},
			width: 400,
			opts:  DefaultOptions(),
			want:  []string{"B", "A"},
		},
		{
			name:  "narrow keeps endpoints",
			chain: []string{"A", "B", "C", "D", "E", "F"},
			width: 400,
			opts:  DefaultOptions(),
			want:  []string{"F", "A"},
		},
		{
			name:  "medium drops rootward first",
			chain: []string{"A", "B", "C", "D", "E", "F"},
			width: 600,
			opts:  DefaultOptions(),
			want:  []string{"F", "C", "A"},
		},
		{
			name:  "wide with long chain",
			chain: []string{"A", "B", "C", "D", "E", "F", "G", "H"},
			width: 900,
			opts:  DefaultOptions(),
			want:  []string{"H", "F", "E", "D", "C", "A"},
		},
		{
			name:  "under limit still hides parent",
			chain: []string{"A", "B", "C"},
			width: 900,
			opts:  DefaultOptions(),
			want:  []string{"C", "A"},
		},
		{
			name:  "under limit without hide parent",
			chain: []string{"A", "B", "C"},
			width: 900,
			opts:  Options{},
			want:  []string{"C", "B", "A"},
		},
		{
			name:  "narrow without hide parent",
			chain: []string{"A", "B", "C", "D", "E", "F"},
			width: 400,
			opts:  Options{},
			want:  []string{"F", "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := linearMap(tt.chain...)
			got := Trail(tt.chain[0], rm, tt.width, DefaultBreakpoints(), tt.opts)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestTruncate_KeepsEnds(t *testing.T) {
	for n := 1; n <= 12; n++ {
		chain := make([]string, n)
		for i := range chain {
			chain[i] = fmt.Sprintf("p%d", i)
		}
		rm := linearMap(chain...)

		for _, width := range []int{320, 640, 1280} {
			for _, opts := range []Options{DefaultOptions(), {}} {
				got := Trail(chain[0], rm, width, DefaultBreakpoints(), opts)
				require.NotEmpty(t, got)

				last := got[len(got)-1]
				assert.Equal(t, chain[0], last.BlockID, "active entry rendered last")
				assert.True(t, last.Active)
				assert.Equal(t, chain[n-1], got[0].BlockID, "root entry rendered first")

				limit := Limit(width)
				if n > limit {
					assert.LessOrEqual(t, len(got), limit)
				}
				if opts.HideParent && n > 2 {
					assert.NotContains(t, ids(got), chain[1])
				}
			}
		}
	}
}

func TestTruncate_Empty(t *testing.T) {
	assert.Nil(t, Truncate(nil, 6, DefaultOptions()))
}
