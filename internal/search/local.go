package search

import (
	"context"

	"docview/internal/model"
)

// Local searches an in-memory record map.
type Local struct {
	rm *model.RecordMap
}

// NewLocal creates a Local searcher over rm. rm must not be modified while
// searches run.
func NewLocal(rm *model.RecordMap) *Local {
	return &Local{rm: rm}
}

// Search implements Searcher. Blocks are visited in record map order.
func (l *Local) Search(ctx context.Context, q Query) ([]Result, error) {
	needle := normalize(q.Text)
	if needle == "" {
		return nil, nil
	}

	c := newCollector(l.rm, q)
	for i, b := range l.rm.Blocks() {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !matches(b, needle) {
			continue
		}
		if !c.add(b) {
			break
		}
	}
	return c.results, nil
}
