package search

import (
	"context"
	"fmt"

	"docview/internal/model"
)

// BlockSearcher is the DynamoDB query a Dynamo searcher needs.
type BlockSearcher interface {
	SearchBlocks(ctx context.Context, table, query string, limit int) ([]*model.Block, error)
}

// Dynamo searches a DynamoDB block table. Hits are resolved to pages and
// paths through the loaded record map, so hits the map does not know about
// are only kept when they are pages themselves.
type Dynamo struct {
	client BlockSearcher
	table  string
	rm     *model.RecordMap
}

// NewDynamo creates a Dynamo searcher for table.
func NewDynamo(client BlockSearcher, table string, rm *model.RecordMap) *Dynamo {
	return &Dynamo{client: client, table: table, rm: rm}
}

// Search implements Searcher.
func (d *Dynamo) Search(ctx context.Context, q Query) ([]Result, error) {
	if normalize(q.Text) == "" {
		return nil, nil
	}

	// Over-fetch: several hits may collapse onto the same page or fall
	// outside the root subtree.
	hits, err := d.client.SearchBlocks(ctx, d.table, q.Text, limitOf(q)*4)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", d.table, err)
	}

	c := newCollector(d.rm, q)
	for _, hit := range hits {
		b := d.rm.Get(hit.ID)
		if b == nil {
			b = hit
		}
		if !c.add(b) {
			break
		}
	}
	return c.results, nil
}
