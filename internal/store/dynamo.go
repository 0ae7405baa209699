package store

import (
	"context"
	"fmt"

	"docview/internal/model"
)

// DynamoSource loads a record map from a DynamoDB block table.
type DynamoSource struct {
	table BlockTable
	name  string
}

// NewDynamoSource creates a DynamoSource reading table name through table.
func NewDynamoSource(table BlockTable, name string) *DynamoSource {
	return &DynamoSource{table: table, name: name}
}

// Describe returns a human-readable source name.
func (d *DynamoSource) Describe() string {
	return "dynamodb " + d.name
}

// Load implements Source.
func (d *DynamoSource) Load(ctx context.Context) (*model.RecordMap, error) {
	blocks, err := d.table.ScanBlocks(ctx, d.name)
	if err != nil {
		return nil, fmt.Errorf("failed to load blocks: %w", err)
	}
	rm := model.NewRecordMap(blocks...)
	linkChildren(rm)
	return rm, nil
}
