// Package store loads record maps from the supported content sources.
package store

import (
	"context"
	"errors"
	"fmt"

	"docview/internal/model"
)

// ErrUnknownSource is returned for an unsupported source kind.
var ErrUnknownSource = errors.New("unknown source")

// ErrBlockNotFound is returned when a requested block is absent.
var ErrBlockNotFound = errors.New("block not found")

// Source kinds.
const (
	KindFile     = "file"
	KindSQLite   = "sqlite"
	KindDynamoDB = "dynamodb"
)

// Source loads a complete record map.
type Source interface {
	Load(ctx context.Context) (*model.RecordMap, error)
	Describe() string
}

// BlockTable is the DynamoDB access a DynamoSource needs.
type BlockTable interface {
	ScanBlocks(ctx context.Context, table string) ([]*model.Block, error)
}

// Spec selects and parameterises a source.
type Spec struct {
	Kind  string
	Path  string
	Table string
}

// Open returns the Source for spec. The DynamoDB table is only consulted for
// the dynamodb kind and may be nil otherwise.
func Open(spec Spec, table BlockTable) (Source, error) {
	switch spec.Kind {
	case KindFile:
		return NewFileSource(spec.Path), nil
	case KindSQLite:
		return NewSQLiteSource(spec.Path), nil
	case KindDynamoDB:
		if table == nil {
			return nil, fmt.Errorf("dynamodb source %s: no AWS client", spec.Table)
		}
		return NewDynamoSource(table, spec.Table), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, spec.Kind)
	}
}

// ResolveActive returns the page to open: want if it exists in rm, else the
// first block of the map.
func ResolveActive(rm *model.RecordMap, want string) (string, error) {
	if want != "" {
		if rm.Get(want) == nil {
			return "", fmt.Errorf("%w: %s", ErrBlockNotFound, want)
		}
		return want, nil
	}
	return rm.First(), nil
}
