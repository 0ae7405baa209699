package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"docview/internal/log"
	"docview/internal/model"
)

const createBlocks = `CREATE TABLE IF NOT EXISTS blocks (
    block_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    type TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    icon TEXT NOT NULL DEFAULT '',
    parent_id TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '[]',
    body TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_blocks_parent ON blocks(parent_id);`

// SQLiteSource reads and writes blocks in a SQLite database.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource creates a SQLiteSource for the database at path.
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// Describe returns a human-readable source name.
func (s *SQLiteSource) Describe() string {
	return "sqlite " + s.path
}

func (s *SQLiteSource) open(create bool) (*sql.DB, error) {
	if !create {
		if _, err := os.Stat(s.path); err != nil {
			return nil, fmt.Errorf("failed to open block database: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open block database: %w", err)
	}
	if _, err := db.Exec(createBlocks); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// Load implements Source.
func (s *SQLiteSource) Load(ctx context.Context) (*model.RecordMap, error) {
	db, err := s.open(false)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT block_id, type, title, icon, parent_id, content, body FROM blocks ORDER BY position, block_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks: %w", err)
	}
	defer rows.Close()

	rm := model.NewRecordMap()
	for rows.Next() {
		var b model.Block
		var blockType, content string
		if err := rows.Scan(&b.ID, &blockType, &b.Title, &b.Icon, &b.ParentID, &content, &b.Text); err != nil {
			return nil, fmt.Errorf("failed to scan block: %w", err)
		}
		b.Type = model.BlockType(blockType)
		if err := json.Unmarshal([]byte(content), &b.Content); err != nil {
			return nil, fmt.Errorf("block %s: invalid content list: %w", b.ID, err)
		}
		rm.Add(&b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blocks: %w", err)
	}

	log.Info("Loaded %d blocks from %s", rm.Len(), s.path)
	return rm, nil
}

// Import replaces the database contents with rm, keeping block order.
func (s *SQLiteSource) Import(ctx context.Context, rm *model.RecordMap) error {
	db, err := s.open(true)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM blocks`); err != nil {
		return fmt.Errorf("failed to clear blocks: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO blocks (block_id, position, type, title, icon, parent_id, content, body) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, b := range rm.Blocks() {
		content := b.Content
		if content == nil {
			content = []string{}
		}
		contentJSON, err := json.Marshal(content)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, b.ID, i, string(b.Type), b.Title, b.Icon, b.ParentID, string(contentJSON), b.Text); err != nil {
			return fmt.Errorf("failed to insert block %s: %w", b.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log.Info("Imported %d blocks into %s", rm.Len(), s.path)
	return nil
}
