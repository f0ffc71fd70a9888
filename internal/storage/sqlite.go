package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/campusfind/campusfind/internal/common"
	"github.com/campusfind/campusfind/internal/dbx"
)

// SQLiteGateway implements Gateway using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteGateway struct {
	db dbx.DBTX
}

// NewSQLiteGateway returns a new SQLiteGateway bound to the given DBTX.
func NewSQLiteGateway(db dbx.DBTX) *SQLiteGateway {
	return &SQLiteGateway{db: db}
}

// Read returns the stored collection for key. An absent key yields an empty
// Collection with Revision 0 and no error.
func (g *SQLiteGateway) Read(ctx context.Context, key string) (Collection, error) {
	var c Collection
	err := g.db.QueryRowContext(ctx,
		`SELECT value, revision FROM collections WHERE key = ?`, key).
		Scan(&c.Data, &c.Revision)
	if errors.Is(err, sql.ErrNoRows) {
		return Collection{}, nil
	}
	if err != nil {
		return Collection{}, fmt.Errorf("failed to read collection[%s]: %w", key, err)
	}
	return c, nil
}

// Write replaces the whole collection under key, guarded by the revision
// counter. expectedRevision 0 means the key must not exist yet.
func (g *SQLiteGateway) Write(ctx context.Context, key string, data []byte, expectedRevision uint64) error {
	var (
		res sql.Result
		err error
	)

	if expectedRevision == 0 {
		res, err = g.db.ExecContext(ctx, `
			INSERT INTO collections (key, value, revision) VALUES (?, ?, 1)
			ON CONFLICT(key) DO NOTHING
		`, key, data)
	} else {
		res, err = g.db.ExecContext(ctx, `
			UPDATE collections SET value = ?, revision = revision + 1
			WHERE key = ? AND revision = ?
		`, data, key, expectedRevision)
	}
	if err != nil {
		return fmt.Errorf("failed to write collection[%s]: %w", key, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to write collection[%s]: %w", key, err)
	}
	if affected == 0 {
		return common.ErrRevisionConflict
	}
	return nil
}

// Delete removes the key unconditionally. Deleting an absent key is a no-op.
func (g *SQLiteGateway) Delete(ctx context.Context, key string) error {
	_, err := g.db.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete collection[%s]: %w", key, err)
	}
	return nil
}
