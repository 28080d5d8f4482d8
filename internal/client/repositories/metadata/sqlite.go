package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/zenkeeper/internal/dbx"
)

// SQLiteRepository works on the metadata table created by the cache
// migrations. It runs on a *sql.DB or inside a dbx.WithTx batch.
type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("read metadata %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	const q = `INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("write metadata %q: %w", key, err)
	}
	return nil
}

// Delete is a no-op for an absent key.
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete metadata %q: %w", key, err)
	}
	return nil
}

// GetInt reads a value written by SetInt. Values are stored as decimal text
// so the table stays readable from the sqlite shell.
func (r *SQLiteRepository) GetInt(ctx context.Context, key string) (int64, bool, error) {
	raw, err := r.Get(ctx, key)
	if err != nil || raw == nil {
		return 0, false, err
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse metadata %q: %w", key, err)
	}
	return v, true, nil
}

func (r *SQLiteRepository) SetInt(ctx context.Context, key string, v int64) error {
	return r.Set(ctx, key, []byte(strconv.FormatInt(v, 10)))
}
