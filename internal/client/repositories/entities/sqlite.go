package entities

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zenkeeper/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) List(ctx context.Context, kind string) ([][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM entities WHERE kind = ? ORDER BY key`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to select %s entities: %w", kind, err)
	}
	defer rows.Close()

	var result [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan %s entity: %w", kind, err)
		}
		result = append(result, data)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s entities: %w", kind, err)
	}

	return result, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, kind, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO entities (kind, key, data) VALUES (?, ?, ?)
		ON CONFLICT(kind, key) DO UPDATE SET data = excluded.data
	`, kind, key, data)
	if err != nil {
		return fmt.Errorf("failed to upsert %s[%s]: %w", kind, key, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, kind, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM entities WHERE kind = ? AND key = ?`, kind, key)
	if err != nil {
		return fmt.Errorf("failed to delete %s[%s]: %w", kind, key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM entities`)
	if err != nil {
		return fmt.Errorf("failed to clear entities: %w", err)
	}
	return nil
}
