package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/entities"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/dmitrijs2005/zenkeeper/internal/dbx"
)

type table[T any, K comparable] struct {
	s    *Store
	kind cache.Kind[T, K]
}

func newTable[T any, K comparable](s *Store, kind cache.Kind[T, K]) *table[T, K] {
	return &table[T, K]{s: s, kind: kind}
}

// rowKey is the canonical text form of an identity key.
func rowKey[K comparable](k K) string {
	return fmt.Sprint(k)
}

func (t *table[T, K]) All(ctx context.Context) ([]T, error) {
	rows, err := entities.NewSQLiteRepository(t.s.db).List(ctx, t.kind.Name)
	if err != nil {
		return nil, cache.Wrap("read", t.kind.Name, err)
	}

	items := make([]T, 0, len(rows))
	for _, data := range rows {
		var item T
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, cache.Wrap("read", t.kind.Name, fmt.Errorf("%w: %v", common.ErrSerialization, err))
		}
		items = append(items, item)
	}
	return items, nil
}

func (t *table[T, K]) Upsert(ctx context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}
	err := dbx.WithTx(ctx, t.s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := entities.NewSQLiteRepository(tx)
		for _, item := range items {
			data, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("%w: %v", common.ErrSerialization, err)
			}
			if err := repo.Upsert(ctx, t.kind.Name, rowKey(t.kind.Key(item)), data); err != nil {
				return err
			}
		}
		return nil
	})
	return cache.Wrap("upsert", t.kind.Name, err)
}

func (t *table[T, K]) Remove(ctx context.Context, keys []K) error {
	if len(keys) == 0 {
		return nil
	}
	err := dbx.WithTx(ctx, t.s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := entities.NewSQLiteRepository(tx)
		for _, k := range keys {
			if err := repo.Delete(ctx, t.kind.Name, rowKey(k)); err != nil {
				return err
			}
		}
		return nil
	})
	return cache.Wrap("remove", t.kind.Name, err)
}
