package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/dmitrijs2005/zenkeeper/internal/filex"
)

// table persists one entity kind as a JSON array in its own file.
type table[T any, K comparable] struct {
	s    *Store
	kind cache.Kind[T, K]
}

func newTable[T any, K comparable](s *Store, kind cache.Kind[T, K]) *table[T, K] {
	return &table[T, K]{s: s, kind: kind}
}

func (t *table[T, K]) path() string {
	return t.s.path(t.kind.File)
}

func (t *table[T, K]) All(ctx context.Context) ([]T, error) {
	var items []T
	err := t.s.withLock(ctx, false, "read", t.kind.Name, func() error {
		var err error
		items, err = readEntities[T](t.path())
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (t *table[T, K]) Upsert(ctx context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}
	return t.s.withLock(ctx, true, "upsert", t.kind.Name, func() error {
		current, err := readEntities[T](t.path())
		if err != nil {
			return err
		}
		return writeJSON(t.path(), cache.Merge(current, items, t.kind.Key))
	})
}

func (t *table[T, K]) Remove(ctx context.Context, keys []K) error {
	if len(keys) == 0 {
		return nil
	}
	return t.s.withLock(ctx, true, "remove", t.kind.Name, func() error {
		current, err := readEntities[T](t.path())
		if err != nil {
			return err
		}
		return writeJSON(t.path(), cache.Without(current, keys, t.kind.Key))
	})
}

func readEntities[T any](path string) ([]T, error) {
	data, ok, err := filex.ReadFileIfExists(path)
	if err != nil || !ok {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", common.ErrSerialization, filepath.Base(path), err)
	}
	return items, nil
}
