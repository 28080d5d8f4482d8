package cache

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID  string
	Val int
}

func itemKey(i item) string { return i.ID }

func TestMerge_ReplacesInPlaceAndAppendsNew(t *testing.T) {
	current := []item{{"a", 1}, {"b", 2}}
	batch := []item{{"b", 20}, {"c", 3}}

	got := Merge(current, batch, itemKey)

	assert.Equal(t, []item{{"a", 1}, {"b", 20}, {"c", 3}}, got)
	assert.Equal(t, []item{{"a", 1}, {"b", 2}}, current, "input must not be modified")
}

func TestMerge_IsIdempotent(t *testing.T) {
	current := []item{{"a", 1}}
	batch := []item{{"a", 5}, {"b", 6}}

	once := Merge(current, batch, itemKey)
	twice := Merge(once, batch, itemKey)

	assert.Equal(t, once, twice)
}

func TestMerge_DuplicateKeysInBatchLastWins(t *testing.T) {
	got := Merge(nil, []item{{"a", 1}, {"a", 2}, {"a", 3}}, itemKey)
	assert.Equal(t, []item{{"a", 3}}, got)
}

func TestWithout(t *testing.T) {
	current := []item{{"a", 1}, {"b", 2}, {"c", 3}}

	assert.Equal(t, []item{{"a", 1}, {"c", 3}}, Without(current, []string{"b", "zzz"}, itemKey))
	assert.Equal(t, current, Without(current, nil, itemKey))
	assert.Empty(t, Without(nil, []string{"a"}, itemKey))
}

func TestBudgetKind_UsesCompositeKey(t *testing.T) {
	food := models.TagID("food")
	a := models.Budget{User: 1, Tag: &food, Outcome: 1}
	b := models.Budget{User: 1, Outcome: 2}
	c := models.Budget{User: 1, Tag: &food, Outcome: 3}

	got := Merge([]models.Budget{a, b}, []models.Budget{c}, BudgetKind.Key)
	require.Len(t, got, 2)
	assert.InDelta(t, 3, got[0].Outcome, 1e-9)
}

func TestKinds_FilesAndNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Files() {
		require.False(t, seen[f], "duplicate file %s", f)
		seen[f] = true
	}
	require.Len(t, Names(), len(Files()))
}

func TestStorageError(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap("upsert", "account", cause)

	require.ErrorIs(t, err, common.ErrStorage)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "storage: upsert account: disk full", err.Error())

	var se *StorageError
	require.ErrorAs(t, fmt.Errorf("sync: %w", err), &se)
	require.Equal(t, "account", se.Kind)

	require.Same(t, err, Wrap("other", "x", err))
	require.NoError(t, Wrap("noop", "", nil))
	require.Equal(t, "storage: clear: boom", Wrap("clear", "", errors.New("boom")).Error())
}
