// Package cachetest is a conformance suite run against every cache.Store
// implementation.
package cachetest

import (
	"context"
	"errors"
	"sort"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Opener returns a fresh, empty store. The suite closes it.
type Opener func(t *testing.T) cache.Store

// Run executes the suite against stores produced by open.
func Run(t *testing.T, open Opener) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s cache.Store)
	}{
		{"EmptyStore", testEmptyStore},
		{"UpsertIsIdempotent", testUpsertIsIdempotent},
		{"UpsertKeepsKeysUnique", testUpsertKeepsKeysUnique},
		{"RemoveIgnoresUnknownKeys", testRemoveIgnoresUnknownKeys},
		{"EmptyBatchesAreNoops", testEmptyBatchesAreNoops},
		{"CheckpointRoundTrip", testCheckpointRoundTrip},
		{"ClearResetsEverything", testClearResetsEverything},
		{"IntegerKeyedKinds", testIntegerKeyedKinds},
		{"BudgetCompositeKey", testBudgetCompositeKey},
		{"ClosedStoreFails", testClosedStoreFails},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := open(t)
			t.Cleanup(func() { _ = s.Close() })
			tc.fn(t, s)
		})
	}
}

func accountIDs(t *testing.T, s cache.Store) []string {
	t.Helper()
	items, err := s.Accounts().All(context.Background())
	require.NoError(t, err)
	ids := make([]string, 0, len(items))
	for _, a := range items {
		ids = append(ids, string(a.ID))
	}
	sort.Strings(ids)
	return ids
}

func testEmptyStore(t *testing.T, s cache.Store) {
	ctx := context.Background()

	accounts, err := s.Accounts().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	txs, err := s.Transactions().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)

	_, ok, err := s.Checkpoint(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testUpsertIsIdempotent(t *testing.T, s cache.Store) {
	ctx := context.Background()
	batch := []models.Transaction{
		{ID: "t1", Outcome: 10, Date: civil.Date{Year: 2024, Month: 1, Day: 2}},
		{ID: "t2", Income: 20, Date: civil.Date{Year: 2024, Month: 1, Day: 3}},
	}

	require.NoError(t, s.Transactions().Upsert(ctx, batch))
	first, err := s.Transactions().All(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Transactions().Upsert(ctx, batch))
	second, err := s.Transactions().All(ctx)
	require.NoError(t, err)

	assert.ElementsMatch(t, first, second)
	assert.ElementsMatch(t, batch, second)
}

func testUpsertKeepsKeysUnique(t *testing.T, s cache.Store) {
	ctx := context.Background()

	require.NoError(t, s.Accounts().Upsert(ctx, []models.Account{{ID: "a", Title: "Old"}, {ID: "b", Title: "B"}}))
	require.NoError(t, s.Accounts().Upsert(ctx, []models.Account{{ID: "a", Title: "New"}, {ID: "c", Title: "C"}}))

	items, err := s.Accounts().All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	titles := map[models.AccountID]string{}
	for _, a := range items {
		_, dup := titles[a.ID]
		require.False(t, dup, "duplicate key %s", a.ID)
		titles[a.ID] = a.Title
	}
	assert.Equal(t, "New", titles["a"])
}

func testRemoveIgnoresUnknownKeys(t *testing.T, s cache.Store) {
	ctx := context.Background()

	require.NoError(t, s.Accounts().Upsert(ctx, []models.Account{{ID: "a"}, {ID: "b"}, {ID: "c"}}))
	require.NoError(t, s.Accounts().Remove(ctx, []models.AccountID{"b", "missing"}))

	assert.Equal(t, []string{"a", "c"}, accountIDs(t, s))
}

func testEmptyBatchesAreNoops(t *testing.T, s cache.Store) {
	ctx := context.Background()

	require.NoError(t, s.Accounts().Upsert(ctx, nil))
	require.NoError(t, s.Accounts().Remove(ctx, nil))
	require.NoError(t, s.Accounts().Upsert(ctx, []models.Account{{ID: "a"}}))
	require.NoError(t, s.Accounts().Upsert(ctx, []models.Account{}))
	require.NoError(t, s.Accounts().Remove(ctx, []models.AccountID{}))

	assert.Equal(t, []string{"a"}, accountIDs(t, s))
}

func testCheckpointRoundTrip(t *testing.T, s cache.Store) {
	ctx := context.Background()

	require.NoError(t, s.SetCheckpoint(ctx, 1700000000))
	ts, ok, err := s.Checkpoint(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1700000000), ts)

	require.NoError(t, s.SetCheckpoint(ctx, 1700000500))
	ts, _, err = s.Checkpoint(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1700000500), ts)
}

func testClearResetsEverything(t *testing.T, s cache.Store) {
	ctx := context.Background()

	require.NoError(t, s.Accounts().Upsert(ctx, []models.Account{{ID: "a"}}))
	require.NoError(t, s.Tags().Upsert(ctx, []models.Tag{{ID: "t", Title: "Food"}}))
	require.NoError(t, s.Instruments().Upsert(ctx, []models.Instrument{{ID: 1, ShortTitle: "USD"}}))
	require.NoError(t, s.SetCheckpoint(ctx, 42))

	require.NoError(t, s.Clear(ctx))

	assert.Empty(t, accountIDs(t, s))
	tags, err := s.Tags().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, tags)
	instruments, err := s.Instruments().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, instruments)

	_, ok, err := s.Checkpoint(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Accounts().Upsert(ctx, []models.Account{{ID: "z"}}))
	assert.Equal(t, []string{"z"}, accountIDs(t, s))
}

func testIntegerKeyedKinds(t *testing.T, s cache.Store) {
	ctx := context.Background()

	require.NoError(t, s.Instruments().Upsert(ctx, []models.Instrument{{ID: 1, ShortTitle: "USD"}, {ID: 2, ShortTitle: "EUR"}}))
	require.NoError(t, s.Companies().Upsert(ctx, []models.Company{{ID: 4, Title: "Bank"}}))
	require.NoError(t, s.Countries().Upsert(ctx, []models.Country{{ID: 7, Title: "Land", Currency: 1}}))
	require.NoError(t, s.Users().Upsert(ctx, []models.User{{ID: 9000000001, Currency: 1}}))

	require.NoError(t, s.Instruments().Remove(ctx, []models.InstrumentID{2}))
	require.NoError(t, s.Companies().Remove(ctx, []models.CompanyID{4}))

	instruments, err := s.Instruments().All(ctx)
	require.NoError(t, err)
	require.Len(t, instruments, 1)
	assert.Equal(t, "USD", instruments[0].ShortTitle)

	companies, err := s.Companies().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, companies)

	countries, err := s.Countries().All(ctx)
	require.NoError(t, err)
	assert.Len(t, countries, 1)

	users, err := s.Users().All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.UserID(9000000001), users[0].ID)
}

func testBudgetCompositeKey(t *testing.T, s cache.Store) {
	ctx := context.Background()
	food := models.TagID("food")
	jan := civil.Date{Year: 2024, Month: 1, Day: 1}
	feb := civil.Date{Year: 2024, Month: 2, Day: 1}

	require.NoError(t, s.Budgets().Upsert(ctx, []models.Budget{
		{User: 1, Tag: &food, Date: jan, Outcome: 100},
		{User: 1, Date: jan, Outcome: 1000},
		{User: 1, Tag: &food, Date: feb, Outcome: 200},
	}))
	require.NoError(t, s.Budgets().Upsert(ctx, []models.Budget{
		{User: 1, Tag: &food, Date: jan, Outcome: 150},
	}))

	items, err := s.Budgets().All(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, b := range items {
		if b.Key() == (models.BudgetKey{User: 1, Tag: food, Date: jan}) {
			assert.InDelta(t, 150, b.Outcome, 1e-9)
		}
	}

	require.NoError(t, s.Budgets().Remove(ctx, []models.BudgetKey{{User: 1, Date: jan}}))
	items, err = s.Budgets().All(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func testClosedStoreFails(t *testing.T, s cache.Store) {
	ctx := context.Background()
	require.NoError(t, s.Close())

	_, err := s.Accounts().All(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrStorage), "want storage error, got %v", err)

	err = s.SetCheckpoint(ctx, 1)
	assert.ErrorIs(t, err, common.ErrStorage)
}
