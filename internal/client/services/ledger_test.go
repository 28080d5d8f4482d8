package services

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/query"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache/memory"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededLedger(t *testing.T) (LedgerService, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	require.NoError(t, store.Accounts().Upsert(ctx, []models.Account{
		{ID: "cash", Title: "Cash"},
		{ID: "card", Title: "Visa"},
		{ID: "old", Title: "Old Card", Archive: true},
	}))
	require.NoError(t, store.Tags().Upsert(ctx, []models.Tag{{ID: "food", Title: "Food"}}))
	require.NoError(t, store.Instruments().Upsert(ctx, []models.Instrument{{ID: 840, ShortTitle: "USD"}}))

	payee := "Corner Shop"
	require.NoError(t, store.Transactions().Upsert(ctx, []models.Transaction{
		{ID: "t1", IncomeAccount: "cash", OutcomeAccount: "cash", Outcome: 12, Tag: []models.TagID{"food"}, Payee: &payee, Date: civil.Date{Year: 2024, Month: 5, Day: 1}},
		{ID: "t2", IncomeAccount: "card", OutcomeAccount: "card", Income: 1000, Date: civil.Date{Year: 2024, Month: 5, Day: 10}},
		{ID: "t3", IncomeAccount: "card", OutcomeAccount: "cash", Income: 50, Outcome: 50, Date: civil.Date{Year: 2024, Month: 6, Day: 1}},
	}))

	return NewLedgerService(store), store
}

func ids(txs []models.Transaction) []models.TransactionID {
	out := make([]models.TransactionID, 0, len(txs))
	for _, t := range txs {
		out = append(out, t.ID)
	}
	return out
}

func TestLedger_ReadAll(t *testing.T) {
	ctx := context.Background()
	l, _ := seededLedger(t)

	accounts, err := l.Accounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 3)

	txs, err := l.Transactions(ctx)
	require.NoError(t, err)
	assert.Len(t, txs, 3)

	for name, fn := range map[string]func() (int, error){
		"merchants":        func() (int, error) { v, err := l.Merchants(ctx); return len(v), err },
		"companies":        func() (int, error) { v, err := l.Companies(ctx); return len(v), err },
		"countries":        func() (int, error) { v, err := l.Countries(ctx); return len(v), err },
		"users":            func() (int, error) { v, err := l.Users(ctx); return len(v), err },
		"reminders":        func() (int, error) { v, err := l.Reminders(ctx); return len(v), err },
		"reminder markers": func() (int, error) { v, err := l.ReminderMarkers(ctx); return len(v), err },
		"budgets":          func() (int, error) { v, err := l.Budgets(ctx); return len(v), err },
	} {
		n, err := fn()
		require.NoError(t, err, name)
		assert.Zero(t, n, name)
	}

	tags, err := l.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
	instruments, err := l.Instruments(ctx)
	require.NoError(t, err)
	assert.Len(t, instruments, 1)
}

func TestLedger_FilterTransactions(t *testing.T) {
	ctx := context.Background()
	l, _ := seededLedger(t)

	all, err := l.FilterTransactions(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := l.FilterTransactions(ctx, query.NewFilter().Tag("food").Payee("corner"))
	require.NoError(t, err)
	assert.Equal(t, []models.TransactionID{"t1"}, ids(got))

	floor := 100.0
	got, err = l.FilterTransactions(ctx, query.NewFilter().AmountRange(&floor, nil))
	require.NoError(t, err)
	assert.Equal(t, []models.TransactionID{"t2"}, ids(got))
}

func TestLedger_ByDateAndAccount(t *testing.T) {
	ctx := context.Background()
	l, _ := seededLedger(t)

	may, err := l.TransactionsByDate(ctx, civil.Date{Year: 2024, Month: 5, Day: 1}, civil.Date{Year: 2024, Month: 5, Day: 31})
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.TransactionID{"t1", "t2"}, ids(may))

	cash, err := l.TransactionsByAccount(ctx, "cash")
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.TransactionID{"t1", "t3"}, ids(cash))
}

func TestLedger_Lookups(t *testing.T) {
	ctx := context.Background()
	l, _ := seededLedger(t)

	acc, err := l.FindAccountByTitle(ctx, "visa")
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, models.AccountID("card"), acc.ID)

	acc, err = l.FindAccountByTitle(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, acc)

	tag, err := l.FindTagByTitle(ctx, "FOOD")
	require.NoError(t, err)
	require.NotNil(t, tag)
	assert.Equal(t, models.TagID("food"), tag.ID)

	active, err := l.ActiveAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	inst, err := l.Instrument(ctx, 840)
	require.NoError(t, err)
	require.NotNil(t, inst)
	assert.Equal(t, "USD", inst.ShortTitle)

	inst, err = l.Instrument(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, inst)
}

func TestLedger_StorageErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	l, store := seededLedger(t)
	require.NoError(t, store.Close())

	_, err := l.FilterTransactions(ctx, nil)
	require.ErrorIs(t, err, common.ErrStorage)
	_, err = l.FindAccountByTitle(ctx, "Cash")
	require.ErrorIs(t, err, common.ErrStorage)
	_, err = l.ActiveAccounts(ctx)
	require.ErrorIs(t, err, common.ErrStorage)
	_, err = l.Instrument(ctx, 840)
	require.ErrorIs(t, err, common.ErrStorage)
}
