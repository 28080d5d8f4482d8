package cache

import (
	"context"

	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
)

// Table is the per-kind capability of a Store.
type Table[T any, K comparable] interface {
	// All returns every cached item in unspecified order.
	All(ctx context.Context) ([]T, error)

	// Upsert inserts items, replacing any cached item with the same key.
	// The whole batch becomes visible to readers at once.
	Upsert(ctx context.Context, items []T) error

	// Remove drops every cached item whose key is in keys.
	Remove(ctx context.Context, keys []K) error
}

// Store is the local cache of the remote ledger.
type Store interface {
	Accounts() Table[models.Account, models.AccountID]
	Transactions() Table[models.Transaction, models.TransactionID]
	Tags() Table[models.Tag, models.TagID]
	Merchants() Table[models.Merchant, models.MerchantID]
	Instruments() Table[models.Instrument, models.InstrumentID]
	Companies() Table[models.Company, models.CompanyID]
	Countries() Table[models.Country, models.CountryID]
	Users() Table[models.User, models.UserID]
	Reminders() Table[models.Reminder, models.ReminderID]
	ReminderMarkers() Table[models.ReminderMarker, models.ReminderMarkerID]
	Budgets() Table[models.Budget, models.BudgetKey]

	// Checkpoint returns the last stored server timestamp; ok is false when
	// the cache has never been synced or was cleared.
	Checkpoint(ctx context.Context) (ts int64, ok bool, err error)

	// SetCheckpoint replaces the stored server timestamp.
	SetCheckpoint(ctx context.Context, ts int64) error

	// Clear drops every cached item and the checkpoint.
	Clear(ctx context.Context) error

	Close() error
}
