// Package memory implements cache.Store on in-process maps. It gives no
// cross-process guarantees and is meant for tests and short-lived caches.
package memory

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
)

// Store keeps every table and the checkpoint under a single mutex.
type Store struct {
	mu         sync.Mutex
	closed     bool
	checkpoint *int64
	resets     []func()

	accounts        *table[models.Account, models.AccountID]
	transactions    *table[models.Transaction, models.TransactionID]
	tags            *table[models.Tag, models.TagID]
	merchants       *table[models.Merchant, models.MerchantID]
	instruments     *table[models.Instrument, models.InstrumentID]
	companies       *table[models.Company, models.CompanyID]
	countries       *table[models.Country, models.CountryID]
	users           *table[models.User, models.UserID]
	reminders       *table[models.Reminder, models.ReminderID]
	reminderMarkers *table[models.ReminderMarker, models.ReminderMarkerID]
	budgets         *table[models.Budget, models.BudgetKey]
}

var _ cache.Store = (*Store)(nil)

func New() *Store {
	s := &Store{}
	s.accounts = newTable(s, cache.AccountKind)
	s.transactions = newTable(s, cache.TransactionKind)
	s.tags = newTable(s, cache.TagKind)
	s.merchants = newTable(s, cache.MerchantKind)
	s.instruments = newTable(s, cache.InstrumentKind)
	s.companies = newTable(s, cache.CompanyKind)
	s.countries = newTable(s, cache.CountryKind)
	s.users = newTable(s, cache.UserKind)
	s.reminders = newTable(s, cache.ReminderKind)
	s.reminderMarkers = newTable(s, cache.ReminderMarkerKind)
	s.budgets = newTable(s, cache.BudgetKind)
	return s
}

func (s *Store) Accounts() cache.Table[models.Account, models.AccountID] {
	return s.accounts
}

func (s *Store) Transactions() cache.Table[models.Transaction, models.TransactionID] {
	return s.transactions
}

func (s *Store) Tags() cache.Table[models.Tag, models.TagID] {
	return s.tags
}

func (s *Store) Merchants() cache.Table[models.Merchant, models.MerchantID] {
	return s.merchants
}

func (s *Store) Instruments() cache.Table[models.Instrument, models.InstrumentID] {
	return s.instruments
}

func (s *Store) Companies() cache.Table[models.Company, models.CompanyID] {
	return s.companies
}

func (s *Store) Countries() cache.Table[models.Country, models.CountryID] {
	return s.countries
}

func (s *Store) Users() cache.Table[models.User, models.UserID] {
	return s.users
}

func (s *Store) Reminders() cache.Table[models.Reminder, models.ReminderID] {
	return s.reminders
}

func (s *Store) ReminderMarkers() cache.Table[models.ReminderMarker, models.ReminderMarkerID] {
	return s.reminderMarkers
}

func (s *Store) Budgets() cache.Table[models.Budget, models.BudgetKey] {
	return s.budgets
}

// locked runs fn while holding the store mutex.
func (s *Store) locked(op, kind string, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return cache.Wrap(op, kind, cache.ErrClosed)
	}
	fn()
	return nil
}

func (s *Store) Checkpoint(_ context.Context) (ts int64, ok bool, err error) {
	err = s.locked("checkpoint", "", func() {
		if s.checkpoint != nil {
			ts, ok = *s.checkpoint, true
		}
	})
	return ts, ok, err
}

func (s *Store) SetCheckpoint(_ context.Context, ts int64) error {
	return s.locked("set checkpoint", "", func() {
		s.checkpoint = &ts
	})
}

func (s *Store) Clear(_ context.Context) error {
	return s.locked("clear", "", func() {
		for _, reset := range s.resets {
			reset()
		}
		s.checkpoint = nil
	})
}

// Close marks the store closed. It is safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type table[T any, K comparable] struct {
	s     *Store
	kind  cache.Kind[T, K]
	items map[K]T
}

func newTable[T any, K comparable](s *Store, kind cache.Kind[T, K]) *table[T, K] {
	t := &table[T, K]{s: s, kind: kind, items: make(map[K]T)}
	s.resets = append(s.resets, func() { t.items = make(map[K]T) })
	return t
}

func (t *table[T, K]) All(_ context.Context) ([]T, error) {
	var out []T
	err := t.s.locked("read", t.kind.Name, func() {
		out = make([]T, 0, len(t.items))
		for _, item := range t.items {
			out = append(out, item)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (t *table[T, K]) Upsert(_ context.Context, items []T) error {
	if len(items) == 0 {
		return nil
	}
	return t.s.locked("upsert", t.kind.Name, func() {
		for _, item := range items {
			t.items[t.kind.Key(item)] = item
		}
	})
}

func (t *table[T, K]) Remove(_ context.Context, keys []K) error {
	if len(keys) == 0 {
		return nil
	}
	return t.s.locked("remove", t.kind.Name, func() {
		for _, k := range keys {
			delete(t.items, k)
		}
	})
}
