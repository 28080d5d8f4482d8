package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/dmitrijs2005/zenkeeper/internal/filex"
	"golang.org/x/sync/semaphore"
)

const (
	// MetaFile holds the checkpoint.
	MetaFile = "meta.json"
	// LockFile is the sentinel used for advisory locking.
	LockFile = ".lock"

	filePerm = 0o660
)

type meta struct {
	ServerTimestamp *int64 `json:"server_timestamp,omitempty"`
}

type Store struct {
	dir  string
	sem  *semaphore.Weighted
	lock *os.File

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

// Open creates dir if needed and opens the sentinel lock file, which stays
// open until Close.
func Open(dir string) (*Store, error) {
	if _, err := filex.EnsureDir(dir); err != nil {
		return nil, cache.Wrap("open", "", err)
	}

	lock, err := os.OpenFile(filepath.Join(dir, LockFile), os.O_RDWR|os.O_CREATE, filePerm)
	if err != nil {
		return nil, cache.Wrap("open", "", fmt.Errorf("open lock file: %w", err))
	}

	s := &Store{dir: dir, sem: semaphore.NewWeighted(1), lock: lock}
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
	return s, nil
}

// Dir returns the root directory of the store.
func (s *Store) Dir() string { return s.dir }

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

// withLock runs fn holding the in-process lock and then the advisory lock on
// the sentinel, shared or exclusive. Any failure is returned as a storage
// error for op on kind.
func (s *Store) withLock(ctx context.Context, exclusive bool, op, kind string, fn func() error) (err error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return cache.Wrap(op, kind, fmt.Errorf("acquire store lock: %w", err))
	}
	defer s.sem.Release(1)

	if s.lock == nil {
		return cache.Wrap(op, kind, cache.ErrClosed)
	}

	if err := lockFile(s.lock, exclusive); err != nil {
		return cache.Wrap(op, kind, fmt.Errorf("lock %s: %w", LockFile, err))
	}
	defer func() {
		if uerr := unlockFile(s.lock); uerr != nil && err == nil {
			err = cache.Wrap(op, kind, fmt.Errorf("unlock %s: %w", LockFile, uerr))
		}
	}()

	return cache.Wrap(op, kind, fn())
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) Checkpoint(ctx context.Context) (ts int64, ok bool, err error) {
	err = s.withLock(ctx, false, "checkpoint", "", func() error {
		m, err := readMeta(s.path(MetaFile))
		if err != nil {
			return err
		}
		if m.ServerTimestamp != nil {
			ts, ok = *m.ServerTimestamp, true
		}
		return nil
	})
	return ts, ok, err
}

func (s *Store) SetCheckpoint(ctx context.Context, ts int64) error {
	return s.withLock(ctx, true, "set checkpoint", "", func() error {
		return writeJSON(s.path(MetaFile), meta{ServerTimestamp: &ts})
	})
}

// Clear removes every entity file and the checkpoint. The sentinel lock file
// is kept.
func (s *Store) Clear(ctx context.Context) error {
	return s.withLock(ctx, true, "clear", "", func() error {
		names := append(cache.Files(), MetaFile)
		var errs []error
		for _, name := range names {
			errs = append(errs,
				filex.RemoveIfExists(s.path(name)),
				filex.RemoveIfExists(s.path(name+filex.TmpSuffix)),
			)
		}
		return errors.Join(errs...)
	})
}

// Close releases the sentinel file. Further operations fail; a second Close
// is a no-op.
func (s *Store) Close() error {
	if err := s.sem.Acquire(context.Background(), 1); err != nil {
		return cache.Wrap("close", "", err)
	}
	defer s.sem.Release(1)

	if s.lock == nil {
		return nil
	}
	err := s.lock.Close()
	s.lock = nil
	return cache.Wrap("close", "", err)
}

func readMeta(path string) (meta, error) {
	var m meta
	data, ok, err := filex.ReadFileIfExists(path)
	if err != nil || !ok {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("%w: decode %s: %v", common.ErrSerialization, filepath.Base(path), err)
	}
	return m, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", common.ErrSerialization, filepath.Base(path), err)
	}
	return filex.WriteFileAtomic(path, data, filePerm)
}
