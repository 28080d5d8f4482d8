// Package sqlstore implements cache.Store on an embedded SQLite database.
// Entities are kept as JSON payloads keyed by (kind, key); the checkpoint
// lives in the metadata table. Every batch runs in one transaction.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/zenkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/entities"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/zenkeeper/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// gooseMu guards goose's package-level configuration.
var gooseMu sync.Mutex

// RunMigrations brings the schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

type Store struct {
	db *sql.DB

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

// Open opens the SQLite database at dsn and applies migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, cache.Wrap("open", "", err)
	}
	// One connection serializes writers and keeps ":memory:" databases
	// shared across calls.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, cache.Wrap("migrate", "", err)
	}
	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	s := &Store{db: db}
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

func (s *Store) Checkpoint(ctx context.Context) (int64, bool, error) {
	ts, ok, err := metadata.NewSQLiteRepository(s.db).GetInt(ctx, metadata.CheckpointKey)
	if err != nil {
		return 0, false, cache.Wrap("checkpoint", "", err)
	}
	return ts, ok, nil
}

func (s *Store) SetCheckpoint(ctx context.Context, ts int64) error {
	err := metadata.NewSQLiteRepository(s.db).SetInt(ctx, metadata.CheckpointKey, ts)
	return cache.Wrap("set checkpoint", "", err)
}

func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := entities.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return metadata.NewSQLiteRepository(tx).Delete(ctx, metadata.CheckpointKey)
	})
	return cache.Wrap("clear", "", err)
}

// Close closes the database. Further operations fail.
func (s *Store) Close() error {
	return cache.Wrap("close", "", s.db.Close())
}
