package services

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/query"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
)

// LedgerService answers read queries against the local cache. It never
// contacts the server. Lookups that find nothing return (nil, nil).
type LedgerService interface {
	Accounts(ctx context.Context) ([]models.Account, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
	Tags(ctx context.Context) ([]models.Tag, error)
	Merchants(ctx context.Context) ([]models.Merchant, error)
	Instruments(ctx context.Context) ([]models.Instrument, error)
	Companies(ctx context.Context) ([]models.Company, error)
	Countries(ctx context.Context) ([]models.Country, error)
	Users(ctx context.Context) ([]models.User, error)
	Reminders(ctx context.Context) ([]models.Reminder, error)
	ReminderMarkers(ctx context.Context) ([]models.ReminderMarker, error)
	Budgets(ctx context.Context) ([]models.Budget, error)

	FilterTransactions(ctx context.Context, f *query.TransactionFilter) ([]models.Transaction, error)
	TransactionsByDate(ctx context.Context, from, to civil.Date) ([]models.Transaction, error)
	TransactionsByAccount(ctx context.Context, id models.AccountID) ([]models.Transaction, error)
	FindAccountByTitle(ctx context.Context, title string) (*models.Account, error)
	FindTagByTitle(ctx context.Context, title string) (*models.Tag, error)
	ActiveAccounts(ctx context.Context) ([]models.Account, error)
	Instrument(ctx context.Context, id models.InstrumentID) (*models.Instrument, error)
}

type ledgerService struct {
	store cache.Store
}

func NewLedgerService(store cache.Store) LedgerService {
	return &ledgerService{store: store}
}

func (l *ledgerService) Accounts(ctx context.Context) ([]models.Account, error) {
	return l.store.Accounts().All(ctx)
}

func (l *ledgerService) Transactions(ctx context.Context) ([]models.Transaction, error) {
	return l.store.Transactions().All(ctx)
}

func (l *ledgerService) Tags(ctx context.Context) ([]models.Tag, error) {
	return l.store.Tags().All(ctx)
}

func (l *ledgerService) Merchants(ctx context.Context) ([]models.Merchant, error) {
	return l.store.Merchants().All(ctx)
}

func (l *ledgerService) Instruments(ctx context.Context) ([]models.Instrument, error) {
	return l.store.Instruments().All(ctx)
}

func (l *ledgerService) Companies(ctx context.Context) ([]models.Company, error) {
	return l.store.Companies().All(ctx)
}

func (l *ledgerService) Countries(ctx context.Context) ([]models.Country, error) {
	return l.store.Countries().All(ctx)
}

func (l *ledgerService) Users(ctx context.Context) ([]models.User, error) {
	return l.store.Users().All(ctx)
}

func (l *ledgerService) Reminders(ctx context.Context) ([]models.Reminder, error) {
	return l.store.Reminders().All(ctx)
}

func (l *ledgerService) ReminderMarkers(ctx context.Context) ([]models.ReminderMarker, error) {
	return l.store.ReminderMarkers().All(ctx)
}

func (l *ledgerService) Budgets(ctx context.Context) ([]models.Budget, error) {
	return l.store.Budgets().All(ctx)
}

// FilterTransactions applies f to every cached transaction. A nil filter
// matches everything.
func (l *ledgerService) FilterTransactions(ctx context.Context, f *query.TransactionFilter) ([]models.Transaction, error) {
	txs, err := l.store.Transactions().All(ctx)
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = query.NewFilter()
	}
	return f.Apply(txs), nil
}

func (l *ledgerService) TransactionsByDate(ctx context.Context, from, to civil.Date) ([]models.Transaction, error) {
	txs, err := l.store.Transactions().All(ctx)
	if err != nil {
		return nil, err
	}
	return query.TransactionsByDate(txs, from, to), nil
}

func (l *ledgerService) TransactionsByAccount(ctx context.Context, id models.AccountID) ([]models.Transaction, error) {
	txs, err := l.store.Transactions().All(ctx)
	if err != nil {
		return nil, err
	}
	return query.TransactionsByAccount(txs, id), nil
}

func (l *ledgerService) FindAccountByTitle(ctx context.Context, title string) (*models.Account, error) {
	accounts, err := l.store.Accounts().All(ctx)
	if err != nil {
		return nil, err
	}
	return query.FindAccountByTitle(accounts, title), nil
}

func (l *ledgerService) FindTagByTitle(ctx context.Context, title string) (*models.Tag, error) {
	tags, err := l.store.Tags().All(ctx)
	if err != nil {
		return nil, err
	}
	return query.FindTagByTitle(tags, title), nil
}

func (l *ledgerService) ActiveAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := l.store.Accounts().All(ctx)
	if err != nil {
		return nil, err
	}
	return query.ActiveAccounts(accounts), nil
}

func (l *ledgerService) Instrument(ctx context.Context, id models.InstrumentID) (*models.Instrument, error) {
	instruments, err := l.store.Instruments().All(ctx)
	if err != nil {
		return nil, err
	}
	return query.InstrumentByID(instruments, id), nil
}
