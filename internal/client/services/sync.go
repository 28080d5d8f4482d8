// Package services contains application services for the zenkeeper client.
// This file defines the sync service: incremental and full synchronization
// against the remote diff endpoint, pushes and deletions of local changes,
// and the payee suggestion passthrough.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/zenkeeper/internal/client/client"
	"github.com/dmitrijs2005/zenkeeper/internal/client/deletions"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/logging"
)

// SyncService keeps the local cache in step with the server.
//
// Contract:
//   - Sync: fetch changes since the stored checkpoint and apply them.
//   - FullSync: clear the cache, then Sync from the beginning.
//   - Push*: send created or changed items, then apply the server answer.
//   - Delete*: send deletion notices for keys, then apply the server answer.
//   - Suggest: ask the server to categorise a payee or comment.
//
// Every call that applies a diff writes upserts first, deletions second and
// the new checkpoint last, so a failed call can be retried safely. The raw
// response is returned for inspection.
type SyncService interface {
	Sync(ctx context.Context) (*models.DiffResponse, error)
	FullSync(ctx context.Context) (*models.DiffResponse, error)

	PushAccounts(ctx context.Context, items []models.Account) (*models.DiffResponse, error)
	PushTransactions(ctx context.Context, items []models.Transaction) (*models.DiffResponse, error)
	PushTags(ctx context.Context, items []models.Tag) (*models.DiffResponse, error)
	PushMerchants(ctx context.Context, items []models.Merchant) (*models.DiffResponse, error)
	PushReminders(ctx context.Context, items []models.Reminder) (*models.DiffResponse, error)
	PushReminderMarkers(ctx context.Context, items []models.ReminderMarker) (*models.DiffResponse, error)
	PushBudgets(ctx context.Context, items []models.Budget) (*models.DiffResponse, error)

	DeleteAccounts(ctx context.Context, ids []models.AccountID) (*models.DiffResponse, error)
	DeleteTransactions(ctx context.Context, ids []models.TransactionID) (*models.DiffResponse, error)
	DeleteTags(ctx context.Context, ids []models.TagID) (*models.DiffResponse, error)
	DeleteMerchants(ctx context.Context, ids []models.MerchantID) (*models.DiffResponse, error)
	DeleteReminders(ctx context.Context, ids []models.ReminderID) (*models.DiffResponse, error)
	DeleteReminderMarkers(ctx context.Context, ids []models.ReminderMarkerID) (*models.DiffResponse, error)

	Suggest(ctx context.Context, req models.SuggestRequest) (*models.SuggestResponse, error)
}

type syncService struct {
	// mu serializes diff exchanges from the checkpoint read through apply.
	mu     sync.Mutex
	client client.Client
	store  cache.Store
	log    logging.Logger
	now    func() time.Time
}

// NewSyncService builds a SyncService. A nil now defaults to time.Now and a
// nil log discards output.
func NewSyncService(c client.Client, store cache.Store, log logging.Logger, now func() time.Time) SyncService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logging.Discard()
	}
	return &syncService{client: c, store: store, log: log.With("component", "sync"), now: now}
}

func (s *syncService) Sync(ctx context.Context) (*models.DiffResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.baseRequest(ctx)
	if err != nil {
		return nil, err
	}
	return s.exchange(ctx, req)
}

func (s *syncService) FullSync(ctx context.Context) (*models.DiffResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear cache: %w", err)
	}
	return s.exchange(ctx, &models.DiffRequest{
		CurrentClientTimestamp: s.now().Unix(),
		ServerTimestamp:        0,
	})
}

func (s *syncService) PushAccounts(ctx context.Context, items []models.Account) (*models.DiffResponse, error) {
	return s.push(ctx, func(r *models.DiffRequest) { r.Account = items })
}

func (s *syncService) PushTransactions(ctx context.Context, items []models.Transaction) (*models.DiffResponse, error) {
	return s.push(ctx, func(r *models.DiffRequest) { r.Transaction = items })
}

func (s *syncService) PushTags(ctx context.Context, items []models.Tag) (*models.DiffResponse, error) {
	return s.push(ctx, func(r *models.DiffRequest) { r.Tag = items })
}

func (s *syncService) PushMerchants(ctx context.Context, items []models.Merchant) (*models.DiffResponse, error) {
	return s.push(ctx, func(r *models.DiffRequest) { r.Merchant = items })
}

func (s *syncService) PushReminders(ctx context.Context, items []models.Reminder) (*models.DiffResponse, error) {
	return s.push(ctx, func(r *models.DiffRequest) { r.Reminder = items })
}

func (s *syncService) PushReminderMarkers(ctx context.Context, items []models.ReminderMarker) (*models.DiffResponse, error) {
	return s.push(ctx, func(r *models.DiffRequest) { r.ReminderMarker = items })
}

func (s *syncService) PushBudgets(ctx context.Context, items []models.Budget) (*models.DiffResponse, error) {
	return s.push(ctx, func(r *models.DiffRequest) { r.Budget = items })
}

func (s *syncService) DeleteAccounts(ctx context.Context, ids []models.AccountID) (*models.DiffResponse, error) {
	return deleteKeys(ctx, s, models.ObjectAccount, ids)
}

func (s *syncService) DeleteTransactions(ctx context.Context, ids []models.TransactionID) (*models.DiffResponse, error) {
	return deleteKeys(ctx, s, models.ObjectTransaction, ids)
}

func (s *syncService) DeleteTags(ctx context.Context, ids []models.TagID) (*models.DiffResponse, error) {
	return deleteKeys(ctx, s, models.ObjectTag, ids)
}

func (s *syncService) DeleteMerchants(ctx context.Context, ids []models.MerchantID) (*models.DiffResponse, error) {
	return deleteKeys(ctx, s, models.ObjectMerchant, ids)
}

func (s *syncService) DeleteReminders(ctx context.Context, ids []models.ReminderID) (*models.DiffResponse, error) {
	return deleteKeys(ctx, s, models.ObjectReminder, ids)
}

func (s *syncService) DeleteReminderMarkers(ctx context.Context, ids []models.ReminderMarkerID) (*models.DiffResponse, error) {
	return deleteKeys(ctx, s, models.ObjectReminderMarker, ids)
}

func (s *syncService) Suggest(ctx context.Context, req models.SuggestRequest) (*models.SuggestResponse, error) {
	resp, err := s.client.Suggest(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}
	return resp, nil
}

func (s *syncService) baseRequest(ctx context.Context) (*models.DiffRequest, error) {
	ts, _, err := s.store.Checkpoint(ctx)
	if err != nil {
		return nil, fmt.Errorf("read checkpoint: %w", err)
	}
	return &models.DiffRequest{
		CurrentClientTimestamp: s.now().Unix(),
		ServerTimestamp:        ts,
	}, nil
}

func (s *syncService) push(ctx context.Context, fill func(*models.DiffRequest)) (*models.DiffResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.baseRequest(ctx)
	if err != nil {
		return nil, err
	}
	fill(req)
	return s.exchange(ctx, req)
}

// deleteKeys stamps one notice per key with the current time and the cached
// user with the lowest id.
func deleteKeys[K fmt.Stringer](ctx context.Context, s *syncService, object string, ids []K) (*models.DiffResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, err := s.baseRequest(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	stamp := s.now().Unix()
	req.Deletion = make([]models.Deletion, 0, len(ids))
	for _, id := range ids {
		req.Deletion = append(req.Deletion, models.Deletion{
			ID:     id.String(),
			Object: object,
			Stamp:  stamp,
			User:   int64(user),
		})
	}
	return s.exchange(ctx, req)
}

func (s *syncService) currentUser(ctx context.Context) (models.UserID, error) {
	users, err := s.store.Users().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("read users: %w", err)
	}
	if len(users) == 0 {
		return 0, nil
	}
	id := users[0].ID
	for _, u := range users[1:] {
		if u.ID < id {
			id = u.ID
		}
	}
	return id, nil
}

func (s *syncService) exchange(ctx context.Context, req *models.DiffRequest) (*models.DiffResponse, error) {
	resp, err := s.client.Diff(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("diff: %w", err)
	}
	if err := s.apply(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *syncService) apply(ctx context.Context, resp *models.DiffResponse) error {
	st := s.store
	upserts := []func() error{
		func() error { return upsert(ctx, st.Instruments(), resp.Instrument) },
		func() error { return upsert(ctx, st.Countries(), resp.Country) },
		func() error { return upsert(ctx, st.Companies(), resp.Company) },
		func() error { return upsert(ctx, st.Users(), resp.User) },
		func() error { return upsert(ctx, st.Accounts(), resp.Account) },
		func() error { return upsert(ctx, st.Tags(), resp.Tag) },
		func() error { return upsert(ctx, st.Merchants(), resp.Merchant) },
		func() error { return upsert(ctx, st.Transactions(), resp.Transaction) },
		func() error { return upsert(ctx, st.Reminders(), resp.Reminder) },
		func() error { return upsert(ctx, st.ReminderMarkers(), resp.ReminderMarker) },
		func() error { return upsert(ctx, st.Budgets(), resp.Budget) },
	}
	for _, step := range upserts {
		if err := step(); err != nil {
			return fmt.Errorf("apply upserts: %w", err)
		}
	}

	if len(resp.Deletion) > 0 {
		batches, err := deletions.Route(ctx, s.log, resp.Deletion)
		if err != nil {
			return fmt.Errorf("route deletions: %w", err)
		}
		if err := batches.Apply(ctx, st); err != nil {
			return fmt.Errorf("apply deletions: %w", err)
		}
	}

	if err := st.SetCheckpoint(ctx, resp.ServerTimestamp); err != nil {
		return fmt.Errorf("store checkpoint: %w", err)
	}

	s.log.Info(ctx, "diff applied",
		"server_timestamp", resp.ServerTimestamp,
		"instruments", len(resp.Instrument),
		"countries", len(resp.Country),
		"companies", len(resp.Company),
		"users", len(resp.User),
		"accounts", len(resp.Account),
		"tags", len(resp.Tag),
		"merchants", len(resp.Merchant),
		"transactions", len(resp.Transaction),
		"reminders", len(resp.Reminder),
		"reminder_markers", len(resp.ReminderMarker),
		"budgets", len(resp.Budget),
		"deletions", len(resp.Deletion),
	)
	return nil
}

func upsert[T any, K comparable](ctx context.Context, t cache.Table[T, K], items []T) error {
	if len(items) == 0 {
		return nil
	}
	return t.Upsert(ctx, items)
}
