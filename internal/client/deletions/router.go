// Package deletions turns the deletion notices of a diff response into
// typed key batches for the cache.
package deletions

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
	"github.com/dmitrijs2005/zenkeeper/internal/client/repositories/cache"
	"github.com/dmitrijs2005/zenkeeper/internal/common"
	"github.com/dmitrijs2005/zenkeeper/internal/logging"
)

// Batches holds the keys to remove, grouped by entity kind. Budgets are
// absent: a budget notice carries no usable composite key.
type Batches struct {
	Accounts        []models.AccountID
	Transactions    []models.TransactionID
	Tags            []models.TagID
	Merchants       []models.MerchantID
	Instruments     []models.InstrumentID
	Companies       []models.CompanyID
	Countries       []models.CountryID
	Users           []models.UserID
	Reminders       []models.ReminderID
	ReminderMarkers []models.ReminderMarkerID
}

// Route classifies notices by object tag. A malformed numeric id fails the
// whole call and no batches are returned. Unknown tags are logged and
// skipped.
func Route(ctx context.Context, log logging.Logger, notices []models.Deletion) (*Batches, error) {
	b := &Batches{}
	for _, n := range notices {
		switch n.Object {
		case models.ObjectAccount:
			b.Accounts = append(b.Accounts, models.AccountID(n.ID))
		case models.ObjectTransaction:
			b.Transactions = append(b.Transactions, models.TransactionID(n.ID))
		case models.ObjectTag:
			b.Tags = append(b.Tags, models.TagID(n.ID))
		case models.ObjectMerchant:
			b.Merchants = append(b.Merchants, models.MerchantID(n.ID))
		case models.ObjectReminder:
			b.Reminders = append(b.Reminders, models.ReminderID(n.ID))
		case models.ObjectReminderMarker:
			b.ReminderMarkers = append(b.ReminderMarkers, models.ReminderMarkerID(n.ID))
		case models.ObjectInstrument:
			v, err := parseID(n, 32)
			if err != nil {
				return nil, err
			}
			b.Instruments = append(b.Instruments, models.InstrumentID(v))
		case models.ObjectCompany:
			v, err := parseID(n, 32)
			if err != nil {
				return nil, err
			}
			b.Companies = append(b.Companies, models.CompanyID(v))
		case models.ObjectCountry:
			v, err := parseID(n, 32)
			if err != nil {
				return nil, err
			}
			b.Countries = append(b.Countries, models.CountryID(v))
		case models.ObjectUser:
			v, err := parseID(n, 64)
			if err != nil {
				return nil, err
			}
			b.Users = append(b.Users, models.UserID(v))
		default:
			log.Warn(ctx, "skipping deletion of unknown object type", "object", n.Object, "id", n.ID)
		}
	}
	return b, nil
}

func parseID(n models.Deletion, bits int) (int64, error) {
	v, err := strconv.ParseInt(n.ID, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s id %q: %v", common.ErrInvalidIdentifier, n.Object, n.ID, err)
	}
	return v, nil
}

// Empty reports whether no bucket has keys.
func (b *Batches) Empty() bool {
	return len(b.Accounts)+len(b.Transactions)+len(b.Tags)+len(b.Merchants)+
		len(b.Instruments)+len(b.Companies)+len(b.Countries)+len(b.Users)+
		len(b.Reminders)+len(b.ReminderMarkers) == 0
}

// Apply removes every bucket from s, stopping at the first failure.
func (b *Batches) Apply(ctx context.Context, s cache.Store) error {
	steps := []func() error{
		func() error { return s.Accounts().Remove(ctx, b.Accounts) },
		func() error { return s.Transactions().Remove(ctx, b.Transactions) },
		func() error { return s.Tags().Remove(ctx, b.Tags) },
		func() error { return s.Merchants().Remove(ctx, b.Merchants) },
		func() error { return s.Instruments().Remove(ctx, b.Instruments) },
		func() error { return s.Companies().Remove(ctx, b.Companies) },
		func() error { return s.Countries().Remove(ctx, b.Countries) },
		func() error { return s.Users().Remove(ctx, b.Users) },
		func() error { return s.Reminders().Remove(ctx, b.Reminders) },
		func() error { return s.ReminderMarkers().Remove(ctx, b.ReminderMarkers) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
