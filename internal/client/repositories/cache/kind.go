package cache

import "github.com/dmitrijs2005/zenkeeper/internal/client/models"

// Kind describes one entity collection: its name in logs and errors, the
// file it is persisted to, and how to extract an item's identity key.
type Kind[T any, K comparable] struct {
	Name string
	File string
	Key  func(T) K
}

var (
	AccountKind = Kind[models.Account, models.AccountID]{
		Name: "account", File: "accounts.json",
		Key: func(v models.Account) models.AccountID { return v.ID },
	}
	TransactionKind = Kind[models.Transaction, models.TransactionID]{
		Name: "transaction", File: "transactions.json",
		Key: func(v models.Transaction) models.TransactionID { return v.ID },
	}
	TagKind = Kind[models.Tag, models.TagID]{
		Name: "tag", File: "tags.json",
		Key: func(v models.Tag) models.TagID { return v.ID },
	}
	MerchantKind = Kind[models.Merchant, models.MerchantID]{
		Name: "merchant", File: "merchants.json",
		Key: func(v models.Merchant) models.MerchantID { return v.ID },
	}
	InstrumentKind = Kind[models.Instrument, models.InstrumentID]{
		Name: "instrument", File: "instruments.json",
		Key: func(v models.Instrument) models.InstrumentID { return v.ID },
	}
	CompanyKind = Kind[models.Company, models.CompanyID]{
		Name: "company", File: "companies.json",
		Key: func(v models.Company) models.CompanyID { return v.ID },
	}
	CountryKind = Kind[models.Country, models.CountryID]{
		Name: "country", File: "countries.json",
		Key: func(v models.Country) models.CountryID { return v.ID },
	}
	UserKind = Kind[models.User, models.UserID]{
		Name: "user", File: "users.json",
		Key: func(v models.User) models.UserID { return v.ID },
	}
	ReminderKind = Kind[models.Reminder, models.ReminderID]{
		Name: "reminder", File: "reminders.json",
		Key: func(v models.Reminder) models.ReminderID { return v.ID },
	}
	ReminderMarkerKind = Kind[models.ReminderMarker, models.ReminderMarkerID]{
		Name: "reminderMarker", File: "reminder_markers.json",
		Key: func(v models.ReminderMarker) models.ReminderMarkerID { return v.ID },
	}
	BudgetKind = Kind[models.Budget, models.BudgetKey]{
		Name: "budget", File: "budgets.json",
		Key: models.Budget.Key,
	}
)

// Files lists the persisted file of every kind.
func Files() []string {
	return []string{
		AccountKind.File, TransactionKind.File, TagKind.File, MerchantKind.File,
		InstrumentKind.File, CompanyKind.File, CountryKind.File, UserKind.File,
		ReminderKind.File, ReminderMarkerKind.File, BudgetKind.File,
	}
}

// Names lists the name of every kind.
func Names() []string {
	return []string{
		AccountKind.Name, TransactionKind.Name, TagKind.Name, MerchantKind.Name,
		InstrumentKind.Name, CompanyKind.Name, CountryKind.Name, UserKind.Name,
		ReminderKind.Name, ReminderMarkerKind.Name, BudgetKind.Name,
	}
}
