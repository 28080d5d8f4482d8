package query

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
)

// FindAccountByTitle returns the first account whose title equals title,
// ignoring case, or nil.
func FindAccountByTitle(accounts []models.Account, title string) *models.Account {
	for i := range accounts {
		if strings.EqualFold(accounts[i].Title, title) {
			return &accounts[i]
		}
	}
	return nil
}

func FindTagByTitle(tags []models.Tag, title string) *models.Tag {
	for i := range tags {
		if strings.EqualFold(tags[i].Title, title) {
			return &tags[i]
		}
	}
	return nil
}

// ActiveAccounts drops archived accounts.
func ActiveAccounts(accounts []models.Account) []models.Account {
	out := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if !a.Archive {
			out = append(out, a)
		}
	}
	return out
}

func InstrumentByID(instruments []models.Instrument, id models.InstrumentID) *models.Instrument {
	for i := range instruments {
		if instruments[i].ID == id {
			return &instruments[i]
		}
	}
	return nil
}

// TransactionsByDate keeps transactions dated within [from, to].
func TransactionsByDate(txs []models.Transaction, from, to civil.Date) []models.Transaction {
	return NewFilter().DateRange(&from, &to).Apply(txs)
}

func TransactionsByAccount(txs []models.Transaction, id models.AccountID) []models.Transaction {
	return NewFilter().Account(id).Apply(txs)
}
