// Package query evaluates read-side criteria over cached entities.
package query

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/zenkeeper/internal/client/models"
)

// TransactionFilter is a conjunction of optional criteria. The zero value
// matches every transaction.
type TransactionFilter struct {
	from, to  *civil.Date
	account   *models.AccountID
	tag       *models.TagID
	payee     *string
	merchant  *models.MerchantID
	minAmount *float64
	maxAmount *float64
}

func NewFilter() *TransactionFilter {
	return &TransactionFilter{}
}

// DateRange restricts the transaction date to [from, to]. Either bound may be nil.
func (f *TransactionFilter) DateRange(from, to *civil.Date) *TransactionFilter {
	f.from, f.to = from, to
	return f
}

// Account matches transactions touching id on either leg.
func (f *TransactionFilter) Account(id models.AccountID) *TransactionFilter {
	f.account = &id
	return f
}

func (f *TransactionFilter) Tag(id models.TagID) *TransactionFilter {
	f.tag = &id
	return f
}

// Payee matches a case-insensitive substring of the payee.
func (f *TransactionFilter) Payee(s string) *TransactionFilter {
	lower := strings.ToLower(s)
	f.payee = &lower
	return f
}

func (f *TransactionFilter) Merchant(id models.MerchantID) *TransactionFilter {
	f.merchant = &id
	return f
}

// AmountRange requires income or outcome to reach min, and both legs to
// stay within max. Either bound may be nil.
func (f *TransactionFilter) AmountRange(min, max *float64) *TransactionFilter {
	f.minAmount, f.maxAmount = min, max
	return f
}

// Matches reports whether t satisfies every set criterion.
func (f *TransactionFilter) Matches(t models.Transaction) bool {
	if f.from != nil && t.Date.Before(*f.from) {
		return false
	}
	if f.to != nil && t.Date.After(*f.to) {
		return false
	}
	if f.account != nil && t.IncomeAccount != *f.account && t.OutcomeAccount != *f.account {
		return false
	}
	if f.tag != nil && (t.Tag == nil || !t.HasTag(*f.tag)) {
		return false
	}
	if f.payee != nil {
		if t.Payee == nil || !strings.Contains(strings.ToLower(*t.Payee), *f.payee) {
			return false
		}
	}
	if f.merchant != nil && (t.Merchant == nil || *t.Merchant != *f.merchant) {
		return false
	}
	if f.minAmount != nil && t.Income < *f.minAmount && t.Outcome < *f.minAmount {
		return false
	}
	if f.maxAmount != nil && (t.Income > *f.maxAmount || t.Outcome > *f.maxAmount) {
		return false
	}
	return true
}

// Apply returns the matching transactions in their original order.
func (f *TransactionFilter) Apply(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
