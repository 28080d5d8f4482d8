package models

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Budget is a monthly income/outcome target. A nil Tag is the aggregate
// budget across all categories.
type Budget struct {
	Changed           int64      `json:"changed"`
	User              UserID     `json:"user"`
	Tag               *TagID     `json:"tag"`
	Date              civil.Date `json:"date"`
	Income            float64    `json:"income"`
	IncomeLock        bool       `json:"incomeLock"`
	Outcome           float64    `json:"outcome"`
	OutcomeLock       bool       `json:"outcomeLock"`
	IsIncomeForecast  *bool      `json:"isIncomeForecast,omitempty"`
	IsOutcomeForecast *bool      `json:"isOutcomeForecast,omitempty"`
}

// BudgetKey identifies a Budget. The empty Tag stands for the aggregate budget.
type BudgetKey struct {
	User UserID
	Tag  TagID
	Date civil.Date
}

// Key returns the composite identity of b.
func (b Budget) Key() BudgetKey {
	k := BudgetKey{User: b.User, Date: b.Date}
	if b.Tag != nil {
		k.Tag = *b.Tag
	}
	return k
}

func (k BudgetKey) String() string {
	return fmt.Sprintf("%d|%s|%s", k.User, k.Tag, k.Date)
}
