package models

// Account is a wallet, card, deposit, loan or debt record.
type Account struct {
	ID      AccountID `json:"id"`
	Changed int64     `json:"changed"`
	User    UserID    `json:"user"`
	// Role is the user the account is shared with, if any.
	Role       *UserID       `json:"role"`
	Instrument *InstrumentID `json:"instrument"`
	Company    *CompanyID    `json:"company"`
	Type       AccountType   `json:"type"`
	Title      string        `json:"title"`
	SyncID     []string      `json:"syncID"`

	Balance      *float64 `json:"balance"`
	StartBalance *float64 `json:"startBalance"`
	CreditLimit  *float64 `json:"creditLimit"`

	InBalance        bool  `json:"inBalance"`
	Savings          *bool `json:"savings"`
	EnableCorrection bool  `json:"enableCorrection"`
	EnableSMS        bool  `json:"enableSMS"`
	// Archive hides the account from active listings.
	Archive bool `json:"archive"`

	// Deposit and loan terms.
	Capitalization        *bool     `json:"capitalization"`
	Percent               *float64  `json:"percent"`
	StartDate             *string   `json:"startDate"`
	EndDateOffset         *int32    `json:"endDateOffset"`
	EndDateOffsetInterval *Interval `json:"endDateOffsetInterval"`
	PayoffStep            *int32    `json:"payoffStep"`
	PayoffInterval        *Interval `json:"payoffInterval"`
}
