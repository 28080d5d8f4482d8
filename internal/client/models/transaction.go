package models

import "cloud.google.com/go/civil"

// Transaction moves money out of OutcomeAccount and into IncomeAccount.
// Plain expenses and incomes use the same account on both legs with one
// amount set to zero.
type Transaction struct {
	ID      TransactionID `json:"id"`
	Changed int64         `json:"changed"`
	Created int64         `json:"created"`
	User    UserID        `json:"user"`
	Deleted bool          `json:"deleted"`
	Hold    *bool         `json:"hold"`

	IncomeInstrument  InstrumentID `json:"incomeInstrument"`
	IncomeAccount     AccountID    `json:"incomeAccount"`
	Income            float64      `json:"income"`
	OutcomeInstrument InstrumentID `json:"outcomeInstrument"`
	OutcomeAccount    AccountID    `json:"outcomeAccount"`
	Outcome           float64      `json:"outcome"`

	Tag            []TagID           `json:"tag"`
	Merchant       *MerchantID       `json:"merchant"`
	Payee          *string           `json:"payee"`
	OriginalPayee  *string           `json:"originalPayee"`
	Comment        *string           `json:"comment"`
	Date           civil.Date        `json:"date"`
	MCC            *int32            `json:"mcc"`
	ReminderMarker *ReminderMarkerID `json:"reminderMarker"`

	// Amounts in the original currency for foreign-currency operations.
	OpIncome            *float64      `json:"opIncome"`
	OpIncomeInstrument  *InstrumentID `json:"opIncomeInstrument"`
	OpOutcome           *float64      `json:"opOutcome"`
	OpOutcomeInstrument *InstrumentID `json:"opOutcomeInstrument"`

	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	IncomeBankID  *string  `json:"incomeBankID,omitempty"`
	OutcomeBankID *string  `json:"outcomeBankID,omitempty"`
	QRCode        *string  `json:"qrCode,omitempty"`
	Source        *string  `json:"source,omitempty"`
	Viewed        *bool    `json:"viewed,omitempty"`
}

// HasTag reports whether id is among the transaction's tags.
func (t *Transaction) HasTag(id TagID) bool {
	for _, tag := range t.Tag {
		if tag == id {
			return true
		}
	}
	return false
}
