package models

import "cloud.google.com/go/civil"

// Reminder describes a recurring planned transaction.
type Reminder struct {
	ID      ReminderID `json:"id"`
	Changed int64      `json:"changed"`
	User    UserID     `json:"user"`

	IncomeInstrument  InstrumentID `json:"incomeInstrument"`
	IncomeAccount     AccountID    `json:"incomeAccount"`
	Income            float64      `json:"income"`
	OutcomeInstrument InstrumentID `json:"outcomeInstrument"`
	OutcomeAccount    AccountID    `json:"outcomeAccount"`
	Outcome           float64      `json:"outcome"`

	Tag      []TagID     `json:"tag"`
	Merchant *MerchantID `json:"merchant"`
	Payee    *string     `json:"payee"`
	Comment  *string     `json:"comment"`

	Interval  *Interval   `json:"interval"`
	Step      *int32      `json:"step"`
	Points    []int32     `json:"points"`
	StartDate civil.Date  `json:"startDate"`
	EndDate   *civil.Date `json:"endDate"`
	Notify    bool        `json:"notify"`
}

// ReminderMarker is a single occurrence generated from a Reminder.
type ReminderMarker struct {
	ID      ReminderMarkerID `json:"id"`
	Changed int64            `json:"changed"`
	User    UserID           `json:"user"`

	IncomeInstrument  InstrumentID `json:"incomeInstrument"`
	IncomeAccount     AccountID    `json:"incomeAccount"`
	Income            float64      `json:"income"`
	OutcomeInstrument InstrumentID `json:"outcomeInstrument"`
	OutcomeAccount    AccountID    `json:"outcomeAccount"`
	Outcome           float64      `json:"outcome"`

	Tag      []TagID     `json:"tag"`
	Merchant *MerchantID `json:"merchant"`
	Payee    *string     `json:"payee"`
	Comment  *string     `json:"comment"`

	Date       civil.Date          `json:"date"`
	Reminder   ReminderID          `json:"reminder"`
	State      ReminderMarkerState `json:"state"`
	Notify     bool                `json:"notify"`
	IsForecast *bool               `json:"isForecast,omitempty"`
}
