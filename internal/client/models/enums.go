package models

// AccountType is the kind of a financial account.
type AccountType string

const (
	AccountCash       AccountType = "cash"
	AccountCreditCard AccountType = "ccard"
	AccountChecking   AccountType = "checking"
	AccountLoan       AccountType = "loan"
	AccountDeposit    AccountType = "deposit"
	AccountEMoney     AccountType = "emoney"
	AccountDebt       AccountType = "debt"
)

// Interval is a recurrence or payoff period.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

// ReminderMarkerState is the lifecycle state of one planned occurrence.
type ReminderMarkerState string

const (
	MarkerPlanned   ReminderMarkerState = "planned"
	MarkerProcessed ReminderMarkerState = "processed"
	MarkerDeleted   ReminderMarkerState = "deleted"
)

// Object tags used by deletion notices.
const (
	ObjectAccount        = "account"
	ObjectTransaction    = "transaction"
	ObjectTag            = "tag"
	ObjectMerchant       = "merchant"
	ObjectInstrument     = "instrument"
	ObjectCompany        = "company"
	ObjectCountry        = "country"
	ObjectUser           = "user"
	ObjectReminder       = "reminder"
	ObjectReminderMarker = "reminderMarker"
)
