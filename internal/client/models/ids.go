package models

import "strconv"

// String-keyed identifiers of user-authored entities.
type (
	AccountID        string
	TransactionID    string
	TagID            string
	MerchantID       string
	ReminderID       string
	ReminderMarkerID string
)

// Integer-keyed identifiers of reference entities.
type (
	InstrumentID int32
	CompanyID    int32
	CountryID    int32
	UserID       int64
)

func (id AccountID) String() string        { return string(id) }
func (id TransactionID) String() string    { return string(id) }
func (id TagID) String() string            { return string(id) }
func (id MerchantID) String() string       { return string(id) }
func (id ReminderID) String() string       { return string(id) }
func (id ReminderMarkerID) String() string { return string(id) }

func (id InstrumentID) String() string { return strconv.FormatInt(int64(id), 10) }
func (id CompanyID) String() string    { return strconv.FormatInt(int64(id), 10) }
func (id CountryID) String() string    { return strconv.FormatInt(int64(id), 10) }
func (id UserID) String() string       { return strconv.FormatInt(int64(id), 10) }
