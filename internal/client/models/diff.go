package models

// Deletion is a notice that the object of type Object with identifier ID
// was removed.
type Deletion struct {
	ID     string `json:"id"`
	Object string `json:"object"`
	// Stamp is the deletion time in unix seconds.
	Stamp int64 `json:"stamp"`
	User  int64 `json:"user"`
}

// DiffRequest asks for all changes after ServerTimestamp and optionally
// carries local changes to be written on the server.
type DiffRequest struct {
	CurrentClientTimestamp int64    `json:"currentClientTimestamp"`
	ServerTimestamp        int64    `json:"serverTimestamp"`
	ForceFetch             []string `json:"forceFetch,omitempty"`

	Account        []Account        `json:"account,omitempty"`
	Tag            []Tag            `json:"tag,omitempty"`
	Merchant       []Merchant       `json:"merchant,omitempty"`
	Transaction    []Transaction    `json:"transaction,omitempty"`
	Reminder       []Reminder       `json:"reminder,omitempty"`
	ReminderMarker []ReminderMarker `json:"reminderMarker,omitempty"`
	Budget         []Budget         `json:"budget,omitempty"`
	Deletion       []Deletion       `json:"deletion,omitempty"`
}

// DiffResponse is the server state changed since the requested timestamp.
type DiffResponse struct {
	ServerTimestamp int64 `json:"serverTimestamp"`

	Instrument     []Instrument     `json:"instrument"`
	Country        []Country        `json:"country"`
	Company        []Company        `json:"company"`
	User           []User           `json:"user"`
	Account        []Account        `json:"account"`
	Tag            []Tag            `json:"tag"`
	Merchant       []Merchant       `json:"merchant"`
	Transaction    []Transaction    `json:"transaction"`
	Reminder       []Reminder       `json:"reminder"`
	ReminderMarker []ReminderMarker `json:"reminderMarker"`
	Budget         []Budget         `json:"budget"`
	Deletion       []Deletion       `json:"deletion"`
}

// SuggestRequest asks the server to categorise a payee or comment.
type SuggestRequest struct {
	Payee   *string `json:"payee,omitempty"`
	Comment *string `json:"comment,omitempty"`
}

type SuggestResponse struct {
	Payee    *string     `json:"payee"`
	Merchant *MerchantID `json:"merchant"`
	Tag      []TagID     `json:"tag"`
}
