package models

// Instrument is a currency with its exchange rate to the base currency.
type Instrument struct {
	ID         InstrumentID `json:"id"`
	Changed    int64        `json:"changed"`
	Title      string       `json:"title"`
	ShortTitle string       `json:"shortTitle"`
	Symbol     string       `json:"symbol"`
	Rate       float64      `json:"rate"`
}

// Company is a bank or another financial organisation.
type Company struct {
	ID          CompanyID  `json:"id"`
	Changed     int64      `json:"changed"`
	Title       string     `json:"title"`
	FullTitle   *string    `json:"fullTitle"`
	WWW         *string    `json:"www"`
	Country     *CountryID `json:"country,omitempty"`
	CountryCode *string    `json:"countryCode,omitempty"`
	Deleted     *bool      `json:"deleted,omitempty"`
}

type Country struct {
	ID       CountryID    `json:"id"`
	Title    string       `json:"title"`
	Currency InstrumentID `json:"currency"`
	Domain   *string      `json:"domain,omitempty"`
}

// User is the account owner or a member of a family budget.
type User struct {
	ID       UserID       `json:"id"`
	Changed  int64        `json:"changed"`
	Login    *string      `json:"login"`
	Currency InstrumentID `json:"currency"`
	Parent   *UserID      `json:"parent"`

	Country                 *CountryID `json:"country,omitempty"`
	CountryCode             *string    `json:"countryCode,omitempty"`
	Email                   *string    `json:"email,omitempty"`
	IsForecastEnabled       *bool      `json:"isForecastEnabled,omitempty"`
	MonthStartDay           *int32     `json:"monthStartDay,omitempty"`
	PaidTill                *int64     `json:"paidTill,omitempty"`
	PlanBalanceMode         *string    `json:"planBalanceMode,omitempty"`
	PlanSettings            *string    `json:"planSettings,omitempty"`
	Subscription            *string    `json:"subscription,omitempty"`
	SubscriptionRenewalDate *int64     `json:"subscriptionRenewalDate,omitempty"`
}
