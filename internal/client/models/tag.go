package models

// Tag is a spending or income category. Tags form a two-level tree via Parent.
type Tag struct {
	ID            TagID   `json:"id"`
	Changed       int64   `json:"changed"`
	User          UserID  `json:"user"`
	Title         string  `json:"title"`
	Parent        *TagID  `json:"parent"`
	Icon          *string `json:"icon"`
	Picture       *string `json:"picture"`
	Color         *int64  `json:"color"`
	ShowIncome    bool    `json:"showIncome"`
	ShowOutcome   bool    `json:"showOutcome"`
	BudgetIncome  bool    `json:"budgetIncome"`
	BudgetOutcome bool    `json:"budgetOutcome"`
	Required      *bool   `json:"required"`
}

// Merchant is a counterparty of transactions.
type Merchant struct {
	ID      MerchantID `json:"id"`
	Changed int64      `json:"changed"`
	User    UserID     `json:"user"`
	Title   string     `json:"title"`
}
