package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a money account.
type AccountType string

const (
	Checking   AccountType = "Checking"
	Savings    AccountType = "Savings"
	Credit     AccountType = "Credit"
	Investment AccountType = "Investment"
	Other      AccountType = "Other"
)

// Account is a real-world money account with a signed balance. Credit
// accounts are excluded from the combined balance in dashboard stats.
type Account struct {
	AccountID string          `json:"accountID"`
	UserID    string          `json:"userID"` // Owning principal
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Type      AccountType     `json:"type"`
	AuditFields
}
