package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrencePattern describes how often a recurring expense repeats.
type RecurrencePattern string

const (
	RecurDaily   RecurrencePattern = "daily"
	RecurWeekly  RecurrencePattern = "weekly"
	RecurMonthly RecurrencePattern = "monthly"
	RecurYearly  RecurrencePattern = "yearly"
)

// Recurrence is descriptive metadata on an expense. Future occurrences are
// never materialized from it.
type Recurrence struct {
	Pattern RecurrencePattern `json:"pattern"`
	EndDate *time.Time        `json:"endDate"`
}

// Expense is a single outgoing amount, optionally tagged with the account it
// was paid from (a reference by name, not ownership).
type Expense struct {
	ExpenseID  string          `json:"expenseID"`
	UserID     string          `json:"userID"` // Owning principal
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Category   string          `json:"category"`
	Account    string          `json:"account"`
	Recurrence *Recurrence     `json:"recurrence"` // nil when non-recurring
	AuditFields
}
