package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the DB representation of an expense row. The recurrence
// descriptor is flattened into nullable columns gated by is_recurring.
type Expense struct {
	ExpenseID         string          `db:"expense_id"`
	UserID            string          `db:"user_id"`
	Name              string          `db:"name"`
	Amount            decimal.Decimal `db:"amount"`
	Date              time.Time       `db:"date"`
	Category          string          `db:"category"`
	Account           string          `db:"account"`
	IsRecurring       bool            `db:"is_recurring"`
	RecurrencePattern *string         `db:"recurrence_pattern"`  // Nullable
	RecurrenceEndDate *time.Time      `db:"recurrence_end_date"` // Nullable
	AuditFields
}
