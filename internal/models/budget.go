package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the DB representation of a budget row.
type Budget struct {
	BudgetID  string          `db:"budget_id"`
	UserID    string          `db:"user_id"`
	Category  string          `db:"category"`
	Amount    decimal.Decimal `db:"amount"`
	Period    string          `db:"period"`
	StartDate time.Time       `db:"start_date"`
	AuditFields
}
