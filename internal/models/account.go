package models

import (
	"github.com/shopspring/decimal"
)

// Account is the DB representation of a money account row.
type Account struct {
	AccountID string          `db:"account_id"`
	UserID    string          `db:"user_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	Type      string          `db:"type"`
	AuditFields
}
