package domain

import (
	"github.com/shopspring/decimal"
)

// Snapshot is the in-memory set of entities the computation layer folds over
// at a point in time.
type Snapshot struct {
	Projects []Project `json:"projects"`
	Expenses []Expense `json:"expenses"`
	Accounts []Account `json:"accounts"`
}

// Stats are the headline dashboard totals derived from a snapshot.
// TotalPending is intentionally unclamped: an overpaid project contributes a
// negative pending amount.
type Stats struct {
	TotalEarned    decimal.Decimal `json:"totalEarned"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetBalance     decimal.Decimal `json:"netBalance"`
	AccountsTotal  decimal.Decimal `json:"accountsTotal"`
	ProjectCount   int             `json:"projectCount"`
	ActiveProjects int             `json:"activeProjects"`
}
