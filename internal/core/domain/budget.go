package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetPeriod is the recurrence unit defining a budget's window length.
type BudgetPeriod string

const (
	PeriodMonthly   BudgetPeriod = "monthly"
	PeriodQuarterly BudgetPeriod = "quarterly"
	PeriodYearly    BudgetPeriod = "yearly"
)

// Budget caps spending for one expense category over one period. One budget
// is expected per (category, period) pair.
type Budget struct {
	BudgetID  string          `json:"budgetID"`
	UserID    string          `json:"userID"` // Owning principal
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    BudgetPeriod    `json:"period"`
	StartDate time.Time       `json:"startDate"`
	AuditFields
}

// BudgetProgress reports spending against a budget inside its active window.
// Remaining is clamped at zero and Percentage at 100.
type BudgetProgress struct {
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Percentage  decimal.Decimal `json:"percentage"`
	WindowStart time.Time       `json:"windowStart"`
	WindowEnd   time.Time       `json:"windowEnd"`
}
