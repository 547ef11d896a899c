package finance

import (
	"fmt"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ResolveWindow returns the half-open [start, end) window a budget covers.
// The end is calendar-unit arithmetic (one month, three months or one year),
// not a fixed day count. The window stays anchored to the budget's original
// start date; it is never advanced to contain the current instant.
// TODO: decide whether windows should roll forward once a period has fully
// elapsed; today a stale budget reports against its first period forever.
func ResolveWindow(budget domain.Budget) (time.Time, time.Time, error) {
	start := budget.StartDate
	switch budget.Period {
	case domain.PeriodMonthly:
		return start, start.AddDate(0, 1, 0), nil
	case domain.PeriodQuarterly:
		return start, start.AddDate(0, 3, 0), nil
	case domain.PeriodYearly:
		return start, start.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown budget period %q", apperrors.ErrValidation, budget.Period)
	}
}

// ComputeProgress aggregates the expenses that fall inside the budget's
// window and match its category. Remaining is clamped at zero and the
// percentage at 100, so an overspent budget reads as fully consumed rather
// than negative.
func ComputeProgress(budget domain.Budget, expenses []domain.Expense) (*domain.BudgetProgress, error) {
	if budget.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be positive, got %s", apperrors.ErrValidation, budget.Amount)
	}

	windowStart, windowEnd, err := ResolveWindow(budget)
	if err != nil {
		return nil, err
	}

	spent := decimal.Zero
	for _, expense := range expenses {
		if expense.Category != budget.Category {
			continue
		}
		// Window end is exclusive.
		if expense.Date.Before(windowStart) || !expense.Date.Before(windowEnd) {
			continue
		}
		spent = spent.Add(expense.Amount)
	}

	remaining := budget.Amount.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percentage := spent.Mul(hundred).Div(budget.Amount)
	if percentage.GreaterThan(hundred) {
		percentage = hundred
	}

	return &domain.BudgetProgress{
		Budget:      budget.Amount,
		Spent:       spent,
		Remaining:   remaining,
		Percentage:  percentage,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}, nil
}
