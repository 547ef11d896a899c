package finance_test

import (
	"testing"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func softwareBudget(amount float64, period domain.BudgetPeriod) domain.Budget {
	return domain.Budget{
		BudgetID:  "budget-1",
		Category:  "Software",
		Amount:    decimal.NewFromFloat(amount),
		Period:    period,
		StartDate: date("2025-01-01"),
	}
}

func expense(category string, amount float64, day string) domain.Expense {
	return domain.Expense{
		Name:     category + " expense",
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Date:     date(day),
	}
}

func TestResolveWindow(t *testing.T) {
	tests := []struct {
		name      string
		period    domain.BudgetPeriod
		startDate string
		wantEnd   string
	}{
		{name: "monthly adds one calendar month", period: domain.PeriodMonthly, startDate: "2025-01-01", wantEnd: "2025-02-01"},
		{name: "quarterly adds three calendar months", period: domain.PeriodQuarterly, startDate: "2025-01-01", wantEnd: "2025-04-01"},
		{name: "yearly adds one calendar year", period: domain.PeriodYearly, startDate: "2025-01-01", wantEnd: "2026-01-01"},
		{name: "monthly window over a short month normalizes", period: domain.PeriodMonthly, startDate: "2025-01-31", wantEnd: "2025-03-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := softwareBudget(100, tt.period)
			budget.StartDate = date(tt.startDate)

			start, end, err := finance.ResolveWindow(budget)
			require.NoError(t, err)

			assert.Equal(t, date(tt.startDate), start, "window stays anchored to the original start date")
			assert.Equal(t, date(tt.wantEnd), end)
		})
	}
}

func TestResolveWindow_UnknownPeriod(t *testing.T) {
	budget := softwareBudget(100, domain.BudgetPeriod("fortnightly"))
	_, _, err := finance.ResolveWindow(budget)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestResolveWindow_NeverAdvancesPastNow(t *testing.T) {
	// A budget whose first period ended long ago still reports its original
	// window; it does not roll forward to contain the current instant.
	budget := softwareBudget(100, domain.PeriodMonthly)
	budget.StartDate = date("2020-01-01")

	start, end, err := finance.ResolveWindow(budget)
	require.NoError(t, err)

	assert.Equal(t, date("2020-01-01"), start)
	assert.Equal(t, date("2020-02-01"), end)
	assert.True(t, end.Before(time.Now()))
}

func TestComputeProgress_FiltersByCategoryAndWindow(t *testing.T) {
	budget := softwareBudget(200, domain.PeriodMonthly)
	expenses := []domain.Expense{
		expense("Software", 50, "2025-01-15"),
		expense("Software", 30, "2025-02-05"), // past the exclusive window end
		expense("Hardware", 75, "2025-01-10"), // different category
	}

	progress, err := finance.ComputeProgress(budget, expenses)
	require.NoError(t, err)
	require.NotNil(t, progress)

	assert.True(t, decimal.NewFromInt(50).Equal(progress.Spent), "got %s", progress.Spent)
	assert.True(t, decimal.NewFromInt(150).Equal(progress.Remaining))
	assert.True(t, decimal.NewFromInt(25).Equal(progress.Percentage))
}

func TestComputeProgress_WindowBoundaries(t *testing.T) {
	budget := softwareBudget(100, domain.PeriodMonthly)
	expenses := []domain.Expense{
		expense("Software", 10, "2025-01-01"), // window start is inclusive
		expense("Software", 20, "2025-01-31"), // last day inside
		expense("Software", 40, "2025-02-01"), // window end is exclusive
		expense("Software", 80, "2024-12-31"), // before the window
	}

	progress, err := finance.ComputeProgress(budget, expenses)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(30).Equal(progress.Spent), "got %s", progress.Spent)
}

func TestComputeProgress_ClampsOverspend(t *testing.T) {
	budget := softwareBudget(100, domain.PeriodMonthly)
	expenses := []domain.Expense{
		expense("Software", 250, "2025-01-10"),
	}

	progress, err := finance.ComputeProgress(budget, expenses)
	require.NoError(t, err)

	assert.True(t, progress.Remaining.Equal(decimal.Zero), "remaining clamps at zero")
	assert.True(t, progress.Percentage.Equal(decimal.NewFromInt(100)), "percentage clamps at 100")
}

func TestComputeProgress_NoMatchingExpenses(t *testing.T) {
	budget := softwareBudget(100, domain.PeriodMonthly)

	progress, err := finance.ComputeProgress(budget, nil)
	require.NoError(t, err)

	assert.True(t, progress.Spent.Equal(decimal.Zero))
	assert.True(t, progress.Remaining.Equal(decimal.NewFromInt(100)))
	assert.True(t, progress.Percentage.Equal(decimal.Zero))
}

func TestComputeProgress_RejectsNonPositiveBudgetAmount(t *testing.T) {
	for _, amount := range []float64{0, -50} {
		budget := softwareBudget(amount, domain.PeriodMonthly)
		_, err := finance.ComputeProgress(budget, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "amount %v", amount)
	}
}

func TestComputeProgress_PercentageStaysWithinBounds(t *testing.T) {
	budget := softwareBudget(300, domain.PeriodQuarterly)
	amounts := []float64{0, 1, 299.99, 300, 301, 10000}
	for _, amount := range amounts {
		progress, err := finance.ComputeProgress(budget, []domain.Expense{
			expense("Software", amount, "2025-02-01"),
		})
		require.NoError(t, err)
		assert.False(t, progress.Percentage.IsNegative(), "amount %v", amount)
		assert.True(t, progress.Percentage.LessThanOrEqual(decimal.NewFromInt(100)), "amount %v", amount)
		assert.False(t, progress.Remaining.IsNegative(), "amount %v", amount)
	}
}
