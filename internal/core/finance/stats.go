package finance

import (
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Aggregate folds a snapshot into the headline dashboard totals. It is
// recomputed on every call; nothing is cached.
func Aggregate(snapshot domain.Snapshot) domain.Stats {
	totalEarned := decimal.Zero
	totalPending := decimal.Zero
	activeProjects := 0
	for _, project := range snapshot.Projects {
		totalEarned = totalEarned.Add(project.PaidAmount)
		// Unclamped: an overpaid project contributes a negative pending amount.
		totalPending = totalPending.Add(project.TotalAmount.Sub(project.PaidAmount))
		if project.Status == domain.StatusInProgress {
			activeProjects++
		}
	}

	totalExpenses := decimal.Zero
	for _, expense := range snapshot.Expenses {
		totalExpenses = totalExpenses.Add(expense.Amount)
	}

	accountsTotal := decimal.Zero
	for _, account := range snapshot.Accounts {
		// Credit balances are debt; they stay out of the combined total.
		if account.Type != domain.Credit {
			accountsTotal = accountsTotal.Add(account.Balance)
		}
	}

	return domain.Stats{
		TotalEarned:    totalEarned,
		TotalPending:   totalPending,
		TotalExpenses:  totalExpenses,
		NetBalance:     totalEarned.Sub(totalExpenses),
		AccountsTotal:  accountsTotal,
		ProjectCount:   len(snapshot.Projects),
		ActiveProjects: activeProjects,
	}
}
