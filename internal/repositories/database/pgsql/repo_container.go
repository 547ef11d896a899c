package pgsql

import (
	"github.com/freelanceledger/freelance_ledger_app/internal/core/services"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryContainer builds the full set of pgsql-backed repositories.
func NewRepositoryContainer(dbPool *pgxpool.Pool) services.RepositoryContainer {
	return services.RepositoryContainer{
		Project: newPgxProjectRepository(dbPool),
		Expense: newPgxExpenseRepository(dbPool),
		Account: newPgxAccountRepository(dbPool),
		Budget:  newPgxBudgetRepository(dbPool),
		User:    newPgxUserRepository(dbPool),
	}
}
