package services

import (
	portsrepo "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
)

// RepositoryContainer bundles the repository implementations the services
// are built on.
type RepositoryContainer struct {
	Project portsrepo.ProjectRepositoryFacade
	Expense portsrepo.ExpenseRepository
	Account portsrepo.AccountRepository
	Budget  portsrepo.BudgetRepository
	User    portsrepo.UserRepository
}

// NewServiceContainer wires every application service against the given
// repositories.
func NewServiceContainer(repos RepositoryContainer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Project:   NewProjectService(repos.Project),
		Expense:   NewExpenseService(repos.Expense),
		Account:   NewAccountService(repos.Account),
		Budget:    NewBudgetService(repos.Budget, repos.Expense),
		User:      NewUserService(repos.User),
		Dashboard: NewDashboardService(repos.Project, repos.Expense, repos.Account),
		Export:    NewExportService(repos.Project, repos.Expense, repos.Account),
	}
}
