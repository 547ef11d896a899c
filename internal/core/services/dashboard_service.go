package services

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/finance"
	portsrepo "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
)

// dashboardService implements the DashboardSvc interface. Stats are a pure
// fold over the snapshot, recomputed on every request.
type dashboardService struct {
	BaseService
	projectRepo portsrepo.ProjectReader
	expenseRepo portsrepo.ExpenseRepository
	accountRepo portsrepo.AccountRepository
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(projectRepo portsrepo.ProjectReader, expenseRepo portsrepo.ExpenseRepository, accountRepo portsrepo.AccountRepository) portssvc.DashboardSvc {
	return &dashboardService{
		projectRepo: projectRepo,
		expenseRepo: expenseRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

func (s *dashboardService) GetStats(ctx context.Context, userID string) (*domain.Stats, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	snapshot, err := loadSnapshot(ctx, userID, s.projectRepo, s.expenseRepo, s.accountRepo)
	if err != nil {
		s.LogError(ctx, err, "Failed to load snapshot for stats")
		return nil, err
	}

	stats := finance.Aggregate(*snapshot)
	return &stats, nil
}

// loadSnapshot gathers the principal's projects, expenses and accounts into
// one in-memory snapshot for the fold.
func loadSnapshot(ctx context.Context, userID string, projects portsrepo.ProjectReader, expenses portsrepo.ExpenseRepository, accounts portsrepo.AccountRepository) (*domain.Snapshot, error) {
	projectList, err := projects.ListProjectsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	expenseList, err := expenses.ListExpensesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	accountList, err := accounts.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &domain.Snapshot{
		Projects: projectList,
		Expenses: expenseList,
		Accounts: accountList,
	}, nil
}
