package services

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
)

// exportService implements the ExportSvc interface. The export artifact is
// a plain serialization of the snapshot; no derivation happens on the way
// out.
type exportService struct {
	BaseService
	projectRepo portsrepo.ProjectReader
	expenseRepo portsrepo.ExpenseRepository
	accountRepo portsrepo.AccountRepository
}

// NewExportService creates a new export service.
func NewExportService(projectRepo portsrepo.ProjectReader, expenseRepo portsrepo.ExpenseRepository, accountRepo portsrepo.AccountRepository) portssvc.ExportSvc {
	return &exportService{
		projectRepo: projectRepo,
		expenseRepo: expenseRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) Snapshot(ctx context.Context, userID string) (*domain.Snapshot, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	snapshot, err := loadSnapshot(ctx, userID, s.projectRepo, s.expenseRepo, s.accountRepo)
	if err != nil {
		s.LogError(ctx, err, "Failed to assemble export snapshot")
		return nil, err
	}
	return snapshot, nil
}
