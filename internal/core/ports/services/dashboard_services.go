package services

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
)

// DashboardSvc derives the headline totals from the principal's snapshot.
type DashboardSvc interface {
	GetStats(ctx context.Context, userID string) (*domain.Stats, error)
}

// ExportSvc assembles the principal's full snapshot for export.
type ExportSvc interface {
	Snapshot(ctx context.Context, userID string) (*domain.Snapshot, error)
}
