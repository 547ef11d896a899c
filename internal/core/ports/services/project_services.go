package services

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ProjectReaderSvc defines read operations for project data.
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project owned by the given principal.
	GetProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error)

	// ListProjects retrieves all projects owned by the principal.
	ListProjects(ctx context.Context, userID string) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for project data.
type ProjectWriterSvc interface {
	// CreateProject persists a new project, deriving its total and end date
	// from the contract fields.
	CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error)

	// UpdateProject applies a partial update, re-deriving the dependent
	// contract fields from whichever field was edited.
	UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)

	// DeleteProject removes a project and its payments.
	DeleteProject(ctx context.Context, userID, projectID string) error
}

// ProjectLedgerSvc defines the payment-ledger operations on a project.
type ProjectLedgerSvc interface {
	// AddPayment records a payment and moves the project's paid total.
	AddPayment(ctx context.Context, userID, projectID string, req dto.CreatePaymentRequest) (*domain.Project, error)

	// LogHours sets the cumulative hours on an hourly project and
	// recomputes its total.
	LogHours(ctx context.Context, userID, projectID string, hours decimal.Decimal) (*domain.Project, error)
}

// ProjectSvcFacade combines all project-related service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectLedgerSvc
}
