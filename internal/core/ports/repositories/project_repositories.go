package repositories

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a project with its payment history.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjectsByUser retrieves all projects owned by a principal,
	// newest first, each with its payment history.
	ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject updates an existing project's details.
	UpdateProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project and, via the schema cascade, its payments.
	DeleteProject(ctx context.Context, projectID string) error

	// SavePaymentAndProject inserts a payment row and writes the project's
	// updated paid total in a single transaction, so the ledger and the
	// project balance can never diverge.
	SavePaymentAndProject(ctx context.Context, payment domain.Payment, project domain.Project) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
