package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/repositories"
	"github.com/freelanceledger/freelance_ledger_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

// toModelProject flattens the contract terms variant into the nullable rate
// columns; contract_type records which variant the row holds.
func toModelProject(d domain.Project) models.Project {
	m := models.Project{
		ProjectID:             d.ProjectID,
		UserID:                d.UserID,
		Name:                  d.Name,
		Client:                d.Client,
		Status:                string(d.Status),
		PaymentTerms:          string(d.PaymentTerms),
		ContractType:          string(d.Terms.ContractType()),
		StartDate:             d.StartDate,
		EndDate:               d.EndDate,
		ContractDurationWeeks: d.ContractDurationWeeks,
		TotalAmount:           d.TotalAmount,
		PaidAmount:            d.PaidAmount,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}

	switch terms := d.Terms.(type) {
	case domain.HourlyTerms:
		rate, hours := terms.HourlyRate, terms.HoursLogged
		m.HourlyRate = &rate
		m.HoursLogged = &hours
	case domain.MonthlyTerms:
		rate := terms.MonthlyRate
		m.MonthlyRate = &rate
	}

	return m
}

// toDomainProject rebuilds the contract terms variant from the flattened
// row and attaches the payment history.
func toDomainProject(m models.Project, payments []domain.Payment) domain.Project {
	d := domain.Project{
		ProjectID:             m.ProjectID,
		UserID:                m.UserID,
		Name:                  m.Name,
		Client:                m.Client,
		Status:                domain.ProjectStatus(m.Status),
		PaymentTerms:          domain.PaymentTerms(m.PaymentTerms),
		StartDate:             m.StartDate,
		EndDate:               m.EndDate,
		ContractDurationWeeks: m.ContractDurationWeeks,
		TotalAmount:           m.TotalAmount,
		PaidAmount:            m.PaidAmount,
		Payments:              payments,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}

	switch domain.ContractType(m.ContractType) {
	case domain.ContractHourly:
		d.Terms = domain.HourlyTerms{
			HourlyRate:  derefOrZero(m.HourlyRate),
			HoursLogged: derefOrZero(m.HoursLogged),
		}
	case domain.ContractMonthly:
		d.Terms = domain.MonthlyTerms{MonthlyRate: derefOrZero(m.MonthlyRate)}
	default:
		d.Terms = domain.FixedTerms{TotalAmount: m.TotalAmount}
	}

	return d
}

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		ProjectID:   m.ProjectID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func derefOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

const projectColumns = `project_id, user_id, name, client, status, payment_terms, contract_type, start_date, end_date, contract_duration_weeks, hourly_rate, hours_logged, monthly_rate, total_amount, paid_amount, created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.UserID,
		&m.Name,
		&m.Client,
		&m.Status,
		&m.PaymentTerms,
		&m.ContractType,
		&m.StartDate,
		&m.EndDate,
		&m.ContractDurationWeeks,
		&m.HourlyRate,
		&m.HoursLogged,
		&m.MonthlyRate,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := toModelProject(project)

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID, m.UserID, m.Name, m.Client, m.Status, m.PaymentTerms, m.ContractType,
		m.StartDate, m.EndDate, m.ContractDurationWeeks,
		m.HourlyRate, m.HoursLogged, m.MonthlyRate, m.TotalAmount, m.PaidAmount,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: project with ID %s already exists", apperrors.ErrDuplicate, m.ProjectID)
		}
		return fmt.Errorf("%w: failed to save project %s: %v", apperrors.ErrPersistence, m.ProjectID, err)
	}
	return nil
}

// FindProjectByID retrieves a project with its payment history.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`

	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
		}
		return nil, fmt.Errorf("%w: failed to find project %s: %v", apperrors.ErrPersistence, projectID, err)
	}

	payments, err := r.paymentsByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project := toDomainProject(m, payments)
	return &project, nil
}

// ListProjectsByUser retrieves all of a user's projects, newest first, each
// with its payment history.
func (r *PgxProjectRepository) ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list projects: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	var projectModels []models.Project
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan project row: %v", apperrors.ErrPersistence, err)
		}
		projectModels = append(projectModels, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed reading project rows: %v", apperrors.ErrPersistence, err)
	}

	paymentsByProject, err := r.paymentsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, len(projectModels))
	for i, m := range projectModels {
		projects[i] = toDomainProject(m, paymentsByProject[m.ProjectID])
	}
	return projects, nil
}

// UpdateProject updates an existing project's details.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	m := toModelProject(project)

	query := `
		UPDATE projects
		SET name = $2, client = $3, status = $4, payment_terms = $5, contract_type = $6,
		    start_date = $7, end_date = $8, contract_duration_weeks = $9,
		    hourly_rate = $10, hours_logged = $11, monthly_rate = $12,
		    total_amount = $13, paid_amount = $14,
		    last_updated_at = $15, last_updated_by = $16
		WHERE project_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProjectID, m.Name, m.Client, m.Status, m.PaymentTerms, m.ContractType,
		m.StartDate, m.EndDate, m.ContractDurationWeeks,
		m.HourlyRate, m.HoursLogged, m.MonthlyRate,
		m.TotalAmount, m.PaidAmount,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update project %s: %v", apperrors.ErrPersistence, m.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, m.ProjectID)
	}
	return nil
}

// DeleteProject removes a project; the schema cascades to its payments.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete project %s: %v", apperrors.ErrPersistence, projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
	}
	return nil
}

// SavePaymentAndProject inserts the payment row and writes the project's
// moved paid total in one transaction.
func (r *PgxProjectRepository) SavePaymentAndProject(ctx context.Context, payment domain.Payment, project domain.Project) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	insertPayment := `
		INSERT INTO payments (payment_id, project_id, amount, date, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	if _, err := tx.Exec(ctx, insertPayment,
		payment.PaymentID, payment.ProjectID, payment.Amount, payment.Date, payment.Description,
		payment.CreatedAt, payment.CreatedBy, payment.LastUpdatedAt, payment.LastUpdatedBy,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: payment with ID %s already exists", apperrors.ErrDuplicate, payment.PaymentID)
		}
		return fmt.Errorf("%w: failed to save payment %s: %v", apperrors.ErrPersistence, payment.PaymentID, err)
	}

	updateProject := `
		UPDATE projects
		SET paid_amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE project_id = $1;
	`
	tag, err := tx.Exec(ctx, updateProject,
		project.ProjectID, project.PaidAmount, project.LastUpdatedAt, project.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update paid total for project %s: %v", apperrors.ErrPersistence, project.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: project %s", apperrors.ErrNotFound, project.ProjectID)
	}

	return r.Commit(ctx, tx)
}

// paymentsByProject loads one project's payments in insertion order.
func (r *PgxProjectRepository) paymentsByProject(ctx context.Context, projectID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, project_id, amount, date, description, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE project_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list payments for project %s: %v", apperrors.ErrPersistence, projectID, err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

// paymentsByUser loads the payments of every project the user owns, grouped
// by project, each group in insertion order.
func (r *PgxProjectRepository) paymentsByUser(ctx context.Context, userID string) (map[string][]domain.Payment, error) {
	query := `
		SELECT p.payment_id, p.project_id, p.amount, p.date, p.description, p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
		FROM payments p
		JOIN projects pr ON pr.project_id = p.project_id
		WHERE pr.user_id = $1
		ORDER BY p.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list payments: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	payments, err := collectPayments(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]domain.Payment)
	for _, p := range payments {
		grouped[p.ProjectID] = append(grouped[p.ProjectID], p)
	}
	return grouped, nil
}

func collectPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID, &m.ProjectID, &m.Amount, &m.Date, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("%w: failed to scan payment row: %v", apperrors.ErrPersistence, err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed reading payment rows: %v", apperrors.ErrPersistence, err)
	}
	return payments, nil
}
