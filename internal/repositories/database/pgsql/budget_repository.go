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
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget data.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepository
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

func toModelBudget(d domain.Budget) models.Budget {
	return models.Budget{
		BudgetID:  d.BudgetID,
		UserID:    d.UserID,
		Category:  d.Category,
		Amount:    d.Amount,
		Period:    string(d.Period),
		StartDate: d.StartDate,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainBudget(m models.Budget) domain.Budget {
	return domain.Budget{
		BudgetID:  m.BudgetID,
		UserID:    m.UserID,
		Category:  m.Category,
		Amount:    m.Amount,
		Period:    domain.BudgetPeriod(m.Period),
		StartDate: m.StartDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const budgetColumns = `budget_id, user_id, category, amount, period, start_date, created_at, created_by, last_updated_at, last_updated_by`

func scanBudget(row pgx.Row) (models.Budget, error) {
	var m models.Budget
	err := row.Scan(
		&m.BudgetID,
		&m.UserID,
		&m.Category,
		&m.Amount,
		&m.Period,
		&m.StartDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBudget inserts a new budget.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BudgetID, m.UserID, m.Category, m.Amount, m.Period, m.StartDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: budget with ID %s already exists", apperrors.ErrDuplicate, m.BudgetID)
		}
		return fmt.Errorf("%w: failed to save budget %s: %v", apperrors.ErrPersistence, m.BudgetID, err)
	}
	return nil
}

// FindBudgetByID retrieves a budget by its ID.
func (r *PgxBudgetRepository) FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`

	m, err := scanBudget(r.Pool.QueryRow(ctx, query, budgetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
		}
		return nil, fmt.Errorf("%w: failed to find budget %s: %v", apperrors.ErrPersistence, budgetID, err)
	}

	budget := toDomainBudget(m)
	return &budget, nil
}

// FindBudgetByCategoryAndPeriod retrieves the user's budget for an exact
// (category, period) pair. When several match, the oldest wins.
func (r *PgxBudgetRepository) FindBudgetByCategoryAndPeriod(ctx context.Context, userID, category string, period domain.BudgetPeriod) (*domain.Budget, error) {
	query := `
		SELECT ` + budgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND category = $2 AND period = $3
		ORDER BY created_at ASC
		LIMIT 1;
	`
	m, err := scanBudget(r.Pool.QueryRow(ctx, query, userID, category, string(period)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no %s budget for category %q", apperrors.ErrNotFound, period, category)
		}
		return nil, fmt.Errorf("%w: failed to find budget for category %q: %v", apperrors.ErrPersistence, category, err)
	}

	budget := toDomainBudget(m)
	return &budget, nil
}

// ListBudgetsByUser retrieves all of a user's budgets.
func (r *PgxBudgetRepository) ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE user_id = $1 ORDER BY created_at ASC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list budgets: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	var budgets []domain.Budget
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan budget row: %v", apperrors.ErrPersistence, err)
		}
		budgets = append(budgets, toDomainBudget(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed reading budget rows: %v", apperrors.ErrPersistence, err)
	}
	return budgets, nil
}

// UpdateBudget updates an existing budget.
func (r *PgxBudgetRepository) UpdateBudget(ctx context.Context, budget domain.Budget) error {
	m := toModelBudget(budget)

	query := `
		UPDATE budgets
		SET category = $2, amount = $3, period = $4, start_date = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE budget_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BudgetID, m.Category, m.Amount, m.Period, m.StartDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update budget %s: %v", apperrors.ErrPersistence, m.BudgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, m.BudgetID)
	}
	return nil
}

// DeleteBudget removes a budget.
func (r *PgxBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE budget_id = $1;`, budgetID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete budget %s: %v", apperrors.ErrPersistence, budgetID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}
	return nil
}
