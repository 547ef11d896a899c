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

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxExpenseRepository implements portsrepo.ExpenseRepository
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// toModelExpense flattens the recurrence descriptor into nullable columns.
func toModelExpense(d domain.Expense) models.Expense {
	m := models.Expense{
		ExpenseID: d.ExpenseID,
		UserID:    d.UserID,
		Name:      d.Name,
		Amount:    d.Amount,
		Date:      d.Date,
		Category:  d.Category,
		Account:   d.Account,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.Recurrence != nil {
		pattern := string(d.Recurrence.Pattern)
		m.IsRecurring = true
		m.RecurrencePattern = &pattern
		m.RecurrenceEndDate = d.Recurrence.EndDate
	}
	return m
}

func toDomainExpense(m models.Expense) domain.Expense {
	d := domain.Expense{
		ExpenseID: m.ExpenseID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    m.Amount,
		Date:      m.Date,
		Category:  m.Category,
		Account:   m.Account,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.IsRecurring && m.RecurrencePattern != nil {
		d.Recurrence = &domain.Recurrence{
			Pattern: domain.RecurrencePattern(*m.RecurrencePattern),
			EndDate: m.RecurrenceEndDate,
		}
	}
	return d
}

const expenseColumns = `expense_id, user_id, name, amount, date, category, account, is_recurring, recurrence_pattern, recurrence_end_date, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.Name,
		&m.Amount,
		&m.Date,
		&m.Category,
		&m.Account,
		&m.IsRecurring,
		&m.RecurrencePattern,
		&m.RecurrenceEndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveExpense inserts a new expense.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.UserID, m.Name, m.Amount, m.Date, m.Category, m.Account,
		m.IsRecurring, m.RecurrencePattern, m.RecurrenceEndDate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, m.ExpenseID)
		}
		return fmt.Errorf("%w: failed to save expense %s: %v", apperrors.ErrPersistence, m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("%w: failed to find expense %s: %v", apperrors.ErrPersistence, expenseID, err)
	}

	expense := toDomainExpense(m)
	return &expense, nil
}

// ListExpensesByUser retrieves all of a user's expenses, newest spend first.
func (r *PgxExpenseRepository) ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = $1 ORDER BY date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list expenses: %v", apperrors.ErrPersistence, err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan expense row: %v", apperrors.ErrPersistence, err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed reading expense rows: %v", apperrors.ErrPersistence, err)
	}
	return expenses, nil
}

// UpdateExpense updates an existing expense.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)

	query := `
		UPDATE expenses
		SET name = $2, amount = $3, date = $4, category = $5, account = $6,
		    is_recurring = $7, recurrence_pattern = $8, recurrence_end_date = $9,
		    last_updated_at = $10, last_updated_by = $11
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.Name, m.Amount, m.Date, m.Category, m.Account,
		m.IsRecurring, m.RecurrencePattern, m.RecurrenceEndDate,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update expense %s: %v", apperrors.ErrPersistence, m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, m.ExpenseID)
	}
	return nil
}

// DeleteExpense removes an expense.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete expense %s: %v", apperrors.ErrPersistence, expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	return nil
}
