package finance

import (
	"fmt"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AppendPayment records a payment against a project: it is appended to the
// payment sequence in insertion order (never re-sorted by date) and the paid
// total moves by the payment amount. The paid total is not clamped against
// the contract value, so overpayment is representable.
func AppendPayment(project domain.Project, payment domain.Payment) domain.Project {
	payments := make([]domain.Payment, 0, len(project.Payments)+1)
	payments = append(payments, project.Payments...)
	project.Payments = append(payments, payment)
	project.PaidAmount = project.PaidAmount.Add(payment.Amount)
	return project
}

// SetHoursLogged stores the logged hours on an hourly project and recomputes
// its total from the hourly rate. Applying the same value twice yields the
// same total. Any other contract type is a precondition failure, never a
// silent no-op.
func SetHoursLogged(project domain.Project, hours decimal.Decimal) (domain.Project, error) {
	terms, ok := project.Terms.(domain.HourlyTerms)
	if !ok {
		contractType := domain.ContractType("unset")
		if project.Terms != nil {
			contractType = project.Terms.ContractType()
		}
		return project, fmt.Errorf("%w: hours can only be logged on hourly contracts, project %s is %s", apperrors.ErrPrecondition, project.ProjectID, contractType)
	}
	if hours.IsNegative() {
		return project, fmt.Errorf("%w: hours logged must not be negative, got %s", apperrors.ErrValidation, hours)
	}

	terms.HoursLogged = hours
	total, err := DeriveAmount(terms, project.ContractDurationWeeks)
	if err != nil {
		return project, err
	}

	project.Terms = terms
	project.TotalAmount = total
	return project, nil
}
