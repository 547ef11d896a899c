// Package finance holds the pure contract, ledger, budget and stats
// computations. Nothing in this package performs I/O; services feed it
// domain values and persist what comes back.
package finance

import (
	"fmt"
	"math"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// weeksPerMonth is a fixed approximation used for monthly contract totals,
// not a calendar-month computation. Changing it would silently change every
// stored monthly contract value.
var weeksPerMonth = decimal.NewFromInt(4)

// DeriveAmount computes a project's total contract value from its billing
// terms. The contract duration is only consulted for monthly contracts.
func DeriveAmount(terms domain.ContractTerms, durationWeeks *int) (decimal.Decimal, error) {
	switch t := terms.(type) {
	case domain.FixedTerms:
		if t.TotalAmount.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: fixed contract amount must not be negative, got %s", apperrors.ErrValidation, t.TotalAmount)
		}
		return t.TotalAmount, nil
	case domain.HourlyTerms:
		if t.HourlyRate.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: hourly rate must not be negative, got %s", apperrors.ErrValidation, t.HourlyRate)
		}
		if t.HoursLogged.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: hours logged must not be negative, got %s", apperrors.ErrValidation, t.HoursLogged)
		}
		return t.HourlyRate.Mul(t.HoursLogged), nil
	case domain.MonthlyTerms:
		if t.MonthlyRate.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: monthly rate must not be negative, got %s", apperrors.ErrValidation, t.MonthlyRate)
		}
		if durationWeeks == nil {
			return decimal.Zero, fmt.Errorf("%w: monthly contract requires a duration in weeks", apperrors.ErrValidation)
		}
		if *durationWeeks < 0 {
			return decimal.Zero, fmt.Errorf("%w: contract duration must not be negative, got %d", apperrors.ErrValidation, *durationWeeks)
		}
		months := decimal.NewFromInt(int64(*durationWeeks)).Div(weeksPerMonth)
		return t.MonthlyRate.Mul(months), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown contract terms %T", apperrors.ErrValidation, terms)
	}
}

// DateField names which of the three interdependent date fields was edited,
// which decides the direction of the derivation in DeriveDates.
type DateField string

const (
	FieldStartDate DateField = "startDate"
	FieldEndDate   DateField = "endDate"
	FieldDuration  DateField = "contractDurationWeeks"
)

// DeriveDates reconciles a contract's start date, end date and duration
// after one of them was edited:
//   - start or duration edited: end = start + 7*weeks days (when a duration
//     is set; without one the end date is left alone).
//   - end edited: weeks = floor((end-start)/7d), becoming unset when the
//     span is zero or negative.
//
// It returns the reconciled (endDate, durationWeeks) pair.
func DeriveDates(edited DateField, start time.Time, end *time.Time, weeks *int) (*time.Time, *int, error) {
	if start.IsZero() {
		return nil, nil, fmt.Errorf("%w: start date is required", apperrors.ErrValidation)
	}

	switch edited {
	case FieldStartDate, FieldDuration:
		if weeks == nil {
			return end, nil, nil
		}
		if *weeks < 0 {
			return nil, nil, fmt.Errorf("%w: contract duration must not be negative, got %d", apperrors.ErrValidation, *weeks)
		}
		derived := DeriveEndDate(start, *weeks)
		return &derived, weeks, nil
	case FieldEndDate:
		if end == nil {
			return nil, nil, fmt.Errorf("%w: end date is required to derive the contract duration", apperrors.ErrValidation)
		}
		return end, DeriveDurationWeeks(start, *end), nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown date field %q", apperrors.ErrValidation, edited)
	}
}

// DeriveEndDate returns the contract end date for a start date and a
// duration in calendar weeks.
func DeriveEndDate(start time.Time, weeks int) time.Time {
	return start.AddDate(0, 0, 7*weeks)
}

// DeriveDurationWeeks returns the whole number of weeks between start and
// end, or nil when the span is zero or negative (the duration is unset, not
// zero).
func DeriveDurationWeeks(start, end time.Time) *int {
	weeks := int(math.Floor(end.Sub(start).Hours() / (24 * 7)))
	if weeks <= 0 {
		return nil
	}
	return &weeks
}
