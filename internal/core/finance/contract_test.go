package finance_test

import (
	"testing"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func date(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveAmount(t *testing.T) {
	tests := []struct {
		name          string
		terms         domain.ContractTerms
		durationWeeks *int
		want          decimal.Decimal
		wantErr       error
	}{
		{
			name:  "fixed contract returns the agreed amount unchanged",
			terms: domain.FixedTerms{TotalAmount: decimal.NewFromInt(5000)},
			want:  decimal.NewFromInt(5000),
		},
		{
			name:  "hourly contract multiplies rate by hours",
			terms: domain.HourlyTerms{HourlyRate: decimal.NewFromInt(75), HoursLogged: decimal.NewFromInt(100)},
			want:  decimal.NewFromInt(7500),
		},
		{
			name:  "hourly contract keeps fractional hours exact",
			terms: domain.HourlyTerms{HourlyRate: decimal.NewFromInt(75), HoursLogged: decimal.NewFromFloat(106.5)},
			want:  decimal.NewFromFloat(7987.5),
		},
		{
			name:  "hourly contract with zero hours is zero",
			terms: domain.HourlyTerms{HourlyRate: decimal.NewFromInt(75), HoursLogged: decimal.Zero},
			want:  decimal.Zero,
		},
		{
			name:          "monthly contract uses four weeks per month",
			terms:         domain.MonthlyTerms{MonthlyRate: decimal.NewFromInt(2000)},
			durationWeeks: intPtr(8),
			want:          decimal.NewFromInt(4000),
		},
		{
			name:          "monthly contract with a partial month",
			terms:         domain.MonthlyTerms{MonthlyRate: decimal.NewFromInt(2000)},
			durationWeeks: intPtr(6),
			want:          decimal.NewFromInt(3000),
		},
		{
			name:    "monthly contract without a duration is rejected",
			terms:   domain.MonthlyTerms{MonthlyRate: decimal.NewFromInt(2000)},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:          "negative monthly rate is rejected",
			terms:         domain.MonthlyTerms{MonthlyRate: decimal.NewFromInt(-2000)},
			durationWeeks: intPtr(8),
			wantErr:       apperrors.ErrValidation,
		},
		{
			name:    "negative hourly rate is rejected",
			terms:   domain.HourlyTerms{HourlyRate: decimal.NewFromInt(-75)},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "negative hours are rejected",
			terms:   domain.HourlyTerms{HourlyRate: decimal.NewFromInt(75), HoursLogged: decimal.NewFromInt(-1)},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "negative fixed amount is rejected",
			terms:   domain.FixedTerms{TotalAmount: decimal.NewFromInt(-1)},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "nil terms are rejected",
			terms:   nil,
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := finance.DeriveAmount(tt.terms, tt.durationWeeks)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestDeriveDates_EndDateFromStartAndDuration(t *testing.T) {
	// 2025-01-01 plus eight calendar weeks lands on 2025-02-26.
	end, weeks, err := finance.DeriveDates(finance.FieldDuration, date("2025-01-01"), nil, intPtr(8))
	require.NoError(t, err)
	require.NotNil(t, end)
	assert.Equal(t, date("2025-02-26"), *end)
	require.NotNil(t, weeks)
	assert.Equal(t, 8, *weeks)
}

func TestDeriveDates_StartEditRecomputesEnd(t *testing.T) {
	staleEnd := date("2025-02-26")
	end, _, err := finance.DeriveDates(finance.FieldStartDate, date("2025-02-01"), timePtr(staleEnd), intPtr(4))
	require.NoError(t, err)
	require.NotNil(t, end)
	assert.Equal(t, date("2025-03-01"), *end)
}

func TestDeriveDates_StartEditWithoutDurationLeavesEndAlone(t *testing.T) {
	existingEnd := date("2025-03-15")
	end, weeks, err := finance.DeriveDates(finance.FieldStartDate, date("2025-02-01"), timePtr(existingEnd), nil)
	require.NoError(t, err)
	require.NotNil(t, end)
	assert.Equal(t, existingEnd, *end)
	assert.Nil(t, weeks)
}

func TestDeriveDates_EndEditDerivesDuration(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantWeeks *int
	}{
		{name: "whole weeks", start: "2025-01-01", end: "2025-02-26", wantWeeks: intPtr(8)},
		{name: "partial week floors down", start: "2025-01-01", end: "2025-01-20", wantWeeks: intPtr(2)},
		{name: "under one week becomes unset", start: "2025-01-01", end: "2025-01-04", wantWeeks: nil},
		{name: "same day becomes unset", start: "2025-01-01", end: "2025-01-01", wantWeeks: nil},
		{name: "end before start becomes unset, not negative", start: "2025-02-01", end: "2025-01-01", wantWeeks: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := date(tt.end)
			_, weeks, err := finance.DeriveDates(finance.FieldEndDate, date(tt.start), &end, nil)
			require.NoError(t, err)
			if tt.wantWeeks == nil {
				assert.Nil(t, weeks)
				return
			}
			require.NotNil(t, weeks)
			assert.Equal(t, *tt.wantWeeks, *weeks)
		})
	}
}

func TestDeriveDates_InvalidInputs(t *testing.T) {
	_, _, err := finance.DeriveDates(finance.FieldDuration, time.Time{}, nil, intPtr(8))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "zero start date")

	_, _, err = finance.DeriveDates(finance.FieldEndDate, date("2025-01-01"), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "missing end date")

	_, _, err = finance.DeriveDates(finance.FieldDuration, date("2025-01-01"), nil, intPtr(-3))
	assert.ErrorIs(t, err, apperrors.ErrValidation, "negative duration")

	_, _, err = finance.DeriveDates(finance.DateField("paymentTerms"), date("2025-01-01"), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation, "unknown field")
}

func TestDeriveDates_RoundTrip(t *testing.T) {
	// Deriving an end date from a duration and then deriving the duration
	// back from that end date returns the original number of weeks.
	start := date("2025-01-01")
	for _, weeks := range []int{1, 4, 8, 52} {
		end, _, err := finance.DeriveDates(finance.FieldDuration, start, nil, intPtr(weeks))
		require.NoError(t, err)
		_, derived, err := finance.DeriveDates(finance.FieldEndDate, start, end, nil)
		require.NoError(t, err)
		require.NotNil(t, derived)
		assert.Equal(t, weeks, *derived)
	}
}
