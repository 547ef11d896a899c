package utils

import (
	"fmt"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
)

// ParseDateOnly parses a YYYY-MM-DD date string. A malformed date is a
// validation error; it never propagates as a zero time.
func ParseDateOnly(value string) (time.Time, error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return parsed, nil
}
