package utils_test

import (
	"testing"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateOnly(t *testing.T) {
	parsed, err := utils.ParseDateOnly("2025-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), parsed)
}

func TestParseDateOnly_Invalid(t *testing.T) {
	for _, value := range []string{"", "31-01-2025", "2025-13-01", "not a date"} {
		_, err := utils.ParseDateOnly(value)
		assert.ErrorIs(t, err, apperrors.ErrValidation, "value %q", value)
	}
}
