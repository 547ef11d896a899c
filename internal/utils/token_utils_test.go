package utils_test

import (
	"testing"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := uuid.NewString()
	secret := "test-secret-key"

	token, err := utils.GenerateJWT(userID, secret, time.Hour, "freelance-ledger-app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.Subject)
	assert.Equal(t, "freelance-ledger-app", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), "right-secret", time.Hour, "freelance-ledger-app")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT(uuid.NewString(), "secret", -time.Minute, "freelance-ledger-app")
	require.NoError(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret")
	assert.Error(t, err)
}
