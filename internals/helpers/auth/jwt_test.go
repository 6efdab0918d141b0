package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kantinku_backend/internals/configs"
	helper "kantinku_backend/internals/helpers"
)

func setSecrets(t *testing.T) {
	t.Helper()
	configs.JWTSecret = "unit-test-secret"
	configs.JWTRefreshSecret = "unit-test-refresh-secret"
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setSecrets(t)
	userID := uuid.New()

	token, err := CreateAccessToken(userID, "gizi01")
	require.NoError(t, err)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "gizi01", claims["login_id"])

	got, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	assert.True(t, ValidateToken(token))
}

func TestRefreshTokenSeparateSecret(t *testing.T) {
	setSecrets(t)
	userID := uuid.New()

	refresh, err := CreateRefreshToken(userID, "gizi01")
	require.NoError(t, err)

	// refresh token tidak boleh lolos sebagai access token
	_, err = ParseAccessToken(refresh)
	assert.Error(t, err)

	claims, err := ParseRefreshToken(refresh)
	require.NoError(t, err)
	got, err := UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	setSecrets(t)

	_, err := ParseAccessToken("bukan.token.valid")
	assert.ErrorIs(t, err, helper.ErrInvalidToken)
	assert.False(t, ValidateToken(""))
}

func TestParseAccessToken_Expired(t *testing.T) {
	setSecrets(t)

	token, err := createToken(uuid.New(), "gizi01", configs.JWTSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken(token)
	assert.ErrorIs(t, err, helper.ErrTokenExpired)
	assert.False(t, ValidateToken(token))
}

func TestCreateToken_MissingSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := CreateAccessToken(uuid.New(), "gizi01")
	assert.Error(t, err)
}
