package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, accessTTL, refreshTTL time.Duration) TokenService {
	t.Helper()
	svc, err := NewTokenService(accessTTL, refreshTTL, "netfix-test", "netfix-api", false, "", "", "test-secret-key-0123456789abcdef0123456789abcdef")
	require.NoError(t, err)
	return svc
}

func TestNewTokenService(t *testing.T) {
	t.Run("RequiresSecretWithoutRSA", func(t *testing.T) {
		_, err := NewTokenService(time.Hour, 24*time.Hour, "netfix-test", "netfix-api", false, "", "", "")
		assert.Error(t, err)
	})

	t.Run("RequiresBothRSAKeys", func(t *testing.T) {
		_, err := NewTokenService(time.Hour, 24*time.Hour, "netfix-test", "netfix-api", true, "", "", "")
		assert.Error(t, err)
	})
}

func TestGenerateAndValidateTokens(t *testing.T) {
	svc := newTestTokenService(t, time.Hour, 24*time.Hour)

	access, refresh, err := svc.GenerateTokens(42)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), accessClaims.AccountID)
	assert.Equal(t, "access", accessClaims.TokenType)
	assert.NotEmpty(t, accessClaims.TokenID)
	assert.True(t, accessClaims.ExpiresAt.After(accessClaims.IssuedAt))

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint(42), refreshClaims.AccountID)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
	assert.NotEqual(t, accessClaims.TokenID, refreshClaims.TokenID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour, 24*time.Hour)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	svc := newTestTokenService(t, time.Hour, 24*time.Hour)

	other, err := NewTokenService(time.Hour, 24*time.Hour, "netfix-test", "netfix-api", false, "", "", "another-secret-key-0123456789abcdef01234567")
	require.NoError(t, err)

	access, _, err := other.GenerateTokens(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute, 24*time.Hour)

	access, _, err := svc.GenerateTokens(7)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshToken(t *testing.T) {
	svc := newTestTokenService(t, time.Hour, 24*time.Hour)

	access, refresh, err := svc.GenerateTokens(9)
	require.NoError(t, err)

	t.Run("IssuesFreshPair", func(t *testing.T) {
		newAccess, newRefresh, err := svc.RefreshToken(refresh)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(newAccess)
		require.NoError(t, err)
		assert.Equal(t, uint(9), claims.AccountID)
		assert.Equal(t, "access", claims.TokenType)

		_, err = svc.ValidateToken(newRefresh)
		assert.NoError(t, err)
	})

	t.Run("RejectsAccessToken", func(t *testing.T) {
		_, _, err := svc.RefreshToken(access)
		assert.Error(t, err)
	})
}
