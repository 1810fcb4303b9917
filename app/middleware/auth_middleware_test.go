package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfix-app/netfix/app/services"
	"github.com/netfix-app/netfix/models"
	"github.com/netfix-app/netfix/utils"
)

type stubSessionStore struct {
	sessions map[string]*models.AccountSession
}

func (s *stubSessionStore) BySessionToken(_ context.Context, token string) (*models.AccountSession, error) {
	return s.sessions[token], nil
}

func newAuthTestEnv(t *testing.T) (*fiber.App, services.TokenService, *stubSessionStore) {
	tokenService, err := services.NewTokenService(
		time.Hour, 24*time.Hour, "netfix-test", "netfix-api",
		false, "", "", "test-secret-key-0123456789abcdef0123456789abcdef",
	)
	require.NoError(t, err)

	store := &stubSessionStore{sessions: map[string]*models.AccountSession{}}

	app := fiber.New()
	authMiddleware := NewAuthMiddleware(tokenService, store)
	app.Get("/protected", authMiddleware.Authenticate(), func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app, tokenService, store
}

func protectedRequest(t *testing.T, app *fiber.App, token string) (int, string) {
	req := httptest.NewRequest("GET", "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestAuthenticateActiveSession(t *testing.T) {
	app, tokenService, store := newAuthTestEnv(t)

	accessToken, _, err := tokenService.GenerateTokens(1)
	require.NoError(t, err)

	store.sessions[accessToken] = &models.AccountSession{
		AccountID:    1,
		SessionToken: accessToken,
		IsActive:     utils.ToPtr(true),
		ExpiresAt:    utils.UTCNowAdd(time.Hour),
	}

	status, _ := protectedRequest(t, app, accessToken)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestAuthenticateRejectsLoggedOutToken(t *testing.T) {
	app, tokenService, store := newAuthTestEnv(t)

	accessToken, _, err := tokenService.GenerateTokens(1)
	require.NoError(t, err)

	// The JWT is still within its TTL, but the session behind it was
	// deactivated by logout.
	store.sessions[accessToken] = &models.AccountSession{
		AccountID:    1,
		SessionToken: accessToken,
		IsActive:     utils.ToPtr(false),
		ExpiresAt:    utils.UTCNowAdd(time.Hour),
	}

	status, body := protectedRequest(t, app, accessToken)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "SESSION_REVOKED")
}

func TestAuthenticateRejectsExpiredSession(t *testing.T) {
	app, tokenService, store := newAuthTestEnv(t)

	accessToken, _, err := tokenService.GenerateTokens(1)
	require.NoError(t, err)

	store.sessions[accessToken] = &models.AccountSession{
		AccountID:    1,
		SessionToken: accessToken,
		IsActive:     utils.ToPtr(true),
		ExpiresAt:    utils.UTCNowAdd(-time.Minute),
	}

	status, body := protectedRequest(t, app, accessToken)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "SESSION_REVOKED")
}

func TestAuthenticateRejectsUnknownSessionToken(t *testing.T) {
	app, tokenService, _ := newAuthTestEnv(t)

	// Validly signed token with no session row behind it
	accessToken, _, err := tokenService.GenerateTokens(1)
	require.NoError(t, err)

	status, body := protectedRequest(t, app, accessToken)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "SESSION_REVOKED")
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	app, _, _ := newAuthTestEnv(t)

	status, body := protectedRequest(t, app, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "MISSING_AUTHORIZATION_HEADER")
}
