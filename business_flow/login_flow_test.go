package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/models"
	testingutil "github.com/netfix-app/netfix/testing"
)

func TestLogin(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.loginFlow()
	ctx := testingutil.CreateTestContext()

	account, _, err := env.fixtures.CreateTestCustomer()
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		resp, err := flow.Login(ctx, &dto.LoginRequest{
			Email:    account.Email,
			Password: "TestPass123!",
		}, testMetadata())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, account.ID, resp.Account.ID)

		// The session is persisted and last login is stamped
		session, err := env.sessionRepo.BySessionToken(ctx, resp.AccessToken)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.True(t, session.IsValid())

		refreshed, err := env.accountRepo.ByID(ctx, account.ID)
		require.NoError(t, err)
		require.NotNil(t, refreshed)
		assert.NotNil(t, refreshed.LastLoginAt)
	})

	t.Run("CaseInsensitiveEmail", func(t *testing.T) {
		_, err := flow.Login(ctx, &dto.LoginRequest{
			Email:    "  " + account.Email + " ",
			Password: "TestPass123!",
		}, testMetadata())
		assert.NoError(t, err)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := flow.Login(ctx, &dto.LoginRequest{
			Email:    account.Email,
			Password: "WrongPass123!",
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, IsIncorrectCredentials(err))
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := flow.Login(ctx, &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: "TestPass123!",
		}, testMetadata())
		require.Error(t, err)
		// Indistinguishable from a wrong password at the predicate level
		assert.True(t, IsIncorrectCredentials(err))
	})

	t.Run("InactiveAccount", func(t *testing.T) {
		inactive, _, err := env.fixtures.CreateTestCustomer()
		require.NoError(t, err)
		require.NoError(t, env.db.Model(&models.Account{}).
			Where("id = ?", inactive.ID).
			Update("is_active", false).Error)

		_, err = flow.Login(ctx, &dto.LoginRequest{
			Email:    inactive.Email,
			Password: "TestPass123!",
		}, testMetadata())
		require.Error(t, err)
		assert.True(t, IsAccountInactive(err))
	})
}

func TestLogout(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.loginFlow()
	ctx := testingutil.CreateTestContext()

	account, _, err := env.fixtures.CreateTestCustomer()
	require.NoError(t, err)

	resp, err := flow.Login(ctx, &dto.LoginRequest{
		Email:    account.Email,
		Password: "TestPass123!",
	}, testMetadata())
	require.NoError(t, err)

	t.Run("DeactivatesSession", func(t *testing.T) {
		out, err := flow.Logout(ctx, resp.AccessToken)
		require.NoError(t, err)
		assert.NotEmpty(t, out.Message)

		session, err := env.sessionRepo.BySessionToken(ctx, resp.AccessToken)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.False(t, session.IsValid())
	})

	t.Run("UnknownToken", func(t *testing.T) {
		_, err := flow.Logout(ctx, "no-such-token")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
