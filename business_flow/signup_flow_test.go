package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/models"
	testingutil "github.com/netfix-app/netfix/testing"
	"github.com/netfix-app/netfix/utils"
)

func customerRegistration(username, email string) *dto.RegisterCustomerRequest {
	return &dto.RegisterCustomerRequest{
		Username:        username,
		Email:           email,
		Password:        "SecurePass123!",
		ConfirmPassword: "SecurePass123!",
		BirthDate:       "1990-06-15",
	}
}

func TestRegisterCustomer(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.signupFlow()
	ctx := testingutil.CreateTestContext()

	t.Run("Success", func(t *testing.T) {
		resp, err := flow.RegisterCustomer(ctx, customerRegistration("alice", "alice@example.com"), testMetadata())
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "alice", resp.Account.Username)
		assert.Equal(t, models.RoleCustomer, resp.Account.Role)
		assert.True(t, utils.IsTrue(resp.Account.IsActive))

		// Profile is persisted alongside the account
		profile, err := env.customerRepo.ByAccountID(ctx, resp.Account.ID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "1990-06-15", profile.BirthDate.Format("2006-01-02"))

		// A session backs the issued access token
		session, err := env.sessionRepo.BySessionToken(ctx, resp.AccessToken)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, resp.Account.ID, session.AccountID)
		assert.True(t, session.IsValid())
	})

	t.Run("EmailIsNormalized", func(t *testing.T) {
		resp, err := flow.RegisterCustomer(ctx, customerRegistration("bob", "  Bob@Example.COM "), testMetadata())
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", resp.Account.Email)
	})

	t.Run("Underage", func(t *testing.T) {
		req := customerRegistration("kid", "kid@example.com")
		req.BirthDate = utils.Today().AddDate(-10, 0, 0).Format("2006-01-02")

		_, err := flow.RegisterCustomer(ctx, req, testMetadata())
		require.Error(t, err)
		assert.True(t, IsUnderage(err))

		// The failed registration leaves nothing behind
		account, err := env.accountRepo.ByEmail(ctx, "kid@example.com")
		require.NoError(t, err)
		assert.Nil(t, account)
	})

	t.Run("BirthDateInFuture", func(t *testing.T) {
		req := customerRegistration("tbd", "tbd@example.com")
		req.BirthDate = utils.Today().AddDate(1, 0, 0).Format("2006-01-02")

		_, err := flow.RegisterCustomer(ctx, req, testMetadata())
		require.Error(t, err)
		assert.True(t, IsBirthDateInFuture(err))
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := flow.RegisterCustomer(ctx, customerRegistration("carol", "carol@example.com"), testMetadata())
		require.NoError(t, err)

		_, err = flow.RegisterCustomer(ctx, customerRegistration("carol2", "Carol@Example.com"), testMetadata())
		require.Error(t, err)
		assert.True(t, IsEmailAlreadyExists(err))
	})

	t.Run("DuplicateUsername", func(t *testing.T) {
		_, err := flow.RegisterCustomer(ctx, customerRegistration("dave", "dave@example.com"), testMetadata())
		require.NoError(t, err)

		_, err = flow.RegisterCustomer(ctx, customerRegistration("dave", "dave2@example.com"), testMetadata())
		require.Error(t, err)
		assert.True(t, IsUsernameAlreadyExists(err))
	})
}

func TestRegisterCompany(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.signupFlow()
	ctx := testingutil.CreateTestContext()

	companyRegistration := func(username, email, category string) *dto.RegisterCompanyRequest {
		return &dto.RegisterCompanyRequest{
			Username:        username,
			Email:           email,
			Password:        "SecurePass123!",
			ConfirmPassword: "SecurePass123!",
			Category:        category,
		}
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := flow.RegisterCompany(ctx, companyRegistration("pipes-co", "pipes@example.com", "Plumbing"), testMetadata())
		require.NoError(t, err)

		assert.Equal(t, models.RoleCompany, resp.Account.Role)
		assert.NotEmpty(t, resp.AccessToken)

		profile, err := env.companyRepo.ByAccountID(ctx, resp.Account.ID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, models.CategoryPlumbing, profile.Category)
		assert.False(t, profile.IsAllInOne())
	})

	t.Run("AllInOne", func(t *testing.T) {
		resp, err := flow.RegisterCompany(ctx, companyRegistration("fixall", "fixall@example.com", "All in One"), testMetadata())
		require.NoError(t, err)

		profile, err := env.companyRepo.ByAccountID(ctx, resp.Account.ID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.True(t, profile.IsAllInOne())
		assert.Equal(t, models.ServiceCategories, profile.AllowedServiceCategories())
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		_, err := flow.RegisterCompany(ctx, companyRegistration("roofers", "roofers@example.com", "Roofing"), testMetadata())
		require.Error(t, err)
		assert.True(t, IsInvalidCategory(err))
	})
}
