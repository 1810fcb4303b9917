package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfix-app/netfix/models"
	testingutil "github.com/netfix-app/netfix/testing"
	"github.com/netfix-app/netfix/utils"
)

func TestGetCustomerProfile(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.profileFlow()
	ctx := testingutil.CreateTestContext()

	customerAccount, customerProfile, err := env.fixtures.CreateTestCustomer()
	require.NoError(t, err)
	companyAccount, _, err := env.fixtures.CreateTestCompany(models.CategoryLocks)
	require.NoError(t, err)
	service, err := env.fixtures.CreateTestService(companyAccount.ID, models.CategoryLocks, 30)
	require.NoError(t, err)
	_, err = env.fixtures.CreateTestServiceRequest(customerProfile.ID, service.ID, 2, 30)
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		result, err := flow.GetCustomerProfile(ctx, customerAccount.Username)
		require.NoError(t, err)

		assert.Equal(t, customerAccount.ID, result.Account.ID)
		assert.Equal(t, "1990-06-15", result.BirthDate)
		assert.Equal(t, customerProfile.Age(utils.Today()), result.Age)

		require.Len(t, result.Requests, 1)
		assert.Equal(t, service.ID, result.Requests[0].ServiceID)
		assert.Equal(t, 60.0, result.Requests[0].Price)
	})

	t.Run("CompanyUsernameResolvesToNotFound", func(t *testing.T) {
		_, err := flow.GetCustomerProfile(ctx, companyAccount.Username)
		require.Error(t, err)
		assert.True(t, IsCustomerProfileNotFound(err))
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		_, err := flow.GetCustomerProfile(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, IsCustomerProfileNotFound(err))
	})
}

func TestGetCompanyProfile(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.profileFlow()
	ctx := testingutil.CreateTestContext()

	companyAccount, _, err := env.fixtures.CreateTestCompany(models.CategoryCarpentry)
	require.NoError(t, err)
	older, err := env.fixtures.CreateTestService(companyAccount.ID, models.CategoryCarpentry, 45)
	require.NoError(t, err)
	newer, err := env.fixtures.CreateTestService(companyAccount.ID, models.CategoryCarpentry, 55)
	require.NoError(t, err)

	customerAccount, _, err := env.fixtures.CreateTestCustomer()
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		result, err := flow.GetCompanyProfile(ctx, companyAccount.Username)
		require.NoError(t, err)

		assert.Equal(t, companyAccount.ID, result.Account.ID)
		assert.Equal(t, "Carpentry", result.Category)

		// Catalog is newest-first
		require.Len(t, result.Services, 2)
		assert.Equal(t, newer.ID, result.Services[0].ID)
		assert.Equal(t, older.ID, result.Services[1].ID)
	})

	t.Run("CustomerUsernameResolvesToNotFound", func(t *testing.T) {
		_, err := flow.GetCompanyProfile(ctx, customerAccount.Username)
		require.Error(t, err)
		assert.True(t, IsCompanyProfileNotFound(err))
	})

	t.Run("UnknownUsername", func(t *testing.T) {
		_, err := flow.GetCompanyProfile(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, IsCompanyProfileNotFound(err))
	})
}
