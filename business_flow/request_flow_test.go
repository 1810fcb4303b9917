package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/models"
	testingutil "github.com/netfix-app/netfix/testing"
)

func TestRequestService(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.requestFlow()
	ctx := testingutil.CreateTestContext()

	customerAccount, customerProfile, err := env.fixtures.CreateTestCustomer()
	require.NoError(t, err)
	companyAccount, _, err := env.fixtures.CreateTestCompany(models.CategoryPainting)
	require.NoError(t, err)
	service, err := env.fixtures.CreateTestService(companyAccount.ID, models.CategoryPainting, 50)
	require.NoError(t, err)

	booking := func(hours int) *dto.CreateServiceRequestRequest {
		return &dto.CreateServiceRequestRequest{
			Hours:    hours,
			Location: "42 Main Street",
		}
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := flow.RequestService(ctx, customerAccount.ID, service.ID, booking(3))
		require.NoError(t, err)

		assert.Equal(t, customerProfile.ID, resp.Request.CustomerID)
		assert.Equal(t, service.ID, resp.Request.ServiceID)
		assert.Equal(t, 150.0, resp.Request.Price)
		assert.Equal(t, models.RequestStatusPending, resp.Request.Status)
		assert.Equal(t, service.Name, resp.Request.ServiceName)
		assert.Contains(t, resp.Message, service.Name)
	})

	t.Run("PriceIsFrozenAtRequestTime", func(t *testing.T) {
		resp, err := flow.RequestService(ctx, customerAccount.ID, service.ID, booking(2))
		require.NoError(t, err)
		assert.Equal(t, 100.0, resp.Request.Price)

		// Repricing the service must not touch the stored quote
		require.NoError(t, env.serviceRepo.UpdatePriceHour(ctx, service.ID, 80))

		stored, err := env.requestRepo.ByID(ctx, resp.Request.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, 100.0, stored.Price)

		// A new request picks up the new rate
		fresh, err := flow.RequestService(ctx, customerAccount.ID, service.ID, booking(2))
		require.NoError(t, err)
		assert.Equal(t, 160.0, fresh.Request.Price)
	})

	t.Run("CompanyCannotRequest", func(t *testing.T) {
		_, err := flow.RequestService(ctx, companyAccount.ID, service.ID, booking(1))
		require.Error(t, err)
		assert.True(t, IsNotACustomer(err))
	})

	t.Run("UnknownService", func(t *testing.T) {
		_, err := flow.RequestService(ctx, customerAccount.ID, 999999, booking(1))
		require.Error(t, err)
		assert.True(t, IsServiceNotFound(err))
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		_, err := flow.RequestService(ctx, 999999, service.ID, booking(1))
		require.Error(t, err)
		assert.True(t, IsAccountNotFound(err))
	})
}
