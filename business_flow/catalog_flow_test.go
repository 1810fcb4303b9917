package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/models"
	testingutil "github.com/netfix-app/netfix/testing"
)

func serviceCreation(name, category string) *dto.CreateServiceRequest {
	return &dto.CreateServiceRequest{
		Name:        name,
		Description: "Test service description",
		PriceHour:   50,
		Category:    category,
	}
}

func TestCreateService(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.catalogFlow()
	ctx := testingutil.CreateTestContext()

	plumberAccount, _, err := env.fixtures.CreateTestCompany(models.CategoryPlumbing)
	require.NoError(t, err)

	t.Run("AuthorizedCategory", func(t *testing.T) {
		result, err := flow.CreateService(ctx, plumberAccount.ID, serviceCreation("Pipe repair", "Plumbing"))
		require.NoError(t, err)

		assert.NotZero(t, result.ID)
		assert.Equal(t, plumberAccount.ID, result.CompanyID)
		assert.Equal(t, plumberAccount.Username, result.CompanyName)
		assert.Equal(t, "Plumbing", result.Category)
		assert.Equal(t, 50.0, result.PriceHour)
	})

	t.Run("UnauthorizedCategory", func(t *testing.T) {
		_, err := flow.CreateService(ctx, plumberAccount.ID, serviceCreation("Rewiring", "Electricity"))
		require.Error(t, err)
		assert.True(t, IsCategoryNotAuthorized(err))
	})

	t.Run("InvalidCategory", func(t *testing.T) {
		_, err := flow.CreateService(ctx, plumberAccount.ID, serviceCreation("Roof fix", "Roofing"))
		require.Error(t, err)
		assert.True(t, IsInvalidCategory(err))
	})

	t.Run("AllInOneUmbrellaIsNotAServiceCategory", func(t *testing.T) {
		_, err := flow.CreateService(ctx, plumberAccount.ID, serviceCreation("Everything", "All in One"))
		require.Error(t, err)
		assert.True(t, IsInvalidCategory(err))
	})

	t.Run("AllInOneCompanyMayUseAnyTrade", func(t *testing.T) {
		fixAllAccount, _, err := env.fixtures.CreateTestCompany(models.CategoryAllInOne)
		require.NoError(t, err)

		for _, category := range []string{"Plumbing", "Electricity", "Gardening"} {
			_, err := flow.CreateService(ctx, fixAllAccount.ID, serviceCreation("Job "+category, category))
			assert.NoError(t, err, "category %q", category)
		}
	})

	t.Run("CustomerCannotPublish", func(t *testing.T) {
		customerAccount, _, err := env.fixtures.CreateTestCustomer()
		require.NoError(t, err)

		_, err = flow.CreateService(ctx, customerAccount.ID, serviceCreation("Pipe repair", "Plumbing"))
		require.Error(t, err)
		assert.True(t, IsNotACompany(err))
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		_, err := flow.CreateService(ctx, 999999, serviceCreation("Pipe repair", "Plumbing"))
		require.Error(t, err)
		assert.True(t, IsAccountNotFound(err))
	})
}

func TestListServices(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.catalogFlow()
	ctx := testingutil.CreateTestContext()

	companyAccount, _, err := env.fixtures.CreateTestCompany(models.CategoryAllInOne)
	require.NoError(t, err)

	older, err := env.fixtures.CreateTestService(companyAccount.ID, models.CategoryPlumbing, 40)
	require.NoError(t, err)
	newer, err := env.fixtures.CreateTestService(companyAccount.ID, models.CategoryElectricity, 60)
	require.NoError(t, err)

	t.Run("NewestFirst", func(t *testing.T) {
		result, err := flow.ListServices(ctx, 0, 0)
		require.NoError(t, err)

		require.Len(t, result.Services, 2)
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, newer.ID, result.Services[0].ID)
		assert.Equal(t, older.ID, result.Services[1].ID)
	})

	t.Run("Pagination", func(t *testing.T) {
		result, err := flow.ListServices(ctx, 1, 1)
		require.NoError(t, err)

		require.Len(t, result.Services, 1)
		assert.Equal(t, int64(2), result.Total)
		assert.Equal(t, older.ID, result.Services[0].ID)
	})

	t.Run("ByField", func(t *testing.T) {
		result, err := flow.ListServicesByField(ctx, "plumbing")
		require.NoError(t, err)

		require.Len(t, result.Services, 1)
		assert.Equal(t, older.ID, result.Services[0].ID)
		assert.Equal(t, "Plumbing", result.Services[0].Category)
	})

	t.Run("UnknownField", func(t *testing.T) {
		_, err := flow.ListServicesByField(ctx, "roofing")
		require.Error(t, err)
		assert.True(t, IsInvalidCategory(err))
	})

	t.Run("AllInOneFieldIsRejected", func(t *testing.T) {
		_, err := flow.ListServicesByField(ctx, "all-in-one")
		require.Error(t, err)
		assert.True(t, IsInvalidCategory(err))
	})
}

func TestGetService(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.catalogFlow()
	ctx := testingutil.CreateTestContext()

	companyAccount, _, err := env.fixtures.CreateTestCompany(models.CategoryGardening)
	require.NoError(t, err)
	service, err := env.fixtures.CreateTestService(companyAccount.ID, models.CategoryGardening, 35)
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		result, err := flow.GetService(ctx, service.ID)
		require.NoError(t, err)

		assert.Equal(t, service.ID, result.ID)
		assert.Equal(t, companyAccount.Username, result.CompanyName)
		assert.Equal(t, 35.0, result.PriceHour)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := flow.GetService(ctx, 999999)
		require.Error(t, err)
		assert.True(t, IsServiceNotFound(err))
	})
}
