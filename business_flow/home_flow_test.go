package businessflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfix-app/netfix/models"
	testingutil "github.com/netfix-app/netfix/testing"
)

func TestGetHome(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.homeFlow()
	ctx := testingutil.CreateTestContext()

	_, customerProfile, err := env.fixtures.CreateTestCustomer()
	require.NoError(t, err)
	companyAccount, _, err := env.fixtures.CreateTestCompany(models.CategoryAllInOne)
	require.NoError(t, err)

	// Six services, created oldest to newest, with uneven request counts.
	services := make([]*models.Service, 6)
	for i := range services {
		services[i], err = env.fixtures.CreateTestService(companyAccount.ID, models.CategoryPlumbing, 25)
		require.NoError(t, err)
	}

	requestCounts := []int{1, 1, 2, 3, 0, 0}
	for i, count := range requestCounts {
		for j := 0; j < count; j++ {
			_, err := env.fixtures.CreateTestServiceRequest(customerProfile.ID, services[i].ID, 1, 25)
			require.NoError(t, err)
		}
	}

	result, err := flow.GetHome(ctx)
	require.NoError(t, err)
	require.Len(t, result.MostRequested, 5)

	// Ranked by request count, ties broken newest-first. The two zero-count
	// services compete for the last slot and the newer one wins.
	wantIDs := []uint{services[3].ID, services[2].ID, services[1].ID, services[0].ID, services[5].ID}
	wantCounts := []int64{3, 2, 1, 1, 0}

	for i, entry := range result.MostRequested {
		assert.Equal(t, wantIDs[i], entry.ID, "position %d", i)
		assert.Equal(t, wantCounts[i], entry.RequestCount, "position %d", i)
	}
}

func TestGetHomeEmptyCatalog(t *testing.T) {
	env := newFlowEnv(t)
	flow := env.homeFlow()

	result, err := flow.GetHome(testingutil.CreateTestContext())
	require.NoError(t, err)
	assert.Empty(t, result.MostRequested)
}
