package businessflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/netfix-app/netfix/app/services"
	"github.com/netfix-app/netfix/repository"
	testingutil "github.com/netfix-app/netfix/testing"
)

// flowEnv bundles a throwaway database with the repositories and services the
// flows are built on. Tests that need Postgres are skipped when it is not
// reachable.
type flowEnv struct {
	db       *gorm.DB
	fixtures *testingutil.TestFixtures

	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerProfileRepository
	companyRepo  repository.CompanyProfileRepository
	serviceRepo  repository.ServiceRepository
	requestRepo  repository.ServiceRequestRepository
	sessionRepo  repository.AccountSessionRepository
	tokenService services.TokenService
}

func newFlowEnv(t *testing.T) *flowEnv {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = testDB.TeardownTestDB()
	})

	tokenService, err := services.NewTokenService(
		time.Hour, 24*time.Hour, "netfix-test", "netfix-api",
		false, "", "", "test-secret-key-0123456789abcdef0123456789abcdef",
	)
	require.NoError(t, err)

	return &flowEnv{
		db:           testDB.DB,
		fixtures:     testingutil.NewTestFixtures(testDB),
		accountRepo:  repository.NewAccountRepository(testDB.DB),
		customerRepo: repository.NewCustomerProfileRepository(testDB.DB),
		companyRepo:  repository.NewCompanyProfileRepository(testDB.DB),
		serviceRepo:  repository.NewServiceRepository(testDB.DB),
		requestRepo:  repository.NewServiceRequestRepository(testDB.DB),
		sessionRepo:  repository.NewAccountSessionRepository(testDB.DB),
		tokenService: tokenService,
	}
}

func (e *flowEnv) signupFlow() SignupFlow {
	return NewSignupFlow(e.accountRepo, e.customerRepo, e.companyRepo, e.sessionRepo, e.tokenService, e.db)
}

func (e *flowEnv) loginFlow() LoginFlow {
	return NewLoginFlow(e.accountRepo, e.sessionRepo, e.tokenService, e.db)
}

func (e *flowEnv) catalogFlow() CatalogFlow {
	return NewCatalogFlow(e.accountRepo, e.companyRepo, e.serviceRepo, e.db)
}

func (e *flowEnv) requestFlow() RequestFlow {
	return NewRequestFlow(e.accountRepo, e.customerRepo, e.serviceRepo, e.requestRepo, e.db, nil, nil)
}

func (e *flowEnv) profileFlow() ProfileFlow {
	return NewProfileFlow(e.accountRepo, e.customerRepo, e.companyRepo, e.serviceRepo, e.requestRepo)
}

func (e *flowEnv) homeFlow() HomeFlow {
	return NewHomeFlow(e.serviceRepo, nil, nil)
}

func testMetadata() *ClientMetadata {
	return NewClientMetadata("127.0.0.1", "flow-test")
}
