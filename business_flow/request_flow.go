// Package businessflow contains the core business logic and use cases for the service marketplace
package businessflow

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/config"
	"github.com/netfix-app/netfix/models"
	"github.com/netfix-app/netfix/repository"
	"github.com/netfix-app/netfix/utils"
)

var serviceRequestsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "service_requests_created_total",
	Help: "Total number of service requests placed",
})

// RequestFlow handles placing service requests
type RequestFlow interface {
	RequestService(ctx context.Context, accountID, serviceID uint, req *dto.CreateServiceRequestRequest) (*dto.CreateServiceRequestResponse, error)
}

// RequestFlowImpl implements the service request business flow
type RequestFlowImpl struct {
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerProfileRepository
	serviceRepo  repository.ServiceRepository
	requestRepo  repository.ServiceRequestRepository
	db           *gorm.DB
	rc           *redis.Client
	cacheConfig  *config.CacheConfig
}

// NewRequestFlow creates a new request flow instance
func NewRequestFlow(
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerProfileRepository,
	serviceRepo repository.ServiceRepository,
	requestRepo repository.ServiceRequestRepository,
	db *gorm.DB,
	rc *redis.Client,
	cacheConfig *config.CacheConfig,
) RequestFlow {
	return &RequestFlowImpl{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		requestRepo:  requestRepo,
		db:           db,
		rc:           rc,
		cacheConfig:  cacheConfig,
	}
}

// RequestService places a request against a service. The total price is
// computed from the hourly rate at request time and stored on the request, so
// later rate changes never alter what was quoted.
func (r *RequestFlowImpl) RequestService(ctx context.Context, accountID, serviceID uint, req *dto.CreateServiceRequestRequest) (*dto.CreateServiceRequestResponse, error) {
	account, err := r.accountRepo.ByID(ctx, accountID)
	if err != nil {
		return nil, NewBusinessError("SERVICE_REQUEST_FAILED", "Service request failed", err)
	}
	if account == nil {
		return nil, NewBusinessError("SERVICE_REQUEST_FAILED", "Service request failed", ErrAccountNotFound)
	}
	if !account.IsCustomer() {
		return nil, NewBusinessError("SERVICE_REQUEST_FAILED", "Service request failed", ErrNotACustomer)
	}

	customer, err := r.customerRepo.ByAccountID(ctx, accountID)
	if err != nil {
		return nil, NewBusinessError("SERVICE_REQUEST_FAILED", "Service request failed", err)
	}
	if customer == nil {
		return nil, NewBusinessError("SERVICE_REQUEST_FAILED", "Service request failed", ErrCustomerProfileNotFound)
	}

	service, err := r.serviceRepo.ByID(ctx, serviceID)
	if err != nil {
		return nil, NewBusinessError("SERVICE_REQUEST_FAILED", "Service request failed", err)
	}
	if service == nil {
		return nil, NewBusinessError("SERVICE_REQUEST_FAILED", "Service request failed", ErrServiceNotFound)
	}

	request := &models.ServiceRequest{
		CustomerID: customer.ID,
		ServiceID:  service.ID,
		Hours:      req.Hours,
		Location:   req.Location,
		Price:      service.PriceHour * float64(req.Hours),
		Notes:      req.Notes,
		Status:     models.RequestStatusPending,
	}

	err = repository.WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		return r.requestRepo.Save(txCtx, request)
	})
	if err != nil {
		return nil, NewBusinessError("SERVICE_REQUEST_FAILED", "Service request failed", err)
	}

	serviceRequestsCreated.Inc()

	// Evict the cached landing-page ranking so the new demand shows up
	// before the TTL would expire.
	if r.rc != nil {
		_ = r.rc.Del(ctx, redisKey(r.cacheConfig, utils.MostRequestedCacheKey)).Err()
	}

	out := ToServiceRequestDTO(*request)
	out.ServiceName = service.Name

	return &dto.CreateServiceRequestResponse{
		Message: fmt.Sprintf("Requested %q for %d hour(s) at %.2f per hour, total %.2f",
			service.Name, request.Hours, service.PriceHour, request.Price),
		Request: out,
	}, nil
}
