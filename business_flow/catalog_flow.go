// Package businessflow contains the core business logic and use cases for the service marketplace
package businessflow

import (
	"context"

	"gorm.io/gorm"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/models"
	"github.com/netfix-app/netfix/repository"
)

// CatalogFlow handles service publication and catalog browsing
type CatalogFlow interface {
	CreateService(ctx context.Context, accountID uint, req *dto.CreateServiceRequest) (*dto.ServiceDTO, error)
	ListServices(ctx context.Context, limit, offset int) (*dto.ServiceListResponse, error)
	GetService(ctx context.Context, serviceID uint) (*dto.ServiceDTO, error)
	ListServicesByField(ctx context.Context, fieldSlug string) (*dto.ServiceListResponse, error)
}

// CatalogFlowImpl implements the catalog business flow
type CatalogFlowImpl struct {
	accountRepo repository.AccountRepository
	companyRepo repository.CompanyProfileRepository
	serviceRepo repository.ServiceRepository
	db          *gorm.DB
}

// NewCatalogFlow creates a new catalog flow instance
func NewCatalogFlow(
	accountRepo repository.AccountRepository,
	companyRepo repository.CompanyProfileRepository,
	serviceRepo repository.ServiceRepository,
	db *gorm.DB,
) CatalogFlow {
	return &CatalogFlowImpl{
		accountRepo: accountRepo,
		companyRepo: companyRepo,
		serviceRepo: serviceRepo,
		db:          db,
	}
}

// CreateService publishes a new service under the calling company. The
// category must be one the company's declared specialty authorizes: any
// concrete trade for an all-in-one company, only its own trade otherwise.
func (c *CatalogFlowImpl) CreateService(ctx context.Context, accountID uint, req *dto.CreateServiceRequest) (*dto.ServiceDTO, error) {
	account, err := c.accountRepo.ByID(ctx, accountID)
	if err != nil {
		return nil, NewBusinessError("SERVICE_CREATION_FAILED", "Service creation failed", err)
	}
	if account == nil {
		return nil, NewBusinessError("SERVICE_CREATION_FAILED", "Service creation failed", ErrAccountNotFound)
	}
	if !account.IsCompany() {
		return nil, NewBusinessError("SERVICE_CREATION_FAILED", "Service creation failed", ErrNotACompany)
	}

	company, err := c.companyRepo.ByAccountID(ctx, accountID)
	if err != nil {
		return nil, NewBusinessError("SERVICE_CREATION_FAILED", "Service creation failed", err)
	}
	if company == nil {
		return nil, NewBusinessError("SERVICE_CREATION_FAILED", "Service creation failed", ErrCompanyProfileNotFound)
	}

	category := models.Category(req.Category)
	if !models.IsValidServiceCategory(category) {
		return nil, NewBusinessError("SERVICE_CREATION_FAILED", "Service creation failed", ErrInvalidCategory)
	}
	if !c.isAuthorizedCategory(company, category) {
		return nil, NewBusinessError("SERVICE_CREATION_FAILED", "Service creation failed", ErrCategoryNotAuthorized)
	}

	service := &models.Service{
		CompanyID:   company.AccountID,
		Name:        req.Name,
		Description: req.Description,
		PriceHour:   req.PriceHour,
		Category:    category,
	}

	err = repository.WithTransaction(ctx, c.db, func(txCtx context.Context) error {
		return c.serviceRepo.Save(txCtx, service)
	})
	if err != nil {
		return nil, NewBusinessError("SERVICE_CREATION_FAILED", "Service creation failed", err)
	}

	out := ToServiceDTO(*service)
	out.CompanyName = account.Username
	return &out, nil
}

// ListServices returns the catalog ordered newest-first by modification time.
func (c *CatalogFlowImpl) ListServices(ctx context.Context, limit, offset int) (*dto.ServiceListResponse, error) {
	services, err := c.serviceRepo.ListCatalog(ctx, limit, offset)
	if err != nil {
		return nil, NewBusinessError("CATALOG_LISTING_FAILED", "Catalog listing failed", err)
	}

	total, err := c.serviceRepo.Count(ctx, models.ServiceFilter{})
	if err != nil {
		return nil, NewBusinessError("CATALOG_LISTING_FAILED", "Catalog listing failed", err)
	}

	return &dto.ServiceListResponse{
		Services: ToServiceDTOs(services),
		Total:    total,
	}, nil
}

// GetService returns a single service detail page.
func (c *CatalogFlowImpl) GetService(ctx context.Context, serviceID uint) (*dto.ServiceDTO, error) {
	service, err := c.serviceRepo.ByID(ctx, serviceID)
	if err != nil {
		return nil, NewBusinessError("SERVICE_LOOKUP_FAILED", "Service lookup failed", err)
	}
	if service == nil {
		return nil, NewBusinessError("SERVICE_LOOKUP_FAILED", "Service lookup failed", ErrServiceNotFound)
	}

	out := ToServiceDTO(*service)

	account, err := c.accountRepo.ByID(ctx, service.CompanyID)
	if err != nil {
		return nil, NewBusinessError("SERVICE_LOOKUP_FAILED", "Service lookup failed", err)
	}
	if account != nil {
		out.CompanyName = account.Username
	}

	return &out, nil
}

// ListServicesByField returns all services in one category. The field slug
// arrives hyphenated and lowercase and is normalized to the display name
// before matching.
func (c *CatalogFlowImpl) ListServicesByField(ctx context.Context, fieldSlug string) (*dto.ServiceListResponse, error) {
	category := models.NormalizeCategorySlug(fieldSlug)
	if !models.IsValidServiceCategory(category) {
		return nil, NewBusinessError("CATALOG_LISTING_FAILED", "Catalog listing failed", ErrInvalidCategory)
	}

	services, err := c.serviceRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, NewBusinessError("CATALOG_LISTING_FAILED", "Catalog listing failed", err)
	}

	return &dto.ServiceListResponse{
		Services: ToServiceDTOs(services),
		Total:    int64(len(services)),
	}, nil
}

func (c *CatalogFlowImpl) isAuthorizedCategory(company *models.CompanyProfile, category models.Category) bool {
	for _, allowed := range company.AllowedServiceCategories() {
		if allowed == category {
			return true
		}
	}
	return false
}
