// Package businessflow contains the core business logic and use cases for the service marketplace
package businessflow

import (
	"context"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/repository"
	"github.com/netfix-app/netfix/utils"
)

// ProfileFlow handles public profile pages
type ProfileFlow interface {
	GetCustomerProfile(ctx context.Context, username string) (*dto.CustomerProfileResponse, error)
	GetCompanyProfile(ctx context.Context, username string) (*dto.CompanyProfileResponse, error)
}

// ProfileFlowImpl implements the profile business flow
type ProfileFlowImpl struct {
	accountRepo  repository.AccountRepository
	customerRepo repository.CustomerProfileRepository
	companyRepo  repository.CompanyProfileRepository
	serviceRepo  repository.ServiceRepository
	requestRepo  repository.ServiceRequestRepository
}

// NewProfileFlow creates a new profile flow instance
func NewProfileFlow(
	accountRepo repository.AccountRepository,
	customerRepo repository.CustomerProfileRepository,
	companyRepo repository.CompanyProfileRepository,
	serviceRepo repository.ServiceRepository,
	requestRepo repository.ServiceRequestRepository,
) ProfileFlow {
	return &ProfileFlowImpl{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		serviceRepo:  serviceRepo,
		requestRepo:  requestRepo,
	}
}

// GetCustomerProfile returns a customer's profile page with their request
// history, newest-first. A company username resolves to not-found here rather
// than leaking the wrong profile kind.
func (p *ProfileFlowImpl) GetCustomerProfile(ctx context.Context, username string) (*dto.CustomerProfileResponse, error) {
	account, err := p.accountRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", err)
	}
	if account == nil || !account.IsCustomer() {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", ErrCustomerProfileNotFound)
	}

	profile, err := p.customerRepo.ByAccountID(ctx, account.ID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", err)
	}
	if profile == nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", ErrCustomerProfileNotFound)
	}

	requests, err := p.requestRepo.ListByCustomer(ctx, profile.ID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", err)
	}

	history := make([]dto.ServiceRequestDTO, 0, len(requests))
	for _, req := range requests {
		history = append(history, ToServiceRequestDTO(*req))
	}

	return &dto.CustomerProfileResponse{
		Account:   ToAccountDTO(*account),
		BirthDate: profile.BirthDate.Format("2006-01-02"),
		Age:       profile.Age(utils.Today()),
		Requests:  history,
	}, nil
}

// GetCompanyProfile returns a company's profile page with its service
// catalog, newest-first.
func (p *ProfileFlowImpl) GetCompanyProfile(ctx context.Context, username string) (*dto.CompanyProfileResponse, error) {
	account, err := p.accountRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", err)
	}
	if account == nil || !account.IsCompany() {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", ErrCompanyProfileNotFound)
	}

	profile, err := p.companyRepo.ByAccountID(ctx, account.ID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", err)
	}
	if profile == nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", ErrCompanyProfileNotFound)
	}

	services, err := p.serviceRepo.ListByCompany(ctx, profile.AccountID)
	if err != nil {
		return nil, NewBusinessError("PROFILE_LOOKUP_FAILED", "Profile lookup failed", err)
	}

	return &dto.CompanyProfileResponse{
		Account:  ToAccountDTO(*account),
		Category: profile.Category.String(),
		Rating:   profile.Rating,
		Services: ToServiceDTOs(services),
	}, nil
}
