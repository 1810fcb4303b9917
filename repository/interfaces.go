// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/netfix-app/netfix/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// AccountRepository defines operations for accounts
type AccountRepository interface {
	Repository[models.Account, models.AccountFilter]
	ByEmail(ctx context.Context, email string) (*models.Account, error)
	ByUsername(ctx context.Context, username string) (*models.Account, error)
	UpdateLastLogin(ctx context.Context, accountID uint) error
}

// CustomerProfileRepository defines operations for customer profiles
type CustomerProfileRepository interface {
	Repository[models.CustomerProfile, models.CustomerProfileFilter]
	ByAccountID(ctx context.Context, accountID uint) (*models.CustomerProfile, error)
}

// CompanyProfileRepository defines operations for company profiles
type CompanyProfileRepository interface {
	Repository[models.CompanyProfile, models.CompanyProfileFilter]
	ByAccountID(ctx context.Context, accountID uint) (*models.CompanyProfile, error)
}

// ServiceRepository defines operations for service listings
type ServiceRepository interface {
	Repository[models.Service, models.ServiceFilter]
	ListCatalog(ctx context.Context, limit, offset int) ([]*models.Service, error)
	ListByCategory(ctx context.Context, category models.Category) ([]*models.Service, error)
	ListByCompany(ctx context.Context, companyID uint) ([]*models.Service, error)
	MostRequested(ctx context.Context, limit int) ([]*models.RequestedService, error)
	UpdatePriceHour(ctx context.Context, serviceID uint, priceHour float64) error
}

// ServiceRequestRepository defines operations for service requests
type ServiceRequestRepository interface {
	Repository[models.ServiceRequest, models.ServiceRequestFilter]
	ListByCustomer(ctx context.Context, customerID uint) ([]*models.ServiceRequest, error)
}

// AccountSessionRepository defines operations for account sessions
type AccountSessionRepository interface {
	Repository[models.AccountSession, models.AccountSessionFilter]
	BySessionToken(ctx context.Context, token string) (*models.AccountSession, error)
	ExpireSession(ctx context.Context, sessionID uint) error
}
