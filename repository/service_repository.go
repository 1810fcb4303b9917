// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/netfix-app/netfix/models"
)

// ServiceRepositoryImpl implements ServiceRepository interface
type ServiceRepositoryImpl struct {
	*BaseRepository[models.Service, models.ServiceFilter]
}

// NewServiceRepository creates a new service repository
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &ServiceRepositoryImpl{
		BaseRepository: NewBaseRepository[models.Service, models.ServiceFilter](db),
	}
}

// ByFilter retrieves services based on filter criteria
func (r *ServiceRepositoryImpl) ByFilter(ctx context.Context, filter models.ServiceFilter, orderBy string, limit, offset int) ([]*models.Service, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Service{})

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}

	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if filter.Name != nil {
		query = query.Where("name = ?", *filter.Name)
	}

	// Apply ordering (default to newest-first by modification time)
	if orderBy == "" {
		orderBy = "last_modified DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var services []*models.Service
	if err := query.Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to find services by filter: %w", err)
	}

	return services, nil
}

// Count returns the number of services matching the filter
func (r *ServiceRepositoryImpl) Count(ctx context.Context, filter models.ServiceFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.Service{})

	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}

	return count, nil
}

// Exists checks if any service matching the filter exists
func (r *ServiceRepositoryImpl) Exists(ctx context.Context, filter models.ServiceFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListCatalog retrieves the full catalog, newest-first by modification time
func (r *ServiceRepositoryImpl) ListCatalog(ctx context.Context, limit, offset int) ([]*models.Service, error) {
	return r.ByFilter(ctx, models.ServiceFilter{}, "last_modified DESC", limit, offset)
}

// ListByCategory retrieves all services in the given category, newest-first
func (r *ServiceRepositoryImpl) ListByCategory(ctx context.Context, category models.Category) ([]*models.Service, error) {
	return r.ByFilter(ctx, models.ServiceFilter{Category: &category}, "last_modified DESC", 0, 0)
}

// ListByCompany retrieves a company's catalog, newest-first
func (r *ServiceRepositoryImpl) ListByCompany(ctx context.Context, companyID uint) ([]*models.Service, error) {
	return r.ByFilter(ctx, models.ServiceFilter{CompanyID: &companyID}, "last_modified DESC", 0, 0)
}

// MostRequested ranks services by their request count, descending. Ties are
// broken by modification time, newest first.
func (r *ServiceRepositoryImpl) MostRequested(ctx context.Context, limit int) ([]*models.RequestedService, error) {
	db := r.getDB(ctx)

	var ranked []*models.RequestedService
	err := db.Model(&models.Service{}).
		Select("services.*, COUNT(service_requests.id) AS request_count").
		Joins("LEFT JOIN service_requests ON service_requests.service_id = services.id").
		Group("services.id").
		Order("request_count DESC, services.last_modified DESC").
		Limit(limit).
		Find(&ranked).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank most requested services: %w", err)
	}

	return ranked, nil
}

// UpdatePriceHour changes a service's hourly rate. Existing requests keep
// their frozen price.
func (r *ServiceRepositoryImpl) UpdatePriceHour(ctx context.Context, serviceID uint, priceHour float64) error {
	db := r.getDB(ctx)

	err := db.Model(&models.Service{}).
		Where("id = ?", serviceID).
		Update("price_hour", priceHour).Error
	if err != nil {
		return fmt.Errorf("failed to update price for service %d: %w", serviceID, err)
	}

	return nil
}
