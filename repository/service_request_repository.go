// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/netfix-app/netfix/models"
)

// ServiceRequestRepositoryImpl implements ServiceRequestRepository interface
type ServiceRequestRepositoryImpl struct {
	*BaseRepository[models.ServiceRequest, models.ServiceRequestFilter]
}

// NewServiceRequestRepository creates a new service request repository
func NewServiceRequestRepository(db *gorm.DB) ServiceRequestRepository {
	return &ServiceRequestRepositoryImpl{
		BaseRepository: NewBaseRepository[models.ServiceRequest, models.ServiceRequestFilter](db),
	}
}

// ByFilter retrieves service requests based on filter criteria
func (r *ServiceRequestRepositoryImpl) ByFilter(ctx context.Context, filter models.ServiceRequestFilter, orderBy string, limit, offset int) ([]*models.ServiceRequest, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.ServiceRequest{})

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	if filter.ServiceID != nil {
		query = query.Where("service_id = ?", *filter.ServiceID)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	// Apply ordering (default to newest-first)
	if orderBy == "" {
		orderBy = "requested_at DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var requests []*models.ServiceRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to find service requests by filter: %w", err)
	}

	return requests, nil
}

// Count returns the number of service requests matching the filter
func (r *ServiceRequestRepositoryImpl) Count(ctx context.Context, filter models.ServiceRequestFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.ServiceRequest{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.ServiceID != nil {
		query = query.Where("service_id = ?", *filter.ServiceID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count service requests: %w", err)
	}

	return count, nil
}

// Exists checks if any service request matching the filter exists
func (r *ServiceRequestRepositoryImpl) Exists(ctx context.Context, filter models.ServiceRequestFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListByCustomer retrieves a customer's request history, newest-first
func (r *ServiceRequestRepositoryImpl) ListByCustomer(ctx context.Context, customerID uint) ([]*models.ServiceRequest, error) {
	db := r.getDB(ctx)

	var requests []*models.ServiceRequest
	err := db.Where("customer_id = ?", customerID).
		Order("requested_at DESC").
		Preload("Service").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests by customer: %w", err)
	}

	return requests, nil
}
