// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/netfix-app/netfix/models"
)

// CustomerProfileRepositoryImpl implements CustomerProfileRepository interface
type CustomerProfileRepositoryImpl struct {
	*BaseRepository[models.CustomerProfile, models.CustomerProfileFilter]
}

// NewCustomerProfileRepository creates a new customer profile repository
func NewCustomerProfileRepository(db *gorm.DB) CustomerProfileRepository {
	return &CustomerProfileRepositoryImpl{
		BaseRepository: NewBaseRepository[models.CustomerProfile, models.CustomerProfileFilter](db),
	}
}

// ByFilter retrieves customer profiles based on filter criteria
func (r *CustomerProfileRepositoryImpl) ByFilter(ctx context.Context, filter models.CustomerProfileFilter, orderBy string, limit, offset int) ([]*models.CustomerProfile, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.CustomerProfile{})

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}

	if orderBy == "" {
		orderBy = "id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var profiles []*models.CustomerProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to find customer profiles by filter: %w", err)
	}

	return profiles, nil
}

// Count returns the number of customer profiles matching the filter
func (r *CustomerProfileRepositoryImpl) Count(ctx context.Context, filter models.CustomerProfileFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.CustomerProfile{})

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customer profiles: %w", err)
	}

	return count, nil
}

// Exists checks if any customer profile matching the filter exists
func (r *CustomerProfileRepositoryImpl) Exists(ctx context.Context, filter models.CustomerProfileFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ByAccountID retrieves the customer profile owned by the given account
func (r *CustomerProfileRepositoryImpl) ByAccountID(ctx context.Context, accountID uint) (*models.CustomerProfile, error) {
	filter := models.CustomerProfileFilter{AccountID: &accountID}
	profiles, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer profile by account: %w", err)
	}

	if len(profiles) == 0 {
		return nil, nil
	}

	return profiles[0], nil
}

// CompanyProfileRepositoryImpl implements CompanyProfileRepository interface
type CompanyProfileRepositoryImpl struct {
	*BaseRepository[models.CompanyProfile, models.CompanyProfileFilter]
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *gorm.DB) CompanyProfileRepository {
	return &CompanyProfileRepositoryImpl{
		BaseRepository: NewBaseRepository[models.CompanyProfile, models.CompanyProfileFilter](db),
	}
}

// ByID retrieves a company profile by its account ID (the primary key).
func (r *CompanyProfileRepositoryImpl) ByID(ctx context.Context, id uint) (*models.CompanyProfile, error) {
	return r.ByAccountID(ctx, id)
}

// ByFilter retrieves company profiles based on filter criteria
func (r *CompanyProfileRepositoryImpl) ByFilter(ctx context.Context, filter models.CompanyProfileFilter, orderBy string, limit, offset int) ([]*models.CompanyProfile, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.CompanyProfile{})

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	if orderBy == "" {
		orderBy = "account_id DESC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var profiles []*models.CompanyProfile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to find company profiles by filter: %w", err)
	}

	return profiles, nil
}

// Count returns the number of company profiles matching the filter
func (r *CompanyProfileRepositoryImpl) Count(ctx context.Context, filter models.CompanyProfileFilter) (int64, error) {
	db := r.getDB(ctx)
	query := db.Model(&models.CompanyProfile{})

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count company profiles: %w", err)
	}

	return count, nil
}

// Exists checks if any company profile matching the filter exists
func (r *CompanyProfileRepositoryImpl) Exists(ctx context.Context, filter models.CompanyProfileFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ByAccountID retrieves the company profile owned by the given account
func (r *CompanyProfileRepositoryImpl) ByAccountID(ctx context.Context, accountID uint) (*models.CompanyProfile, error) {
	filter := models.CompanyProfileFilter{AccountID: &accountID}
	profiles, err := r.ByFilter(ctx, filter, "", 1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find company profile by account: %w", err)
	}

	if len(profiles) == 0 {
		return nil, nil
	}

	return profiles[0], nil
}
