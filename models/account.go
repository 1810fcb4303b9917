// Package models contains domain entities and business models for the service marketplace
package models

import (
	"time"

	"github.com/google/uuid"
)

// Account role constants
const (
	RoleCompany  = "company"
	RoleCustomer = "customer"
)

// Account is the authenticatable identity record. The role is a single
// enumerated value, so an account is always exactly one of company or
// customer.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UUID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_accounts_uuid" json:"uuid"`
	Username     string    `gorm:"size:150;not null;uniqueIndex:uk_accounts_username" json:"username"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uk_accounts_email" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"` // Never serialize password hash
	Role         string    `gorm:"size:20;not null;index:idx_accounts_role" json:"role"`

	IsActive *bool `gorm:"default:true;index:idx_accounts_is_active" json:"is_active"`

	CreatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP;index:idx_accounts_created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
	LastLoginAt *time.Time `gorm:"index:idx_accounts_last_login_at" json:"last_login_at,omitempty"`

	// Relations
	CustomerProfile *CustomerProfile `gorm:"foreignKey:AccountID" json:"customer_profile,omitempty"`
	CompanyProfile  *CompanyProfile  `gorm:"foreignKey:AccountID" json:"company_profile,omitempty"`
	Sessions        []AccountSession `gorm:"foreignKey:AccountID" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}

// AccountFilter represents filter criteria for account queries
type AccountFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	Username      *string
	Email         *string
	Role          *string
	IsActive      *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func (a *Account) IsCompany() bool {
	return a.Role == RoleCompany
}

func (a *Account) IsCustomer() bool {
	return a.Role == RoleCustomer
}
