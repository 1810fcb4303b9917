// Package models contains domain entities and business models for the service marketplace
package models

import (
	"time"
)

// CustomerProfile is the customer-side extension of an account. It is created
// in the same transaction as the account and cascade-deleted with it.
type CustomerProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"not null;uniqueIndex:uk_customer_profiles_account_id" json:"account_id"`
	Account   Account   `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE" json:"account,omitempty"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ServiceRequests []ServiceRequest `gorm:"foreignKey:CustomerID" json:"-"`
}

func (CustomerProfile) TableName() string {
	return "customer_profiles"
}

// CustomerProfileFilter represents filter criteria for customer profile queries
type CustomerProfileFilter struct {
	ID        *uint
	AccountID *uint
}

// Age returns the customer's age in whole years at the given date: the
// calendar-year difference, minus one when the birthday has not yet been
// reached that year.
func (p *CustomerProfile) Age(at time.Time) int {
	age := at.Year() - p.BirthDate.Year()
	if at.Month() < p.BirthDate.Month() ||
		(at.Month() == p.BirthDate.Month() && at.Day() < p.BirthDate.Day()) {
		age--
	}
	return age
}

// CompanyProfile is the company-side extension of an account. The account
// reference doubles as the primary key, mirroring the strict one-to-one
// relation.
type CompanyProfile struct {
	AccountID uint     `gorm:"primaryKey" json:"account_id"`
	Account   Account  `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE" json:"account,omitempty"`
	Category  Category `gorm:"size:70;not null;default:'All in One';index:idx_company_profiles_category" json:"category"`
	Rating    int      `gorm:"not null;default:0;check:rating >= 0 AND rating <= 5" json:"rating"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	Services []Service `gorm:"foreignKey:CompanyID" json:"-"`
}

func (CompanyProfile) TableName() string {
	return "company_profiles"
}

// CompanyProfileFilter represents filter criteria for company profile queries
type CompanyProfileFilter struct {
	AccountID *uint
	Category  *Category
}

// IsAllInOne reports whether the company may list services in any category.
// Derived from the category rather than stored, so the two can never disagree.
func (p *CompanyProfile) IsAllInOne() bool {
	return p.Category == CategoryAllInOne
}

// AllowedServiceCategories returns the service category choice set this
// company is authorized to use: every concrete trade for an all-in-one
// company, otherwise only its own declared category.
func (p *CompanyProfile) AllowedServiceCategories() []Category {
	if p.IsAllInOne() {
		return ServiceCategories
	}
	return []Category{p.Category}
}
