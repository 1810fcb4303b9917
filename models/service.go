// Package models contains domain entities and business models for the service marketplace
package models

import (
	"time"
)

// Service is a priced, categorized offering published by a company.
type Service struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanyID   uint           `gorm:"not null;index:idx_services_company_id" json:"company_id"`
	Company     CompanyProfile `gorm:"foreignKey:CompanyID;references:AccountID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	Name        string         `gorm:"size:40;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	PriceHour   float64        `gorm:"type:numeric(7,2);not null;check:price_hour >= 0" json:"price_hour"`
	Rating      int            `gorm:"not null;default:0;check:rating >= 0 AND rating <= 5" json:"rating"`
	Category    Category       `gorm:"size:30;not null;index:idx_services_category" json:"category"`

	// LastModified is refreshed by GORM on every save; catalog listings are
	// ordered newest-first on it.
	LastModified time.Time `gorm:"autoUpdateTime;index:idx_services_last_modified" json:"last_modified"`

	// Relations
	Requests []ServiceRequest `gorm:"foreignKey:ServiceID" json:"-"`
}

func (Service) TableName() string {
	return "services"
}

// ServiceFilter represents filter criteria for service queries
type ServiceFilter struct {
	ID        *uint
	CompanyID *uint
	Category  *Category
	Name      *string
}

// RequestedService pairs a service with its request count for the
// most-requested ranking on the home view.
type RequestedService struct {
	Service
	RequestCount int64 `json:"request_count"`
}
