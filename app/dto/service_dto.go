// Package dto contains Data Transfer Objects for API requests and responses
package dto

import "time"

// CreateServiceRequest represents the payload for publishing a new service
type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,max=40"`
	Description string  `json:"description" validate:"required"`
	PriceHour   float64 `json:"price_hour" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,max=30"`
}

// ServiceDTO represents service data for API responses
type ServiceDTO struct {
	ID           uint      `json:"id"`
	CompanyID    uint      `json:"company_id"`
	CompanyName  string    `json:"company_name,omitempty"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	PriceHour    float64   `json:"price_hour"`
	Rating       int       `json:"rating"`
	Category     string    `json:"category"`
	LastModified time.Time `json:"last_modified"`
}

// ServiceListResponse represents a page of the service catalog
type ServiceListResponse struct {
	Services []ServiceDTO `json:"services"`
	Total    int64        `json:"total"`
}

// MostRequestedServiceDTO represents a service ranked by demand
type MostRequestedServiceDTO struct {
	ServiceDTO
	RequestCount int64 `json:"request_count"`
}

// HomeResponse represents the landing page payload
type HomeResponse struct {
	MostRequested []MostRequestedServiceDTO `json:"most_requested"`
}

// Common error codes for catalog operations
const (
	ErrorServiceNotFound       = "SERVICE_NOT_FOUND"
	ErrorCategoryNotAuthorized = "CATEGORY_NOT_AUTHORIZED"
	ErrorNotACompany           = "NOT_A_COMPANY"
	ErrorNotACustomer          = "NOT_A_CUSTOMER"
)
