// Package dto contains Data Transfer Objects for API requests and responses
package dto

// CustomerProfileResponse represents a customer's public profile page
type CustomerProfileResponse struct {
	Account   AccountDTO          `json:"account"`
	BirthDate string              `json:"birth_date"`
	Age       int                 `json:"age"`
	Requests  []ServiceRequestDTO `json:"requests"`
}

// CompanyProfileResponse represents a company's public profile page
type CompanyProfileResponse struct {
	Account  AccountDTO   `json:"account"`
	Category string       `json:"category"`
	Rating   int          `json:"rating"`
	Services []ServiceDTO `json:"services"`
}

// Common error codes for profile operations
const (
	ErrorCustomerProfileNotFound = "CUSTOMER_PROFILE_NOT_FOUND"
	ErrorCompanyProfileNotFound  = "COMPANY_PROFILE_NOT_FOUND"
)
