// Package dto contains Data Transfer Objects for API requests and responses
package dto

import "time"

// CreateServiceRequestRequest represents the payload for requesting a service
type CreateServiceRequestRequest struct {
	Hours    int     `json:"hours" validate:"required,gte=1,lte=24"`
	Location string  `json:"location" validate:"required,max=255"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// ServiceRequestDTO represents service request data for API responses
type ServiceRequestDTO struct {
	ID          uint      `json:"id"`
	CustomerID  uint      `json:"customer_id"`
	ServiceID   uint      `json:"service_id"`
	ServiceName string    `json:"service_name,omitempty"`
	Hours       int       `json:"hours"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Notes       *string   `json:"notes,omitempty"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

// CreateServiceRequestResponse confirms a placed request with its frozen price
type CreateServiceRequestResponse struct {
	Message string            `json:"message"`
	Request ServiceRequestDTO `json:"request"`
}
