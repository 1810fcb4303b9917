// Package models contains domain entities and business models for the service marketplace
package models

import (
	"time"
)

// Service request status constants. ACCEPTED, REJECTED and COMPLETED exist in
// the vocabulary but no operation transitions a request out of PENDING.
const (
	RequestStatusPending   = "PENDING"
	RequestStatusAccepted  = "ACCEPTED"
	RequestStatusRejected  = "REJECTED"
	RequestStatusCompleted = "COMPLETED"
)

// ServiceRequest is a customer's booking against a service. Price is computed
// once at creation from the service's hourly rate and is never recomputed,
// even if the service is repriced later.
type ServiceRequest struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CustomerID uint            `gorm:"not null;index:idx_service_requests_customer_id" json:"customer_id"`
	Customer   CustomerProfile `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	ServiceID  uint            `gorm:"not null;index:idx_service_requests_service_id" json:"service_id"`
	Service    Service         `gorm:"foreignKey:ServiceID;references:ID;constraint:OnDelete:CASCADE" json:"service,omitempty"`

	Hours    int     `gorm:"not null;default:1;check:hours > 0" json:"hours"`
	Location string  `gorm:"size:255;not null" json:"location"`
	Price    float64 `gorm:"type:numeric(10,2);not null" json:"price"`
	Notes    *string `gorm:"type:text" json:"notes,omitempty"`
	Status   string  `gorm:"size:20;not null;default:'PENDING';index:idx_service_requests_status" json:"status"`

	RequestedAt time.Time `gorm:"autoCreateTime;index:idx_service_requests_requested_at" json:"requested_at"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}

// ServiceRequestFilter represents filter criteria for service request queries
type ServiceRequestFilter struct {
	ID         *uint
	CustomerID *uint
	ServiceID  *uint
	Status     *string
}
