// Package businessflow contains the core business logic and use cases for the service marketplace
package businessflow

import (
	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/models"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information for session tracking
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToAccountDTO converts an account model to its API representation
func ToAccountDTO(account models.Account) dto.AccountDTO {
	return dto.AccountDTO{
		ID:        account.ID,
		UUID:      account.UUID.String(),
		Username:  account.Username,
		Email:     account.Email,
		Role:      account.Role,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
	}
}

// ToServiceDTO converts a service model to its API representation
func ToServiceDTO(service models.Service) dto.ServiceDTO {
	return dto.ServiceDTO{
		ID:           service.ID,
		CompanyID:    service.CompanyID,
		Name:         service.Name,
		Description:  service.Description,
		PriceHour:    service.PriceHour,
		Rating:       service.Rating,
		Category:     service.Category.String(),
		LastModified: service.LastModified,
	}
}

// ToServiceDTOs converts a slice of service models
func ToServiceDTOs(services []*models.Service) []dto.ServiceDTO {
	out := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, ToServiceDTO(*s))
	}
	return out
}

// ToServiceRequestDTO converts a service request model to its API representation
func ToServiceRequestDTO(req models.ServiceRequest) dto.ServiceRequestDTO {
	out := dto.ServiceRequestDTO{
		ID:          req.ID,
		CustomerID:  req.CustomerID,
		ServiceID:   req.ServiceID,
		Hours:       req.Hours,
		Location:    req.Location,
		Price:       req.Price,
		Notes:       req.Notes,
		Status:      req.Status,
		RequestedAt: req.RequestedAt,
	}
	if req.Service.ID != 0 {
		out.ServiceName = req.Service.Name
	}
	return out
}
