// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"

	"github.com/netfix-app/netfix/app/dto"
	"github.com/netfix-app/netfix/app/middleware"
	businessflow "github.com/netfix-app/netfix/business_flow"
)

// ServiceHandlerInterface defines the contract for catalog handlers
type ServiceHandlerInterface interface {
	CreateService(c fiber.Ctx) error
	ListServices(c fiber.Ctx) error
	GetService(c fiber.Ctx) error
	ListServicesByField(c fiber.Ctx) error
	RequestService(c fiber.Ctx) error
}

// ServiceHandler handles catalog-related HTTP requests
type ServiceHandler struct {
	catalogFlow businessflow.CatalogFlow
	requestFlow businessflow.RequestFlow
	validator   *validator.Validate
}

// NewServiceHandler creates a new catalog handler
func NewServiceHandler(catalogFlow businessflow.CatalogFlow, requestFlow businessflow.RequestFlow) *ServiceHandler {
	return &ServiceHandler{
		catalogFlow: catalogFlow,
		requestFlow: requestFlow,
		validator:   newValidator(),
	}
}

func (h *ServiceHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ServiceHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateService publishes a new service for the authenticated company
func (h *ServiceHandler) CreateService(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "AUTHENTICATION_REQUIRED", nil)
	}

	var req dto.CreateServiceRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors(err))
	}

	result, err := h.catalogFlow.CreateService(createRequestContext(c, "/api/v1/services"), accountID, &req)
	if err != nil {
		if businessflow.IsNotACompany(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Only companies can create services", dto.ErrorNotACompany, nil)
		}
		if businessflow.IsCompanyProfileNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company profile not found", dto.ErrorCompanyProfileNotFound, nil)
		}
		if businessflow.IsInvalidCategory(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid category", dto.ErrorInvalidCategory, nil)
		}
		if businessflow.IsCategoryNotAuthorized(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Category is outside your declared specialty", dto.ErrorCategoryNotAuthorized, nil)
		}

		log.Println("Service creation failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Service creation failed", "SERVICE_CREATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Service created successfully", result)
}

// ListServices returns the full catalog, newest-first
func (h *ServiceHandler) ListServices(c fiber.Ctx) error {
	limit := 0
	offset := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
			limit = v
		}
	}
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil && v > 0 {
			offset = v
		}
	}

	result, err := h.catalogFlow.ListServices(createRequestContext(c, "/api/v1/services"), limit, offset)
	if err != nil {
		log.Println("Catalog listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Catalog listing failed", "CATALOG_LISTING_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Services retrieved successfully", result)
}

// GetService returns a single service detail page
func (h *ServiceHandler) GetService(c fiber.Ctx) error {
	serviceID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid service id", "INVALID_SERVICE_ID", nil)
	}

	result, err := h.catalogFlow.GetService(createRequestContext(c, "/api/v1/services/:id"), uint(serviceID))
	if err != nil {
		if businessflow.IsServiceNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Service not found", dto.ErrorServiceNotFound, nil)
		}

		log.Println("Service lookup failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Service lookup failed", "SERVICE_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Service retrieved successfully", result)
}

// ListServicesByField returns all services in one category
func (h *ServiceHandler) ListServicesByField(c fiber.Ctx) error {
	field := c.Params("field")

	result, err := h.catalogFlow.ListServicesByField(createRequestContext(c, "/api/v1/services/field/:field"), field)
	if err != nil {
		if businessflow.IsInvalidCategory(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Unknown service category", dto.ErrorInvalidCategory, nil)
		}

		log.Println("Catalog listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Catalog listing failed", "CATALOG_LISTING_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Services retrieved successfully", result)
}

// RequestService places a request against a service for the authenticated customer
func (h *ServiceHandler) RequestService(c fiber.Ctx) error {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "AUTHENTICATION_REQUIRED", nil)
	}

	serviceID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid service id", "INVALID_SERVICE_ID", nil)
	}

	var req dto.CreateServiceRequestRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors(err))
	}

	result, err := h.requestFlow.RequestService(createRequestContext(c, "/api/v1/services/:id/request"), accountID, uint(serviceID), &req)
	if err != nil {
		if businessflow.IsNotACustomer(err) {
			return h.ErrorResponse(c, fiber.StatusForbidden, "Only customers can request services", dto.ErrorNotACustomer, nil)
		}
		if businessflow.IsCustomerProfileNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer profile not found", dto.ErrorCustomerProfileNotFound, nil)
		}
		if businessflow.IsServiceNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Service not found", dto.ErrorServiceNotFound, nil)
		}

		log.Println("Service request failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Service request failed", "SERVICE_REQUEST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, result.Request)
}
