// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/netfix-app/netfix/app/dto"
	businessflow "github.com/netfix-app/netfix/business_flow"
)

// ProfileHandlerInterface defines the contract for profile handlers
type ProfileHandlerInterface interface {
	GetCustomerProfile(c fiber.Ctx) error
	GetCompanyProfile(c fiber.Ctx) error
}

// ProfileHandler handles public profile HTTP requests
type ProfileHandler struct {
	profileFlow businessflow.ProfileFlow
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileFlow businessflow.ProfileFlow) *ProfileHandler {
	return &ProfileHandler{
		profileFlow: profileFlow,
	}
}

func (h *ProfileHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ProfileHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GetCustomerProfile returns a customer's profile with their request history
func (h *ProfileHandler) GetCustomerProfile(c fiber.Ctx) error {
	username := c.Params("username")

	result, err := h.profileFlow.GetCustomerProfile(createRequestContext(c, "/api/v1/profiles/customer/:username"), username)
	if err != nil {
		if businessflow.IsCustomerProfileNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Customer profile not found", dto.ErrorCustomerProfileNotFound, nil)
		}

		log.Println("Customer profile lookup failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Profile lookup failed", "PROFILE_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Profile retrieved successfully", result)
}

// GetCompanyProfile returns a company's profile with its service catalog
func (h *ProfileHandler) GetCompanyProfile(c fiber.Ctx) error {
	username := c.Params("username")

	result, err := h.profileFlow.GetCompanyProfile(createRequestContext(c, "/api/v1/profiles/company/:username"), username)
	if err != nil {
		if businessflow.IsCompanyProfileNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company profile not found", dto.ErrorCompanyProfileNotFound, nil)
		}

		log.Println("Company profile lookup failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Profile lookup failed", "PROFILE_LOOKUP_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Profile retrieved successfully", result)
}
