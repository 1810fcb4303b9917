// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/netfix-app/netfix/app/dto"
	businessflow "github.com/netfix-app/netfix/business_flow"
)

// HomeHandlerInterface defines the contract for the landing page handler
type HomeHandlerInterface interface {
	Home(c fiber.Ctx) error
}

// HomeHandler handles the landing page HTTP requests
type HomeHandler struct {
	homeFlow businessflow.HomeFlow
}

// NewHomeHandler creates a new home handler
func NewHomeHandler(homeFlow businessflow.HomeFlow) *HomeHandler {
	return &HomeHandler{
		homeFlow: homeFlow,
	}
}

// Home returns the most requested services for the landing page
func (h *HomeHandler) Home(c fiber.Ctx) error {
	result, err := h.homeFlow.GetHome(createRequestContext(c, "/api/v1/home"))
	if err != nil {
		log.Println("Home ranking failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.APIResponse{
			Success: false,
			Message: "Home ranking failed",
			Error: dto.ErrorDetail{
				Code: "HOME_RANKING_FAILED",
			},
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.APIResponse{
		Success: true,
		Message: "Most requested services retrieved successfully",
		Data:    result,
	})
}
