package handlers

import (
	"civic/internal/models"
	"civic/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ParticipationHandler redeems participation codes.
type ParticipationHandler struct {
	service  *services.ParticipationService
	validate *validator.Validate
}

// NewParticipationHandler creates a new ParticipationHandler.
func NewParticipationHandler(service *services.ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{service: service, validate: newValidator()}
}

// RegisterRoutes registers the participation routes.
func (h *ParticipationHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/participations/validate", h.HandleValidate)
}

// HandleValidate redeems a code and returns the credited user.
func (h *ParticipationHandler) HandleValidate(c *fiber.Ctx) error {
	var req models.CodeValidationRequest
	if err := bind(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.service.ValidateCode(*req.Code)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
