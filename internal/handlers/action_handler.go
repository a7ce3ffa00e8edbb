package handlers

import (
	"civic/internal/models"
	"civic/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ActionHandler handles HTTP requests for actions, their likes and
// participation codes.
type ActionHandler struct {
	service  *services.ActionService
	validate *validator.Validate
}

// NewActionHandler creates a new ActionHandler.
func NewActionHandler(service *services.ActionService) *ActionHandler {
	return &ActionHandler{service: service, validate: newValidator()}
}

// RegisterRoutes registers the action routes.
func (h *ActionHandler) RegisterRoutes(router fiber.Router) {
	actionRoutes := router.Group("/actions")
	actionRoutes.Get("/", h.HandleGetActions)
	actionRoutes.Post("/", h.HandleCreateAction)
	actionRoutes.Post("/:id/like", h.HandleLike)
	actionRoutes.Post("/:id/participate", h.HandleParticipate)
}

// HandleGetActions lists actions with their proposer's username.
func (h *ActionHandler) HandleGetActions(c *fiber.Ctx) error {
	actions, err := h.service.GetAllActions()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(actions)
}

// HandleCreateAction stores a proposed action.
func (h *ActionHandler) HandleCreateAction(c *fiber.Ctx) error {
	var req models.CreateActionRequest
	if err := bind(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	action := req.ToAction()
	if err := h.service.CreateAction(&action); err != nil {
		return respondError(c, err)
	}
	return c.JSON(action)
}

// HandleLike records a user's like on an action.
func (h *ActionHandler) HandleLike(c *fiber.Ctx) error {
	actionID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req models.UserRefRequest
	if err := bind(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	action, err := h.service.LikeAction(actionID, *req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(action)
}

// HandleParticipate issues a participation code.
func (h *ActionHandler) HandleParticipate(c *fiber.Ctx) error {
	actionID, err := idParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var req models.UserRefRequest
	if err := bind(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	participation, err := h.service.Participate(actionID, *req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(participation)
}
