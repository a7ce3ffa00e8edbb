package handlers

import (
	"civic/internal/models"
	"civic/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service, validate: newValidator()}
}

// RegisterRoutes registers the user routes.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/users", h.HandleGetUsers)
	router.Post("/users", h.HandleRegister)
}

// HandleGetUsers lists every user in storage order.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleRegister creates a participant account.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := bind(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.service.Register(*req.Username, *req.Email, *req.Password, *req.Age)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}
