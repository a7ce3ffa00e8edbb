package handlers

import (
	"civic/internal/models"
	"civic/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    newValidator(),
	}
}

// RegisterRoutes registers the authentication routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/login", h.HandleLogin)
}

// HandleLogin returns the user whose email and password match the body.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := bind(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}

	user, err := h.authService.Login(*req.Email, *req.Password)
	if err != nil {
		log.WithField("email", *req.Email).Info("Login rejected")
		return respondError(c, err)
	}
	return c.JSON(user)
}
