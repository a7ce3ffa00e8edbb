package handlers

import (
	"civic/internal/models"
	"civic/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ChatbotHandler answers chat messages.
type ChatbotHandler struct {
	service  *services.ChatbotService
	validate *validator.Validate
}

// NewChatbotHandler creates a new ChatbotHandler.
func NewChatbotHandler(service *services.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{service: service, validate: newValidator()}
}

// RegisterRoutes registers the chatbot route.
func (h *ChatbotHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/chatbot", h.HandleMessage)
}

// HandleMessage answers a chat message with a canned reply.
func (h *ChatbotHandler) HandleMessage(c *fiber.Ctx) error {
	var req models.ChatbotRequest
	if err := bind(c, h.validate, &req); err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.ChatbotResponse{Response: h.service.Reply(*req.Message)})
}
