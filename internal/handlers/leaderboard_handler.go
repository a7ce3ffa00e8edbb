package handlers

import (
	"civic/internal/services"

	"github.com/gofiber/fiber/v2"
)

// LeaderboardHandler serves the points ranking.
type LeaderboardHandler struct {
	service *services.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(service *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// RegisterRoutes registers the leaderboard route.
func (h *LeaderboardHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/leaderboard", h.HandleLeaderboard)
}

// HandleLeaderboard lists users by points, highest first.
func (h *LeaderboardHandler) HandleLeaderboard(c *fiber.Ctx) error {
	users, err := h.service.Leaderboard()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
