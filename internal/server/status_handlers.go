package server

import (
	"inkpost/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetStatus handles GET /api/status.
func (s *Server) GetStatus(c *fiber.Ctx) error {
	status, err := s.userSvc.GetStatus(c.UserContext(), s.actor(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Fetched status successfully",
		"status":  status,
	})
}

// UpdateStatus handles PUT /api/status.
func (s *Server) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userSvc.UpdateStatus(c.UserContext(), s.actor(c), req.Status)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Updated status successfully",
		"status":  user.Status,
	})
}
