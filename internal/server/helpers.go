package server

import (
	"strconv"

	"inkpost/internal/auth"
	"inkpost/internal/middleware"
	"inkpost/internal/models"

	"github.com/gofiber/fiber/v2"
)

// actor returns the request identity, or nil for anonymous requests.
func (s *Server) actor(c *fiber.Ctx) *auth.Identity {
	return middleware.Identity(c)
}

// parsePage reads the 1-based page query parameter, defaulting to 1.
func parsePage(c *fiber.Ctx) int {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return page
}

// parsePostID extracts the postId route parameter. On failure it writes a
// 422 response and returns false.
func (s *Server) parsePostID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("postId"), 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid post id"))
		return 0, false
	}
	return uint(id), true
}
