package server

import (
	"inkpost/internal/models"
	"inkpost/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/feed/posts?page=N.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	result, err := s.postSvc.List(c.UserContext(), s.actor(c), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Fetched posts successfully",
		"posts":      result.Posts,
		"totalItems": result.TotalPosts,
	})
}

// GetPost handles GET /api/feed/posts/:postId.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := s.parsePostID(c)
	if !ok {
		return nil
	}

	post, err := s.postSvc.Get(c.UserContext(), s.actor(c), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post found successfully",
		"post":    post,
	})
}

// CreatePost handles POST /api/feed/posts.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postSvc.Create(c.UserContext(), s.actor(c), service.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Created post successfully",
		"post":    post,
		"creator": post.User.CreatorSummary(),
	})
}

// UpdatePost handles PUT /api/feed/posts/:postId.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, ok := s.parsePostID(c)
	if !ok {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postSvc.Update(c.UserContext(), s.actor(c), service.UpdatePostInput{
		PostID:   postID,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Updated post successfully",
		"post":    post,
	})
}

// DeletePost handles DELETE /api/feed/posts/:postId.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, ok := s.parsePostID(c)
	if !ok {
		return nil
	}

	if err := s.postSvc.Delete(c.UserContext(), s.actor(c), postID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Deleted post successfully",
	})
}
