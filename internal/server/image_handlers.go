package server

import (
	"inkpost/internal/models"
	"inkpost/internal/storage"

	"github.com/gofiber/fiber/v2"
)

// UploadImage handles PUT /api/post-image. The uploaded file is stored under
// a random name with the original extension discarded; when the request
// names a previously stored file in oldPath, that file is removed
// best-effort.
func (s *Server) UploadImage(c *fiber.Ctx) error {
	if s.actor(c) == nil {
		return models.RespondWithError(c, models.NewUnauthenticatedError("Not authenticated"))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(fiber.Map{"message": "No file provided"})
	}

	if !storage.IsAllowedImageType(file.Header.Get("Content-Type")) {
		return models.RespondWithError(c,
			models.NewValidationError("Only JPEG and PNG images are accepted"))
	}

	src, err := file.Open()
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	path, err := s.images.Save(src)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	if oldPath := c.FormValue("oldPath"); oldPath != "" {
		s.images.Remove(oldPath)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Image is stored",
		"imagePath": path,
	})
}
