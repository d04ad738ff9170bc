package server

import (
	"folio/internal/models"
	"folio/internal/observability"
	"folio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// CreateContactMessage handles POST /api/contact
func (s *Server) CreateContactMessage(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if details := validation.ValidateContactMessage(message); len(details) > 0 {
		return respondValidationError(c, details)
	}

	if err := s.contactRepo.Create(ctx, message); err != nil {
		return s.respondInternalError(c, err)
	}

	observability.ContactMessagesTotal.Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// GetContactMessages handles GET /api/contact
func (s *Server) GetContactMessages(c *fiber.Ctx) error {
	messages, err := s.contactRepo.List(c.Context())
	if err != nil {
		return s.respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"messages": messages,
	})
}
