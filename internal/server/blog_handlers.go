package server

import (
	"errors"

	"folio/internal/models"
	"folio/internal/observability"
	"folio/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetBlogPosts handles GET /api/blog. Only published posts are listed unless
// the caller passes ?all=true, which the public site never does.
func (s *Server) GetBlogPosts(c *fiber.Ctx) error {
	publishedOnly := c.Query("all") != "true"

	posts, err := s.blogRepo.List(c.Context(), publishedOnly)
	if err != nil {
		return s.respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"posts":   posts,
	})
}

// GetBlogPostBySlug handles GET /api/blog/:slug
func (s *Server) GetBlogPostBySlug(c *fiber.Ctx) error {
	post, err := s.blogRepo.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Blog post"))
		}
		return s.respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}

// CreateBlogPost handles POST /api/blog
func (s *Server) CreateBlogPost(c *fiber.Ctx) error {
	var req struct {
		Title         string `json:"title"`
		TitleHe       string `json:"titleHe"`
		Slug          string `json:"slug"`
		Excerpt       string `json:"excerpt"`
		ExcerptHe     string `json:"excerptHe"`
		Content       string `json:"content"`
		ContentHe     string `json:"contentHe"`
		CoverImageURL string `json:"coverImageUrl"`
		Published     string `json:"published"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	post := &models.BlogPost{
		Title:         req.Title,
		TitleHe:       req.TitleHe,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		ExcerptHe:     req.ExcerptHe,
		Content:       req.Content,
		ContentHe:     req.ContentHe,
		CoverImageURL: req.CoverImageURL,
		Published:     req.Published,
	}
	if details := validation.ValidateBlogPost(post); len(details) > 0 {
		return respondValidationError(c, details)
	}

	if err := s.blogRepo.Create(c.Context(), post); err != nil {
		return s.respondInternalError(c, err)
	}

	observability.ContentWritesTotal.WithLabelValues("blog_post").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"post":    post,
	})
}
