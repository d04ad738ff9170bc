// Package validation provides input validation for entity creation payloads.
// Each validator checks every rule and returns the full list of violated
// fields so clients can correct a submission in one round trip.
package validation

import (
	"fmt"
	"regexp"

	"folio/internal/models"
)

const (
	minNameLength    = 2
	minMessageLength = 10
	maxEmailLength   = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9\-]+(\.[a-zA-Z0-9\-]+)*\.[a-zA-Z]{2,}$`)

// ValidateEmail checks if a string is a syntactically valid email address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email must not exceed %d characters", maxEmailLength)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("email must be a valid email address")
	}
	return nil
}

// ValidateContactMessage checks a contact form submission.
func ValidateContactMessage(m *models.ContactMessage) []models.FieldError {
	var errs []models.FieldError

	if len(m.Name) < minNameLength {
		errs = append(errs, models.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("name must be at least %d characters", minNameLength),
		})
	}
	if err := ValidateEmail(m.Email); err != nil {
		errs = append(errs, models.FieldError{Field: "email", Message: err.Error()})
	}
	if len(m.Message) < minMessageLength {
		errs = append(errs, models.FieldError{
			Field:   "message",
			Message: fmt.Sprintf("message must be at least %d characters", minMessageLength),
		})
	}

	return errs
}

// ValidateProject checks a project creation payload. hasTechnologies reports
// whether the technologies field was present in the request at all; an empty
// list is acceptable but an absent one is not.
func ValidateProject(p *models.Project, hasTechnologies bool) []models.FieldError {
	var errs []models.FieldError

	errs = appendRequired(errs, "title", p.Title)
	errs = appendRequired(errs, "titleHe", p.TitleHe)
	errs = appendRequired(errs, "description", p.Description)
	errs = appendRequired(errs, "descriptionHe", p.DescriptionHe)
	if !hasTechnologies {
		errs = append(errs, models.FieldError{Field: "technologies", Message: "technologies is required"})
	}

	return errs
}

// ValidateBlogPost checks a blog post creation payload. Slug uniqueness is a
// storage constraint and is not checked here.
func ValidateBlogPost(p *models.BlogPost) []models.FieldError {
	var errs []models.FieldError

	errs = appendRequired(errs, "title", p.Title)
	errs = appendRequired(errs, "titleHe", p.TitleHe)
	errs = appendRequired(errs, "slug", p.Slug)
	errs = appendRequired(errs, "excerpt", p.Excerpt)
	errs = appendRequired(errs, "excerptHe", p.ExcerptHe)
	errs = appendRequired(errs, "content", p.Content)
	errs = appendRequired(errs, "contentHe", p.ContentHe)

	return errs
}

// ValidateSiteSetting checks a settings upsert payload.
func ValidateSiteSetting(s *models.SiteSetting) []models.FieldError {
	var errs []models.FieldError

	errs = appendRequired(errs, "key", s.Key)
	errs = appendRequired(errs, "value", s.Value)

	return errs
}

// ValidateUser checks an account creation payload. Username uniqueness is a
// storage constraint and is not checked here.
func ValidateUser(u *models.User) []models.FieldError {
	var errs []models.FieldError

	errs = appendRequired(errs, "username", u.Username)
	errs = appendRequired(errs, "password", u.Password)

	return errs
}

func appendRequired(errs []models.FieldError, field, value string) []models.FieldError {
	if value == "" {
		errs = append(errs, models.FieldError{Field: field, Message: field + " is required"})
	}
	return errs
}
