package validation

import (
	"strings"
	"testing"

	"folio/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "test@example.com", false},
		{"Valid Subdomain", "user@mail.example.co.il", false},
		{"Empty", "", true},
		{"Invalid Format", "not-an-email", true},
		{"Missing Domain", "user@", true},
		{"Multiple At Symbols", "user@@example.com", true},
		{"Space In Local Part", "user @example.com", true},
		{"Trailing Dot In Domain", "user@example.com.", true},
		{"Too Long", strings.Repeat("a", 250) + "@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateContactMessage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		msg        models.ContactMessage
		wantFields []string
	}{
		{
			"Valid",
			models.ContactMessage{Name: "Dan", Email: "d@x.com", Message: "Hello there, this is long enough."},
			nil,
		},
		{
			"Short Name",
			models.ContactMessage{Name: "D", Email: "d@x.com", Message: "Hello there, long enough."},
			[]string{"name"},
		},
		{
			"Bad Email",
			models.ContactMessage{Name: "Dan", Email: "nope", Message: "Hello there, long enough."},
			[]string{"email"},
		},
		{
			"Short Message",
			models.ContactMessage{Name: "Dan", Email: "d@x.com", Message: "Hi"},
			[]string{"message"},
		},
		{
			"All Invalid At Once",
			models.ContactMessage{Name: "", Email: "", Message: ""},
			[]string{"name", "email", "message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateContactMessage(&tt.msg)
			assert.Len(t, errs, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, errs[i].Field)
			}
		})
	}
}

func TestValidateProject(t *testing.T) {
	t.Parallel()

	valid := models.Project{
		Title:         "Network Scanner",
		TitleHe:       "סורק רשתות",
		Description:   "Automated network scanning tool",
		DescriptionHe: "כלי סריקת רשתות אוטומטי",
		Technologies:  models.StringList{"Python", "Nmap"},
	}
	assert.Empty(t, ValidateProject(&valid, true))

	t.Run("empty technologies list is acceptable", func(t *testing.T) {
		p := valid
		p.Technologies = models.StringList{}
		assert.Empty(t, ValidateProject(&p, true))
	})

	t.Run("absent technologies field is not", func(t *testing.T) {
		p := valid
		errs := ValidateProject(&p, false)
		assert.Len(t, errs, 1)
		assert.Equal(t, "technologies", errs[0].Field)
	})

	t.Run("every missing field is reported", func(t *testing.T) {
		errs := ValidateProject(&models.Project{}, false)
		fields := make([]string, len(errs))
		for i, e := range errs {
			fields[i] = e.Field
		}
		assert.Equal(t, []string{"title", "titleHe", "description", "descriptionHe", "technologies"}, fields)
	})
}

func TestValidateBlogPost(t *testing.T) {
	t.Parallel()

	valid := models.BlogPost{
		Title:     "Getting Started with Penetration Testing",
		TitleHe:   "מדריך למתחילים בבדיקות חדירות",
		Slug:      "getting-started-pentesting",
		Excerpt:   "Learn the basics",
		ExcerptHe: "למדו את הבסיס",
		Content:   "Penetration testing is a crucial skill...",
		ContentHe: "בדיקות חדירות הן תחום חשוב...",
	}
	assert.Empty(t, ValidateBlogPost(&valid))

	t.Run("every missing field is reported", func(t *testing.T) {
		errs := ValidateBlogPost(&models.BlogPost{})
		assert.Len(t, errs, 7)
	})
}

func TestValidateSiteSetting(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateSiteSetting(&models.SiteSetting{Key: "github_url", Value: "https://github.com/daniel"}))

	errs := ValidateSiteSetting(&models.SiteSetting{})
	assert.Len(t, errs, 2)
	assert.Equal(t, "key", errs[0].Field)
	assert.Equal(t, "value", errs[1].Field)
}

func TestValidateUser(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ValidateUser(&models.User{Username: "daniel", Password: "pw"}))
	assert.Len(t, ValidateUser(&models.User{}), 2)
}
