package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"folio/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds randomized demo entities and persists them. It is used by
// the demo seeding mode and by tests that need filler content.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

var demoTechnologies = []string{
	"Go", "Python", "TypeScript", "React", "Fiber", "PostgreSQL",
	"Docker", "Kubernetes", "Redis", "Terraform", "Bash", "Wireshark",
}

// pastTime returns a timestamp spread over the last maxDays days so listings
// have a realistic ordering to exercise.
func (f *Factory) pastTime(maxDays int) time.Time {
	daysBack := f.r.Intn(maxDays)
	hoursBack := f.r.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}

// BuildProject constructs an unpersisted demo project.
func (f *Factory) BuildProject() *models.Project {
	techs := make([]string, 0, 3)
	for _, i := range f.r.Perm(len(demoTechnologies))[:2+f.r.Intn(2)] {
		techs = append(techs, demoTechnologies[i])
	}

	name := gofakeit.AppName()
	featured := "false"
	if f.r.Intn(4) == 0 {
		featured = "true"
	}

	return &models.Project{
		Title:         name,
		TitleHe:       name,
		Description:   gofakeit.Sentence(10),
		DescriptionHe: gofakeit.Sentence(8),
		Technologies:  models.StringList(techs),
		ImageURL:      fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		GithubURL:     fmt.Sprintf("https://github.com/daniel/%s", gofakeit.Username()),
		Featured:      featured,
		CreatedAt:     f.pastTime(180),
	}
}

// BuildBlogPost constructs an unpersisted demo post with a unique slug.
func (f *Factory) BuildBlogPost() *models.BlogPost {
	title := gofakeit.Sentence(5)
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSuffix(title, "."), " ", "-"))
	slug = fmt.Sprintf("%s-%d", slug, f.r.Intn(100000))

	published := "true"
	if f.r.Intn(3) == 0 {
		published = "false"
	}

	return &models.BlogPost{
		Title:     title,
		TitleHe:   title,
		Slug:      slug,
		Excerpt:   gofakeit.Sentence(12),
		ExcerptHe: gofakeit.Sentence(12),
		Content:   gofakeit.Paragraph(3, 4, 8, "\n\n"),
		ContentHe: gofakeit.Paragraph(3, 4, 8, "\n\n"),
		Published: published,
		CreatedAt: f.pastTime(365),
	}
}

// BuildContactMessage constructs an unpersisted demo inquiry.
func (f *Factory) BuildContactMessage() *models.ContactMessage {
	return &models.ContactMessage{
		Name:      gofakeit.Name(),
		Email:     gofakeit.Email(),
		Message:   gofakeit.Paragraph(1, 2, 8, " "),
		CreatedAt: f.pastTime(60),
	}
}

// SeedDemo persists randomized filler content per the option counts.
func (f *Factory) SeedDemo(ctx context.Context, opts Options) error {
	for i := 0; i < opts.NumProjects; i++ {
		if err := f.db.WithContext(ctx).Create(f.BuildProject()).Error; err != nil {
			return err
		}
	}
	for i := 0; i < opts.NumPosts; i++ {
		if err := f.db.WithContext(ctx).Create(f.BuildBlogPost()).Error; err != nil {
			return err
		}
	}
	for i := 0; i < opts.NumMessages; i++ {
		if err := f.db.WithContext(ctx).Create(f.BuildContactMessage()).Error; err != nil {
			return err
		}
	}
	return nil
}
