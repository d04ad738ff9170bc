package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines the interface for portfolio project operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create persists a new project, defaulting featured to "false" when absent.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.Featured == "" {
		project.Featured = "false"
	}
	if project.Technologies == nil {
		project.Technologies = models.StringList{}
	}
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns all projects, most recently created first.
func (r *projectRepository) List(ctx context.Context) ([]*models.Project, error) {
	projects := make([]*models.Project, 0)
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&projects).Error
	return projects, err
}
