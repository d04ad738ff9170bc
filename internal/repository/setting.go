package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository defines the interface for site setting operations.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*models.SiteSetting, error)
	Set(ctx context.Context, setting *models.SiteSetting) (*models.SiteSetting, error)
	List(ctx context.Context) ([]*models.SiteSetting, error)
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// Set upserts a setting by key using the store's native conflict resolution,
// so two concurrent writers of the same key cannot race a read-then-write:
// the losing insert becomes an update of value in place.
func (r *settingRepository) Set(ctx context.Context, setting *models.SiteSetting) (*models.SiteSetting, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(setting).Error
	if err != nil {
		return nil, err
	}

	// On conflict the insert candidate's generated ID is discarded; re-read so
	// the caller always sees the persisted record, original ID included.
	return r.Get(ctx, setting.Key)
}

// List returns all settings in no defined order.
func (r *settingRepository) List(ctx context.Context) ([]*models.SiteSetting, error) {
	settings := make([]*models.SiteSetting, 0)
	err := r.db.WithContext(ctx).Find(&settings).Error
	return settings, err
}
