package repository

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/model"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	GetWebsiteSettings(ctx context.Context) (*model.WebsiteSettings, error)
	SaveWebsiteSettings(ctx context.Context, settings *model.WebsiteSettings) error

	GetMessageSettings(ctx context.Context) (*model.MessageSettings, error)
	SaveMessageSettings(ctx context.Context, settings *model.MessageSettings) error

	FindProgramDetails(ctx context.Context) ([]*model.ProgramDetail, error)
	FindProgramDetail(ctx context.Context, program string) (*model.ProgramDetail, error)
	SaveProgramDetail(ctx context.Context, detail *model.ProgramDetail) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetWebsiteSettings(ctx context.Context) (*model.WebsiteSettings, error) {
	var settings model.WebsiteSettings
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepository) SaveWebsiteSettings(ctx context.Context, settings *model.WebsiteSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *settingsRepository) GetMessageSettings(ctx context.Context) (*model.MessageSettings, error) {
	var settings model.MessageSettings
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *settingsRepository) SaveMessageSettings(ctx context.Context, settings *model.MessageSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *settingsRepository) FindProgramDetails(ctx context.Context) ([]*model.ProgramDetail, error) {
	var details []*model.ProgramDetail
	if err := r.db.WithContext(ctx).Order("id asc").Find(&details).Error; err != nil {
		return nil, err
	}

	return details, nil
}

func (r *settingsRepository) FindProgramDetail(ctx context.Context, program string) (*model.ProgramDetail, error) {
	var detail model.ProgramDetail
	if err := r.db.WithContext(ctx).Where("program = ?", program).First(&detail).Error; err != nil {
		return nil, err
	}

	return &detail, nil
}

func (r *settingsRepository) SaveProgramDetail(ctx context.Context, detail *model.ProgramDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}
