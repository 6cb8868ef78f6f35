package repository

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/model"
	"gorm.io/gorm"
)

type PPDBRepository interface {
	GetSettings(ctx context.Context) (*model.PPDBSettings, error)
	SaveSettings(ctx context.Context, settings *model.PPDBSettings) error

	CreateRegistration(ctx context.Context, reg *model.PPDBRegistration) error
	FindRegistrationByID(ctx context.Context, id string) (*model.PPDBRegistration, error)
	FindRegistrations(ctx context.Context, status, program string) ([]*model.PPDBRegistration, error)
	// TransitionStatus moves a registration out of pending with a conditional
	// update. It reports whether a row actually changed, so a registration
	// already in a terminal state is never overwritten.
	TransitionStatus(ctx context.Context, id, newStatus string) (bool, error)
	CountRegistrations(ctx context.Context, status string) (int64, error)

	FindFormFields(ctx context.Context) ([]*model.PPDBFormField, error)
	ReplaceFormFields(ctx context.Context, fields []*model.PPDBFormField) error
}

type ppdbRepository struct {
	db *gorm.DB
}

func NewPPDBRepository(db *gorm.DB) PPDBRepository {
	return &ppdbRepository{db: db}
}

func (r *ppdbRepository) GetSettings(ctx context.Context) (*model.PPDBSettings, error) {
	var settings model.PPDBSettings
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		return nil, err
	}

	return &settings, nil
}

func (r *ppdbRepository) SaveSettings(ctx context.Context, settings *model.PPDBSettings) error {
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}

func (r *ppdbRepository) CreateRegistration(ctx context.Context, reg *model.PPDBRegistration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *ppdbRepository) FindRegistrationByID(ctx context.Context, id string) (*model.PPDBRegistration, error) {
	var reg model.PPDBRegistration
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&reg).Error; err != nil {
		return nil, err
	}

	return &reg, nil
}

func (r *ppdbRepository) FindRegistrations(ctx context.Context, status, program string) ([]*model.PPDBRegistration, error) {
	q := r.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if program != "" {
		q = q.Where("program_pilihan = ?", program)
	}

	var regs []*model.PPDBRegistration
	if err := q.Find(&regs).Error; err != nil {
		return nil, err
	}

	return regs, nil
}

func (r *ppdbRepository) TransitionStatus(ctx context.Context, id, newStatus string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.PPDBRegistration{}).
		Where("id = ? AND status = ?", id, model.RegistrationPending).
		Update("status", newStatus)
	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *ppdbRepository) CountRegistrations(ctx context.Context, status string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.PPDBRegistration{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ppdbRepository) FindFormFields(ctx context.Context) ([]*model.PPDBFormField, error) {
	var fields []*model.PPDBFormField
	if err := r.db.WithContext(ctx).Order("sort_order asc").Find(&fields).Error; err != nil {
		return nil, err
	}

	return fields, nil
}

func (r *ppdbRepository) ReplaceFormFields(ctx context.Context, fields []*model.PPDBFormField) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.PPDBFormField{}).Error; err != nil {
			return err
		}

		if len(fields) == 0 {
			return nil
		}

		return tx.Create(&fields).Error
	})
}
