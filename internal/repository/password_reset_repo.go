package repository

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/model"
	"gorm.io/gorm"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, req *model.PasswordResetRequest) error
	FindByID(ctx context.Context, id string) (*model.PasswordResetRequest, error)
	FindByTokenHash(ctx context.Context, tokenHash string) (*model.PasswordResetRequest, error)
	FindAll(ctx context.Context, status string) ([]*model.PasswordResetRequest, error)
	Update(ctx context.Context, req *model.PasswordResetRequest) error
}

type passwordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

func (r *passwordResetRepository) Create(ctx context.Context, req *model.PasswordResetRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *passwordResetRepository) FindByID(ctx context.Context, id string) (*model.PasswordResetRequest, error) {
	var req model.PasswordResetRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&req).Error; err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *passwordResetRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.PasswordResetRequest, error) {
	var req model.PasswordResetRequest
	if err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&req).Error; err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *passwordResetRepository) FindAll(ctx context.Context, status string) ([]*model.PasswordResetRequest, error) {
	q := r.db.WithContext(ctx).Order("created_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var reqs []*model.PasswordResetRequest
	if err := q.Find(&reqs).Error; err != nil {
		return nil, err
	}

	return reqs, nil
}

func (r *passwordResetRepository) Update(ctx context.Context, req *model.PasswordResetRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}
