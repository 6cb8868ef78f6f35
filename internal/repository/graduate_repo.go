package repository

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/model"
	"gorm.io/gorm"
)

type GraduateRepository interface {
	Create(ctx context.Context, graduate *model.Graduate) error
	FindByID(ctx context.Context, id string) (*model.Graduate, error)
	FindAll(ctx context.Context, program string) ([]*model.Graduate, error)
	Update(ctx context.Context, graduate *model.Graduate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type graduateRepository struct {
	db *gorm.DB
}

func NewGraduateRepository(db *gorm.DB) GraduateRepository {
	return &graduateRepository{db: db}
}

func (r *graduateRepository) Create(ctx context.Context, graduate *model.Graduate) error {
	return r.db.WithContext(ctx).Create(graduate).Error
}

func (r *graduateRepository) FindByID(ctx context.Context, id string) (*model.Graduate, error) {
	var graduate model.Graduate
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&graduate).Error; err != nil {
		return nil, err
	}

	return &graduate, nil
}

func (r *graduateRepository) FindAll(ctx context.Context, program string) ([]*model.Graduate, error) {
	q := r.db.WithContext(ctx).Order("graduation_year desc, name asc")
	if program != "" {
		q = q.Where("program = ?", program)
	}

	var graduates []*model.Graduate
	if err := q.Find(&graduates).Error; err != nil {
		return nil, err
	}

	return graduates, nil
}

func (r *graduateRepository) Update(ctx context.Context, graduate *model.Graduate) error {
	return r.db.WithContext(ctx).Save(graduate).Error
}

func (r *graduateRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Graduate{}, "id = ?", id).Error
}

func (r *graduateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Graduate{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
