package repository

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/model"
	"gorm.io/gorm"
)

type TeacherRepository interface {
	Create(ctx context.Context, teacher *model.Teacher) error
	FindByID(ctx context.Context, id string) (*model.Teacher, error)
	FindAll(ctx context.Context, program string) ([]*model.Teacher, error)
	Update(ctx context.Context, teacher *model.Teacher) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) TeacherRepository {
	return &teacherRepository{db: db}
}

func (r *teacherRepository) Create(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Create(teacher).Error
}

func (r *teacherRepository) FindByID(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&teacher).Error; err != nil {
		return nil, err
	}

	return &teacher, nil
}

func (r *teacherRepository) FindAll(ctx context.Context, program string) ([]*model.Teacher, error) {
	q := r.db.WithContext(ctx).Order("name asc")
	if program != "" {
		// Teachers tagged "All" serve every program.
		q = q.Where("program = ? OR program = ?", program, model.ProgramAll)
	}

	var teachers []*model.Teacher
	if err := q.Find(&teachers).Error; err != nil {
		return nil, err
	}

	return teachers, nil
}

func (r *teacherRepository) Update(ctx context.Context, teacher *model.Teacher) error {
	return r.db.WithContext(ctx).Save(teacher).Error
}

func (r *teacherRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Teacher{}, "id = ?", id).Error
}

func (r *teacherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Teacher{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
