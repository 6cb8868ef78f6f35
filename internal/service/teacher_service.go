package service

import (
	"context"
	"log"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"anoa.com/yayasanalhikmah/pkg/storage"
)

type TeacherService interface {
	Create(ctx context.Context, input dto.TeacherInput) (*model.Teacher, error)
	Get(ctx context.Context, id string) (*model.Teacher, error)
	List(ctx context.Context, query dto.ListQuery) ([]*model.Teacher, error)
	Update(ctx context.Context, id string, input dto.TeacherInput) (*model.Teacher, error)
	Delete(ctx context.Context, id string) error
}

type teacherService struct {
	repo         repository.TeacherRepository
	search       SearchService
	imageStorage storage.ImageStorage
}

func NewTeacherService(repo repository.TeacherRepository, search SearchService, imageStorage storage.ImageStorage) TeacherService {
	return &teacherService{
		repo:         repo,
		search:       search,
		imageStorage: imageStorage,
	}
}

func (s *teacherService) Create(ctx context.Context, input dto.TeacherInput) (*model.Teacher, error) {
	teacher := &model.Teacher{
		Name:     input.Name,
		NIP:      normalizeOptional(input.NIP),
		Program:  input.Program,
		Position: input.Position,
		Phone:    normalizeOptional(input.Phone),
		Email:    normalizeOptional(input.Email),
		PhotoURL: normalizeOptional(input.PhotoURL),
	}

	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexTeacher(teacher)
	}

	return teacher, nil
}

func (s *teacherService) Get(ctx context.Context, id string) (*model.Teacher, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *teacherService) List(ctx context.Context, query dto.ListQuery) ([]*model.Teacher, error) {
	teachers, err := s.repo.FindAll(ctx, query.Program)
	if err != nil {
		return nil, err
	}

	if query.Search == "" || s.search == nil {
		return teachers, nil
	}

	ids, err := s.search.SearchTeachers(query.Search)
	if err != nil {
		return teachers, nil
	}

	return filterByIDs(teachers, ids, func(t *model.Teacher) string { return t.ID.String() }), nil
}

func (s *teacherService) Update(ctx context.Context, id string, input dto.TeacherInput) (*model.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPhoto := teacher.PhotoURL

	teacher.Name = input.Name
	teacher.NIP = normalizeOptional(input.NIP)
	teacher.Program = input.Program
	teacher.Position = input.Position
	teacher.Phone = normalizeOptional(input.Phone)
	teacher.Email = normalizeOptional(input.Email)
	teacher.PhotoURL = normalizeOptional(input.PhotoURL)

	if err := s.repo.Update(ctx, teacher); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexTeacher(teacher)
	}

	cleanupReplacedPhoto(ctx, s.imageStorage, oldPhoto, teacher.PhotoURL)

	return teacher, nil
}

func (s *teacherService) Delete(ctx context.Context, id string) error {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		s.search.DeleteTeacher(id)
	}

	if teacher.PhotoURL != nil && s.imageStorage != nil {
		if err := s.imageStorage.DeleteImage(ctx, *teacher.PhotoURL); err != nil {
			log.Printf("failed to delete teacher photo: %v", err)
		}
	}

	return nil
}
