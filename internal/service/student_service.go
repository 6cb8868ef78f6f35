package service

import (
	"context"
	"log"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"anoa.com/yayasanalhikmah/pkg/storage"
)

type StudentService interface {
	Create(ctx context.Context, input dto.StudentInput) (*model.Student, error)
	Get(ctx context.Context, id string) (*model.Student, error)
	List(ctx context.Context, query dto.ListQuery) ([]*model.Student, error)
	Update(ctx context.Context, id string, input dto.StudentInput) (*model.Student, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	repo         repository.StudentRepository
	search       SearchService
	imageStorage storage.ImageStorage
}

func NewStudentService(repo repository.StudentRepository, search SearchService, imageStorage storage.ImageStorage) StudentService {
	return &studentService{
		repo:         repo,
		search:       search,
		imageStorage: imageStorage,
	}
}

func (s *studentService) Create(ctx context.Context, input dto.StudentInput) (*model.Student, error) {
	student := &model.Student{
		Name:       input.Name,
		NIS:        normalizeOptional(input.NIS),
		Program:    input.Program,
		ClassName:  normalizeOptional(input.ClassName),
		ParentName: input.ParentName,
		BirthDate:  input.BirthDate,
		Address:    normalizeOptional(input.Address),
		PhotoURL:   normalizeOptional(input.PhotoURL),
	}

	if err := s.repo.Create(ctx, student); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexStudent(student)
	}

	return student, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*model.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *studentService) List(ctx context.Context, query dto.ListQuery) ([]*model.Student, error) {
	students, err := s.repo.FindAll(ctx, query.Program)
	if err != nil {
		return nil, err
	}

	if query.Search == "" || s.search == nil {
		return students, nil
	}

	ids, err := s.search.SearchStudents(query.Search)
	if err != nil {
		return students, nil
	}

	return filterByIDs(students, ids, func(st *model.Student) string { return st.ID.String() }), nil
}

func (s *studentService) Update(ctx context.Context, id string, input dto.StudentInput) (*model.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPhoto := student.PhotoURL

	student.Name = input.Name
	student.NIS = normalizeOptional(input.NIS)
	student.Program = input.Program
	student.ClassName = normalizeOptional(input.ClassName)
	student.ParentName = input.ParentName
	student.BirthDate = input.BirthDate
	student.Address = normalizeOptional(input.Address)
	student.PhotoURL = normalizeOptional(input.PhotoURL)

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexStudent(student)
	}

	cleanupReplacedPhoto(ctx, s.imageStorage, oldPhoto, student.PhotoURL)

	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		s.search.DeleteStudent(id)
	}

	if student.PhotoURL != nil && s.imageStorage != nil {
		if err := s.imageStorage.DeleteImage(ctx, *student.PhotoURL); err != nil {
			log.Printf("failed to delete student photo: %v", err)
		}
	}

	return nil
}
