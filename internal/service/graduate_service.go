package service

import (
	"context"
	"log"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"anoa.com/yayasanalhikmah/pkg/storage"
	"github.com/google/uuid"
)

type GraduateService interface {
	Create(ctx context.Context, input dto.GraduateInput) (*model.Graduate, error)
	Get(ctx context.Context, id string) (*model.Graduate, error)
	List(ctx context.Context, query dto.ListQuery) ([]*model.Graduate, error)
	Update(ctx context.Context, id string, input dto.GraduateInput) (*model.Graduate, error)
	Delete(ctx context.Context, id string) error
}

type graduateService struct {
	repo         repository.GraduateRepository
	search       SearchService
	imageStorage storage.ImageStorage
}

func NewGraduateService(repo repository.GraduateRepository, search SearchService, imageStorage storage.ImageStorage) GraduateService {
	return &graduateService{
		repo:         repo,
		search:       search,
		imageStorage: imageStorage,
	}
}

func (s *graduateService) Create(ctx context.Context, input dto.GraduateInput) (*model.Graduate, error) {
	graduate := &model.Graduate{
		Name:           input.Name,
		Program:        input.Program,
		GraduationYear: input.GraduationYear,
		StudentID:      parseOptionalUUID(input.StudentID),
		Achievement:    normalizeOptional(input.Achievement),
		CurrentSchool:  normalizeOptional(input.CurrentSchool),
		PhotoURL:       normalizeOptional(input.PhotoURL),
	}

	if err := s.repo.Create(ctx, graduate); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexGraduate(graduate)
	}

	return graduate, nil
}

func (s *graduateService) Get(ctx context.Context, id string) (*model.Graduate, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *graduateService) List(ctx context.Context, query dto.ListQuery) ([]*model.Graduate, error) {
	graduates, err := s.repo.FindAll(ctx, query.Program)
	if err != nil {
		return nil, err
	}

	if query.Search == "" || s.search == nil {
		return graduates, nil
	}

	ids, err := s.search.SearchGraduates(query.Search)
	if err != nil {
		return graduates, nil
	}

	return filterByIDs(graduates, ids, func(g *model.Graduate) string { return g.ID.String() }), nil
}

func (s *graduateService) Update(ctx context.Context, id string, input dto.GraduateInput) (*model.Graduate, error) {
	graduate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPhoto := graduate.PhotoURL

	graduate.Name = input.Name
	graduate.Program = input.Program
	graduate.GraduationYear = input.GraduationYear
	graduate.StudentID = parseOptionalUUID(input.StudentID)
	graduate.Achievement = normalizeOptional(input.Achievement)
	graduate.CurrentSchool = normalizeOptional(input.CurrentSchool)
	graduate.PhotoURL = normalizeOptional(input.PhotoURL)

	if err := s.repo.Update(ctx, graduate); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexGraduate(graduate)
	}

	cleanupReplacedPhoto(ctx, s.imageStorage, oldPhoto, graduate.PhotoURL)

	return graduate, nil
}

func (s *graduateService) Delete(ctx context.Context, id string) error {
	graduate, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		s.search.DeleteGraduate(id)
	}

	if graduate.PhotoURL != nil && s.imageStorage != nil {
		if err := s.imageStorage.DeleteImage(ctx, *graduate.PhotoURL); err != nil {
			log.Printf("failed to delete graduate photo: %v", err)
		}
	}

	return nil
}

func parseOptionalUUID(value *string) *uuid.UUID {
	if value == nil || *value == "" {
		return nil
	}

	id, err := uuid.Parse(*value)
	if err != nil {
		return nil
	}
	return &id
}
