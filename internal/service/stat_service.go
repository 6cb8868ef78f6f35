package service

import (
	"context"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
)

type StatService interface {
	Overview(ctx context.Context) (*dto.StatsResponse, error)
}

type statService struct {
	studentRepo  repository.StudentRepository
	teacherRepo  repository.TeacherRepository
	graduateRepo repository.GraduateRepository
	userRepo     repository.UserRepository
	ppdbRepo     repository.PPDBRepository
	visitors     VisitorService
}

func NewStatService(
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	graduateRepo repository.GraduateRepository,
	userRepo repository.UserRepository,
	ppdbRepo repository.PPDBRepository,
	visitors VisitorService,
) StatService {
	return &statService{
		studentRepo:  studentRepo,
		teacherRepo:  teacherRepo,
		graduateRepo: graduateRepo,
		userRepo:     userRepo,
		ppdbRepo:     ppdbRepo,
		visitors:     visitors,
	}
}

func (s *statService) Overview(ctx context.Context) (*dto.StatsResponse, error) {
	students, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teacherRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	graduates, err := s.graduateRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingRegs, err := s.ppdbRepo.CountRegistrations(ctx, model.RegistrationPending)
	if err != nil {
		return nil, err
	}

	today, err := s.visitors.VisitorsToday(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.visitors.VisitorsTotal(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		VisitorsToday:        today,
		VisitorsTotal:        total,
		Students:             students,
		Teachers:             teachers,
		Graduates:            graduates,
		Users:                users,
		PendingRegistrations: pendingRegs,
	}, nil
}
