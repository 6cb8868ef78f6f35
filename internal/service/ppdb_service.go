package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"anoa.com/yayasanalhikmah/pkg/apperror"
	"gorm.io/gorm"
)

const ppdbDateFormat = "2 January 2006"

type PPDBService interface {
	GetSettings(ctx context.Context) (*model.PPDBSettings, error)
	SaveSettings(ctx context.Context, input dto.PPDBSettingsInput) (*model.PPDBSettings, error)

	// Submit re-checks is_open server-side at submit time. The date range
	// on the settings row is informational only; the flag is the gate.
	Submit(ctx context.Context, input dto.PPDBRegistrationInput) (*model.PPDBRegistration, error)
	ListRegistrations(ctx context.Context, status, program, search string) ([]*model.PPDBRegistration, error)
	Approve(ctx context.Context, id string) (*model.PPDBRegistration, error)
	Reject(ctx context.Context, id string) (*model.PPDBRegistration, error)

	GetFormFields(ctx context.Context) ([]*model.PPDBFormField, error)
	SaveFormFields(ctx context.Context, inputs []dto.PPDBFormFieldInput) ([]*model.PPDBFormField, error)

	// ClosedResponse renders the closed-state message with the formatted
	// registration window.
	ClosedResponse(settings *model.PPDBSettings) *dto.PPDBClosedResponse
}

type ppdbService struct {
	repo     repository.PPDBRepository
	search   SearchService
	notifier NotificationService
}

func NewPPDBService(repo repository.PPDBRepository, search SearchService, notifier NotificationService) PPDBService {
	return &ppdbService{
		repo:     repo,
		search:   search,
		notifier: notifier,
	}
}

func (s *ppdbService) GetSettings(ctx context.Context) (*model.PPDBSettings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Singleton missing means registration never opened.
			return &model.PPDBSettings{ID: 1, IsOpen: false}, nil
		}
		return nil, err
	}

	return settings, nil
}

func (s *ppdbService) SaveSettings(ctx context.Context, input dto.PPDBSettingsInput) (*model.PPDBSettings, error) {
	if !input.EndDate.After(input.StartDate) {
		return nil, apperror.New(400, "tanggal selesai harus setelah tanggal mulai", apperror.ErrBadRequest)
	}

	settings := &model.PPDBSettings{
		ID:           1,
		IsOpen:       input.IsOpen,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		AcademicYear: input.AcademicYear,
	}

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

func (s *ppdbService) Submit(ctx context.Context, input dto.PPDBRegistrationInput) (*model.PPDBRegistration, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if !settings.IsOpen {
		return nil, apperror.ErrRegistrationClosed
	}

	reg := &model.PPDBRegistration{
		NamaLengkap:    input.NamaLengkap,
		ProgramPilihan: input.ProgramPilihan,
		ParentName:     input.ParentName,
		Phone:          input.Phone,
		Email:          input.Email,
		Address:        input.Address,
		BirthDate:      input.BirthDate,
		Extra:          input.Extra,
		Status:         model.RegistrationPending,
	}

	if err := s.repo.CreateRegistration(ctx, reg); err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexRegistration(reg)
	}

	if s.notifier != nil {
		s.notifier.NotifyAdmins(ctx, model.NotifNewRegistration, reg.ID, "ppdb_registration",
			fmt.Sprintf("Pendaftaran SPMB baru: %s (%s)", reg.NamaLengkap, reg.ProgramPilihan))
	}

	return reg, nil
}

func (s *ppdbService) ListRegistrations(ctx context.Context, status, program, search string) ([]*model.PPDBRegistration, error) {
	regs, err := s.repo.FindRegistrations(ctx, status, program)
	if err != nil {
		return nil, err
	}

	if search == "" || s.search == nil {
		return regs, nil
	}

	ids, err := s.search.SearchRegistrations(search)
	if err != nil {
		// Search being down degrades to the unfiltered list.
		return regs, nil
	}

	matched := make(map[string]bool, len(ids))
	for _, id := range ids {
		matched[id] = true
	}

	var filtered []*model.PPDBRegistration
	for _, reg := range regs {
		if matched[reg.ID.String()] {
			filtered = append(filtered, reg)
		}
	}

	return filtered, nil
}

func (s *ppdbService) Approve(ctx context.Context, id string) (*model.PPDBRegistration, error) {
	return s.transition(ctx, id, model.RegistrationApproved)
}

func (s *ppdbService) Reject(ctx context.Context, id string) (*model.PPDBRegistration, error) {
	return s.transition(ctx, id, model.RegistrationRejected)
}

func (s *ppdbService) transition(ctx context.Context, id, newStatus string) (*model.PPDBRegistration, error) {
	changed, err := s.repo.TransitionStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}

	if !changed {
		// Either the row is gone or it already reached a terminal status.
		reg, err := s.repo.FindRegistrationByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperror.ErrNotFound
			}
			return nil, err
		}
		return nil, apperror.New(409,
			fmt.Sprintf("pendaftaran sudah %s", reg.Status), apperror.ErrConflict)
	}

	reg, err := s.repo.FindRegistrationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.search != nil {
		s.search.IndexRegistration(reg)
	}

	return reg, nil
}

func (s *ppdbService) GetFormFields(ctx context.Context) ([]*model.PPDBFormField, error) {
	return s.repo.FindFormFields(ctx)
}

func (s *ppdbService) SaveFormFields(ctx context.Context, inputs []dto.PPDBFormFieldInput) ([]*model.PPDBFormField, error) {
	fields := make([]*model.PPDBFormField, 0, len(inputs))
	for i, in := range inputs {
		sortOrder := in.SortOrder
		if sortOrder == 0 {
			sortOrder = i
		}
		fields = append(fields, &model.PPDBFormField{
			Label:     in.Label,
			FieldType: in.FieldType,
			Required:  in.Required,
			Options:   in.Options,
			SortOrder: sortOrder,
		})
	}

	if err := s.repo.ReplaceFormFields(ctx, fields); err != nil {
		return nil, err
	}

	return s.repo.FindFormFields(ctx)
}

func (s *ppdbService) ClosedResponse(settings *model.PPDBSettings) *dto.PPDBClosedResponse {
	return &dto.PPDBClosedResponse{
		Message: fmt.Sprintf("Pendaftaran sedang ditutup. Periode pendaftaran: %s - %s.",
			settings.StartDate.Format(ppdbDateFormat),
			settings.EndDate.Format(ppdbDateFormat)),
		StartDate:    settings.StartDate.Format(ppdbDateFormat),
		EndDate:      settings.EndDate.Format(ppdbDateFormat),
		AcademicYear: settings.AcademicYear,
	}
}
