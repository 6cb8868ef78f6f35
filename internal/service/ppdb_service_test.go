package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/pkg/apperror"
)

func openSettings(repo *fakePPDBRepo) {
	repo.settings = &model.PPDBSettings{
		ID:           1,
		IsOpen:       true,
		StartDate:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		AcademicYear: "2026/2027",
	}
}

func sampleRegistration() dto.PPDBRegistrationInput {
	return dto.PPDBRegistrationInput{
		NamaLengkap:    "Ahmad Fauzi",
		ProgramPilihan: model.ProgramTKATPA,
		ParentName:     "Bapak Fauzi",
		Phone:          "081234567890",
		Address:        "Jl. Masjid No. 1",
	}
}

func TestSubmitWhileClosed(t *testing.T) {
	repo := newFakePPDBRepo()
	repo.settings = &model.PPDBSettings{ID: 1, IsOpen: false}

	svc := NewPPDBService(repo, nil, nil)

	if _, err := svc.Submit(context.Background(), sampleRegistration()); !errors.Is(err, apperror.ErrRegistrationClosed) {
		t.Fatalf("err = %v, want ErrRegistrationClosed", err)
	}
	if len(repo.registrations) != 0 {
		t.Fatal("registration persisted while closed")
	}
}

func TestSubmitWithoutSettingsRowIsClosed(t *testing.T) {
	svc := NewPPDBService(newFakePPDBRepo(), nil, nil)

	if _, err := svc.Submit(context.Background(), sampleRegistration()); !errors.Is(err, apperror.ErrRegistrationClosed) {
		t.Fatalf("err = %v, want ErrRegistrationClosed", err)
	}
}

func TestSubmitCreatesPendingRegistration(t *testing.T) {
	repo := newFakePPDBRepo()
	openSettings(repo)

	svc := NewPPDBService(repo, nil, nil)

	reg, err := svc.Submit(context.Background(), sampleRegistration())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if reg.Status != model.RegistrationPending {
		t.Fatalf("status = %q, want pending", reg.Status)
	}
	if _, ok := repo.registrations[reg.ID.String()]; !ok {
		t.Fatal("registration not persisted")
	}
}

func TestApproveMovesPendingToApproved(t *testing.T) {
	repo := newFakePPDBRepo()
	openSettings(repo)
	svc := NewPPDBService(repo, nil, nil)

	reg, err := svc.Submit(context.Background(), sampleRegistration())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	approved, err := svc.Approve(context.Background(), reg.ID.String())
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.Status != model.RegistrationApproved {
		t.Fatalf("status = %q, want approved", approved.Status)
	}
}

func TestTerminalRegistrationCannotTransition(t *testing.T) {
	repo := newFakePPDBRepo()
	openSettings(repo)
	svc := NewPPDBService(repo, nil, nil)

	reg, err := svc.Submit(context.Background(), sampleRegistration())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.Approve(context.Background(), reg.ID.String()); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	// Rejecting after approval must conflict, not overwrite.
	_, err = svc.Reject(context.Background(), reg.ID.String())
	if err == nil {
		t.Fatal("expected conflict on reject after approve")
	}
	if apperror.MapErrorToStatus(err) != 409 {
		t.Fatalf("status = %d, want 409", apperror.MapErrorToStatus(err))
	}

	stored := repo.registrations[reg.ID.String()]
	if stored.Status != model.RegistrationApproved {
		t.Fatalf("stored status = %q, approval was overwritten", stored.Status)
	}
}

func TestTransitionUnknownRegistration(t *testing.T) {
	svc := NewPPDBService(newFakePPDBRepo(), nil, nil)

	if _, err := svc.Approve(context.Background(), "00000000-0000-0000-0000-000000000001"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveSettingsValidatesDateOrder(t *testing.T) {
	svc := NewPPDBService(newFakePPDBRepo(), nil, nil)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.SaveSettings(context.Background(), dto.PPDBSettingsInput{
		IsOpen:       true,
		StartDate:    start,
		EndDate:      start.AddDate(0, -1, 0),
		AcademicYear: "2026/2027",
	})
	if err == nil {
		t.Fatal("expected error for end date before start date")
	}
	if apperror.MapErrorToStatus(err) != 400 {
		t.Fatalf("status = %d, want 400", apperror.MapErrorToStatus(err))
	}
}

func TestGetSettingsDefaultsToClosed(t *testing.T) {
	svc := NewPPDBService(newFakePPDBRepo(), nil, nil)

	settings, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("GetSettings: %v", err)
	}
	if settings.IsOpen {
		t.Fatal("missing settings row must mean closed")
	}
}

func TestClosedResponseFormatsWindow(t *testing.T) {
	repo := newFakePPDBRepo()
	openSettings(repo)
	svc := NewPPDBService(repo, nil, nil)

	resp := svc.ClosedResponse(repo.settings)

	if !strings.Contains(resp.Message, "5 January 2026") || !strings.Contains(resp.Message, "30 June 2026") {
		t.Fatalf("message missing window dates: %q", resp.Message)
	}
	if resp.AcademicYear != "2026/2027" {
		t.Fatalf("academic year = %q", resp.AcademicYear)
	}
}

func TestListRegistrationsFiltersByStatusAndProgram(t *testing.T) {
	repo := newFakePPDBRepo()
	openSettings(repo)
	svc := NewPPDBService(repo, nil, nil)

	first, _ := svc.Submit(context.Background(), sampleRegistration())

	other := sampleRegistration()
	other.NamaLengkap = "Nur Aini"
	other.ProgramPilihan = model.ProgramDiniyah
	if _, err := svc.Submit(context.Background(), other); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if _, err := svc.Approve(context.Background(), first.ID.String()); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	pending, err := svc.ListRegistrations(context.Background(), model.RegistrationPending, "", "")
	if err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if len(pending) != 1 || pending[0].NamaLengkap != "Nur Aini" {
		t.Fatalf("pending filter wrong: %+v", pending)
	}

	diniyah, err := svc.ListRegistrations(context.Background(), "", model.ProgramDiniyah, "")
	if err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if len(diniyah) != 1 {
		t.Fatalf("program filter returned %d rows, want 1", len(diniyah))
	}
}
