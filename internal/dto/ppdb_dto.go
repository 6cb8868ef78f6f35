package dto

import "time"

type PPDBRegistrationInput struct {
	NamaLengkap    string     `json:"nama_lengkap" binding:"required,max=100"`
	ProgramPilihan string     `json:"program_pilihan" binding:"required,oneof=TKA/TPA PAUD/KOBER Diniyah"`
	ParentName     string     `json:"parent_name" binding:"required,max=100"`
	Phone          string     `json:"phone" binding:"required,max=30"`
	Email          *string    `json:"email" binding:"omitempty,email"`
	Address        string     `json:"address" binding:"required"`
	BirthDate      *time.Time `json:"birth_date"`
	Extra          *string    `json:"extra"`
}

type PPDBSettingsInput struct {
	IsOpen       bool      `json:"is_open"`
	StartDate    time.Time `json:"start_date" binding:"required"`
	EndDate      time.Time `json:"end_date" binding:"required"`
	AcademicYear string    `json:"academic_year" binding:"required,max=20"`
}

type PPDBFormFieldInput struct {
	Label     string  `json:"label" binding:"required,max=100"`
	FieldType string  `json:"field_type" binding:"required,oneof=text number date select"`
	Required  bool    `json:"required"`
	Options   *string `json:"options"`
	SortOrder int     `json:"sort_order"`
}

// ClosedResponse is returned when the registration window is closed.
type PPDBClosedResponse struct {
	Message      string `json:"message"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	AcademicYear string `json:"academic_year"`
}
