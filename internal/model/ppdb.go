package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PPDB registration statuses. pending is the only non-terminal state.
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// PPDBSettings is the singleton row (id=1) gating the public registration form.
type PPDBSettings struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	IsOpen       bool      `gorm:"not null;default:false" json:"is_open"`
	StartDate    time.Time `gorm:"not null" json:"start_date"`
	EndDate      time.Time `gorm:"not null" json:"end_date"`
	AcademicYear string    `gorm:"size:20;not null" json:"academic_year"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type PPDBRegistration struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	NamaLengkap    string     `gorm:"size:100;not null" json:"nama_lengkap"`
	ProgramPilihan string     `gorm:"size:20;not null;index" json:"program_pilihan"`
	ParentName     string     `gorm:"size:100;not null" json:"parent_name"`
	Phone          string     `gorm:"size:30;not null" json:"phone"`
	Email          *string    `gorm:"size:100" json:"email,omitempty"`
	Address        string     `gorm:"type:text;not null" json:"address"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	Extra          *string    `gorm:"type:jsonb" json:"extra,omitempty"`
	Status         string     `gorm:"size:20;not null;default:pending;index" json:"status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (r *PPDBRegistration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Terminal reports whether the registration reached a final status.
func (r *PPDBRegistration) Terminal() bool {
	return r.Status == RegistrationApproved || r.Status == RegistrationRejected
}

// PPDBFormField is an admin-configurable extra field on the public form.
type PPDBFormField struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Label     string    `gorm:"size:100;not null" json:"label"`
	FieldType string    `gorm:"size:20;not null;default:text" json:"field_type"`
	Required  bool      `gorm:"not null;default:false" json:"required"`
	Options   *string   `gorm:"type:jsonb" json:"options,omitempty"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
