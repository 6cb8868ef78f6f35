package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The foundation's educational tracks.
const (
	ProgramTKATPA    = "TKA/TPA"
	ProgramPAUDKober = "PAUD/KOBER"
	ProgramDiniyah   = "Diniyah"
	ProgramAll       = "All" // teachers only
)

// Program names contain slashes, so route paths carry a URL-safe slug
// instead of the display name.
var programSlugs = map[string]string{
	"tka-tpa":    ProgramTKATPA,
	"paud-kober": ProgramPAUDKober,
	"diniyah":    ProgramDiniyah,
}

func ProgramFromSlug(slug string) (string, bool) {
	program, ok := programSlugs[slug]
	return program, ok
}

func ProgramSlug(program string) string {
	for slug, p := range programSlugs {
		if p == program {
			return slug
		}
	}
	return ""
}

type Student struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `gorm:"size:100;not null;index" json:"name"`
	NIS        *string    `gorm:"size:30" json:"nis,omitempty"`
	Program    string     `gorm:"size:20;not null;index" json:"program"`
	ClassName  *string    `gorm:"size:50" json:"class_name,omitempty"`
	ParentName string     `gorm:"size:100;not null" json:"parent_name"`
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	Address    *string    `gorm:"type:text" json:"address,omitempty"`
	PhotoURL   *string    `gorm:"type:text" json:"photo_url,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type Teacher struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;index" json:"name"`
	NIP       *string   `gorm:"size:30" json:"nip,omitempty"`
	Program   string    `gorm:"size:20;not null;index" json:"program"`
	Position  string    `gorm:"size:100;not null" json:"position"`
	Phone     *string   `gorm:"size:30" json:"phone,omitempty"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	PhotoURL  *string   `gorm:"type:text" json:"photo_url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type Graduate struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string     `gorm:"size:100;not null;index" json:"name"`
	Program        string     `gorm:"size:20;not null;index" json:"program"`
	GraduationYear int        `gorm:"not null" json:"graduation_year"`
	StudentID      *uuid.UUID `gorm:"type:uuid" json:"student_id,omitempty"`
	Achievement    *string    `gorm:"type:text" json:"achievement,omitempty"`
	CurrentSchool  *string    `gorm:"size:150" json:"current_school,omitempty"`
	PhotoURL       *string    `gorm:"type:text" json:"photo_url,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *Graduate) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
