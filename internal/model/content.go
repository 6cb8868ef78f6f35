package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// WebsiteContent is the typed shape of the editable marketing copy. It is
// stored as a single jsonb column; empty fields fall back to defaults when
// served (see the settings service).
type WebsiteContent struct {
	Hero    HeroSection    `json:"hero"`
	About   AboutSection   `json:"about"`
	Contact ContactSection `json:"contact"`
	Footer  FooterSection  `json:"footer"`
	Stats   StatsSection   `json:"stats"`
}

type HeroSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
}

type AboutSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Vision      string `json:"vision"`
	Mission     string `json:"mission"`
}

type ContactSection struct {
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	MapsURL  string `json:"maps_url"`
}

type FooterSection struct {
	Text      string `json:"text"`
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	YouTube   string `json:"youtube"`
}

type StatsSection struct {
	ShowStudents  bool `json:"show_students"`
	ShowTeachers  bool `json:"show_teachers"`
	ShowGraduates bool `json:"show_graduates"`
}

func (c WebsiteContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *WebsiteContent) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = WebsiteContent{}
		return nil
	}
	return fmt.Errorf("unsupported type for WebsiteContent: %T", value)
}

// WebsiteSettings is the singleton row (id=1) holding all marketing copy.
type WebsiteSettings struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   WebsiteContent `gorm:"type:jsonb" json:"content"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProgramDetail is one row per educational track.
type ProgramDetail struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Program     string    `gorm:"size:20;uniqueIndex;not null" json:"program"`
	Slug        string    `gorm:"-" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Schedule    string    `gorm:"size:200" json:"schedule"`
	MonthlyFee  *int64    `json:"monthly_fee,omitempty"`
	AgeRange    string    `gorm:"size:50" json:"age_range"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
