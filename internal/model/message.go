package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a visitor-submitted testimonial or question, optionally rated.
type Message struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Email       *string   `gorm:"size:100" json:"email,omitempty"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Rating      *int      `json:"rating,omitempty"`
	IsPublished bool      `gorm:"not null;default:false;index" json:"is_published"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// MessageSettings is the singleton row (id=1) controlling how visitor
// messages are handled.
type MessageSettings struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AutoPublish bool      `gorm:"not null;default:false" json:"auto_publish"`
	MaxPerPage  int       `gorm:"not null;default:10" json:"max_per_page"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
