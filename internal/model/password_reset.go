package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Password reset request statuses mirror the registration lifecycle:
// pending is the only state an admin can act on.
const (
	ResetPending  = "pending"
	ResetApproved = "approved"
	ResetRejected = "rejected"
	ResetUsed     = "used"
)

// PasswordResetRequest tracks an admin-mediated password reset. No password
// material is ever stored here: approval mints a one-time token whose SHA-256
// hash lands in TokenHash, and the confirm endpoint consumes it.
type PasswordResetRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Username    string     `gorm:"size:50;not null" json:"username"`
	Email       *string    `gorm:"size:100" json:"email,omitempty"`
	Status      string     `gorm:"size:20;not null;default:pending;index" json:"status"`
	TokenHash   *string    `gorm:"size:64" json:"-"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	ProcessedBy *uuid.UUID `gorm:"type:uuid" json:"processed_by,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (r *PasswordResetRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
