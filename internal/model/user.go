package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role names seeded at startup.
const (
	RoleSuperAdmin    = "super_admin"
	RoleKetuaYayasan  = "ketua_yayasan"
	RoleKepalaSekolah = "kepala_sekolah"
	RoleTeacher       = "teacher"
	RoleParent        = "parent"
)

// User account statuses. New signups start as pending and only become
// active through an explicit admin approval.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Role struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string      `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        *string     `gorm:"size:100" json:"email,omitempty"`
	PasswordHash string      `gorm:"size:255;not null" json:"-"`
	Name         string      `gorm:"size:100;not null" json:"name"`
	RoleID       *uint       `json:"role_id"`
	Role         Role        `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"role"`
	Status       string      `gorm:"size:20;not null;default:pending" json:"status"`
	Permission   *Permission `gorm:"constraint:OnDelete:CASCADE" json:"permission,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Permission holds the per-user capability flags checked by admin routes.
// Exactly one row exists per user, created all-false at signup.
type Permission struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	CanEditStudents  bool      `gorm:"not null;default:false" json:"can_edit_students"`
	CanEditTeachers  bool      `gorm:"not null;default:false" json:"can_edit_teachers"`
	CanEditGraduates bool      `gorm:"not null;default:false" json:"can_edit_graduates"`
	CanViewReports   bool      `gorm:"not null;default:false" json:"can_view_reports"`
	CanManagePPDB    bool      `gorm:"not null;default:false" json:"can_manage_ppdb"`
	CanManageUsers   bool      `gorm:"not null;default:false" json:"can_manage_users"`
	CanEditWebsite   bool      `gorm:"not null;default:false" json:"can_edit_website"`
	CanViewAnalytics bool      `gorm:"not null;default:false" json:"can_view_analytics"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Permission) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Flag returns the named capability flag. Unknown names are false.
func (p *Permission) Flag(name string) bool {
	switch name {
	case "can_edit_students":
		return p.CanEditStudents
	case "can_edit_teachers":
		return p.CanEditTeachers
	case "can_edit_graduates":
		return p.CanEditGraduates
	case "can_view_reports":
		return p.CanViewReports
	case "can_manage_ppdb":
		return p.CanManagePPDB
	case "can_manage_users":
		return p.CanManageUsers
	case "can_edit_website":
		return p.CanEditWebsite
	case "can_view_analytics":
		return p.CanViewAnalytics
	}
	return false
}
