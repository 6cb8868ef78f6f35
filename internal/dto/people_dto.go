package dto

import "time"

// ListQuery is the shared list filter for people admin pages: free-text
// search plus a single program facet.
type ListQuery struct {
	Search  string `form:"search"`
	Program string `form:"program"`
}

type StudentInput struct {
	Name       string     `json:"name" binding:"required,max=100"`
	NIS        *string    `json:"nis"`
	Program    string     `json:"program" binding:"required,oneof=TKA/TPA PAUD/KOBER Diniyah"`
	ClassName  *string    `json:"class_name"`
	ParentName string     `json:"parent_name" binding:"required,max=100"`
	BirthDate  *time.Time `json:"birth_date"`
	Address    *string    `json:"address"`
	PhotoURL   *string    `json:"photo_url"`
}

type TeacherInput struct {
	Name     string  `json:"name" binding:"required,max=100"`
	NIP      *string `json:"nip"`
	Program  string  `json:"program" binding:"required,oneof=TKA/TPA PAUD/KOBER Diniyah All"`
	Position string  `json:"position" binding:"required,max=100"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	PhotoURL *string `json:"photo_url"`
}

type GraduateInput struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Program        string  `json:"program" binding:"required,oneof=TKA/TPA PAUD/KOBER Diniyah"`
	GraduationYear int     `json:"graduation_year" binding:"required,min=2000,max=2100"`
	StudentID      *string `json:"student_id" binding:"omitempty,uuid"`
	Achievement    *string `json:"achievement"`
	CurrentSchool  *string `json:"current_school"`
	PhotoURL       *string `json:"photo_url"`
}
