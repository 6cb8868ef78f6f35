package dto

import "anoa.com/yayasanalhikmah/internal/model"

type CreateUserInput struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required,max=100"`
	Role     string  `json:"role" binding:"required"`
}

type UpdateUserInput struct {
	Username string  `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Name     string  `json:"name"`
	Status   string  `json:"status" binding:"omitempty,oneof=pending active inactive"`
	Password string  `json:"password" binding:"omitempty,min=8"`
}

type ApproveUserInput struct {
	// Optional role override applied together with the approval.
	Role string `json:"role" binding:"omitempty,oneof=ketua_yayasan kepala_sekolah teacher parent"`
}

type PermissionInput struct {
	CanEditStudents  bool `json:"can_edit_students"`
	CanEditTeachers  bool `json:"can_edit_teachers"`
	CanEditGraduates bool `json:"can_edit_graduates"`
	CanViewReports   bool `json:"can_view_reports"`
	CanManagePPDB    bool `json:"can_manage_ppdb"`
	CanManageUsers   bool `json:"can_manage_users"`
	CanEditWebsite   bool `json:"can_edit_website"`
	CanViewAnalytics bool `json:"can_view_analytics"`
}

type UserResponse struct {
	User       *model.User       `json:"user"`
	Permission *model.Permission `json:"permission,omitempty"`
	Pending    bool              `json:"pending"`
}
