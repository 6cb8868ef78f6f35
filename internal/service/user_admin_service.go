package service

import (
	"context"
	"errors"
	"fmt"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/internal/repository"
	"anoa.com/yayasanalhikmah/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserAdminService interface {
	CreateUser(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context) ([]*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id string, input dto.UpdateUserInput) (*dto.UserResponse, error)
	// ApproveUser activates a pending account and grants the role bundle
	// in one transaction.
	ApproveUser(ctx context.Context, id string, input dto.ApproveUserInput) (*dto.UserResponse, error)
	// RejectUser deletes the account and its permission row. Irreversible.
	RejectUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error

	GetPermissions(ctx context.Context, userID string) (*model.Permission, error)
	SetPermissions(ctx context.Context, userID string, input dto.PermissionInput) (*model.Permission, error)
}

type userAdminService struct {
	repo repository.UserRepository
}

func NewUserAdminService(repo repository.UserRepository) UserAdminService {
	return &userAdminService{repo: repo}
}

func (s *userAdminService) CreateUser(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error) {
	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		return nil, errors.New("username sudah digunakan")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role, err := s.repo.FindRoleByName(ctx, input.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %s tidak ditemukan", input.Role)
		}
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roleID := role.ID
	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Name:         input.Name,
		RoleID:       &roleID,
		Status:       model.StatusActive, // admin-created accounts skip approval
	}

	perm := permissionFromBundle(bundleForRole(input.Role))

	if err := s.repo.Create(ctx, user, perm); err != nil {
		return nil, err
	}

	created, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	created.PasswordHash = ""

	return s.toResponse(created), nil
}

func (s *userAdminService) GetAllUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	var response []*dto.UserResponse
	for _, u := range users {
		u.PasswordHash = ""
		response = append(response, s.toResponse(u))
	}

	return response, nil
}

func (s *userAdminService) UpdateUser(ctx context.Context, id string, input dto.UpdateUserInput) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" && input.Username != user.Username {
		if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
			return nil, errors.New("username sudah digunakan")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Username = input.Username
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != nil {
		user.Email = input.Email
	}
	if input.Status != "" {
		user.Status = input.Status
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.PasswordHash = ""

	return s.toResponse(updated), nil
}

func (s *userAdminService) ApproveUser(ctx context.Context, id string, input dto.ApproveUserInput) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Status != model.StatusPending {
		return nil, apperror.New(409, "user sudah diproses", apperror.ErrConflict)
	}

	roleName := user.Role.Name
	var roleID *uint
	if input.Role != "" && input.Role != roleName {
		role, err := s.repo.FindRoleByName(ctx, input.Role)
		if err != nil {
			return nil, fmt.Errorf("role %s tidak ditemukan", input.Role)
		}
		roleName = role.Name
		roleID = &role.ID
	}

	if err := s.repo.Approve(ctx, id, roleID, bundleForRole(roleName)); err != nil {
		return nil, err
	}

	approved, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	approved.PasswordHash = ""

	return s.toResponse(approved), nil
}

func (s *userAdminService) RejectUser(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Status != model.StatusPending {
		return apperror.New(409, "user sudah diproses", apperror.ErrConflict)
	}

	return s.repo.Delete(ctx, id)
}

func (s *userAdminService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role.Name == model.RoleSuperAdmin {
		return apperror.New(403, "super admin tidak dapat dihapus", apperror.ErrForbidden)
	}

	return s.repo.Delete(ctx, id)
}

func (s *userAdminService) GetPermissions(ctx context.Context, userID string) (*model.Permission, error) {
	return s.repo.FindPermission(ctx, userID)
}

func (s *userAdminService) SetPermissions(ctx context.Context, userID string, input dto.PermissionInput) (*model.Permission, error) {
	updates := map[string]interface{}{
		"can_edit_students":  input.CanEditStudents,
		"can_edit_teachers":  input.CanEditTeachers,
		"can_edit_graduates": input.CanEditGraduates,
		"can_view_reports":   input.CanViewReports,
		"can_manage_ppdb":    input.CanManagePPDB,
		"can_manage_users":   input.CanManageUsers,
		"can_edit_website":   input.CanEditWebsite,
		"can_view_analytics": input.CanViewAnalytics,
	}

	if err := s.repo.UpdatePermission(ctx, userID, updates); err != nil {
		return nil, err
	}

	return s.repo.FindPermission(ctx, userID)
}

func (s *userAdminService) toResponse(user *model.User) *dto.UserResponse {
	pending := user.Status == model.StatusPending ||
		(user.Status == "" && classifyLegacyPending(user.Permission, user.Role.Name))

	return &dto.UserResponse{
		User:       user,
		Permission: user.Permission,
		Pending:    pending,
	}
}

func permissionFromBundle(bundle map[string]interface{}) *model.Permission {
	perm := &model.Permission{}
	for flag, v := range bundle {
		on, _ := v.(bool)
		if !on {
			continue
		}
		switch flag {
		case "can_edit_students":
			perm.CanEditStudents = true
		case "can_edit_teachers":
			perm.CanEditTeachers = true
		case "can_edit_graduates":
			perm.CanEditGraduates = true
		case "can_view_reports":
			perm.CanViewReports = true
		case "can_manage_ppdb":
			perm.CanManagePPDB = true
		case "can_manage_users":
			perm.CanManageUsers = true
		case "can_edit_website":
			perm.CanEditWebsite = true
		case "can_view_analytics":
			perm.CanViewAnalytics = true
		}
	}
	return perm
}
