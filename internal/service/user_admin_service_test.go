package service

import (
	"context"
	"errors"
	"testing"

	"anoa.com/yayasanalhikmah/internal/dto"
	"anoa.com/yayasanalhikmah/internal/model"
	"anoa.com/yayasanalhikmah/pkg/apperror"
)

func TestApproveUserGrantsRoleBundle(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedActiveUser(t, repo, "bu_siti", "rahasia123", model.RoleTeacher, model.StatusPending)

	svc := NewUserAdminService(repo)

	resp, err := svc.ApproveUser(context.Background(), user.ID.String(), dto.ApproveUserInput{})
	if err != nil {
		t.Fatalf("ApproveUser: %v", err)
	}

	if resp.User.Status != model.StatusActive {
		t.Fatalf("status = %q, want active", resp.User.Status)
	}
	if resp.Pending {
		t.Fatal("approved user still reported pending")
	}

	perm := resp.Permission
	if !perm.CanEditStudents || !perm.CanViewReports {
		t.Fatal("teacher bundle not applied")
	}
	if perm.CanManageUsers || perm.CanEditWebsite {
		t.Fatal("teacher granted flags outside its bundle")
	}
}

func TestApproveUserWithRoleOverride(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedActiveUser(t, repo, "pak_haji", "rahasia123", model.RoleParent, model.StatusPending)

	svc := NewUserAdminService(repo)

	resp, err := svc.ApproveUser(context.Background(), user.ID.String(), dto.ApproveUserInput{Role: model.RoleKepalaSekolah})
	if err != nil {
		t.Fatalf("ApproveUser: %v", err)
	}

	if resp.User.Role.Name != model.RoleKepalaSekolah {
		t.Fatalf("role = %q, want kepala_sekolah", resp.User.Role.Name)
	}
	if !resp.Permission.CanManagePPDB {
		t.Fatal("kepala_sekolah bundle not applied with override")
	}
}

func TestApproveUserTwiceConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedActiveUser(t, repo, "bu_siti", "rahasia123", model.RoleTeacher, model.StatusPending)

	svc := NewUserAdminService(repo)

	if _, err := svc.ApproveUser(context.Background(), user.ID.String(), dto.ApproveUserInput{}); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	_, err := svc.ApproveUser(context.Background(), user.ID.String(), dto.ApproveUserInput{})
	if err == nil {
		t.Fatal("expected conflict on second approve")
	}
	if apperror.MapErrorToStatus(err) != 409 {
		t.Fatalf("status = %d, want 409", apperror.MapErrorToStatus(err))
	}
}

func TestRejectUserDeletesAccount(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedActiveUser(t, repo, "penipu", "rahasia123", model.RoleParent, model.StatusPending)

	svc := NewUserAdminService(repo)

	if err := svc.RejectUser(context.Background(), user.ID.String()); err != nil {
		t.Fatalf("RejectUser: %v", err)
	}

	if _, err := repo.FindByID(context.Background(), user.ID.String()); err == nil {
		t.Fatal("rejected user still exists")
	}
	if _, ok := repo.permissions[user.ID.String()]; ok {
		t.Fatal("permission row survived rejection")
	}
}

func TestRejectActiveUserConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedActiveUser(t, repo, "guru", "rahasia123", model.RoleTeacher, model.StatusActive)

	svc := NewUserAdminService(repo)

	err := svc.RejectUser(context.Background(), user.ID.String())
	if err == nil {
		t.Fatal("expected conflict rejecting a non-pending user")
	}
	if apperror.MapErrorToStatus(err) != 409 {
		t.Fatalf("status = %d, want 409", apperror.MapErrorToStatus(err))
	}
}

func TestDeleteSuperAdminForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	admin := seedActiveUser(t, repo, "admin", "admin123", model.RoleSuperAdmin, model.StatusActive)

	svc := NewUserAdminService(repo)

	err := svc.DeleteUser(context.Background(), admin.ID.String())
	if !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestSetPermissionsReplacesWholeBundle(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedActiveUser(t, repo, "guru", "rahasia123", model.RoleTeacher, model.StatusActive)
	repo.permissions[user.ID.String()].CanEditStudents = true
	repo.permissions[user.ID.String()].CanViewReports = true

	svc := NewUserAdminService(repo)

	perm, err := svc.SetPermissions(context.Background(), user.ID.String(), dto.PermissionInput{
		CanEditGraduates: true,
	})
	if err != nil {
		t.Fatalf("SetPermissions: %v", err)
	}

	// Every flag follows the input, including the ones flipped off.
	if perm.CanEditStudents || perm.CanViewReports {
		t.Fatal("old flags survived the bundle update")
	}
	if !perm.CanEditGraduates {
		t.Fatal("new flag not applied")
	}
}

func TestCreateUserIsActiveWithBundle(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserAdminService(repo)

	resp, err := svc.CreateUser(context.Background(), dto.CreateUserInput{
		Username: "kepsek",
		Password: "rahasia123",
		Name:     "Kepala Sekolah",
		Role:     model.RoleKepalaSekolah,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	if resp.User.Status != model.StatusActive {
		t.Fatalf("status = %q, want active", resp.User.Status)
	}
	if !resp.Permission.CanManagePPDB || resp.Permission.CanManageUsers {
		t.Fatal("kepala_sekolah bundle not applied on create")
	}
}
