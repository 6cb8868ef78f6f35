package service

import (
	"testing"

	"anoa.com/yayasanalhikmah/internal/model"
)

func TestBundleForRole(t *testing.T) {
	cases := []struct {
		role    string
		granted []string
		denied  []string
	}{
		{
			role: model.RoleSuperAdmin,
			granted: []string{
				"can_edit_students", "can_edit_teachers", "can_edit_graduates",
				"can_view_reports", "can_manage_ppdb", "can_manage_users",
				"can_edit_website", "can_view_analytics",
			},
		},
		{
			role: model.RoleKetuaYayasan,
			granted: []string{
				"can_edit_students", "can_manage_ppdb", "can_edit_website", "can_view_analytics",
			},
			denied: []string{"can_manage_users"},
		},
		{
			role:    model.RoleKepalaSekolah,
			granted: []string{"can_edit_students", "can_manage_ppdb"},
			denied:  []string{"can_manage_users", "can_edit_website", "can_view_analytics"},
		},
		{
			role:    model.RoleTeacher,
			granted: []string{"can_edit_students", "can_view_reports"},
			denied:  []string{"can_edit_teachers", "can_manage_ppdb", "can_manage_users"},
		},
		{
			role:    model.RoleParent,
			granted: []string{"can_view_reports"},
			denied:  []string{"can_edit_students", "can_manage_users"},
		},
	}

	for _, tc := range cases {
		bundle := bundleForRole(tc.role)
		for _, flag := range tc.granted {
			if on, _ := bundle[flag].(bool); !on {
				t.Errorf("%s: flag %s not granted", tc.role, flag)
			}
		}
		for _, flag := range tc.denied {
			if on, _ := bundle[flag].(bool); on {
				t.Errorf("%s: flag %s unexpectedly granted", tc.role, flag)
			}
		}
	}
}

func TestBundleForUnknownRoleIsEmpty(t *testing.T) {
	if bundle := bundleForRole("satpam"); len(bundle) != 0 {
		t.Fatalf("unknown role bundle = %v, want empty", bundle)
	}
}

func TestClassifyLegacyPending(t *testing.T) {
	allFalse := &model.Permission{}
	if !classifyLegacyPending(allFalse, model.RoleTeacher) {
		t.Fatal("all-false non-admin row should classify as pending")
	}

	if classifyLegacyPending(allFalse, model.RoleSuperAdmin) {
		t.Fatal("super admin never classifies as pending")
	}

	withFlag := &model.Permission{CanViewReports: true}
	if classifyLegacyPending(withFlag, model.RoleParent) {
		t.Fatal("row with a legacy flag set is not pending")
	}

	// Only the five original flags decide: a newer flag alone keeps the
	// row pending.
	newFlagOnly := &model.Permission{CanViewAnalytics: true}
	if !classifyLegacyPending(newFlagOnly, model.RoleTeacher) {
		t.Fatal("newer flags must not affect legacy classification")
	}

	if classifyLegacyPending(nil, model.RoleTeacher) {
		t.Fatal("nil permission row is not pending")
	}
}
