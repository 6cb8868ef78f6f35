package service

import "anoa.com/yayasanalhikmah/internal/model"

// legacyFlags are the five original capability flags. Rows written before
// the explicit status column existed encode "awaiting approval" as all five
// being false for a non-super-admin; classifyLegacyPending keeps that rule
// for migrating such rows.
var legacyFlags = []string{
	"can_edit_students",
	"can_edit_teachers",
	"can_edit_graduates",
	"can_view_reports",
	"can_manage_ppdb",
}

func classifyLegacyPending(perm *model.Permission, roleName string) bool {
	if perm == nil {
		return false
	}
	if roleName == model.RoleSuperAdmin {
		return false
	}

	for _, flag := range legacyFlags {
		if perm.Flag(flag) {
			return false
		}
	}
	return true
}

// bundleForRole returns the capability flags granted when a user with the
// given role is approved. Applied as a single UPDATE, never flag by flag.
func bundleForRole(roleName string) map[string]interface{} {
	switch roleName {
	case model.RoleSuperAdmin:
		return map[string]interface{}{
			"can_edit_students":  true,
			"can_edit_teachers":  true,
			"can_edit_graduates": true,
			"can_view_reports":   true,
			"can_manage_ppdb":    true,
			"can_manage_users":   true,
			"can_edit_website":   true,
			"can_view_analytics": true,
		}
	case model.RoleKetuaYayasan:
		return map[string]interface{}{
			"can_edit_students":  true,
			"can_edit_teachers":  true,
			"can_edit_graduates": true,
			"can_view_reports":   true,
			"can_manage_ppdb":    true,
			"can_edit_website":   true,
			"can_view_analytics": true,
		}
	case model.RoleKepalaSekolah:
		return map[string]interface{}{
			"can_edit_students":  true,
			"can_edit_teachers":  true,
			"can_edit_graduates": true,
			"can_view_reports":   true,
			"can_manage_ppdb":    true,
		}
	case model.RoleTeacher:
		return map[string]interface{}{
			"can_edit_students": true,
			"can_view_reports":  true,
		}
	case model.RoleParent:
		return map[string]interface{}{
			"can_view_reports": true,
		}
	}
	return map[string]interface{}{}
}
