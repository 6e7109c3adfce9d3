package models

import (
	"slices"
)

// PermissionKey is a coarse-grained capability tag shown next to staff accounts.
type PermissionKey string

const (
	PermissionStoreManagement     PermissionKey = "store_management"
	PermissionProductManagement   PermissionKey = "product_management"
	PermissionOrderManagement     PermissionKey = "order_management"
	PermissionReviewManagement    PermissionKey = "review_management"
	PermissionPromotionManagement PermissionKey = "promotion_management"
	PermissionFinanceManagement   PermissionKey = "finance_management"
	PermissionStaffManagement     PermissionKey = "staff_management"
	PermissionUserManagement      PermissionKey = "user_management"
	PermissionReportView          PermissionKey = "report_view"
	PermissionSystemSettings      PermissionKey = "system_settings"
)

// PermissionCatalog lists every known PermissionKey in display order.
// A new key must be added here to become grantable.
var PermissionCatalog = []PermissionKey{
	PermissionStoreManagement,
	PermissionProductManagement,
	PermissionOrderManagement,
	PermissionReviewManagement,
	PermissionPromotionManagement,
	PermissionFinanceManagement,
	PermissionStaffManagement,
	PermissionUserManagement,
	PermissionReportView,
	PermissionSystemSettings,
}

// IsValidPermission reports whether key is part of PermissionCatalog.
func IsValidPermission(key PermissionKey) bool {
	return slices.Contains(PermissionCatalog, key)
}

// Role is the staff role a permission template is keyed by.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleSupport   Role = "support"
	RoleFinance   Role = "finance"
)

// Roles lists the staff roles in display order.
var Roles = []Role{RoleAdmin, RoleModerator, RoleSupport, RoleFinance}

// IsValidRole checks if the provided role is one of Roles.
func IsValidRole(role Role) bool {
	return slices.Contains(Roles, role)
}

// RoleTemplate is the default permission set granted to a role.
type RoleTemplate struct {
	Role        Role            `json:"role"`
	DisplayName string          `json:"display_name"`
	Description string          `json:"description"`
	Permissions []PermissionKey `json:"permissions"`
}

// NormalizePermissions returns a sorted copy of keys with duplicates removed.
// The result is never nil so it encodes as an empty JSON array.
func NormalizePermissions(keys []PermissionKey) []PermissionKey {
	out := make([]PermissionKey, len(keys))
	copy(out, keys)
	slices.Sort(out)
	return slices.Compact(out)
}

// SamePermissions compares two permission sets ignoring order and duplicates.
func SamePermissions(a, b []PermissionKey) bool {
	return slices.Equal(NormalizePermissions(a), NormalizePermissions(b))
}
