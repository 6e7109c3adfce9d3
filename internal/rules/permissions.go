package rules

import (
	"fmt"
	"slices"

	"marketplace_admin/internal/models"
)

var roleTemplates = map[models.Role]models.RoleTemplate{
	models.RoleAdmin: {
		Role:        models.RoleAdmin,
		DisplayName: "Administrator",
		Description: "Full access to every area of the marketplace",
		// Permissions are filled from the catalog on lookup.
	},
	models.RoleModerator: {
		Role:        models.RoleModerator,
		DisplayName: "Moderator",
		Description: "Moderates products, orders and reviews",
		Permissions: []models.PermissionKey{
			models.PermissionProductManagement,
			models.PermissionOrderManagement,
			models.PermissionReviewManagement,
		},
	},
	models.RoleSupport: {
		Role:        models.RoleSupport,
		DisplayName: "Customer Support",
		Description: "Handles orders, customer accounts and review follow-ups",
		Permissions: []models.PermissionKey{
			models.PermissionOrderManagement,
			models.PermissionUserManagement,
			models.PermissionReviewManagement,
		},
	},
	models.RoleFinance: {
		Role:        models.RoleFinance,
		DisplayName: "Finance",
		Description: "Manages revenue, expenses and financial reports",
		Permissions: []models.PermissionKey{
			models.PermissionFinanceManagement,
			models.PermissionReportView,
		},
	},
}

// AllPermissionKeys returns every known permission in catalog order.
func AllPermissionKeys() []models.PermissionKey {
	return slices.Clone(models.PermissionCatalog)
}

// LookupRoleTemplate returns a copy of the template for role.
// The admin template always carries the whole catalog.
func LookupRoleTemplate(role models.Role) (models.RoleTemplate, error) {
	tmpl, ok := roleTemplates[role]
	if !ok {
		return models.RoleTemplate{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	if role == models.RoleAdmin {
		tmpl.Permissions = AllPermissionKeys()
	}
	tmpl.Permissions = models.NormalizePermissions(tmpl.Permissions)
	return tmpl, nil
}

// RoleTemplates lists the templates in models.Roles order.
func RoleTemplates() []models.RoleTemplate {
	out := make([]models.RoleTemplate, 0, len(models.Roles))
	for _, role := range models.Roles {
		if tmpl, err := LookupRoleTemplate(role); err == nil {
			out = append(out, tmpl)
		}
	}
	return out
}

// ResolvePermissions returns the default permission set of role, sorted.
func ResolvePermissions(role models.Role) ([]models.PermissionKey, error) {
	tmpl, err := LookupRoleTemplate(role)
	if err != nil {
		return nil, err
	}
	return tmpl.Permissions, nil
}

// ApplyRoleTemplate switches input to role. The permission set is replaced by
// the role's template when force is set, when input has no permissions, or when
// input still holds its previous role's template unchanged. A set that was
// curated by hand is kept.
func ApplyRoleTemplate(input models.StaffInput, role models.Role, force bool) (models.StaffInput, error) {
	next, err := ResolvePermissions(role)
	if err != nil {
		return models.StaffInput{}, err
	}

	out := input
	out.Permissions = slices.Clone(input.Permissions)
	out.Role = role

	replace := force || len(input.Permissions) == 0
	if !replace {
		if previous, err := ResolvePermissions(input.Role); err == nil {
			replace = models.SamePermissions(previous, input.Permissions)
		}
	}
	if replace {
		out.Permissions = next
	} else {
		out.Permissions = models.NormalizePermissions(out.Permissions)
	}
	return out, nil
}
