package services

import (
	"fmt"
	"time"

	"marketplace_admin/internal/models"
	"marketplace_admin/internal/reports"
	"marketplace_admin/internal/repositories"
	"marketplace_admin/internal/rules"
	"marketplace_admin/pkg/utils"
)

// --- StaffMember DTOs ---
type CreateStaffMemberRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Email       string                 `json:"email" binding:"required,email"`
	Role        models.Role            `json:"role" binding:"required"`
	Department  string                 `json:"department"`
	Permissions []models.PermissionKey `json:"permissions"`
	Status      models.StaffStatus     `json:"status"`
}

// UpdateStaffMemberRequest leaves nil fields unchanged. A role change moves
// the permissions to the new role's template unless they were curated by hand;
// ResetPermissions forces the template.
type UpdateStaffMemberRequest struct {
	Name             *string                `json:"name"`
	Email            *string                `json:"email"`
	Role             *models.Role           `json:"role"`
	Department       *string                `json:"department"`
	Permissions      []models.PermissionKey `json:"permissions"`
	ResetPermissions bool                   `json:"reset_permissions"`
}

type StaffFilter struct {
	Search string
	Role   models.Role
	Status models.StaffStatus
}

// --- StaffService Interface ---
type StaffService interface {
	CreateStaffMember(req CreateStaffMemberRequest) (models.StaffMember, error)
	GetStaffMember(id int64) (models.StaffMember, error)
	ListStaffMembers(filter StaffFilter) []models.StaffMember
	UpdateStaffMember(id int64, req UpdateStaffMemberRequest) (models.StaffMember, error)
	SetStaffStatus(id int64, status models.StaffStatus) (models.StaffMember, error)
	ToggleStaffStatus(id int64) (models.StaffMember, error)
	RecordLogin(id int64, at time.Time) (models.StaffMember, error)
	DeleteStaffMember(id int64) error
	GetStaffStats() models.StaffStats
}

// --- staffService Implementation ---
type staffService struct {
	store *repositories.RecordStore[models.StaffMember]
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(store *repositories.RecordStore[models.StaffMember]) StaffService {
	return &staffService{store: store}
}

// NewStaffStore builds the staff collection. New members start active.
func NewStaffStore(clock func() time.Time) *repositories.RecordStore[models.StaffMember] {
	return repositories.NewRecordStore("staff member",
		repositories.WithClock[models.StaffMember](clock),
		repositories.WithDefaults(func(s models.StaffMember) models.StaffMember {
			if s.Status == "" {
				s.Status = models.StaffStatusActive
			}
			s.Permissions = models.NormalizePermissions(s.Permissions)
			return s
		}),
	)
}

func staffInput(s models.StaffMember) models.StaffInput {
	return models.StaffInput{
		Name:        s.Name,
		Email:       s.Email,
		Role:        s.Role,
		Department:  s.Department,
		Permissions: s.Permissions,
	}
}

func applyStaffInput(s models.StaffMember, in models.StaffInput) models.StaffMember {
	s.Name = in.Name
	s.Email = in.Email
	s.Role = in.Role
	s.Department = in.Department
	s.Permissions = in.Permissions
	return s
}

func (s *staffService) CreateStaffMember(req CreateStaffMemberRequest) (models.StaffMember, error) {
	input, err := rules.ApplyRoleTemplate(models.StaffInput{
		Name:        req.Name,
		Email:       req.Email,
		Role:        req.Role,
		Department:  req.Department,
		Permissions: req.Permissions,
	}, req.Role, false)
	if err != nil {
		return models.StaffMember{}, err
	}

	created, err := s.store.Create(applyStaffInput(models.StaffMember{Status: req.Status}, input))
	if err != nil {
		return models.StaffMember{}, fmt.Errorf("failed to create staff member: %w", err)
	}
	utils.LogDebug("staff member created", map[string]interface{}{"id": created.ID, "role": created.Role})
	return created, nil
}

func (s *staffService) GetStaffMember(id int64) (models.StaffMember, error) {
	return s.store.Get(id)
}

func (s *staffService) ListStaffMembers(filter StaffFilter) []models.StaffMember {
	return s.store.List(func(m models.StaffMember) bool {
		if filter.Role != "" && m.Role != filter.Role {
			return false
		}
		if filter.Status != "" && m.Status != filter.Status {
			return false
		}
		return filter.Search == "" || utils.ContainsFold(filter.Search, m.Name, m.Email, m.Department)
	})
}

func (s *staffService) UpdateStaffMember(id int64, req UpdateStaffMemberRequest) (models.StaffMember, error) {
	if req.Role != nil {
		if _, err := rules.ResolvePermissions(*req.Role); err != nil {
			return models.StaffMember{}, err
		}
	}

	updated, err := s.store.Modify(id, func(current models.StaffMember) (models.StaffMember, error) {
		input := staffInput(current)
		if req.Name != nil {
			input.Name = *req.Name
		}
		if req.Email != nil {
			input.Email = *req.Email
		}
		if req.Department != nil {
			input.Department = *req.Department
		}

		role := current.Role
		if req.Role != nil {
			role = *req.Role
		}
		if role != current.Role || req.ResetPermissions {
			var err error
			if input, err = rules.ApplyRoleTemplate(input, role, req.ResetPermissions); err != nil {
				return current, err
			}
		}
		if req.Permissions != nil {
			input.Permissions = models.NormalizePermissions(req.Permissions)
		}
		return applyStaffInput(current, input), nil
	})
	if err != nil {
		return models.StaffMember{}, fmt.Errorf("failed to update staff member: %w", err)
	}
	utils.LogDebug("staff member updated", map[string]interface{}{"id": id})
	return updated, nil
}

func (s *staffService) SetStaffStatus(id int64, status models.StaffStatus) (models.StaffMember, error) {
	if !models.IsValidStaffStatus(status) {
		return models.StaffMember{}, fmt.Errorf("%w: unknown staff status %q", models.ErrValidation, status)
	}
	updated, err := s.store.Modify(id, func(current models.StaffMember) (models.StaffMember, error) {
		if err := rules.CheckStaffTransition(current.Status, status); err != nil {
			return current, err
		}
		current.Status = status
		return current, nil
	})
	if err != nil {
		return models.StaffMember{}, fmt.Errorf("failed to change staff status: %w", err)
	}
	utils.LogDebug("staff status changed", map[string]interface{}{"id": id, "status": status})
	return updated, nil
}

func (s *staffService) ToggleStaffStatus(id int64) (models.StaffMember, error) {
	updated, err := s.store.Modify(id, func(current models.StaffMember) (models.StaffMember, error) {
		next, err := rules.ToggleStaffStatus(current.Status)
		if err != nil {
			return current, err
		}
		current.Status = next
		return current, nil
	})
	if err != nil {
		return models.StaffMember{}, fmt.Errorf("failed to toggle staff status: %w", err)
	}
	return updated, nil
}

func (s *staffService) RecordLogin(id int64, at time.Time) (models.StaffMember, error) {
	return s.store.Update(id, func(current models.StaffMember) models.StaffMember {
		current.LastLoginAt = &at
		return current
	})
}

func (s *staffService) DeleteStaffMember(id int64) error {
	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	utils.LogDebug("staff member deleted", map[string]interface{}{"id": id})
	return nil
}

func (s *staffService) GetStaffStats() models.StaffStats {
	all := s.store.List(nil)
	return models.StaffStats{
		Total:    len(all),
		ByStatus: reports.StatusCounts(all, func(m models.StaffMember) models.StaffStatus { return m.Status }),
		ByRole:   reports.StatusCounts(all, func(m models.StaffMember) models.Role { return m.Role }),
	}
}
