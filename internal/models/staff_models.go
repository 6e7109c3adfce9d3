package models

import "time"

// StaffStatus is the account state of a staff member.
type StaffStatus string

const (
	StaffStatusActive    StaffStatus = "active"
	StaffStatusInactive  StaffStatus = "inactive"
	StaffStatusSuspended StaffStatus = "suspended"
)

// IsValidStaffStatus checks if the provided status is a known StaffStatus.
func IsValidStaffStatus(status StaffStatus) bool {
	switch status {
	case StaffStatusActive, StaffStatusInactive, StaffStatusSuspended:
		return true
	default:
		return false
	}
}

// StaffMember represents an admin panel operator.
type StaffMember struct {
	ID          int64           `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name" validate:"required"`
	Email       string          `json:"email" yaml:"email" validate:"required,email"`
	Role        Role            `json:"role" yaml:"role" validate:"required"`
	Department  string          `json:"department" yaml:"department"`
	Permissions []PermissionKey `json:"permissions" yaml:"permissions"`
	Status      StaffStatus     `json:"status" yaml:"status"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty" yaml:"last_login_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at" yaml:"created_at"`
}

// StaffInput is the editable part of a staff member as held by a form.
type StaffInput struct {
	Name        string
	Email       string
	Role        Role
	Department  string
	Permissions []PermissionKey
}

func (s StaffMember) RecordID() int64            { return s.ID }
func (s StaffMember) RecordCreatedAt() time.Time { return s.CreatedAt }

func (s StaffMember) WithIdentity(id int64, createdAt time.Time) StaffMember {
	s.ID = id
	s.CreatedAt = createdAt
	return s
}

// Clone returns a deep copy.
func (s StaffMember) Clone() StaffMember {
	if s.Permissions != nil {
		s.Permissions = append([]PermissionKey(nil), s.Permissions...)
	}
	if s.LastLoginAt != nil {
		at := *s.LastLoginAt
		s.LastLoginAt = &at
	}
	return s
}

// Validate checks field rules and enum membership.
func (s StaffMember) Validate() error {
	if err := validateTags(s); err != nil {
		return err
	}
	if !IsValidRole(s.Role) {
		return validationErrorf("unknown role %q", s.Role)
	}
	if !IsValidStaffStatus(s.Status) {
		return validationErrorf("unknown staff status %q", s.Status)
	}
	for _, p := range s.Permissions {
		if !IsValidPermission(p) {
			return validationErrorf("unknown permission %q", p)
		}
	}
	return nil
}
