// Package rules holds the pure decision logic shared by the admin pages:
// role permission templates, promotion eligibility and discounts, and the
// status transition tables. Nothing here mutates a store.
package rules

import (
	"errors"
	"fmt"

	"marketplace_admin/internal/models"
)

var (
	// ErrUnknownRole is returned when a role has no permission template.
	ErrUnknownRole = errors.New("unknown role")

	// ErrUsageLimitExceeded is returned when a promotion is already used max_usage times.
	ErrUsageLimitExceeded = errors.New("promotion usage limit exceeded")

	// ErrInvalidTransition is returned for a status change the state machine does not allow.
	// It also matches models.ErrValidation.
	ErrInvalidTransition = fmt.Errorf("%w: status transition not allowed", models.ErrValidation)
)
