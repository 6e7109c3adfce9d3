package models

import (
	"errors"
	"fmt"

	"marketplace_admin/pkg/utils"
)

// ErrValidation is returned when a record or request violates an invariant.
// Callers match it with errors.Is; the wrapped message names the offending field.
var ErrValidation = errors.New("validation failed")

func validationErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// validateTags runs the struct-tag rules and wraps failures as ErrValidation.
func validateTags(v interface{}) error {
	if err := utils.ValidateStruct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
