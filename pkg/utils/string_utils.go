package utils

import "strings"

// ContainsFold reports whether substr occurs in any of fields, ignoring case.
// An empty substr matches everything.
func ContainsFold(substr string, fields ...string) bool {
	needle := strings.ToLower(strings.TrimSpace(substr))
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
