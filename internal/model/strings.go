package model

import "strings"

// NullIfBlank trims s and returns nil when nothing is left.
func NullIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
