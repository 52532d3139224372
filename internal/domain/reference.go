package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// referenceRegex matches a canonical UUID string (8-4-4-4-12 hex).
var referenceRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// IsValidReference reports whether s has the shape of an entity reference.
// It says nothing about whether the entity exists.
func IsValidReference(s string) bool {
	return referenceRegex.MatchString(s)
}

// NewReference returns a fresh server-assigned reference.
func NewReference() string {
	return uuid.NewString()
}

// RequireField returns value trimmed of surrounding whitespace, or a
// MissingField client error naming field when nothing is left.
func RequireField(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", MissingFieldError(field)
	}
	return v, nil
}

// RequireReference returns an InvalidReference client error naming field
// unless ref is well-formed.
func RequireReference(field, ref string) error {
	if !IsValidReference(ref) {
		return InvalidReferenceError(field)
	}
	return nil
}
