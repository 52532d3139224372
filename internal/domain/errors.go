package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrNotFound is returned when no entity matches a reference.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference marks a path or body value that is not a well-formed reference.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrMissingField marks a required field that is absent or blank.
	ErrMissingField = errors.New("missing field")
	// ErrConflict marks a request that would violate a uniqueness rule.
	ErrConflict = errors.New("conflict")
	// ErrIDMismatch marks an update body whose id disagrees with the path id.
	ErrIDMismatch = errors.New("id mismatch")
	// ErrDuplicateName is returned by repositories when a unique name index rejects a write.
	ErrDuplicateName = errors.New("duplicate name")
)

// ClientError is a request error whose Message is safe to show to the caller.
// It unwraps to its Kind: ErrInvalidReference, ErrMissingField, ErrConflict
// or ErrIDMismatch.
type ClientError struct {
	Kind    error
	Message string
}

func (e *ClientError) Error() string { return e.Message }

func (e *ClientError) Unwrap() error { return e.Kind }

// InvalidReferenceError reports that field does not hold a well-formed reference.
func InvalidReferenceError(field string) error {
	return &ClientError{Kind: ErrInvalidReference, Message: fmt.Sprintf("The %s is not valid", field)}
}

// InvalidTagsError reports that a tag set holds a malformed reference.
func InvalidTagsError() error {
	return &ClientError{Kind: ErrInvalidReference, Message: "The tags array contains an invalid id"}
}

// IDMismatchError reports an update body id that differs from the path id.
func IDMismatchError(pathID, bodyID string) error {
	return &ClientError{
		Kind:    ErrIDMismatch,
		Message: fmt.Sprintf("Request path id (%s) and request body id (%s) must match", pathID, bodyID),
	}
}

// MissingFieldError reports that field is required but absent.
func MissingFieldError(field string) error {
	return &ClientError{Kind: ErrMissingField, Message: fmt.Sprintf("Missing `%s` in request body", field)}
}

// NameConflictError reports that an entity of the given kind already uses the name.
func NameConflictError(entity string) error {
	return &ClientError{Kind: ErrConflict, Message: fmt.Sprintf("The %s name already exists", entity)}
}

// IsClientError reports whether err carries a caller-facing message and returns it.
func IsClientError(err error) (*ClientError, bool) {
	var ce *ClientError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
