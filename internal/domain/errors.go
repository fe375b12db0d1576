package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a template or history id lookup miss.
	ErrNotFound = errors.New("not found")

	// ErrUnknownField indicates a field identifier outside the closed field set.
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidValue indicates a value outside a field's vocabulary or range.
	ErrInvalidValue = errors.New("invalid field value")
)

// ValidationError reports user-correctable input, such as a blank template name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a lookup miss for an entity id. It matches
// ErrNotFound under errors.Is.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
