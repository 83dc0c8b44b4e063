// Package apperr defines the error kinds the workflow layer reports and the
// controllers translate into HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound means a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate means a uniqueness rule (username, email, club name,
	// competition name, registration pair) was violated.
	ErrDuplicate = errors.New("already exists")
	// ErrNotAuthorized means the acting principal is not a party to the
	// resource or lacks the role for the action.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrConflict means the entity is not in a state that permits the action.
	ErrConflict = errors.New("conflict")
)

// ValidationError reports every failed field of a request at once rather than
// stopping at the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// NewValidation builds a ValidationError with a single field message.
func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Validation is a collecting builder for multi-field validation.
type Validation struct {
	fields map[string]string
}

func (v *Validation) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, field+" is required")
	}
}

func (v *Validation) Add(field, msg string) {
	if v.fields == nil {
		v.fields = map[string]string{}
	}
	v.fields[field] = msg
}

// Err returns the accumulated ValidationError, or nil if every check passed.
func (v *Validation) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

// NotFound wraps ErrNotFound naming the missing entity.
func NotFound(entity string) error {
	return fmt.Errorf("%s: %w", entity, ErrNotFound)
}

// Duplicate wraps ErrDuplicate naming the colliding attribute.
func Duplicate(what string) error {
	return fmt.Errorf("%s: %w", what, ErrDuplicate)
}

// NotAuthorized wraps ErrNotAuthorized with a reason.
func NotAuthorized(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrNotAuthorized)
}

// Conflict wraps ErrConflict with a reason.
func Conflict(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

// IsValidation reports whether err is (or wraps) a ValidationError, returning it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
