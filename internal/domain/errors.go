// Package domain contains the advisor book entities, the thresholds the
// assistant and analytics reason with, and the pure calculations over them.
//
// Errors here describe business failures. The HTTP adapter maps them to
// status codes; nothing in this package knows about transport.
package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is. The typed errors below unwrap to them.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// Entity names used in error messages.
const (
	EntityClient         = "client"
	EntityGoal           = "goal"
	EntityModelPortfolio = "model portfolio"
)

// NotFoundError names the missing entity and, when known, its id.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError returns a *NotFoundError.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a write that clashes with stored state, such as a
// duplicate id.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError returns a *ConflictError.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError rejects one field. Value is the rejected input, kept for
// logs; it never appears in Error.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// FieldErrors returns the error as a field to message map for the API
// envelope. It is empty when no field is named.
func (e *ValidationError) FieldErrors() map[string]string {
	if e.Field == "" {
		return nil
	}

	return map[string]string{e.Field: e.Message}
}

// NewValidationError returns a *ValidationError for field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue is NewValidationError recording the rejected value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
