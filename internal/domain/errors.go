package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrSummaryContract = errors.New("summary contract violated")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// StatusError reports a status transition attempted from the wrong current
// status. It carries enough detail for the calling agent to self-correct.
type StatusError struct {
	Current  InquiryStatus
	Required []InquiryStatus
}

func (e *StatusError) Error() string {
	required := make([]string, len(e.Required))
	for i, s := range e.Required {
		required[i] = fmt.Sprintf("'%s'", s)
	}
	return fmt.Sprintf("inquiry is in status '%s', operation requires status %s",
		e.Current, strings.Join(required, " or "))
}

func (e *StatusError) Unwrap() error { return ErrConflict }

// SummaryContractError reports a proposed summary that does not contain the
// existing summary. Existing holds the stored text so the caller can retry
// with a corrected append.
type SummaryContractError struct {
	Existing string
}

func (e *SummaryContractError) Error() string {
	return "proposed summary does not contain the existing summary"
}

func (e *SummaryContractError) Unwrap() error { return ErrSummaryContract }
