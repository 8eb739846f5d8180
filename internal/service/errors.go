package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrIDRequired          = errors.New("id is required")
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateEmail      = errors.New("user with this email already exists")
	ErrUnsupportedFileType = errors.New("only PDF files are allowed")
	ErrFileTooLarge        = errors.New("file exceeds the upload size limit")
	ErrNotFound            = errors.New("not found")
	ErrFileMissing         = errors.New("file not found on storage")
	ErrStorageIO           = errors.New("storage failure")
)

// ValidationError carries per-field messages. errors.Is(err, ErrValidation) holds for it.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidation.Error()
	}
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+" "+e.Details[f])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Details: map[string]string{field: message}}
}
