package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Details: map[string]string{"title": "is required", "author": "is required"}}

	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrValidation))
	assert.Equal(t, "validation failed: author is required; title is required", err.Error())

	var ve *ValidationError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &ve))
	assert.Len(t, ve.Details, 2)

	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
	assert.Equal(t, map[string]string{"file": "is required"}, NewValidationError("file", "is required").Details)
}
