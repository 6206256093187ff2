package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "required")
	if got := err.Error(); got != "validation: title: required" {
		t.Errorf("Error(): got %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("expected errors.Is(err, ErrValidation)")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "required"},
		{Field: "images", Message: "url required"},
	})
	if got := err.Error(); got != "validation: 2 errors" {
		t.Errorf("Error(): got %q", got)
	}
}

func TestSentinelErrors_SurviveWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("slide %q: %w", "Welcome", ErrAlreadyExists)
	if !errors.Is(wrapped, ErrAlreadyExists) {
		t.Error("expected errors.Is(wrapped, ErrAlreadyExists)")
	}
	if errors.Is(wrapped, ErrInternal) {
		t.Error("conflict must not match ErrInternal")
	}
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleAdmin, RoleUser} {
		if !r.Valid() {
			t.Errorf("Role %q should be valid", r)
		}
	}
	if Role("SUPERUSER").Valid() {
		t.Error("unknown role should not be valid")
	}
}
