package errors

import (
	"errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		checkFn  func(error) bool
		expected bool
	}{
		{
			name:     "ErrNotFound is recognized",
			err:      ErrNotFound,
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Wrapped ErrNotFound is recognized",
			err:      errors.Join(ErrNotFound, errors.New("additional context")),
			checkFn:  IsNotFound,
			expected: true,
		},
		{
			name:     "Different error is not ErrNotFound",
			err:      ErrAmbiguous,
			checkFn:  IsNotFound,
			expected: false,
		},
		{
			name:     "ErrAmbiguous is recognized",
			err:      ErrAmbiguous,
			checkFn:  IsAmbiguous,
			expected: true,
		},
		{
			name:     "ErrInvalidInput is recognized",
			err:      ErrInvalidInput,
			checkFn:  IsInvalidInput,
			expected: true,
		},
		{
			name:     "Wrapped ErrDelegateUnavailable is recognized",
			err:      NewDelegateError("lmstudio", "/v1/chat/completions", 0, ErrDelegateUnavailable),
			checkFn:  IsDelegateUnavailable,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.checkFn(tt.err)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("message", "must not be empty")

	if err.Field != "message" {
		t.Errorf("expected field 'message', got '%s'", err.Field)
	}

	expected := "validation failed on message: must not be empty"
	if err.Error() != expected {
		t.Errorf("expected error '%s', got '%s'", expected, err.Error())
	}
}

func TestDelegateError(t *testing.T) {
	baseErr := errors.New("connection refused")
	err := NewDelegateError("lmstudio", "/v1/chat/completions", 502, baseErr)

	if err.Provider != "lmstudio" {
		t.Errorf("expected provider 'lmstudio', got '%s'", err.Provider)
	}

	if err.StatusCode != 502 {
		t.Errorf("expected status code 502, got %d", err.StatusCode)
	}

	if !errors.Is(err, baseErr) {
		t.Error("expected error to wrap base error")
	}

	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}

	// Without status code
	err2 := NewDelegateError("lmstudio", "/v1/completions", 0, baseErr)
	if err2.Error() == "" {
		t.Error("expected non-empty error message")
	}
}
