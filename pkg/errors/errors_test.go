// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and the code-only equality contract

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/stash/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "file_not_exist",
			code:    errors.ErrFileNotExist,
			message: "no file at location",
			wantStr: "[FILE_DOES_NOT_EXIST] no file at location",
		},
		{
			name:    "invalid_directory",
			code:    errors.ErrInvalidDirectory,
			message: "cannot resolve base storage directory",
			wantStr: "[INVALID_DIRECTORY] cannot resolve base storage directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk full")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSave, "failed to write object")

		if err.Code != errors.ErrSave {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrSave)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[SAVE_FAILED] failed to write object: disk full"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrSave, "failed to write object")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapped_cause_reachable_via_errors_Is", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrDeletion, "failed to remove object")
		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is() should find the wrapped cause")
		}
	})
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrDeletion, "error 1")
	err2 := errors.Wrap(stderrors.New("cause"), errors.ErrDeletion, "error 2")
	err3 := errors.New(errors.ErrSave, "error 3")

	t.Run("same_code_is_equal_ignoring_cause", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code regardless of wrapped cause")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err2, err1) {
			t.Error("errors.Is() should work with StoreError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrFileNotExist, "not found"),
			code:     errors.ErrFileNotExist,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrFileNotExist, "not found"),
			code:     errors.ErrGetData,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrGetData, "read failed"),
			code:     errors.ErrGetData,
			expected: true,
		},
		{
			name:     "non_store_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrFileNotExist,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrFileNotExist,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "store_error",
			err:      errors.New(errors.ErrObjectConversion, "bad bytes"),
			expected: errors.ErrObjectConversion,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}
