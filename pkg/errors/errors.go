package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a distinguishable failure mode of the store.
// The set is closed: every failure a caller can observe carries exactly
// one of these codes.
type ErrorCode string

const (
	// ErrUnknown is returned by GetErrorCode for errors that did not
	// originate in this package.
	ErrUnknown ErrorCode = "UNKNOWN"

	// ErrInvalidDirectory means the base storage directory could not be
	// resolved.
	ErrInvalidDirectory ErrorCode = "INVALID_DIRECTORY"

	// ErrDataConversion means the object -> bytes conversion declined.
	ErrDataConversion ErrorCode = "DATA_CONVERSION_FAILED"

	// ErrObjectConversion means the bytes -> object conversion declined.
	ErrObjectConversion ErrorCode = "OBJECT_CONVERSION_FAILED"

	// ErrFileNotExist means the existence check failed before a read.
	ErrFileNotExist ErrorCode = "FILE_DOES_NOT_EXIST"

	// ErrGetData means the underlying read raised an I/O failure.
	ErrGetData ErrorCode = "GET_DATA_FAILED"

	// ErrSave means the underlying write raised an I/O failure.
	ErrSave ErrorCode = "SAVE_FAILED"

	// ErrDeletion means the underlying remove raised an I/O failure.
	ErrDeletion ErrorCode = "DELETION_FAILED"
)

// StoreError is a structured error with a stable code, a message, and
// an optional wrapped cause.
type StoreError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface.
func (e *StoreError) Unwrap() error {
	return e.Wrapped
}

// Is implements the errors.Is interface. Two store errors are equal
// when their codes match; wrapped causes are never compared.
func (e *StoreError) Is(target error) bool {
	var targetErr *StoreError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StoreError with the given code and message.
func New(code ErrorCode, message string) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StoreError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *StoreError {
	return &StoreError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StoreError. Wrapping nil returns
// nil.
func Wrap(err error, code ErrorCode, message string) *StoreError {
	if err == nil {
		return nil
	}
	return &StoreError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StoreError {
	if err == nil {
		return nil
	}
	return &StoreError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error.
func (e *StoreError) WithDetail(key string, value interface{}) *StoreError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code.
func IsErrorCode(err error, code ErrorCode) bool {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// it is not a StoreError.
func GetErrorCode(err error) ErrorCode {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return ErrUnknown
}
