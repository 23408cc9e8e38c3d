package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies an error category independently of its message
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNullArgument  ErrorCode = "NULL_ARGUMENT"
	ErrEmptySequence ErrorCode = "EMPTY_SEQUENCE"

	// Markup errors
	ErrInvalidColorPayload ErrorCode = "INVALID_COLOR_PAYLOAD"
	ErrPatternMatch        ErrorCode = "PATTERN_MATCH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// I/O errors
	ErrFileAccess        ErrorCode = "FILE_ACCESS"
	ErrFetch             ErrorCode = "FETCH"
	ErrEncode            ErrorCode = "ENCODE"
	ErrDecode            ErrorCode = "DECODE"
	ErrUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
)

// Error is a structured error carrying a stable code and optional details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. It returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps err with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if any error in err's chain has the given code
func IsErrorCode(err error, code ErrorCode) bool {
	var hexErr *Error
	if errors.As(err, &hexErr) {
		return hexErr.Code == code
	}
	return false
}

// GetErrorCode returns the code of err, or ErrUnknown if err is not an *Error
func GetErrorCode(err error) ErrorCode {
	var hexErr *Error
	if errors.As(err, &hexErr) {
		return hexErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, or nil if err is not an *Error
func GetErrorDetails(err error) map[string]interface{} {
	var hexErr *Error
	if errors.As(err, &hexErr) {
		return hexErr.Details
	}
	return nil
}
