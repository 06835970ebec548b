package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Invocation errors
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT"
	ErrFileNotFound    ErrorCode = "FILE_NOT_FOUND"

	// Configuration errors
	ErrConfigMissing ErrorCode = "CONFIG_MISSING"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"

	// Rule errors
	ErrRuleInvalid     ErrorCode = "RULE_INVALID"
	ErrRuleNotCompiled ErrorCode = "RULE_NOT_COMPILED"

	// Processing errors
	ErrIO ErrorCode = "IO_FAILURE"
)

// CleanerError represents a structured error with code and details
type CleanerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CleanerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CleanerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CleanerError) Is(target error) bool {
	var targetErr *CleanerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CleanerError with the given code and message
func New(code ErrorCode, message string) *CleanerError {
	return &CleanerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CleanerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CleanerError {
	return &CleanerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CleanerError
func Wrap(err error, code ErrorCode, message string) *CleanerError {
	if err == nil {
		return nil
	}
	return &CleanerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CleanerError {
	if err == nil {
		return nil
	}
	return &CleanerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CleanerError) WithDetail(key string, value interface{}) *CleanerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cleanerErr *CleanerError
	if errors.As(err, &cleanerErr) {
		return cleanerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CleanerError
func GetErrorCode(err error) ErrorCode {
	var cleanerErr *CleanerError
	if errors.As(err, &cleanerErr) {
		return cleanerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CleanerError
func GetErrorDetails(err error) map[string]interface{} {
	var cleanerErr *CleanerError
	if errors.As(err, &cleanerErr) {
		return cleanerErr.Details
	}
	return nil
}

// IsAbort reports whether err is one of the pre-processing failures that end a
// run before any file is written: a missing argument, a missing source file, a
// missing or unreadable configuration, or a rule that failed validation or
// was used without it.
func IsAbort(err error) bool {
	switch GetErrorCode(err) {
	case ErrMissingArgument, ErrFileNotFound, ErrConfigMissing, ErrConfigParse, ErrRuleInvalid, ErrRuleNotCompiled:
		return true
	}
	return false
}

// Messages returns the message of every CleanerError in err's chain,
// outermost first, followed by the text of a wrapped foreign error.
func Messages(err error) []string {
	var msgs []string
	for err != nil {
		var cleanerErr *CleanerError
		if !errors.As(err, &cleanerErr) {
			msgs = append(msgs, err.Error())
			break
		}
		msgs = append(msgs, cleanerErr.Message)
		err = cleanerErr.Wrapped
	}
	return msgs
}
