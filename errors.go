package domform

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	ErrNilContainer  = errors.New("container is required")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrManagerClosed = errors.New("manager is closed")
	ErrSizeLimit     = errors.New("size limit exceeded")
)

// FormError represents a form-state error with essential context
type FormError struct {
	Op      string `json:"op"`      // Operation that failed
	Form    FormID `json:"form"`    // Form scope, when known
	Field   string `json:"field"`   // Field path, when relevant
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *FormError) Error() string {
	switch {
	case e.Field != "" && e.Form != "":
		return fmt.Sprintf("domform %s failed for field '%s' of form '%s': %s", e.Op, e.Field, e.Form, e.Message)
	case e.Field != "":
		return fmt.Sprintf("domform %s failed for field '%s': %s", e.Op, e.Field, e.Message)
	case e.Form != "":
		return fmt.Sprintf("domform %s failed for form '%s': %s", e.Op, e.Form, e.Message)
	default:
		return fmt.Sprintf("domform %s failed: %s", e.Op, e.Message)
	}
}

// Unwrap returns the underlying error for error chain support
func (e *FormError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *FormError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*FormError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// newOperationError creates a FormError for operation failures
func newOperationError(operation, message string, err error) error {
	return &FormError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// newConfigError creates a FormError for invalid configuration values
func newConfigError(field, message string) error {
	return &FormError{
		Op:      "validate_config",
		Field:   field,
		Message: message,
		Err:     ErrInvalidConfig,
	}
}

// newSizeLimitError creates a FormError for a value above its limit
func newSizeLimitError(operation, field string, actual, limit int64) error {
	return &FormError{
		Op:      operation,
		Field:   field,
		Message: fmt.Sprintf("size %d exceeds limit %d", actual, limit),
		Err:     ErrSizeLimit,
	}
}

// WrapError wraps an error with additional context
func WrapError(err error, op, message string) error {
	if err == nil {
		return nil
	}
	return &FormError{
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// WrapFormError wraps an error with form and field context
func WrapFormError(err error, op string, form FormID, field, message string) error {
	if err == nil {
		return nil
	}
	return &FormError{
		Op:      op,
		Form:    form,
		Field:   field,
		Message: message,
		Err:     err,
	}
}
