package errors

import (
	"errors"
	"fmt"
)

// PipeError is the unified pipekit error type.
type PipeError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Recoverable indicates whether an error policy may substitute a value.
	Recoverable bool `json:"recoverable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *PipeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *PipeError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *PipeError) WithCause(cause error) *PipeError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *PipeError) WithDetail(key string, value any) *PipeError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new PipeError with automatic recoverable detection.
func New(code ErrorCode, message string) *PipeError {
	return &PipeError{
		Code:        code,
		Message:     message,
		Recoverable: IsRecoverableCode(code),
	}
}

// --- Common Error Constructors ---

// Configuration creates a new PipeError for a registry entry whose builder
// did not produce a usable transform. Fatal: detected at resolve time,
// before any item is processed.
func Configuration(entry, reason string) *PipeError {
	return &PipeError{
		Code: ErrCodeConfiguration, Message: fmt.Sprintf("Registered builder %q did not produce a transform: %s", entry, reason),
		Recoverable: false,
		Details:     map[string]any{"entry": entry},
	}
}

// Item creates a new PipeError for a transform that failed while processing
// a specific item. Recoverable through an error policy.
func Item(stage string, cause error) *PipeError {
	return &PipeError{
		Code: ErrCodeItem, Message: fmt.Sprintf("Transform %q failed while processing an item.", stage),
		Recoverable: true,
		Details:     map[string]any{"stage": stage}, Cause: cause,
	}
}

// Source creates a new PipeError for an input source that failed while
// being pulled. The run ends once the error policy has been consulted.
func Source(cause error) *PipeError {
	return &PipeError{
		Code: ErrCodeSource, Message: "The input source failed while being pulled.",
		Recoverable: false, Cause: cause,
	}
}

// InvalidInput creates a new PipeError for invalid input.
func InvalidInput(field, reason string) *PipeError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &PipeError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Recoverable: false, Details: details,
	}
}

// Validation creates a new PipeError for validation errors.
func Validation(message string) *PipeError {
	return &PipeError{
		Code: ErrCodeInvalidInput, Message: message,
		Recoverable: false,
	}
}

// Internal creates a new PipeError for an unexpected internal error.
func Internal(cause error) *PipeError {
	return &PipeError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Recoverable: false, Cause: cause,
	}
}

// --- Inspection helpers ---

// CodeOf returns the ErrorCode of err, or ErrCodeInternal when err is not a PipeError.
func CodeOf(err error) ErrorCode {
	var pe *PipeError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ErrCodeInternal
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return CodeOf(err) == ErrCodeConfiguration }

// IsItem reports whether err is a per-item transform error.
func IsItem(err error) bool { return CodeOf(err) == ErrCodeItem }

// IsSource reports whether err is a source pull error.
func IsSource(err error) bool { return CodeOf(err) == ErrCodeSource }
