package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Pipeline errors
const (
	// ErrCodeConfiguration indicates a registered builder produced an unusable transform.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeItem indicates a transform failed while processing a specific item.
	ErrCodeItem ErrorCode = "ITEM_ERROR"
	// ErrCodeSource indicates the input source failed while being pulled.
	ErrCodeSource ErrorCode = "SOURCE_ERROR"
)

// Input/internal errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var recoverableCodes = map[ErrorCode]bool{
	ErrCodeConfiguration: false,
	ErrCodeItem:          true,
	ErrCodeSource:        false,
	ErrCodeInvalidInput:  false,
	ErrCodeInternal:      false,
}

// IsRecoverableCode returns true if an error policy may substitute a value
// and let the run continue after this kind of failure.
func IsRecoverableCode(code ErrorCode) bool {
	return recoverableCodes[code]
}
