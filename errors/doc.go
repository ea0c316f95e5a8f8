// Package errors provides unified error handling for pipekit.
// It implements a structured error type with machine-readable codes that
// distinguish configuration failures (detected before any item is processed),
// per-item transform failures (recoverable through an error policy), and
// source failures (the input stream itself broke).
package errors
