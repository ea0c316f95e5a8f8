// Package validation provides struct tag validation for pipekit configuration.
//
//	type Config struct {
//	    Level string `validate:"omitempty,oneof=debug info warn error"`
//	}
//	err := validation.Validate(cfg)
package validation
