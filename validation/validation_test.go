package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/pipekit/errors"
)

type sampleConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
	Level  string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

func TestValidate_Success(t *testing.T) {
	if err := Validate(sampleConfig{Format: "json"}); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(sampleConfig{})
	if err == nil {
		t.Fatal("expected error for missing format")
	}
	if !strings.Contains(err.Error(), "format is required") {
		t.Errorf("expected 'format is required' in %q", err.Error())
	}
	if errors.CodeOf(err) != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", errors.CodeOf(err))
	}
}

func TestValidate_OneOf(t *testing.T) {
	err := Validate(sampleConfig{Format: "xml"})
	if err == nil {
		t.Fatal("expected error for bad format")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("expected oneof message in %q", err.Error())
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	err := Validate(sampleConfig{Format: "xml", Level: "loud"})
	if err == nil {
		t.Fatal("expected errors")
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("expected joined messages, got %q", err.Error())
	}
}
