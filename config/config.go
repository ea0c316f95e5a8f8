package config

import (
	"github.com/kbukum/pipekit/logger"
	"github.com/kbukum/pipekit/validation"
)

// Observability configures OTLP export for traces and metrics.
type Observability struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"omitempty,hostname_port"`
	Insecure bool   `yaml:"insecure" mapstructure:"insecure"`
}

// Pipeline configures run-time pipeline behavior.
type Pipeline struct {
	// SkipGroups lists registration groups excluded from every run.
	SkipGroups []string `yaml:"skip_groups" mapstructure:"skip_groups"`
}

// App is the top-level configuration for pipekit binaries.
type App struct {
	Service       string        `yaml:"service" mapstructure:"service"`
	Logging       logger.Config `yaml:"logging" mapstructure:"logging"`
	Observability Observability `yaml:"observability" mapstructure:"observability"`
	Pipeline      Pipeline      `yaml:"pipeline" mapstructure:"pipeline"`
}

// ApplyDefaults applies default values to the configuration.
func (a *App) ApplyDefaults() {
	if a.Service == "" {
		a.Service = "pipecli"
	}
	a.Logging.ApplyDefaults()
	if a.Observability.Endpoint == "" {
		a.Observability.Endpoint = "localhost:4318"
		a.Observability.Insecure = true
	}
}

// Validate checks the configuration, combining struct tag validation with
// the logging section's own rules.
func (a *App) Validate() error {
	if err := validation.Validate(a); err != nil {
		return err
	}
	return a.Logging.Validate()
}
