// Package config loads pipekit application configuration from YAML files,
// .env files, and environment variables, in that order of precedence
// (environment wins).
//
//	var cfg config.App
//	err := config.Load("pipecli", &cfg)
package config
