// Package logger provides structured logging for pipekit built on zerolog.
//
// A global logger is available through the package-level functions; runs and
// stages tag their own loggers via WithComponent and WithRun:
//
//	log := logger.WithComponent("pipeline").WithRun(runID)
//	log.Error("problem with item", logger.Fields("item", item))
package logger
