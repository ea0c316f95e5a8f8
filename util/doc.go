// Package util provides generic utility functions for pipekit.
//
// It includes the slice helpers used by the resolver (group filtering) and
// the command-line connector.
package util
