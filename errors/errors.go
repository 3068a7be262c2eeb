// Package errors provides error handling for the interfaces generator.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for user-facing messages
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := loadTopics(dir); err != nil {
//	    return errors.Wrap(err, "failed to load topics")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnresolvedReference) {
//	    // handle dangling schema reference
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for the generator's failure taxonomy.
// Every fatal condition during load or validation is one of these,
// wrapped with context naming the offending file, topic, or field.
// Use errors.Is() for type-safe checking.
var (
	// ErrMissingSource indicates a required input directory does not exist
	ErrMissingSource = New("input directory not found")

	// ErrMalformedTopology indicates a topic definition lacks a required field
	ErrMalformedTopology = New("malformed topic definition")

	// ErrDuplicateSchema indicates two event files resolved to the same schema identifier
	ErrDuplicateSchema = New("duplicate event schema identifier")

	// ErrUnresolvedReference indicates a topic references an event schema that was never loaded
	ErrUnresolvedReference = New("unresolved event schema reference")

	// ErrUnsupportedPayloadKind indicates a topic declares a payload kind other than "event"
	ErrUnsupportedPayloadKind = New("unsupported payload kind")

	// ErrOutputsStale indicates generated artifacts no longer match the topology sources
	ErrOutputsStale = New("generated outputs are out of date")
)

// IsMalformedTopology checks if an error is or wraps ErrMalformedTopology
func IsMalformedTopology(err error) bool {
	return err != nil && Is(err, ErrMalformedTopology)
}

// IsUnresolvedReference checks if an error is or wraps ErrUnresolvedReference
func IsUnresolvedReference(err error) bool {
	return err != nil && Is(err, ErrUnresolvedReference)
}

// NewMalformedTopology creates a malformed-topology error with a formatted message
func NewMalformedTopology(format string, args ...interface{}) error {
	return Wrap(ErrMalformedTopology, Newf(format, args...).Error())
}
