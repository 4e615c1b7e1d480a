// Package errors provides a structured error type (SiteError) for
// kind-based classification and exit-code mapping in the ssg CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind classifies a SiteError for reporting and exit-code mapping.
type ErrorKind string

const (
	// Content that could be read but not parsed (TOML, JSON, encoding).
	KindDecode ErrorKind = "decode"
	// A descriptor field with the wrong shape or type.
	KindValidation ErrorKind = "validation"
	// Missing or unreadable files and failed writes.
	KindIO ErrorKind = "io"
	// Errors surfaced from the template engine.
	KindTemplate ErrorKind = "template"
)

// SiteError is a structured error carrying the kind of failure and the
// path that was being processed when it occurred.
type SiteError struct {
	Kind    ErrorKind
	Message string
	Path    string
	Cause   error
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Path, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling.
func (e *SiteError) Unwrap() error {
	return e.Cause
}

// WithPath annotates the error with the descriptor path being processed.
// The first annotation wins so the innermost context survives end-to-end
// to the top-level reporter.
func (e *SiteError) WithPath(path string) *SiteError {
	if e.Path == "" {
		e.Path = path
	}
	return e
}

// New creates a new SiteError.
func New(kind ErrorKind, message string) *SiteError {
	return &SiteError{Kind: kind, Message: message}
}

// Wrap creates a new SiteError that wraps an existing error.
func Wrap(err error, kind ErrorKind, message string) *SiteError {
	return &SiteError{Kind: kind, Message: message, Cause: err}
}

// IsKind checks whether an error (or anything it wraps) is a SiteError of
// the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// GetKind extracts the kind from an error. Errors that are not SiteErrors
// classify as KindIO; bare filesystem failures are the usual case.
func GetKind(err error) ErrorKind {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Kind
	}
	return KindIO
}

// Annotate attaches a path to err when it is a SiteError and leaves other
// errors untouched. Returns err for chaining.
func Annotate(err error, path string) error {
	var se *SiteError
	if stderrors.As(err, &se) {
		se.WithPath(path)
	}
	return err
}
