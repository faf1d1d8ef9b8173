// Package flameerr defines the typed error taxonomy shared by every pipeline
// stage, so callers can branch on failure kind without string matching.
package flameerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind identifies one of the fatal error categories of the pipeline.
type Kind string

const (
	FileNotFound  Kind = "file-not-found"
	IO            Kind = "io"
	ConfigInvalid Kind = "config-invalid"
	ParseEmpty    Kind = "parse-empty"
	ParseFormat   Kind = "parse-format"
	PipelineEmpty Kind = "pipeline-empty"
	Render        Kind = "render"
	SuffixUnknown Kind = "suffix-unknown"
)

// Error wraps a cause with the Kind the pipeline failed at. The zero value
// of cause is nil for kinds that carry no underlying error.
type Error struct {
	Kind Kind
	msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}

// Wrap attaches kind and msg to an existing error, preserving it as the
// cause via github.com/pkg/errors so callers retain a stack trace.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, msg: msg, Err: errors.Wrap(err, msg)}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}
