package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// StubError defines the base interface for all stubgen errors
type StubError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() map[string]any
	Suggestions() []string
	Unwrap() error
}

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	SyntaxErrorCode
	ValidationErrorCode

	// Generation error types
	GenerationErrorCode
	TemplateErrorCode
	FileSystemErrorCode
	ShapeResolutionErrorCode

	// Runtime error types
	ConfigurationErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case SyntaxErrorCode:
		return "SyntaxError"
	case ValidationErrorCode:
		return "ValidationError"
	case GenerationErrorCode:
		return "GenerationError"
	case TemplateErrorCode:
		return "TemplateError"
	case FileSystemErrorCode:
		return "IOError"
	case ShapeResolutionErrorCode:
		return "ShapeResolutionError"
	case ConfigurationErrorCode:
		return "ConfigurationError"
	default:
		return "UnknownError"
	}
}

// SourceLocation points into a service description file. Line and Column
// are 1-based; zero means unknown.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// String renders the location as file[:line[:column]]
func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}

	parts := []string{s.File}
	if s.Line > 0 {
		parts = append(parts, strconv.Itoa(s.Line))
		if s.Column > 0 {
			parts = append(parts, strconv.Itoa(s.Column))
		}
	}
	return strings.Join(parts, ":")
}

// IsEmpty reports whether the location names no file
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// BaseError carries everything the CLI reporter prints for a failure.
// The typed errors in this package embed it.
type BaseError struct {
	Code    ErrorCode
	Message string
	Loc     SourceLocation
	Cause   error
	Fields  map[string]any // printed as the error's context, e.g. service and method
	Hints   []string
}

func (e *BaseError) Error() string {
	var b strings.Builder
	if !e.Loc.IsEmpty() {
		b.WriteString(e.Loc.String())
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *BaseError) ErrorCode() ErrorCode     { return e.Code }
func (e *BaseError) Location() SourceLocation { return e.Loc }
func (e *BaseError) Suggestions() []string    { return e.Hints }
func (e *BaseError) Unwrap() error            { return e.Cause }

// Context returns a copy of the context fields, never nil
func (e *BaseError) Context() map[string]any {
	if e.Fields == nil {
		return map[string]any{}
	}
	return maps.Clone(e.Fields)
}

// WithLocation sets the description position the error refers to
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.Loc = loc
	return e
}

// WithContext records a key/value pair such as the failing service or method
func (e *BaseError) WithContext(key string, value any) *BaseError {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// WithSuggestion appends a fix the reporter prints under the error
func (e *BaseError) WithSuggestion(suggestion string) *BaseError {
	e.Hints = append(e.Hints, suggestion)
	return e
}

// New creates an error of the given code
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{Code: code, Message: message}
}

// Newf creates an error of the given code with a formatted message
func Newf(code ErrorCode, format string, args ...any) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates an error of the given code around cause
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	e := New(code, message)
	e.Cause = cause
	return e
}

// Wrapf is Wrap with a formatted message
func Wrapf(code ErrorCode, cause error, format string, args ...any) *BaseError {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

// MultipleErrors collects the problems of one validation pass so they can
// be reported together instead of one per run.
type MultipleErrors struct {
	Errors []StubError
}

func (e *MultipleErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no errors"
	case 1:
		return e.Errors[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d problems:", len(e.Errors))
	for _, err := range e.Errors {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes every collected error to errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, err := range e.Errors {
		errs = append(errs, err)
	}
	return errs
}

// Add appends err to the collection
func (e *MultipleErrors) Add(err StubError) {
	e.Errors = append(e.Errors, err)
}

// ErrOrNil returns nil for an empty collection and the collection otherwise
func (e *MultipleErrors) ErrOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// NewMultipleErrors creates an empty collection
func NewMultipleErrors() *MultipleErrors {
	return &MultipleErrors{}
}

// CodeOf returns the code of the first StubError in err's chain
func CodeOf(err error) ErrorCode {
	var se StubError
	if stderrors.As(err, &se) {
		return se.ErrorCode()
	}
	return UnknownErrorCode
}
