package errors

import "fmt"

// ValidationError represents a validation error with detailed context
type ValidationError struct {
	*BaseError
	Field    string // field that failed validation
	Expected string // what was expected
	Actual   string // what was provided
}

// NewValidationError creates a new validation error
func NewValidationError(field, expected, actual string) *ValidationError {
	message := fmt.Sprintf("validation failed for field '%s': expected %s, got %s", field, expected, actual)

	return &ValidationError{
		BaseError: New(ValidationErrorCode, message),
		Field:     field,
		Expected:  expected,
		Actual:    actual,
	}
}

// WithLocation adds location information to the error
func (e *ValidationError) WithLocation(loc SourceLocation) *ValidationError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a helpful suggestion for fixing the error
func (e *ValidationError) WithSuggestion(suggestion string) *ValidationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// SyntaxError represents a malformed service description
type SyntaxError struct {
	*BaseError
	Token string // offending token, if known
}

// NewSyntaxError creates a new syntax error
func NewSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		BaseError: New(SyntaxErrorCode, message),
	}
}

// WithToken sets the offending token
func (e *SyntaxError) WithToken(token string) *SyntaxError {
	e.Token = token
	return e
}

// WithLocation adds location information to the error
func (e *SyntaxError) WithLocation(loc SourceLocation) *SyntaxError {
	e.BaseError.WithLocation(loc)
	return e
}

// WithSuggestion adds a helpful suggestion for fixing the error
func (e *SyntaxError) WithSuggestion(suggestion string) *SyntaxError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}

// ShapeResolutionError reports a type descriptor that cannot be reduced to a
// concrete class. It signals malformed input, never a recoverable condition.
type ShapeResolutionError struct {
	*BaseError
	Descriptor string // rendering of the offending descriptor
}

// NewShapeResolutionError creates a new shape resolution error
func NewShapeResolutionError(descriptor, reason string) *ShapeResolutionError {
	return &ShapeResolutionError{
		BaseError:  Newf(ShapeResolutionErrorCode, "cannot resolve type %s: %s", descriptor, reason),
		Descriptor: descriptor,
	}
}

// GenerationError represents a failure while producing a generated unit
type GenerationError struct {
	*BaseError
	GenerationType string // request, response or exception
	TargetFile     string // file being generated
}

// NewGenerationError creates a new generation error
func NewGenerationError(message string) *GenerationError {
	return &GenerationError{
		BaseError: New(GenerationErrorCode, message),
	}
}

// WithGenerationType sets the generation type
func (e *GenerationError) WithGenerationType(generationType string) *GenerationError {
	e.GenerationType = generationType
	return e
}

// WithTargetFile sets the target file
func (e *GenerationError) WithTargetFile(targetFile string) *GenerationError {
	e.TargetFile = targetFile
	return e
}
