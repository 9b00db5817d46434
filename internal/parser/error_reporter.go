package parser

import (
	stderrors "errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/stubgen/internal/errors"
)

// ErrorReporter builds located errors with suggestions for malformed descriptions
type ErrorReporter struct{}

// NewErrorReporter creates a new parser error reporter
func NewErrorReporter() *ErrorReporter {
	return &ErrorReporter{}
}

// SyntaxError converts a grammar or lexer failure into a located SyntaxError
func (r *ErrorReporter) SyntaxError(filename string, err error) error {
	var perr participle.Error
	if !stderrors.As(err, &perr) {
		return errors.WrapParseError(filename, err)
	}

	syntaxErr := errors.NewSyntaxError(perr.Message()).
		WithLocation(location(filename, perr.Position()))

	var unexpected *participle.UnexpectedTokenError
	if stderrors.As(err, &unexpected) {
		syntaxErr.WithToken(unexpected.Unexpected.Value)
		switch unexpected.Unexpected.Value {
		case "}":
			syntaxErr.WithSuggestion("Check that every method declaration ends with ';'")
		case "<", ">":
			syntaxErr.WithSuggestion("Check that type arguments are balanced, e.g. Map<String, List<Long>>")
		}
	}

	return syntaxErr.WithSuggestion("Service descriptions look like: package com.example; interface Calc { int add(int a, int b); }")
}

// MissingPackage reports a description without a package declaration
func (r *ErrorReporter) MissingPackage(filename string, pos lexer.Position) error {
	return errors.NewValidationError("package", "a package declaration", "none").
		WithLocation(location(filename, pos)).
		WithSuggestion("Add 'package com.example;' before the interface").
		WithSuggestion("Wrappers are generated into <package>.jaxws, so the package is required")
}

// OnDemandImport reports a wildcard import, which cannot be resolved without a classpath
func (r *ErrorReporter) OnDemandImport(filename string, pos lexer.Position, name string) error {
	return errors.NewValidationError("import", "a single-type import", name).
		WithLocation(location(filename, pos)).
		WithSuggestion(fmt.Sprintf("Replace '%s' with one import per class", name))
}

// UnqualifiedImport reports an import without a package
func (r *ErrorReporter) UnqualifiedImport(filename string, pos lexer.Position, name string) error {
	return errors.NewValidationError("import", "a package-qualified class name", name).
		WithLocation(location(filename, pos))
}

// ImportConflict reports two imports sharing a simple name
func (r *ErrorReporter) ImportConflict(filename string, pos lexer.Position, simple, first, second string) error {
	return errors.NewValidationError("import", fmt.Sprintf("a single class named %s", simple), fmt.Sprintf("%s and %s", first, second)).
		WithLocation(location(filename, pos)).
		WithSuggestion("Drop one import and use the fully qualified name at the use site")
}

// VoidMisuse reports void used outside a plain return type
func (r *ErrorReporter) VoidMisuse(filename string, pos lexer.Position, reason string) error {
	return errors.NewValidationError("type", "a value type", VoidKeyword).
		WithLocation(location(filename, pos)).
		WithSuggestion(reason)
}

// PrimitiveTypeArgument reports a primitive used where a class is required
func (r *ErrorReporter) PrimitiveTypeArgument(filename string, pos lexer.Position, name string) error {
	err := errors.NewValidationError("type argument", "a class", name).
		WithLocation(location(filename, pos))
	if boxed, ok := boxedNames[name]; ok {
		err.WithSuggestion(fmt.Sprintf("Use the boxed type %s instead of %s", boxed, name))
	}
	return err
}

// InvalidType reports a type that is well formed but not allowed where it appears
func (r *ErrorReporter) InvalidType(filename string, pos lexer.Position, name, expected string) error {
	return errors.NewValidationError("type", expected, name).
		WithLocation(location(filename, pos))
}

var boxedNames = map[string]string{
	"boolean": "Boolean",
	"byte":    "Byte",
	"char":    "Character",
	"short":   "Short",
	"int":     "Integer",
	"long":    "Long",
	"float":   "Float",
	"double":  "Double",
}
