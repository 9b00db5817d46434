package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting and diagnostics
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
	warn    *color.Color
}

// NewDiagnosticReporter creates a reporter writing to stderr
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
		warn:    color.New(color.FgYellow, color.Bold), // orange-ish
	}
}

// NewDiagnosticReporterTo creates a reporter writing plain text to out
func NewDiagnosticReporterTo(verbose bool, out io.Writer) *DiagnosticReporter {
	r := NewDiagnosticReporter(verbose)
	r.out = out
	r.warn.DisableColor()
	return r
}

// ReportWarning prints a non-fatal generation warning
func (r *DiagnosticReporter) ReportWarning(w models.Warning) {
	r.warn.Fprint(r.out, "! ")
	if r.verbose {
		fmt.Fprintf(r.out, "[%s] ", w.Code)
	}
	fmt.Fprintf(r.out, "%s\n", w.Message)
}

// ReportError prints err with its location, context and suggestions
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\nERROR: Stub Generation Failed\n")
	fmt.Fprintf(r.out, "=============================\n\n")

	var multi *errors.MultipleErrors
	var stubErr errors.StubError
	switch {
	case stderrors.As(err, &multi) && len(multi.Errors) > 1:
		fmt.Fprintf(r.out, "%d problems found\n\n", len(multi.Errors))
		for i, e := range multi.Errors {
			fmt.Fprintf(r.out, "%d)\n", i+1)
			r.reportStubError(e)
		}
	case stderrors.As(err, &stubErr):
		r.reportStubError(stubErr)
	default:
		fmt.Fprintf(r.out, "Message: %s\n", err.Error())
	}

	fmt.Fprintf(r.out, "\n")
}

func (r *DiagnosticReporter) reportStubError(err errors.StubError) {
	r.printErrorHeader(err.ErrorCode())

	fmt.Fprintf(r.out, "Message: %s\n\n", err.Error())

	if r.verbose && err.Unwrap() != nil {
		fmt.Fprintf(r.out, "Underlying cause: %s\n\n", err.Unwrap().Error())
	}

	if loc := err.Location(); !loc.IsEmpty() {
		fmt.Fprintf(r.out, "Location: %s\n\n", loc.String())
	}

	if ctx := err.Context(); len(ctx) > 0 {
		r.printContext(ctx)
	}

	if suggestions := err.Suggestions(); len(suggestions) > 0 {
		r.printSuggestions(suggestions)
	}
}

// printErrorHeader prints a formatted error header based on error type
func (r *DiagnosticReporter) printErrorHeader(code errors.ErrorCode) {
	var errorTypeStr string

	switch code {
	case errors.SyntaxErrorCode:
		errorTypeStr = "Description Syntax Error"
	case errors.ValidationErrorCode:
		errorTypeStr = "Validation Error"
	case errors.ShapeResolutionErrorCode:
		errorTypeStr = "Type Shape Error"
	case errors.GenerationErrorCode, errors.TemplateErrorCode:
		errorTypeStr = "Code Generation Error"
	case errors.FileSystemErrorCode:
		errorTypeStr = "File System Error"
	case errors.ConfigurationErrorCode:
		errorTypeStr = "Configuration Error"
	default:
		errorTypeStr = "Unknown Error"
	}

	fmt.Fprintf(r.out, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.out, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	// Print important context items first
	importantKeys := []string{"service", "method", "descriptor"}
	printed := make(map[string]bool)

	for _, key := range importantKeys {
		if value, exists := context[key]; exists {
			fmt.Fprintf(r.out, "   %s: %v\n", r.formatContextKey(key), value)
			printed[key] = true
		}
	}

	rest := make([]string, 0, len(context))
	for key := range context {
		if !printed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		fmt.Fprintf(r.out, "   %s: %v\n", r.formatContextKey(key), context[key])
	}

	fmt.Fprintf(r.out, "\n")
}

// formatContextKey converts snake_case keys to Title Case
func (r *DiagnosticReporter) formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")

	for i, suggestion := range suggestions {
		// Format multi-line suggestions nicely
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, lines[0])
		for _, line := range lines[1:] {
			if strings.TrimSpace(line) != "" {
				fmt.Fprintf(r.out, "      %s\n", line)
			}
		}
	}

	fmt.Fprintf(r.out, "\n")
}
