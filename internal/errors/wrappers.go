package errors

import "fmt"

// failed builds the "failed to <op> <what>" messages shared by the wrappers below
func failed(op, what string) string {
	return fmt.Sprintf("failed to %s %s", op, what)
}

// WrapParseError reports a description file that could not be parsed
func WrapParseError(item string, cause error) *SyntaxError {
	return &SyntaxError{BaseError: Wrap(SyntaxErrorCode, failed("parse", item), cause)}
}

// WrapGenerateError reports a unit of the given kind that could not be rendered
func WrapGenerateError(generationType, item string, cause error) *GenerationError {
	return &GenerationError{
		BaseError:      Wrap(GenerationErrorCode, failed("generate", item), cause),
		GenerationType: generationType,
		TargetFile:     item,
	}
}

// WrapValidationError reports a description that parsed but failed schema validation
func WrapValidationError(field string, cause error) *ValidationError {
	return &ValidationError{
		BaseError: Wrap(ValidationErrorCode, failed("validate", field), cause),
		Field:     field,
	}
}

// WrapFileSystemError wraps an IOError. These are fatal and files written
// before the failure stay in place.
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	return Wrap(FileSystemErrorCode, failed(operation, fmt.Sprintf("file '%s'", path)), cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError reports a unit template that failed to parse or execute
func WrapTemplateError(templateName, operation string, cause error) *GenerationError {
	return &GenerationError{
		BaseError:      Wrap(TemplateErrorCode, failed(operation, fmt.Sprintf("template '%s'", templateName)), cause),
		GenerationType: "template",
		TargetFile:     templateName,
	}
}

// WrapConfigurationError reports a stubgen.yaml that could not be read or decoded
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	return Wrap(ConfigurationErrorCode, failed(operation, fmt.Sprintf("configuration '%s'", configType)), cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// ConfigurationError reports an invalid setting in the merged flags and configuration
func ConfigurationError(configType, message string) *BaseError {
	return Newf(ConfigurationErrorCode, "configuration error in '%s': %s", configType, message).
		WithContext("config_type", configType)
}

// DestinationError reports a destination directory that does not exist and
// could not be created
func DestinationError(dir string, cause error) *BaseError {
	return Wrap(ConfigurationErrorCode, "directory does not exist and could not be created: "+dir, cause).
		WithContext("path", dir).
		WithSuggestion("Check that the parent directory exists and is writable").
		WithSuggestion("Pass a different destination with --out")
}
