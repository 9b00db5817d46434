package parser

const (
	// File extensions accepted as service descriptions
	ExtService = ".svc"
	ExtYAML    = ".yaml"
	ExtYML     = ".yml"

	// JavaLangPackage is the implicitly imported package
	JavaLangPackage = "java.lang"

	// VoidKeyword marks a method without a return value
	VoidKeyword = "void"

	// OnDemandSuffix marks a wildcard import
	OnDemandSuffix = ".*"
)

// javaLangTypes are the java.lang classes a description may use unqualified
var javaLangTypes = map[string]bool{
	"Boolean":          true,
	"Byte":             true,
	"Character":        true,
	"CharSequence":     true,
	"Class":            true,
	"Double":           true,
	"Enum":             true,
	"Error":            true,
	"Exception":        true,
	"Float":            true,
	"Integer":          true,
	"Iterable":         true,
	"Long":             true,
	"Number":           true,
	"Object":           true,
	"RuntimeException": true,
	"Short":            true,
	"String":           true,
	"StringBuffer":     true,
	"StringBuilder":    true,
	"Throwable":        true,
	"Void":             true,
}
