package templates

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fixed names used by generated units
const (
	ResponseSuffix   = "Response"
	BeanSuffix       = "Bean"
	ReturnField      = "Return"
	ArgFieldPrefix   = "arg"
	XmlRootElement   = "XmlRootElement"
	XmlRootElementFQ = "javax.xml.bind.annotation.XmlRootElement"
)

// TemplateUtils provides common naming utilities for unit generation
type TemplateUtils struct{}

// NewTemplateUtils creates a new template utilities instance
func NewTemplateUtils() *TemplateUtils {
	return &TemplateUtils{}
}

// Capitalize upper-cases the first letter and leaves the rest untouched
func (tu *TemplateUtils) Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// ArgFieldName returns the positional field name for parameter i
func (tu *TemplateUtils) ArgFieldName(i int) string {
	return fmt.Sprintf("%s%d", ArgFieldPrefix, i)
}

// RequestClassName returns the request wrapper name for a method
func (tu *TemplateUtils) RequestClassName(method string) string {
	return tu.Capitalize(method)
}

// ResponseClassName returns the response wrapper name for a method
func (tu *TemplateUtils) ResponseClassName(method string) string {
	return tu.Capitalize(method) + ResponseSuffix
}

// BeanClassName returns the exception bean name for a failure type's simple name
func (tu *TemplateUtils) BeanClassName(simpleName string) string {
	return simpleName + BeanSuffix
}

// TargetPackage returns the package generated units are declared in
func (tu *TemplateUtils) TargetPackage(servicePackage string) string {
	return servicePackage + ".jaxws"
}

// ExtractTypeName extracts the simple name from a qualified name
func (tu *TemplateUtils) ExtractTypeName(qualifiedType string) string {
	if i := strings.LastIndex(qualifiedType, "."); i >= 0 {
		return qualifiedType[i+1:]
	}
	return qualifiedType
}

// DefaultTemplateUtils provides a global instance for convenience
var DefaultTemplateUtils = NewTemplateUtils()
