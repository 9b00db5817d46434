package models

import (
	"strings"
)

// DescriptorKind identifies the shape of a TypeDescriptor
type DescriptorKind int

const (
	KindClass DescriptorKind = iota
	KindParameterized
	KindArray
	KindGenericArray
	KindWildcard
	KindTypeVariable
)

// String returns the string representation of the descriptor kind
func (k DescriptorKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindParameterized:
		return "parameterized"
	case KindArray:
		return "array"
	case KindGenericArray:
		return "generic-array"
	case KindWildcard:
		return "wildcard"
	case KindTypeVariable:
		return "type-variable"
	default:
		return "unknown"
	}
}

// TypeDescriptor is a type as it was declared in a service description.
// Descriptors are immutable once built by the parser.
type TypeDescriptor interface {
	Kind() DescriptorKind
	// String renders the descriptor with fully qualified names, for diagnostics
	String() string
}

// ClassType is a bare class or a primitive scalar
type ClassType struct {
	Package   string // declaring package, empty for primitives
	Name      string // simple name
	Primitive bool
}

// Kind implements TypeDescriptor
func (c *ClassType) Kind() DescriptorKind { return KindClass }

// String implements TypeDescriptor
func (c *ClassType) String() string {
	return c.QualifiedName()
}

// QualifiedName returns the package-qualified name used for imports and identity
func (c *ClassType) QualifiedName() string {
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// IsVoid reports whether c is the void return marker
func (c *ClassType) IsVoid() bool {
	return c.Primitive && c.Name == "void"
}

// IsNoValue reports whether c is either void or the boxed java.lang.Void
func (c *ClassType) IsNoValue() bool {
	return c.IsVoid() || (c.Package == "java.lang" && c.Name == "Void")
}

// ParameterizedType is a generic instantiation such as List<String>.
// Raw is normally a *ClassType but may itself be parameterized.
type ParameterizedType struct {
	Raw  TypeDescriptor
	Args []TypeDescriptor
}

// Kind implements TypeDescriptor
func (p *ParameterizedType) Kind() DescriptorKind { return KindParameterized }

// String implements TypeDescriptor
func (p *ParameterizedType) String() string {
	args := make([]string, len(p.Args))
	for i, arg := range p.Args {
		args[i] = describe(arg)
	}
	return describe(p.Raw) + "<" + strings.Join(args, ", ") + ">"
}

// ArrayType is an array whose innermost element is not parameterized
type ArrayType struct {
	Component TypeDescriptor
}

// Kind implements TypeDescriptor
func (a *ArrayType) Kind() DescriptorKind { return KindArray }

// String implements TypeDescriptor
func (a *ArrayType) String() string {
	return describe(a.Component) + "[]"
}

// GenericArrayType is an array whose innermost element is parameterized
type GenericArrayType struct {
	Component TypeDescriptor
}

// Kind implements TypeDescriptor
func (g *GenericArrayType) Kind() DescriptorKind { return KindGenericArray }

// String implements TypeDescriptor
func (g *GenericArrayType) String() string {
	return describe(g.Component) + "[]"
}

// WildcardType is a type argument such as ?, ? extends T or ? super T
type WildcardType struct {
	Bound TypeDescriptor // nil for an unbounded wildcard
	Super bool
}

// Kind implements TypeDescriptor
func (w *WildcardType) Kind() DescriptorKind { return KindWildcard }

// String implements TypeDescriptor
func (w *WildcardType) String() string {
	if w.Bound == nil {
		return "?"
	}
	if w.Super {
		return "? super " + describe(w.Bound)
	}
	return "? extends " + describe(w.Bound)
}

// TypeVariable is an unbound type parameter such as T
type TypeVariable struct {
	Name string
}

// Kind implements TypeDescriptor
func (v *TypeVariable) Kind() DescriptorKind { return KindTypeVariable }

// String implements TypeDescriptor
func (v *TypeVariable) String() string { return v.Name }

func describe(td TypeDescriptor) string {
	if td == nil {
		return "<nil>"
	}
	return td.String()
}

// Primitive returns the descriptor for a primitive scalar (or void)
func Primitive(name string) *ClassType {
	return &ClassType{Name: name, Primitive: true}
}

// Class returns the descriptor for a class in the given package
func Class(pkg, name string) *ClassType {
	return &ClassType{Package: pkg, Name: name}
}

// Parameterized returns the descriptor for raw<args...>
func Parameterized(raw TypeDescriptor, args ...TypeDescriptor) *ParameterizedType {
	return &ParameterizedType{Raw: raw, Args: args}
}

// ArrayOf wraps an element into an array descriptor, choosing the generic
// variant when the innermost element is parameterized
func ArrayOf(element TypeDescriptor) TypeDescriptor {
	if isGenericElement(element) {
		return &GenericArrayType{Component: element}
	}
	return &ArrayType{Component: element}
}

func isGenericElement(td TypeDescriptor) bool {
	switch t := td.(type) {
	case *ParameterizedType:
		return true
	case *GenericArrayType:
		return true
	case *ArrayType:
		return isGenericElement(t.Component)
	default:
		return false
	}
}

// PrimitiveNames lists the Java primitive keywords, void included
var PrimitiveNames = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
	"void":    true,
}
