package models

// UnitKind identifies which wrapper a generated unit holds
type UnitKind int

const (
	UnitRequest UnitKind = iota
	UnitResponse
	UnitExceptionBean
)

// String returns the string representation of the unit kind
func (k UnitKind) String() string {
	switch k {
	case UnitRequest:
		return "request"
	case UnitResponse:
		return "response"
	case UnitExceptionBean:
		return "exception"
	default:
		return "unknown"
	}
}

// GeneratedUnit represents one synthesized Java source file
type GeneratedUnit struct {
	Kind        UnitKind
	PackageName string   // package declaration of the unit
	Imports     []string // qualified names, sorted and unique
	ClassName   string
	Annotations []string // class-level annotations without the leading @
	Fields      []Field  // fields in declaration order
	Content     string   // rendered source text
}

// FileName returns the file name the unit is written to
func (u *GeneratedUnit) FileName() string {
	return u.ClassName + SourceExtension
}

// Field is a private field with a getter/setter pair
type Field struct {
	Name        string // field name, e.g. arg0 or Return
	Declaration string // declared type, e.g. List<String>
}

// SourceExtension is the extension of every generated file
const SourceExtension = ".java"

// Warning is a non-fatal issue found during generation
type Warning struct {
	Code    string
	Message string
}

// GenerationResult holds everything produced for one service interface
type GenerationResult struct {
	Service  string          // qualified service interface name
	Units    []GeneratedUnit // units in write order
	Files    []string        // written paths in write order
	Warnings []Warning
}

// CountByKind returns how many units of the given kind were produced
func (r *GenerationResult) CountByKind(kind UnitKind) int {
	n := 0
	for _, u := range r.Units {
		if u.Kind == kind {
			n++
		}
	}
	return n
}
