package models

// ServiceInterface is a service endpoint interface loaded from a description file
type ServiceInterface struct {
	Package string          // package the interface is declared in
	Name    string          // simple interface name
	Methods []ServiceMethod // exposed methods in declaration order
	Source  string          // description file the interface was loaded from
}

// QualifiedName returns the package-qualified interface name
func (s *ServiceInterface) QualifiedName() string {
	if s.Package == "" {
		return s.Name
	}
	return s.Package + "." + s.Name
}

// ServiceMethod is one exposed operation of a service interface
type ServiceMethod struct {
	Name        string
	Params      []Parameter
	Returns     TypeDescriptor
	Throws      []*ClassType
	Annotations []Annotation
	Line        int // line in the description file, 0 when unknown
}

// ParameterTypes returns the formal parameter descriptors in declaration order
func (m *ServiceMethod) ParameterTypes() []TypeDescriptor {
	types := make([]TypeDescriptor, len(m.Params))
	for i, p := range m.Params {
		types[i] = p.Type
	}
	return types
}

// HasAnnotation reports whether any annotation's name is in names.
// Annotations are scanned in order and the scan stops at the first match.
func (m *ServiceMethod) HasAnnotation(names map[string]bool) bool {
	for _, a := range m.Annotations {
		if names[a.Name] {
			return true
		}
	}
	return false
}

// Parameter is a formal method parameter. Name is informational only,
// generated fields are named positionally.
type Parameter struct {
	Name string
	Type TypeDescriptor
}

// Annotation is a behavioral marker on a method such as @Oneway
type Annotation struct {
	Name string // resolved name, qualified when an import matched
}
