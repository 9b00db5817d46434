package typeshape

import (
	"sort"

	"github.com/toyz/stubgen/internal/models"
)

// DependencySet is a set of external classes keyed by qualified name
type DependencySet struct {
	classes map[string]*models.ClassType
}

// NewDependencySet creates an empty dependency set
func NewDependencySet() DependencySet {
	return DependencySet{classes: make(map[string]*models.ClassType)}
}

// Len returns the number of distinct classes
func (s DependencySet) Len() int {
	return len(s.classes)
}

// Contains reports whether a class with the qualified name is in the set
func (s DependencySet) Contains(qualifiedName string) bool {
	_, ok := s.classes[qualifiedName]
	return ok
}

// Sorted returns the classes ordered by qualified name
func (s DependencySet) Sorted() []*models.ClassType {
	sorted := make([]*models.ClassType, 0, len(s.classes))
	for _, c := range s.classes {
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].QualifiedName() < sorted[j].QualifiedName()
	})
	return sorted
}

// Names returns the qualified names ordered lexicographically
func (s DependencySet) Names() []string {
	names := make([]string, 0, len(s.classes))
	for name := range s.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s DependencySet) add(c *models.ClassType) {
	s.classes[c.QualifiedName()] = c
}

// CollectDependencies returns the external classes referenced by the given
// descriptors. Primitives, void/Void and classes whose package is exactly
// targetPackage are left out; sub-packages of targetPackage are kept.
func CollectDependencies(targetPackage string, tds ...models.TypeDescriptor) (DependencySet, error) {
	var referenced []*models.ClassType

	for _, td := range tds {
		classes, err := referencedClasses(td)
		if err != nil {
			return DependencySet{}, err
		}
		referenced = append(referenced, classes...)
	}

	deps := NewDependencySet()
	for _, c := range referenced {
		if c.Primitive || c.IsNoValue() {
			continue
		}
		if c.Package == targetPackage {
			continue
		}
		deps.add(c)
	}
	return deps, nil
}

func referencedClasses(td models.TypeDescriptor) ([]*models.ClassType, error) {
	switch t := td.(type) {
	case *models.ParameterizedType:
		raw, err := RootClass(t)
		if err != nil {
			return nil, err
		}
		classes := []*models.ClassType{raw}
		for _, arg := range t.Args {
			c, err := elementClass(arg)
			if err != nil {
				return nil, err
			}
			classes = append(classes, c)
		}
		return classes, nil

	case *models.GenericArrayType, *models.ArrayType:
		c, err := elementClass(t)
		if err != nil {
			return nil, err
		}
		return []*models.ClassType{c}, nil

	case *models.ClassType:
		return []*models.ClassType{t}, nil
	}

	return nil, unresolvable(td)
}
