// Package typeshape reduces service type descriptors to the flattened shapes
// used for field declarations and import lists. Everything here is a pure
// function of its input.
package typeshape

import (
	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/models"
)

// Shape is the flattened view of a type descriptor
type Shape struct {
	Base    string   // simple name of the base type
	Args    []string // simple names of the type arguments, in declaration order
	IsArray bool
}

// IsNoValue reports whether the shape is the void return marker
func (s Shape) IsNoValue() bool {
	return s.Base == "void" && !s.IsArray && len(s.Args) == 0
}

// Resolve decomposes a descriptor into its shape.
//
// Type arguments keep only their root base class: the arguments of an
// argument are dropped, so Map<String, List<Long>> resolves to
// Map with args [String, List].
func Resolve(td models.TypeDescriptor) (Shape, error) {
	switch t := td.(type) {
	case *models.ClassType:
		return Shape{Base: t.Name}, nil

	case *models.ParameterizedType:
		root, err := RootClass(t)
		if err != nil {
			return Shape{}, err
		}
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			name, err := simpleName(arg)
			if err != nil {
				return Shape{}, err
			}
			args[i] = name
		}
		return Shape{Base: root.Name, Args: args}, nil

	case *models.GenericArrayType:
		base, err := simpleName(t.Component)
		if err != nil {
			return Shape{}, err
		}
		return Shape{Base: base, IsArray: true}, nil

	case *models.ArrayType:
		base, err := simpleName(t.Component)
		if err != nil {
			return Shape{}, err
		}
		return Shape{Base: base, IsArray: true}, nil
	}

	return Shape{}, unresolvable(td)
}

// RootClass follows raw types until a concrete class is reached.
// A class is its own root.
func RootClass(td models.TypeDescriptor) (*models.ClassType, error) {
	switch t := td.(type) {
	case *models.ClassType:
		return t, nil
	case *models.ParameterizedType:
		switch raw := t.Raw.(type) {
		case *models.ClassType:
			return raw, nil
		case *models.ParameterizedType:
			return RootClass(raw)
		default:
			return nil, errors.NewShapeResolutionError(t.String(), "raw type does not reduce to a concrete class")
		}
	}
	return nil, unresolvable(td)
}

// elementClass returns the class an array or argument ultimately refers to
func elementClass(td models.TypeDescriptor) (*models.ClassType, error) {
	switch t := td.(type) {
	case *models.ArrayType:
		return elementClass(t.Component)
	case *models.GenericArrayType:
		return elementClass(t.Component)
	}
	return RootClass(td)
}

// simpleName renders an array component or type argument. Generic arguments
// are dropped; array dimensions are kept.
func simpleName(td models.TypeDescriptor) (string, error) {
	switch t := td.(type) {
	case *models.ArrayType:
		name, err := simpleName(t.Component)
		return name + "[]", err
	case *models.GenericArrayType:
		name, err := simpleName(t.Component)
		return name + "[]", err
	}
	root, err := RootClass(td)
	if err != nil {
		return "", err
	}
	return root.Name, nil
}

func unresolvable(td models.TypeDescriptor) error {
	switch t := td.(type) {
	case nil:
		return errors.NewShapeResolutionError("<nil>", "missing type descriptor")
	case *models.WildcardType:
		return errors.NewShapeResolutionError(t.String(), "wildcard has no concrete class")
	case *models.TypeVariable:
		return errors.NewShapeResolutionError(t.String(), "type variable has no concrete class")
	default:
		return errors.NewShapeResolutionError(td.String(), "unsupported descriptor kind "+td.Kind().String())
	}
}
