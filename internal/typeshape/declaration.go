package typeshape

import (
	"strings"

	"github.com/toyz/stubgen/internal/models"
)

// Declaration renders the shape as a field type: Base, then <A1, A2> when
// there are type arguments, then [] for arrays.
func (s Shape) Declaration() string {
	var decl strings.Builder
	decl.WriteString(s.Base)

	if len(s.Args) > 0 {
		decl.WriteString("<")
		decl.WriteString(strings.Join(s.Args, ", "))
		decl.WriteString(">")
	}

	if s.IsArray {
		decl.WriteString("[]")
	}

	return decl.String()
}

// Declaration resolves a descriptor and renders its declaration
func Declaration(td models.TypeDescriptor) (string, error) {
	shape, err := Resolve(td)
	if err != nil {
		return "", err
	}
	return shape.Declaration(), nil
}
