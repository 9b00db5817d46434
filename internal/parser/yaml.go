package parser

import (
	stderrors "errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/toyz/stubgen/internal/errors"
)

// yamlService is the YAML form of a service description:
//
//	package: com.example.calc
//	name: Calculator
//	imports: [com.example.calc.model.Result]
//	methods:
//	  - name: add
//	    params: ["int a", "int b"]
//	    returns: int
//	    throws: [CalcException]
type yamlService struct {
	Package    string       `yaml:"package" validate:"required,javaname"`
	Name       string       `yaml:"name" validate:"required,javaident"`
	Imports    []string     `yaml:"imports" validate:"dive,javaname"`
	TypeParams []string     `yaml:"type_params" validate:"dive,javaident"`
	Methods    []yamlMethod `yaml:"methods" validate:"dive"`
}

type yamlMethod struct {
	Name        string   `yaml:"name" validate:"required,javaident"`
	Params      []string `yaml:"params" validate:"dive,required"`
	Returns     string   `yaml:"returns"`
	Throws      []string `yaml:"throws" validate:"dive,required"`
	Annotations []string `yaml:"annotations" validate:"dive,required"`
	TypeParams  []string `yaml:"type_params" validate:"dive,javaident"`

	line int
}

// UnmarshalYAML records the line of the method entry for diagnostics
func (m *yamlMethod) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlMethod
	var decoded plain
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*m = yamlMethod(decoded)
	m.line = node.Line
	return nil
}

var (
	javaIdentPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	javaNamePattern  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*(\.\*)?$`)
)

// NewValidator returns a validator that knows the javaident and javaname tags
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("javaident", func(fl validator.FieldLevel) bool {
		return javaIdentPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("javaname", func(fl validator.FieldLevel) bool {
		return javaNamePattern.MatchString(fl.Field().String())
	})
	return v
}

// IsServiceYAML reports whether a YAML document has the top-level package
// or methods key of a service description. Documents that fail to parse
// count as descriptions so the syntax error reaches the user.
func IsServiceYAML(source []byte) bool {
	var doc yaml.Node
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return true
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return false
	}

	mapping := doc.Content[0]
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		switch mapping.Content[i].Value {
		case "package", "methods":
			return true
		}
	}
	return false
}

// parseYAML decodes a YAML description into the same tree the IDL grammar builds
func (p *Parser) parseYAML(filename string, source []byte) (*File, error) {
	var doc yamlService
	if err := yaml.Unmarshal(source, &doc); err != nil {
		return nil, errors.WrapParseError(filename, err)
	}

	if err := p.validate.Struct(&doc); err != nil {
		return nil, ValidationErrors(filename, err)
	}

	file := &File{
		Pos:     lexer.Position{Filename: filename, Line: 1, Column: 1},
		Package: doc.Package,
		Interface: &Interface{
			Pos:        lexer.Position{Filename: filename, Line: 1, Column: 1},
			Name:       doc.Name,
			TypeParams: doc.TypeParams,
		},
	}

	for _, imp := range doc.Imports {
		file.Imports = append(file.Imports, &Import{Pos: file.Pos, Name: imp})
	}

	for _, m := range doc.Methods {
		method, err := p.yamlMethod(filename, m)
		if err != nil {
			return nil, err
		}
		file.Interface.Methods = append(file.Interface.Methods, method)
	}

	return file, nil
}

func (p *Parser) yamlMethod(filename string, m yamlMethod) (*Method, error) {
	pos := lexer.Position{Filename: filename, Line: m.line, Column: 1}
	method := &Method{
		Pos:        pos,
		Name:       m.Name,
		TypeParams: m.TypeParams,
	}

	returns := strings.TrimSpace(m.Returns)
	if returns == "" {
		returns = VoidKeyword
	}
	ref, err := p.typeRef.ParseString(filename, returns)
	if err != nil {
		return nil, p.fragmentError(filename, pos, "returns", returns, err)
	}
	method.Returns = ref

	for _, raw := range m.Params {
		param, err := p.param.ParseString(filename, raw)
		if err != nil {
			return nil, p.fragmentError(filename, pos, "params", raw, err)
		}
		method.Params = append(method.Params, param)
	}

	for _, raw := range m.Throws {
		ref, err := p.typeRef.ParseString(filename, raw)
		if err != nil {
			return nil, p.fragmentError(filename, pos, "throws", raw, err)
		}
		method.Throws = append(method.Throws, ref)
	}

	for _, raw := range m.Annotations {
		method.Annotations = append(method.Annotations, &AnnotationRef{
			Pos:  pos,
			Name: strings.TrimPrefix(strings.TrimSpace(raw), "@"),
		})
	}

	// Fragments are parsed on their own, so point positions at the method entry
	relocate(method, pos)

	return method, nil
}

func (p *Parser) fragmentError(filename string, pos lexer.Position, field, value string, err error) error {
	return errors.NewSyntaxError(fmt.Sprintf("invalid %s entry %q: %v", field, value, err)).
		WithToken(value).
		WithLocation(location(filename, pos))
}

func relocate(m *Method, pos lexer.Position) {
	var fix func(ref *TypeRef)
	fix = func(ref *TypeRef) {
		if ref == nil {
			return
		}
		ref.Pos = pos
		for _, arg := range ref.Args {
			arg.Pos = pos
			fix(arg.Bound)
			fix(arg.Type)
		}
	}

	fix(m.Returns)
	for _, param := range m.Params {
		param.Pos = pos
		fix(param.Type)
	}
	for _, t := range m.Throws {
		fix(t)
	}
}

// ValidationErrors converts validator field errors into located ValidationErrors
func ValidationErrors(filename string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WrapValidationError(filename, err)
	}

	multi := errors.NewMultipleErrors()
	for _, fe := range fieldErrs {
		expected := fe.Tag()
		switch fe.Tag() {
		case "javaident":
			expected = "a Java identifier"
		case "javaname":
			expected = "a dotted Java name"
		case "required":
			expected = "a value"
		}
		multi.Add(errors.NewValidationError(fe.Namespace(), expected, fmt.Sprintf("%q", fmt.Sprint(fe.Value()))).
			WithLocation(errors.SourceLocation{File: filename}))
	}
	return multi.ErrOrNil()
}
