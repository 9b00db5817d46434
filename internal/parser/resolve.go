package parser

import (
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/models"
)

// nameResolver turns names as written in a description into type descriptors.
// Lookup order: type variables, primitives, qualified names, single-type
// imports, java.lang, then the interface's own package.
type nameResolver struct {
	filename string
	pkg      string
	imports  map[string]string // simple name -> qualified name
	vars     map[string]bool
	reporter *ErrorReporter
}

func newNameResolver(filename, pkg string, imports []*Import, reporter *ErrorReporter) (*nameResolver, error) {
	r := &nameResolver{
		filename: filename,
		pkg:      pkg,
		imports:  make(map[string]string),
		vars:     make(map[string]bool),
		reporter: reporter,
	}

	for _, imp := range imports {
		if strings.HasSuffix(imp.Name, OnDemandSuffix) {
			return nil, reporter.OnDemandImport(filename, imp.Pos, imp.Name)
		}
		_, simple := splitQualified(imp.Name)
		if simple == imp.Name {
			return nil, reporter.UnqualifiedImport(filename, imp.Pos, imp.Name)
		}
		if existing, ok := r.imports[simple]; ok && existing != imp.Name {
			return nil, reporter.ImportConflict(filename, imp.Pos, simple, existing, imp.Name)
		}
		r.imports[simple] = imp.Name
	}

	return r, nil
}

// withTypeVars returns a resolver that also knows the given type parameters
func (r *nameResolver) withTypeVars(names []string) *nameResolver {
	if len(names) == 0 {
		return r
	}
	scoped := *r
	scoped.vars = make(map[string]bool, len(r.vars)+len(names))
	for name := range r.vars {
		scoped.vars[name] = true
	}
	for _, name := range names {
		scoped.vars[name] = true
	}
	return &scoped
}

func (r *nameResolver) name(name string) models.TypeDescriptor {
	if r.vars[name] {
		return &models.TypeVariable{Name: name}
	}
	return r.class(name)
}

func (r *nameResolver) class(name string) *models.ClassType {
	if models.PrimitiveNames[name] {
		return models.Primitive(name)
	}
	if strings.Contains(name, ".") {
		return models.Class(splitQualified(r.nested(name)))
	}
	if qualified, ok := r.imports[name]; ok {
		return models.Class(splitQualified(qualified))
	}
	if javaLangTypes[name] {
		return models.Class(JavaLangPackage, name)
	}
	return models.Class(r.pkg, name)
}

// nested qualifies a dotted name. A leading segment that names a type, by
// import, java.lang or an upper case initial, makes the rest a member type
// of it, so Map.Entry under "import java.util.Map" becomes java.util.Map.Entry.
func (r *nameResolver) nested(name string) string {
	outer, _, _ := strings.Cut(name, ".")
	if qualified, ok := r.imports[outer]; ok {
		return qualified + strings.TrimPrefix(name, outer)
	}
	if javaLangTypes[outer] {
		return JavaLangPackage + "." + name
	}
	if r.pkg != "" && outer != "" && unicode.IsUpper([]rune(outer)[0]) {
		return r.pkg + "." + name
	}
	return name
}

// annotation resolves through imports only; unknown names stay as written
func (r *nameResolver) annotation(name string) string {
	if qualified, ok := r.imports[name]; ok {
		return qualified
	}
	return name
}

// returnType resolves a method return type, the only place void may appear
func (r *nameResolver) returnType(ref *TypeRef) (models.TypeDescriptor, error) {
	if ref.Name == VoidKeyword {
		if len(ref.Args) > 0 || len(ref.Dimensions) > 0 {
			return nil, r.reporter.VoidMisuse(r.filename, ref.Pos, "void cannot be parameterized or used as an array element")
		}
		return models.Primitive(VoidKeyword), nil
	}
	return r.valueType(ref)
}

// valueType resolves a type used as a parameter or type argument
func (r *nameResolver) valueType(ref *TypeRef) (models.TypeDescriptor, error) {
	if ref.Name == VoidKeyword {
		return nil, r.reporter.VoidMisuse(r.filename, ref.Pos, "void is only allowed as a return type")
	}

	base := r.name(ref.Name)
	td := base

	if len(ref.Args) > 0 {
		if c, ok := base.(*models.ClassType); ok && c.Primitive {
			return nil, r.reporter.PrimitiveTypeArgument(r.filename, ref.Pos, ref.Name)
		}
		if _, ok := base.(*models.TypeVariable); ok {
			return nil, r.reporter.InvalidType(r.filename, ref.Pos, ref.Name, "a class when type arguments are given")
		}

		args := make([]models.TypeDescriptor, 0, len(ref.Args))
		for _, arg := range ref.Args {
			resolved, err := r.typeArg(arg)
			if err != nil {
				return nil, err
			}
			args = append(args, resolved)
		}
		td = models.Parameterized(base, args...)
	}

	for range ref.Dimensions {
		td = models.ArrayOf(td)
	}

	return td, nil
}

func (r *nameResolver) typeArg(arg *TypeArg) (models.TypeDescriptor, error) {
	if arg.Wildcard {
		wildcard := &models.WildcardType{Super: arg.BoundKind == "super"}
		if arg.Bound != nil {
			bound, err := r.valueType(arg.Bound)
			if err != nil {
				return nil, err
			}
			wildcard.Bound = bound
		}
		return wildcard, nil
	}

	td, err := r.valueType(arg.Type)
	if err != nil {
		return nil, err
	}
	if c, ok := td.(*models.ClassType); ok && c.Primitive {
		return nil, r.reporter.PrimitiveTypeArgument(r.filename, arg.Type.Pos, c.Name)
	}
	return td, nil
}

// exception resolves a throws clause entry, which must be a plain class
func (r *nameResolver) exception(ref *TypeRef) (*models.ClassType, error) {
	if len(ref.Args) > 0 || len(ref.Dimensions) > 0 {
		return nil, r.reporter.InvalidType(r.filename, ref.Pos, ref.Name, "a plain class in the throws clause")
	}
	if r.vars[ref.Name] {
		return nil, r.reporter.InvalidType(r.filename, ref.Pos, ref.Name, "a class rather than a type variable in the throws clause")
	}
	c := r.class(ref.Name)
	if c.Primitive {
		return nil, r.reporter.InvalidType(r.filename, ref.Pos, ref.Name, "a class rather than a primitive in the throws clause")
	}
	return c, nil
}

// lower converts a parsed description into a service interface
func lower(filename string, file *File, reporter *ErrorReporter) (*models.ServiceInterface, error) {
	if file.Package == "" {
		return nil, reporter.MissingPackage(filename, file.Pos)
	}

	resolver, err := newNameResolver(filename, file.Package, file.Imports, reporter)
	if err != nil {
		return nil, err
	}
	resolver = resolver.withTypeVars(file.Interface.TypeParams)

	iface := &models.ServiceInterface{
		Package: file.Package,
		Name:    file.Interface.Name,
		Methods: make([]models.ServiceMethod, 0, len(file.Interface.Methods)),
		Source:  filename,
	}

	for _, m := range file.Interface.Methods {
		method, err := lowerMethod(resolver.withTypeVars(m.TypeParams), m)
		if err != nil {
			return nil, err
		}
		iface.Methods = append(iface.Methods, method)
	}

	return iface, nil
}

func lowerMethod(r *nameResolver, m *Method) (models.ServiceMethod, error) {
	method := models.ServiceMethod{
		Name: m.Name,
		Line: m.Pos.Line,
	}

	returns, err := r.returnType(m.Returns)
	if err != nil {
		return method, err
	}
	method.Returns = returns

	for _, p := range m.Params {
		td, err := r.valueType(p.Type)
		if err != nil {
			return method, err
		}
		method.Params = append(method.Params, models.Parameter{Name: p.Name, Type: td})
	}

	for _, t := range m.Throws {
		c, err := r.exception(t)
		if err != nil {
			return method, err
		}
		method.Throws = append(method.Throws, c)
	}

	for _, a := range m.Annotations {
		method.Annotations = append(method.Annotations, models.Annotation{Name: r.annotation(a.Name)})
	}

	return method, nil
}

// splitQualified splits a qualified name at its last dot
func splitQualified(name string) (string, string) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}

func location(filename string, pos lexer.Position) errors.SourceLocation {
	file := pos.Filename
	if file == "" {
		file = filename
	}
	return errors.SourceLocation{File: file, Line: pos.Line, Column: pos.Column}
}
