package generator

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/models"
	"github.com/toyz/stubgen/internal/templates"
	"github.com/toyz/stubgen/internal/typeshape"
	"github.com/toyz/stubgen/internal/utils/fileops"
)

// DefaultOneWayMarkers are the annotations that mark a fire-and-forget method
var DefaultOneWayMarkers = []string{"javax.jws.Oneway", "jakarta.jws.Oneway"}

// WarningDuplicateUnit is reported when two different sources map to one file
const WarningDuplicateUnit = "duplicate-unit"

// Options configures a Generator
type Options struct {
	// OneWayMarkers replaces DefaultOneWayMarkers when non-empty
	OneWayMarkers []string
	// Strict turns duplicate unit warnings into an error raised before any write
	Strict bool
}

// Generator implements the StubGenerator interface
type Generator struct {
	markers  map[string]bool
	strict   bool
	renderer *templates.Renderer
	fileOps  *fileops.FileOps
	names    *templates.TemplateUtils
}

// NewGenerator creates a generator with the default one-way markers
func NewGenerator() *Generator {
	return NewGeneratorWithOptions(Options{})
}

// NewGeneratorWithOptions creates a generator with the given options
func NewGeneratorWithOptions(opts Options) *Generator {
	markers := opts.OneWayMarkers
	if len(markers) == 0 {
		markers = DefaultOneWayMarkers
	}

	set := make(map[string]bool, len(markers))
	for _, m := range markers {
		set[m] = true
	}

	return &Generator{
		markers:  set,
		strict:   opts.Strict,
		renderer: templates.DefaultRenderer(),
		fileOps:  fileops.NewFileOps(),
		names:    templates.DefaultTemplateUtils,
	}
}

// Generate writes the wrappers of iface into dest and returns the written
// paths in write order. It is the single entry point used by callers that
// do not need the full GenerationResult.
func Generate(iface *models.ServiceInterface, dest string) ([]string, error) {
	result, err := NewGenerator().Generate(context.Background(), iface, dest)
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}

// Generate prepares dest, plans every unit and writes them in order.
// The destination is created before anything else happens; a write failure
// aborts immediately and leaves already written files in place. When a
// method fails to plan, the units of the methods before it are still
// written and the planning error is returned after them. The returned
// result lists the files written so far even when err is set.
func (g *Generator) Generate(ctx context.Context, iface *models.ServiceInterface, dest string) (*models.GenerationResult, error) {
	if err := g.fileOps.EnsureDir(dest); err != nil {
		return nil, err
	}

	result, planErr := g.Plan(iface)
	if result == nil {
		return nil, planErr
	}

	if g.strict && len(result.Warnings) > 0 {
		return result, strictError(iface, result.Warnings)
	}

	if err := g.write(ctx, result, dest); err != nil {
		return result, err
	}
	return result, planErr
}

// write stores the planned units of result under dest in order
func (g *Generator) write(ctx context.Context, result *models.GenerationResult, dest string) error {
	for i := range result.Units {
		unit := &result.Units[i]

		// a request unit starts the next method
		if unit.Kind == models.UnitRequest {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(errors.GenerationErrorCode, "generation cancelled", err).
					WithContext("service", result.Service)
			}
		}

		path := filepath.Join(dest, unit.FileName())
		if err := g.fileOps.WriteFile(path, []byte(unit.Content)); err != nil {
			return err
		}
		result.Files = append(result.Files, path)
	}

	return nil
}

// Plan builds every unit of iface in write order without writing anything.
// When a method fails, the result holding the units of the earlier methods
// is returned together with the error.
func (g *Generator) Plan(iface *models.ServiceInterface) (*models.GenerationResult, error) {
	if iface == nil {
		return nil, errors.NewGenerationError("service interface cannot be nil")
	}
	if iface.Package == "" {
		return nil, errors.NewValidationError("package", "the package of "+iface.Name, "none")
	}

	e := &emission{
		generator: g,
		iface:     iface,
		pkg:       g.names.TargetPackage(iface.Package),
		owners:    make(map[string]string),
		result:    &models.GenerationResult{Service: iface.QualifiedName()},
	}

	for i := range iface.Methods {
		planned := len(e.result.Units)
		if err := e.method(&iface.Methods[i]); err != nil {
			e.result.Units = e.result.Units[:planned]
			return e.result, err
		}
	}

	return e.result, nil
}

// IsOneWay reports whether any annotation of m is a configured one-way marker
func (g *Generator) IsOneWay(m *models.ServiceMethod) bool {
	return m.HasAnnotation(g.markers)
}

// emission holds the per-run state of one Plan call
type emission struct {
	generator *Generator
	iface     *models.ServiceInterface
	pkg       string
	owners    map[string]string // file name -> identity of the unit that owns it
	result    *models.GenerationResult
}

// method runs Start -> Request -> (OneWay: Done) | (Response -> Exceptions -> Done)
func (e *emission) method(m *models.ServiceMethod) error {
	request, err := e.request(m)
	if err != nil {
		return e.locate(m, err)
	}
	if err := e.add(request, "request for "+e.signature(m)); err != nil {
		return err
	}

	if e.generator.IsOneWay(m) {
		return nil
	}

	response, err := e.response(m)
	if err != nil {
		return e.locate(m, err)
	}
	if err := e.add(response, "response for "+e.signature(m)); err != nil {
		return err
	}

	seen := make(map[string]bool, len(m.Throws))
	for _, failure := range m.Throws {
		if seen[failure.QualifiedName()] {
			continue
		}
		seen[failure.QualifiedName()] = true

		if err := e.add(e.exceptionBean(failure), "exception bean for "+failure.QualifiedName()); err != nil {
			return err
		}
	}

	return nil
}

func (e *emission) request(m *models.ServiceMethod) (models.GeneratedUnit, error) {
	unit := models.GeneratedUnit{
		Kind:        models.UnitRequest,
		PackageName: e.pkg,
		ClassName:   e.generator.names.RequestClassName(m.Name),
	}

	types := m.ParameterTypes()
	deps, err := typeshape.CollectDependencies(e.pkg, types...)
	if err != nil {
		return unit, err
	}

	for i, td := range types {
		decl, err := typeshape.Declaration(td)
		if err != nil {
			return unit, err
		}
		unit.Fields = append(unit.Fields, models.Field{
			Name:        e.generator.names.ArgFieldName(i),
			Declaration: decl,
		})
	}

	unit.Imports = importsOf(deps.Names()...)
	return unit, nil
}

func (e *emission) response(m *models.ServiceMethod) (models.GeneratedUnit, error) {
	unit := models.GeneratedUnit{
		Kind:        models.UnitResponse,
		PackageName: e.pkg,
		ClassName:   e.generator.names.ResponseClassName(m.Name),
	}

	shape, err := typeshape.Resolve(m.Returns)
	if err != nil {
		return unit, err
	}
	if shape.IsNoValue() {
		return unit, nil
	}

	deps, err := typeshape.CollectDependencies(e.pkg, m.Returns)
	if err != nil {
		return unit, err
	}

	unit.Fields = []models.Field{{Name: templates.ReturnField, Declaration: shape.Declaration()}}
	unit.Imports = importsOf(deps.Names()...)
	return unit, nil
}

func (e *emission) exceptionBean(failure *models.ClassType) models.GeneratedUnit {
	return models.GeneratedUnit{
		Kind:        models.UnitExceptionBean,
		PackageName: e.pkg,
		Imports:     importsOf(templates.XmlRootElementFQ),
		Annotations: []string{templates.XmlRootElement},
		ClassName:   e.generator.names.BeanClassName(failure.Name),
	}
}

// add renders the unit, records it and checks its file name for collisions
func (e *emission) add(unit models.GeneratedUnit, identity string) error {
	content, err := e.generator.renderer.Render(&unit)
	if err != nil {
		return errors.WrapGenerateError(unit.Kind.String(), unit.FileName(), err)
	}
	unit.Content = content

	fileName := unit.FileName()
	if owner, ok := e.owners[fileName]; ok && owner != identity {
		e.result.Warnings = append(e.result.Warnings, models.Warning{
			Code:    WarningDuplicateUnit,
			Message: fmt.Sprintf("%s and %s both generate %s; the last one written wins", owner, identity, fileName),
		})
	}
	e.owners[fileName] = identity

	e.result.Units = append(e.result.Units, unit)
	return nil
}

// signature identifies a method by name and parameter declarations
func (e *emission) signature(m *models.ServiceMethod) string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.Type.String()
	}
	return fmt.Sprintf("%s.%s(%s)", e.iface.Name, m.Name, strings.Join(params, ", "))
}

// locate attaches the method's position to a shape resolution failure
func (e *emission) locate(m *models.ServiceMethod, err error) error {
	var shapeErr *errors.ShapeResolutionError
	if stderrors.As(err, &shapeErr) {
		shapeErr.WithLocation(errors.SourceLocation{File: e.iface.Source, Line: m.Line}).
			WithContext("method", m.Name).
			WithContext("service", e.iface.QualifiedName())
	}
	return err
}

func importsOf(qualifiedNames ...string) []string {
	im := templates.NewImportManager()
	im.AddImports(qualifiedNames...)
	return im.Imports()
}

func strictError(iface *models.ServiceInterface, warnings []models.Warning) error {
	messages := make([]string, len(warnings))
	for i, w := range warnings {
		messages[i] = w.Message
	}

	return errors.NewValidationError("units of "+iface.QualifiedName(), "unique file names", strings.Join(messages, "; ")).
		WithLocation(errors.SourceLocation{File: iface.Source}).
		WithSuggestion("Rename the overloaded methods or failure types").
		WithSuggestion("Run without --strict to accept last-write-wins")
}

var _ StubGenerator = (*Generator)(nil)
