package templates

import (
	"bytes"
	"text/template"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/models"
)

// UnitData is the view of a GeneratedUnit handed to the unit template
type UnitData struct {
	PackageName string
	Imports     []string
	Annotations []string
	ClassName   string
	Fields      []models.Field
	// Members renders the field/accessor section even when Fields is
	// empty, which leaves one blank line inside the class braces
	Members bool
}

// NewUnitData builds template data for a unit. Request units always render
// a member section; response and bean units only when they have fields.
func NewUnitData(unit *models.GeneratedUnit) UnitData {
	return UnitData{
		PackageName: unit.PackageName,
		Imports:     unit.Imports,
		Annotations: unit.Annotations,
		ClassName:   unit.ClassName,
		Fields:      unit.Fields,
		Members:     unit.Kind == models.UnitRequest || len(unit.Fields) > 0,
	}
}

// Renderer turns generated units into Java source text
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses every template of the registry into one template set
func NewRenderer(registry *TemplateRegistry) (*Renderer, error) {
	funcMap := template.FuncMap{
		"capitalize": DefaultTemplateUtils.Capitalize,
	}

	root := template.New("stubgen").Funcs(funcMap)
	for _, name := range registry.Names() {
		if _, err := root.New(name).Parse(registry.MustGet(name)); err != nil {
			return nil, errors.WrapTemplateError(name, "parse", err)
		}
	}

	return &Renderer{tmpl: root}, nil
}

// Render renders a unit and returns its source text
func (r *Renderer) Render(unit *models.GeneratedUnit) (string, error) {
	return r.execute(TemplateUnit, NewUnitData(unit))
}

// RenderFragment renders a single named template, mostly useful in tests
func (r *Renderer) RenderFragment(name string, data interface{}) (string, error) {
	return r.execute(name, data)
}

func (r *Renderer) execute(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.WrapTemplateError(name, "execute", err)
	}
	return buf.String(), nil
}

var defaultRenderer = mustRenderer(DefaultTemplateRegistry)

func mustRenderer(registry *TemplateRegistry) *Renderer {
	r, err := NewRenderer(registry)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultRenderer returns the renderer built from the default registry
func DefaultRenderer() *Renderer {
	return defaultRenderer
}

// RenderUnit renders a unit with the default templates
func RenderUnit(unit *models.GeneratedUnit) (string, error) {
	return defaultRenderer.Render(unit)
}
