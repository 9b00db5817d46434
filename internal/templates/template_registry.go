package templates

import "sort"

// Template names
const (
	TemplateUnit    = "unit"
	TemplateHeader  = "header"
	TemplateImports = "imports"
	TemplateBanner  = "banner"
	TemplateClass   = "class"
	TemplateMembers = "members"
	TemplateGetter  = "getter"
	TemplateSetter  = "setter"
)

// Banner is the warning placed at the top of every generated unit
const Banner = "/**\n" +
	" * WARNING: This file was dynamically generated by jaxws-stubgen! Any manual\n" +
	" * changes made to this file will be overwritten.\n" +
	" */"

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerUnitTemplates()
	registry.registerMemberTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	template, exists := tr.templates[name]
	return template, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	template, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return template
}

// Names returns the registered template names in sorted order
func (tr *TemplateRegistry) Names() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// registerUnitTemplates registers the file level layout of a unit
func (tr *TemplateRegistry) registerUnitTemplates() {
	tr.templates[TemplateUnit] = `{{template "header" .}}{{template "imports" .}}{{template "banner" .}}{{template "class" .}}`

	tr.templates[TemplateHeader] = "package {{.PackageName}};\n\n"

	// one import per line, then a blank line when there were any
	tr.templates[TemplateImports] = "{{range .Imports}}import {{.}};\n{{end}}{{if .Imports}}\n{{end}}"

	tr.templates[TemplateBanner] = Banner + "\n"

	tr.templates[TemplateClass] = "{{range .Annotations}}@{{.}}\n{{end}}" +
		"public class {{.ClassName}} {\n\n" +
		"{{if .Members}}{{template \"members\" .Fields}}{{end}}" +
		"}\n"
}

// registerMemberTemplates registers fields and accessor pairs
func (tr *TemplateRegistry) registerMemberTemplates() {
	// fields separated by blank lines, a blank line, then getter/setter pairs
	tr.templates[TemplateMembers] = "{{range $i, $f := .}}{{if $i}}\n{{end}}    private {{$f.Declaration}} {{$f.Name}};\n{{end}}" +
		"\n" +
		"{{range $i, $f := .}}{{if $i}}\n{{end}}{{template \"getter\" $f}}\n{{template \"setter\" $f}}{{end}}"

	tr.templates[TemplateGetter] = "    public {{.Declaration}} get{{capitalize .Name}}() {\n" +
		"        return {{.Name}};\n" +
		"    }\n"

	tr.templates[TemplateSetter] = "    public void set{{capitalize .Name}}({{.Declaration}} {{.Name}}) {\n" +
		"        this.{{.Name}} = {{.Name}};\n" +
		"    }\n"
}

// Global template registry instance
var DefaultTemplateRegistry = NewTemplateRegistry()
