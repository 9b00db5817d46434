package templates

import (
	"sort"
)

// ImportManager collects the imports of one unit and keeps them unique
type ImportManager struct {
	imports map[string]bool
}

// NewImportManager creates a new import manager
func NewImportManager() *ImportManager {
	return &ImportManager{
		imports: make(map[string]bool),
	}
}

// AddImport adds a fully qualified class name
func (im *ImportManager) AddImport(qualifiedName string) {
	if qualifiedName != "" {
		im.imports[qualifiedName] = true
	}
}

// AddImports adds several fully qualified class names
func (im *ImportManager) AddImports(qualifiedNames ...string) {
	for _, name := range qualifiedNames {
		im.AddImport(name)
	}
}

// Len returns the number of distinct imports
func (im *ImportManager) Len() int {
	return len(im.imports)
}

// Imports returns the imports sorted lexicographically
func (im *ImportManager) Imports() []string {
	imports := make([]string, 0, len(im.imports))
	for imp := range im.imports {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}
