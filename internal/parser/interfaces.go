package parser

import (
	"github.com/toyz/stubgen/internal/models"
)

// ServiceParser loads service interfaces from description files
type ServiceParser interface {
	// ParseFile reads and parses a .svc or YAML description
	ParseFile(path string) (*models.ServiceInterface, error)
	// ParseSource parses description text, choosing the format by filename
	ParseSource(filename string, source []byte) (*models.ServiceInterface, error)
}

// IsDescriptionFile reports whether a file name has a supported extension
func IsDescriptionFile(name string) bool {
	switch extension(name) {
	case ExtService, ExtYAML, ExtYML:
		return true
	}
	return false
}
