package parser

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/go-playground/validator/v10"

	"github.com/toyz/stubgen/internal/models"
	"github.com/toyz/stubgen/internal/utils/fileops"
)

// Parser implements the ServiceParser interface
type Parser struct {
	idl      *participle.Parser[File]
	param    *participle.Parser[Param]
	typeRef  *participle.Parser[TypeRef]
	validate *validator.Validate
	reporter *ErrorReporter
	fileOps  *fileops.FileOps
}

// NewParser creates a new service description parser
func NewParser() *Parser {
	return &Parser{
		idl:      buildParser[File](),
		param:    buildParser[Param](),
		typeRef:  buildParser[TypeRef](),
		validate: NewValidator(),
		reporter: NewErrorReporter(),
		fileOps:  fileops.NewFileOps(),
	}
}

// ParseFile reads a description file and parses it
func (p *Parser) ParseFile(path string) (*models.ServiceInterface, error) {
	source, err := p.fileOps.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.ParseSource(path, source)
}

// ParseSource parses description text. YAML is chosen for .yaml and .yml
// file names, the interface grammar for everything else.
func (p *Parser) ParseSource(filename string, source []byte) (*models.ServiceInterface, error) {
	var (
		file *File
		err  error
	)

	switch extension(filename) {
	case ExtYAML, ExtYML:
		file, err = p.parseYAML(filename, source)
	default:
		file, err = p.parseIDL(filename, source)
	}
	if err != nil {
		return nil, err
	}

	return lower(filename, file, p.reporter)
}

// ParseString is ParseSource for string input, mostly used by tests
func (p *Parser) ParseString(filename, source string) (*models.ServiceInterface, error) {
	return p.ParseSource(filename, []byte(source))
}

func (p *Parser) parseIDL(filename string, source []byte) (*File, error) {
	file, err := p.idl.ParseBytes(filename, source)
	if err != nil {
		return nil, p.reporter.SyntaxError(filename, err)
	}
	return file, nil
}

func extension(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

var _ ServiceParser = (*Parser)(nil)
