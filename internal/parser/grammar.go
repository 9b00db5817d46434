package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// serviceLexer tokenizes service interface descriptions
var serviceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Punct", Pattern: `[.;,<>()@?\[\]{}=*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// File is the root of a .svc service description
type File struct {
	Pos       lexer.Position
	Package   string     `parser:"( 'package' @Ident ( @'.' @Ident )* ';' )?"`
	Imports   []*Import  `parser:"@@*"`
	Interface *Interface `parser:"@@"`
}

// Import is a single-type (or rejected on-demand) import
type Import struct {
	Pos  lexer.Position
	Name string `parser:"'import' @Ident ( @'.' ( @Ident | @'*' ) )* ';'"`
}

// Interface is the service endpoint interface declaration
type Interface struct {
	Pos         lexer.Position
	Annotations []*AnnotationRef `parser:"@@*"`
	Modifiers   []string         `parser:"@( 'public' | 'abstract' )*"`
	Name        string           `parser:"'interface' @Ident"`
	TypeParams  []string         `parser:"( '<' @Ident ( ',' @Ident )* '>' )?"`
	Methods     []*Method        `parser:"'{' @@* '}'"`
}

// Method is one interface method
type Method struct {
	Pos         lexer.Position
	Annotations []*AnnotationRef `parser:"@@*"`
	Modifiers   []string         `parser:"@( 'public' | 'abstract' )*"`
	TypeParams  []string         `parser:"( '<' @Ident ( ',' @Ident )* '>' )?"`
	Returns     *TypeRef         `parser:"@@"`
	Name        string           `parser:"@Ident"`
	Params      []*Param         `parser:"'(' ( @@ ( ',' @@ )* )? ')'"`
	Throws      []*TypeRef       `parser:"( 'throws' @@ ( ',' @@ )* )? ';'"`
}

// Param is a formal parameter; the name is optional
type Param struct {
	Pos         lexer.Position
	Annotations []*AnnotationRef `parser:"@@*"`
	Final       bool             `parser:"@'final'?"`
	Type        *TypeRef         `parser:"@@"`
	Name        string           `parser:"@Ident?"`
}

// AnnotationRef is a marker such as @Oneway or @WebParam(name="id").
// Arguments are captured as raw tokens and otherwise ignored.
type AnnotationRef struct {
	Pos  lexer.Position
	Name string   `parser:"'@' @Ident ( @'.' @Ident )*"`
	Args []string `parser:"( '(' @(~')')* ')' )?"`
}

// TypeRef is a possibly qualified, parameterized and dimensioned type
type TypeRef struct {
	Pos        lexer.Position
	Name       string     `parser:"@Ident ( @'.' @Ident )*"`
	Args       []*TypeArg `parser:"( '<' @@ ( ',' @@ )* '>' )?"`
	Dimensions []string   `parser:"( @'[' ']' )*"`
}

// TypeArg is a type argument, possibly a wildcard
type TypeArg struct {
	Pos       lexer.Position
	Wildcard  bool     `parser:"( @'?'"`
	BoundKind string   `parser:"  ( @( 'extends' | 'super' )"`
	Bound     *TypeRef `parser:"    @@ )?"`
	Type      *TypeRef `parser:"| @@ )"`
}

func buildParser[G any]() *participle.Parser[G] {
	return participle.MustBuild[G](
		participle.Lexer(serviceLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
}
