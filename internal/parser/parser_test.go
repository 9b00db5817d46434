package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/stubgen/internal/errors"
	"github.com/toyz/stubgen/internal/models"
)

const calculatorSource = `
package com.example.calc;

// arithmetic endpoint
public interface Calculator {
    int add(int a, int b);

    /* fire and forget */
    @javax.jws.Oneway
    void ping();

    String describe(final String label) throws CalcException;
}
`

func TestParseCalculator(t *testing.T) {
	p := NewParser()

	iface, err := p.ParseString("calc.svc", calculatorSource)
	require.NoError(t, err)

	assert.Equal(t, "com.example.calc", iface.Package)
	assert.Equal(t, "Calculator", iface.Name)
	assert.Equal(t, "com.example.calc.Calculator", iface.QualifiedName())
	assert.Equal(t, "calc.svc", iface.Source)
	require.Len(t, iface.Methods, 3)

	add := iface.Methods[0]
	assert.Equal(t, "add", add.Name)
	assert.Equal(t, 6, add.Line)
	require.Len(t, add.Params, 2)
	assert.Equal(t, "a", add.Params[0].Name)
	assert.Equal(t, models.Primitive("int"), add.Params[0].Type)
	assert.Equal(t, models.Primitive("int"), add.Returns)
	assert.Empty(t, add.Throws)

	ping := iface.Methods[1]
	assert.Empty(t, ping.Params)
	assert.True(t, ping.Returns.(*models.ClassType).IsVoid())
	require.Len(t, ping.Annotations, 1)
	assert.Equal(t, "javax.jws.Oneway", ping.Annotations[0].Name)

	describe := iface.Methods[2]
	assert.Equal(t, models.Class("java.lang", "String"), describe.Returns)
	require.Len(t, describe.Throws, 1)
	assert.Equal(t, "com.example.calc.CalcException", describe.Throws[0].QualifiedName())
}

func TestNameResolution(t *testing.T) {
	source := `
package com.example.fleet;

import java.util.List;
import java.util.Map;
import com.example.parts.Part;
import javax.jws.Oneway;

interface Fleet {
    List<Part> parts(Map<String, Long> index, java.util.Date since, Vehicle v);

    @Oneway
    @WebMethod(operationName = "reset", exclude = false)
    void reset();
}
`
	iface, err := NewParser().ParseString("fleet.svc", source)
	require.NoError(t, err)

	parts := iface.Methods[0]
	assert.Equal(t,
		models.Parameterized(models.Class("java.util", "List"), models.Class("com.example.parts", "Part")),
		parts.Returns)

	types := parts.ParameterTypes()
	require.Len(t, types, 3)
	assert.Equal(t,
		models.Parameterized(models.Class("java.util", "Map"), models.Class("java.lang", "String"), models.Class("java.lang", "Long")),
		types[0])
	assert.Equal(t, models.Class("java.util", "Date"), types[1])
	assert.Equal(t, models.Class("com.example.fleet", "Vehicle"), types[2], "unknown simple names belong to the interface package")

	reset := iface.Methods[1]
	require.Len(t, reset.Annotations, 2)
	assert.Equal(t, "javax.jws.Oneway", reset.Annotations[0].Name)
	assert.Equal(t, "WebMethod", reset.Annotations[1].Name, "unresolved annotations stay as written")
}

func TestNestedTypeNames(t *testing.T) {
	source := `
package com.example.fleet;

import java.util.Map;

interface Fleet {
    Map.Entry<String, Long> first(Vehicle.Kind kind, Character.UnicodeBlock block, java.util.AbstractMap.SimpleEntry pair);
}
`
	iface, err := NewParser().ParseString("fleet.svc", source)
	require.NoError(t, err)

	first := iface.Methods[0]
	assert.Equal(t,
		models.Parameterized(models.Class("java.util.Map", "Entry"), models.Class("java.lang", "String"), models.Class("java.lang", "Long")),
		first.Returns)

	types := first.ParameterTypes()
	require.Len(t, types, 3)
	assert.Equal(t, models.Class("com.example.fleet.Vehicle", "Kind"), types[0])
	assert.Equal(t, models.Class("java.lang.Character", "UnicodeBlock"), types[1])
	assert.Equal(t, models.Class("java.util.AbstractMap", "SimpleEntry"), types[2])
}

func TestArraysAndGenerics(t *testing.T) {
	source := `
package com.example.data;
import java.util.List;

interface Data<T> {
    byte[] raw(int[][] grid);
    List<String>[] pages();
    List<? extends Number> numbers(List<?> any, List<? super Integer> sink);
    T current();
    <E> E echo(E value);
}
`
	iface, err := NewParser().ParseString("data.svc", source)
	require.NoError(t, err)
	require.Len(t, iface.Methods, 5)

	raw := iface.Methods[0]
	assert.Equal(t, models.KindArray, raw.Returns.Kind())
	assert.Equal(t, "byte[]", raw.Returns.String())
	assert.Equal(t, "int[][]", raw.Params[0].Type.String())

	pages := iface.Methods[1]
	assert.Equal(t, models.KindGenericArray, pages.Returns.Kind())

	numbers := iface.Methods[2]
	ret := numbers.Returns.(*models.ParameterizedType)
	wildcard := ret.Args[0].(*models.WildcardType)
	assert.False(t, wildcard.Super)
	assert.Equal(t, models.Class("java.lang", "Number"), wildcard.Bound)

	unbounded := numbers.Params[0].Type.(*models.ParameterizedType).Args[0].(*models.WildcardType)
	assert.Nil(t, unbounded.Bound)
	lower := numbers.Params[1].Type.(*models.ParameterizedType).Args[0].(*models.WildcardType)
	assert.True(t, lower.Super)

	assert.Equal(t, &models.TypeVariable{Name: "T"}, iface.Methods[3].Returns)
	assert.Equal(t, &models.TypeVariable{Name: "E"}, iface.Methods[4].Returns)
	assert.Equal(t, &models.TypeVariable{Name: "E"}, iface.Methods[4].Params[0].Type)
}

func TestParseUnnamedParameters(t *testing.T) {
	iface, err := NewParser().ParseString("x.svc", "package a.b; interface X { long sum(long, long); }")
	require.NoError(t, err)
	require.Len(t, iface.Methods[0].Params, 2)
	assert.Empty(t, iface.Methods[0].Params[0].Name)
}

func TestParseValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		contains string
	}{
		{
			name:     "missing package",
			source:   "interface X { void a(); }",
			contains: "package",
		},
		{
			name:     "on demand import",
			source:   "package a; import java.util.*; interface X { void a(); }",
			contains: "java.util.*",
		},
		{
			name:     "unqualified import",
			source:   "package a; import List; interface X { void a(); }",
			contains: "package-qualified",
		},
		{
			name:     "conflicting imports",
			source:   "package a; import java.util.List; import java.awt.List; interface X { void a(); }",
			contains: "java.awt.List",
		},
		{
			name:     "void parameter",
			source:   "package a; interface X { void a(void v); }",
			contains: "void",
		},
		{
			name:     "void array return",
			source:   "package a; interface X { void[] a(); }",
			contains: "void",
		},
		{
			name:     "primitive type argument",
			source:   "package a; import java.util.List; interface X { List<int> a(); }",
			contains: "int",
		},
		{
			name:     "parameterized throws",
			source:   "package a; interface X { void a() throws Failure<String>; }",
			contains: "plain class",
		},
		{
			name:     "primitive throws",
			source:   "package a; interface X { void a() throws int; }",
			contains: "primitive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseString("x.svc", tt.source)
			require.Error(t, err)
			assert.Equal(t, errors.ValidationErrorCode, errors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestPrimitiveTypeArgumentSuggestsBoxedType(t *testing.T) {
	_, err := NewParser().ParseString("x.svc", "package a; import java.util.List; interface X { void a(List<long> ids); }")
	require.Error(t, err)

	var se errors.StubError
	require.True(t, stderrors.As(err, &se))
	assert.Contains(t, se.Suggestions(), "Use the boxed type Long instead of long")
	assert.Equal(t, "x.svc", se.Location().File)
	assert.Equal(t, 1, se.Location().Line)
}

func TestParseSyntaxError(t *testing.T) {
	source := "package a;\ninterface X {\n    int add(int a)\n}\n"

	_, err := NewParser().ParseString("broken.svc", source)
	require.Error(t, err)
	assert.Equal(t, errors.SyntaxErrorCode, errors.CodeOf(err))

	var syntaxErr *errors.SyntaxError
	require.True(t, stderrors.As(err, &syntaxErr))
	assert.Equal(t, "broken.svc", syntaxErr.Location().File)
	assert.Greater(t, syntaxErr.Location().Line, 2)
	assert.NotEmpty(t, syntaxErr.Suggestions())
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "calc.svc")
	require.NoError(t, os.WriteFile(path, []byte(calculatorSource), 0644))

	iface, err := NewParser().ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Calculator", iface.Name)
	assert.Equal(t, path, iface.Source)

	_, err = NewParser().ParseFile(filepath.Join(dir, "missing.svc"))
	require.Error(t, err)
	assert.Equal(t, errors.FileSystemErrorCode, errors.CodeOf(err))
}

func TestIsDescriptionFile(t *testing.T) {
	assert.True(t, IsDescriptionFile("calc.svc"))
	assert.True(t, IsDescriptionFile("calc.yaml"))
	assert.True(t, IsDescriptionFile("CALC.YML"))
	assert.False(t, IsDescriptionFile("Calc.java"))
	assert.False(t, IsDescriptionFile("stubgen"))
}
