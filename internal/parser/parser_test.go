/*
File    : lazic/internal/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/symtab"
)

func mustParse(t *testing.T, src string) *ast.Expression {
	t.Helper()
	syms := symtab.New()
	p := New(src, syms)
	prog, err := p.ParseProgram()
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func TestParser_SimpleArithmeticStatement(t *testing.T) {
	prog := mustParse(t, `(+ 1 2)`)
	require.Len(t, prog.Children, 1)

	stmt := prog.Children[0]
	assert.Equal(t, ast.Statement, stmt.Kind)
	require.Len(t, stmt.Children, 3)
	assert.Equal(t, ast.Primitive, stmt.Children[1].Kind)
	assert.Equal(t, int64(1), stmt.Children[1].Num)
	assert.Equal(t, int64(2), stmt.Children[2].Num)
}

func TestParser_NestedStatements(t *testing.T) {
	prog := mustParse(t, `(def square x (* x x))`)
	require.Len(t, prog.Children, 1)

	def := prog.Children[0]
	require.Len(t, def.Children, 4) // head, name, param, body
	body := def.Children[3]
	assert.Equal(t, ast.Statement, body.Kind)
}

func TestParser_ListLiteral(t *testing.T) {
	prog := mustParse(t, `(print [1 2 3])`)
	list := prog.Children[0].Children[1]
	assert.Equal(t, ast.List, list.Kind)
	assert.Len(t, list.Children, 3)
}

func TestParser_PrimitiveKinds(t *testing.T) {
	prog := mustParse(t, `(print ANY) (print TRUE) (print FALSE) (print NULL) (print "hi") (print 0)`)
	expect := []ast.PrimitiveKind{ast.Any, ast.True, ast.False, ast.Null, ast.String, ast.Number}
	for i, stmt := range prog.Children {
		arg := stmt.Children[1]
		assert.Equal(t, expect[i], arg.PType, "statement %d", i)
	}
}

func TestParser_StringLiteralStripsQuotes(t *testing.T) {
	prog := mustParse(t, `(print "hello")`)
	arg := prog.Children[0].Children[1]
	assert.Equal(t, "hello", arg.Str)
}

func TestParser_MatchColonIsAnIdentifier(t *testing.T) {
	syms := symtab.New()
	p := New(`(match x 1 : 2 3 : 4)`, syms)
	prog, err := p.ParseProgram()
	require.NoError(t, err)

	colon := prog.Children[0].Children[3]
	assert.Equal(t, ast.Id, colon.Kind)
	assert.Equal(t, symtab.KeyColon, colon.Key)
}

func TestParser_UnexpectedTrailingTokenFails(t *testing.T) {
	syms := symtab.New()
	p := New(`(+ 1 2) )`, syms)
	_, err := p.ParseProgram()
	assert.Error(t, err)
}

func TestParser_UnterminatedStatementFails(t *testing.T) {
	syms := symtab.New()
	p := New(`(+ 1 2`, syms)
	_, err := p.ParseProgram()
	assert.Error(t, err)
}

func TestParser_EmptyProgram(t *testing.T) {
	prog := mustParse(t, `   `)
	assert.Empty(t, prog.Children)
}
