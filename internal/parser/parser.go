/*
File    : lazic/internal/parser/parser.go

Package parser implements the recursive-descent grammar described in
the language specification: four node productions (Primitive, Id,
List, Statement) each of which reports success or failure without
consuming input on failure, plus a Program production that accumulates
top-level Statements.
*/
package parser

import (
	"strconv"
	"strings"

	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/lexer"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// Parser holds the lexer and symbol table a single parse uses.
type Parser struct {
	lx   *lexer.Lexer
	syms *symtab.Table
}

// New creates a Parser over src, using syms both to tokenize and to
// intern the AST's identifier keys.
func New(src string, syms *symtab.Table) *Parser {
	return &Parser{lx: lexer.New(src, syms), syms: syms}
}

// ParseProgram parses the entire source as a Program: zero or more
// Statements, and nothing else. Any leftover, unparseable text is a
// fatal parse error.
func (p *Parser) ParseProgram() (*ast.Expression, error) {
	prog := &ast.Expression{Kind: ast.Program}
	for {
		stmt, ok, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		prog.Children = append(prog.Children, stmt)
	}
	if tok, ok, err := p.lx.Next(); err != nil {
		return nil, err
	} else if ok {
		return nil, diag.At(diag.Parse, tok.Line, tok.Col, "unexpected token %q outside any statement", tok.Text)
	}
	return prog, nil
}

// parseStatement matches "(" Id (Primitive|Id|Statement|List)* ")".
func (p *Parser) parseStatement() (*ast.Expression, bool, error) {
	mark := p.lx.Mark()
	tok, ok, err := p.lx.Next()
	if err != nil {
		return nil, false, err
	}
	if !ok || tok.Text != "(" {
		p.lx.Reset(mark)
		return nil, false, nil
	}

	head, ok, err := p.parseId()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		p.lx.Reset(mark)
		return nil, false, nil
	}

	e := &ast.Expression{Kind: ast.Statement, Line: tok.Line, Col: tok.Col, Children: []*ast.Expression{head}}
	if err := p.parseChildren(e); err != nil {
		return nil, false, err
	}

	close, ok, err := p.lx.Next()
	if err != nil {
		return nil, false, err
	}
	if !ok || close.Text != ")" {
		return nil, false, diag.At(diag.Parse, tok.Line, tok.Col, "expected closing ')'")
	}
	return e, true, nil
}

// parseList matches "[" (Id|Statement|List|Primitive)* "]".
func (p *Parser) parseList() (*ast.Expression, bool, error) {
	mark := p.lx.Mark()
	tok, ok, err := p.lx.Next()
	if err != nil {
		return nil, false, err
	}
	if !ok || tok.Text != "[" {
		p.lx.Reset(mark)
		return nil, false, nil
	}

	e := &ast.Expression{Kind: ast.List, Line: tok.Line, Col: tok.Col}
	if err := p.parseChildren(e); err != nil {
		return nil, false, err
	}

	close, ok, err := p.lx.Next()
	if err != nil {
		return nil, false, err
	}
	if !ok || close.Text != "]" {
		return nil, false, diag.At(diag.Parse, tok.Line, tok.Col, "expected closing ']'")
	}
	return e, true, nil
}

// parseChildren fills e.Children by repeatedly trying Primitive, Id,
// Statement, then List, in that order, stopping when none of them
// matches. Primitive goes first so that ANY/TRUE/FALSE/NULL, which are
// also valid identifier spellings, parse as literals.
func (p *Parser) parseChildren(e *ast.Expression) error {
	for {
		if c, ok, err := p.parsePrimitive(); err != nil {
			return err
		} else if ok {
			e.Children = append(e.Children, c)
			continue
		}
		if c, ok, err := p.parseId(); err != nil {
			return err
		} else if ok {
			e.Children = append(e.Children, c)
			continue
		}
		if c, ok, err := p.parseStatement(); err != nil {
			return err
		} else if ok {
			e.Children = append(e.Children, c)
			continue
		}
		if c, ok, err := p.parseList(); err != nil {
			return err
		} else if ok {
			e.Children = append(e.Children, c)
			continue
		}
		return nil
	}
}

// idChars is the set of bytes allowed in an Id token, per the
// specification's grammar: letters, underscore, and the arithmetic /
// relational operator characters.
const idChars = "_+-*/=?%:"

// parseId matches a single token consisting only of letters,
// underscore, or one of +-*/=?%:.
func (p *Parser) parseId() (*ast.Expression, bool, error) {
	mark := p.lx.Mark()
	tok, ok, err := p.lx.Next()
	if err != nil {
		return nil, false, err
	}
	if !ok || !isIdent(tok.Text) {
		p.lx.Reset(mark)
		return nil, false, nil
	}
	return &ast.Expression{Kind: ast.Id, Key: tok.Key, Line: tok.Line, Col: tok.Col}, true, nil
}

func isIdent(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		isLetter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		if !isLetter && strings.IndexByte(idChars, c) < 0 {
			return false
		}
	}
	return true
}

// parsePrimitive matches a single token classified as a Number,
// String, or one of ANY/TRUE/FALSE/NULL.
func (p *Parser) parsePrimitive() (*ast.Expression, bool, error) {
	mark := p.lx.Mark()
	tok, ok, err := p.lx.Next()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	text := tok.Text
	isNum := text == "0"
	if !isNum {
		if n, convErr := strconv.Atoi(text); convErr == nil && n != 0 {
			isNum = true
		}
	}
	isStr := len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"'

	e := &ast.Expression{Kind: ast.Primitive, Line: tok.Line, Col: tok.Col}
	switch {
	case isNum:
		n, _ := strconv.Atoi(text)
		e.PType = ast.Number
		e.Num = int64(n)
	case isStr:
		e.PType = ast.String
		e.Str = text[1 : len(text)-1]
	case text == "ANY":
		e.PType = ast.Any
	case text == "TRUE":
		e.PType = ast.True
	case text == "FALSE":
		e.PType = ast.False
	case text == "NULL":
		e.PType = ast.Null
	default:
		p.lx.Reset(mark)
		return nil, false, nil
	}
	return e, true, nil
}
