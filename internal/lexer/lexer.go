/*
File    : lazic/internal/lexer/lexer.go

Package lexer implements the single-pass tokenizer described in the
language specification: a byte buffer, a current index, a one-token
lookback (Back), and Mark/Reset, which the recursive-descent parser
uses to rewind after a production fails to match.
*/
package lexer

import (
	"strings"

	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// singleCharTokens lists the bytes that are always their own token,
// regardless of what follows them.
const singleCharTokens = "()[],+-*/=?:"

// Lexer scans src one token at a time. Line and Col track position for
// diagnostics; they are not required by the grammar itself.
type Lexer struct {
	src    string
	pos    int
	line   int
	col    int
	syms   *symtab.Table
	prev   Token
	hasPrev bool
	backed  bool
}

// New creates a Lexer over src. Tokens are interned into syms as they
// are produced.
func New(src string, syms *symtab.Table) *Lexer {
	return &Lexer{src: src, line: 1, col: 1, syms: syms}
}

// Mark is an opaque lexer position, usable with Reset. The parser uses
// this (rather than Back) to backtrack across a whole failed
// Statement or List attempt, which consumes more than one token.
type Mark struct {
	pos, line, col int
}

// Mark captures the lexer's current position.
func (lx *Lexer) Mark() Mark {
	return Mark{pos: lx.pos, line: lx.line, col: lx.col}
}

// Reset rewinds the lexer to a previously captured Mark, discarding
// any pending Back() state.
func (lx *Lexer) Reset(m Mark) {
	lx.pos, lx.line, lx.col = m.pos, m.line, m.col
	lx.hasPrev = false
	lx.backed = false
}

// Back un-reads the single most recently returned token: the next
// call to Next will return it again. Calling Back twice in a row
// without an intervening Next is a programming error (the grammar
// never needs more than one token of lookback) and panics.
func (lx *Lexer) Back() {
	if lx.backed || !lx.hasPrev {
		panic("lexer: Back called without a preceding Next")
	}
	lx.backed = true
}

// Next returns the next token, or ok=false at end of input.
func (lx *Lexer) Next() (Token, bool, error) {
	if lx.backed {
		lx.backed = false
		return lx.prev, true, nil
	}

	if err := lx.skipSpaceAndComments(); err != nil {
		return Token{}, false, err
	}
	if lx.pos >= len(lx.src) {
		return Token{}, false, nil
	}

	startLine, startCol := lx.line, lx.col
	c := lx.src[lx.pos]

	var text string
	switch {
	case strings.IndexByte(singleCharTokens, c) >= 0:
		text = string(c)
		lx.advance()

	case c == '"':
		s, err := lx.readString()
		if err != nil {
			return Token{}, false, err
		}
		text = s

	default:
		text = lx.readRun()
	}

	if len(text) == 0 {
		return Token{}, false, diag.At(diag.Lex, startLine, startCol, "empty token")
	}

	tok := Token{Text: text, Key: lx.syms.Intern(text), Line: startLine, Col: startCol}
	lx.prev = tok
	lx.hasPrev = true
	return tok, true, nil
}

func (lx *Lexer) skipSpaceAndComments() error {
	for {
		for lx.pos < len(lx.src) && isSpace(lx.src[lx.pos]) {
			lx.advance()
		}
		if lx.pos >= len(lx.src) || lx.src[lx.pos] != '#' {
			return nil
		}
		for lx.pos < len(lx.src) && lx.src[lx.pos] != '\n' {
			lx.advance()
		}
	}
}

// readString consumes the opening quote, the body, and the closing
// quote, returning the token text WITH its surrounding quotes still
// attached (the parser strips them so that quote-stripping stays a
// parsing concern, not a lexing one).
func (lx *Lexer) readString() (string, error) {
	startLine, startCol := lx.line, lx.col
	var b strings.Builder
	b.WriteByte('"')
	lx.advance() // consume opening quote
	for {
		if lx.pos >= len(lx.src) {
			return "", diag.At(diag.Lex, startLine, startCol, "unterminated string literal")
		}
		c := lx.src[lx.pos]
		b.WriteByte(c)
		lx.advance()
		if c == '"' {
			return b.String(), nil
		}
	}
}

func (lx *Lexer) readRun() string {
	start := lx.pos
	for lx.pos < len(lx.src) {
		c := lx.src[lx.pos]
		if isSpace(c) || c == '#' || strings.IndexByte(singleCharTokens, c) >= 0 {
			break
		}
		lx.advance()
	}
	return lx.src[start:lx.pos]
}

func (lx *Lexer) advance() {
	if lx.src[lx.pos] == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	lx.pos++
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\r' || c == '\n' || c == '\t'
}
