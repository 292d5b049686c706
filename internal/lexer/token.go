/*
File    : lazic/internal/lexer/token.go
*/
package lexer

import "github.com/lazic-lang/lazic/internal/symtab"

// Token is one lexeme: its raw text (interned into Key via the shared
// symbol table), and the line/column it started at, for diagnostics.
type Token struct {
	Text string
	Key  symtab.Key
	Line int
	Col  int
}
