/*
File    : lazic/internal/object/result.go

Package object defines Result, the value every expression evaluates
to, and the equality/truthiness rules of section 4.6 of the language
specification. Result is a single tagged struct rather than an
interface hierarchy: the language has exactly seven primitive kinds,
none of which carry user-extensible behavior, so a sum-type-shaped
struct is a closer fit than per-kind types implementing a shared
interface.
*/
package object

import (
	"fmt"
	"io"

	"github.com/lazic-lang/lazic/internal/ast"
)

// Result is what evaluating any expression produces: a kind tag plus
// whichever of Num/Str is meaningful for that kind. Number and Char
// use Num; String uses Str; Any/True/False/Null use neither.
type Result struct {
	Kind ast.PrimitiveKind
	Num  int64
	Str  string
}

var (
	ResultAny   = Result{Kind: ast.Any}
	ResultTrue  = Result{Kind: ast.True}
	ResultFalse = Result{Kind: ast.False}
	ResultNull  = Result{Kind: ast.Null}
)

// Number builds a Number Result.
func Number(n int64) Result { return Result{Kind: ast.Number, Num: n} }

// String builds a String Result.
func String(s string) Result { return Result{Kind: ast.String, Str: s} }

// Char builds a Char Result from a single byte's codepoint.
func Char(c byte) Result { return Result{Kind: ast.Char, Num: int64(c)} }

// Bool maps a Go bool onto TRUE/FALSE, for builtins like = that
// produce one of the two.
func Bool(b bool) Result {
	if b {
		return ResultTrue
	}
	return ResultFalse
}

// String returns the exact text `print` would emit, without the
// trailing newline. Used by the REPL and by tests.
func (r Result) String() string {
	switch r.Kind {
	case ast.Any:
		return "ANY"
	case ast.True:
		return "TRUE"
	case ast.False:
		return "FALSE"
	case ast.Null:
		return "NULL"
	case ast.String:
		return r.Str
	case ast.Number:
		return fmt.Sprintf("%d", r.Num)
	case ast.Char:
		return string([]byte{byte(r.Num)})
	default:
		return fmt.Sprintf("<unknown result kind %d>", r.Kind)
	}
}

// Print writes the section 6 output format for r to w, including the
// trailing newline.
func (r Result) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n", r.String())
	return err
}

// Truthy implements section 4.6's truthiness rule: ANY, TRUE, String,
// and Char are truthy; FALSE and NULL are falsy; Number is truthy iff
// nonzero.
func (r Result) Truthy() bool {
	switch r.Kind {
	case ast.Any, ast.True, ast.String, ast.Char:
		return true
	case ast.False, ast.Null:
		return false
	case ast.Number:
		return r.Num != 0
	default:
		return false
	}
}

// Equal implements section 4.6's equality rule: ANY is a wildcard that
// equals anything; otherwise equality requires matching kinds, and
// then byte-wise text equality for String or integer equality for
// Number/Char; TRUE/FALSE/NULL are equal exactly when they share a
// kind.
func Equal(a, b Result) bool {
	if a.Kind == ast.Any || b.Kind == ast.Any {
		return true
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ast.String:
		return a.Str == b.Str
	case ast.Number, ast.Char:
		return a.Num == b.Num
	default: // True, False, Null: same kind is already equality
		return true
	}
}
