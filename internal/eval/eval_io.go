/*
File    : lazic/internal/eval/eval_io.go

The three forms that touch the outside world: print, read_int, and
read_char.
*/
package eval

import (
	"errors"
	"io"

	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/object"
)

// evalPrint implements (print EXPR): forces EXPR, writes its printed
// form followed by a newline to e.Writer, and yields NULL.
func (e *Evaluator) evalPrint(stmt *ast.Expression, args []*ast.Expression, env *ctx.Context) (object.Result, error) {
	if len(args) != 1 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "print requires exactly one argument")
	}
	res, err := e.forceAnon(args[0], env)
	if err != nil {
		return object.Result{}, err
	}
	if err := res.Print(e.Writer); err != nil {
		return object.Result{}, diag.New(diag.IO, "print: %v", err)
	}
	return object.ResultNull, nil
}

// evalReadInt implements (read_int), taking no arguments: it reads one
// whitespace-delimited integer token from e.Reader.
func (e *Evaluator) evalReadInt(stmt *ast.Expression, args []*ast.Expression) (object.Result, error) {
	if len(args) != 0 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "read_int takes no arguments")
	}
	n, err := readIntToken(e.Reader)
	if err != nil {
		return object.Result{}, diag.New(diag.IO, "read_int: %v", err)
	}
	return object.Number(n), nil
}

// evalReadChar implements (read_char), taking no arguments: like scanf's
// " %c", it skips leading whitespace and then reads exactly one byte
// from e.Reader.
func (e *Evaluator) evalReadChar(stmt *ast.Expression, args []*ast.Expression) (object.Result, error) {
	if len(args) != 0 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "read_char takes no arguments")
	}
	b, err := skipSpace(e.Reader)
	if err != nil {
		return object.Result{}, diag.New(diag.IO, "read_char: %v", err)
	}
	return object.Char(b), nil
}

// skipSpace consumes and discards leading whitespace, returning the
// first non-whitespace byte read.
func skipSpace(r interface{ ReadByte() (byte, error) }) (byte, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return b, nil
		}
	}
}

// readIntToken skips leading whitespace, then accumulates an optional
// sign and digits into an int64.
func readIntToken(r interface {
	ReadByte() (byte, error)
	UnreadByte() error
}) (int64, error) {
	b, err := skipSpace(r)
	if err != nil {
		return 0, err
	}

	neg := false
	if b == '-' || b == '+' {
		neg = b == '-'
		b, err = r.ReadByte()
		if err != nil {
			return 0, err
		}
	}

	var n int64
	sawDigit := false
	for {
		if b < '0' || b > '9' {
			if err := r.UnreadByte(); err != nil && !errors.Is(err, io.EOF) {
				return 0, err
			}
			break
		}
		n = n*10 + int64(b-'0')
		sawDigit = true
		b, err = r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
	}
	if !sawDigit {
		return 0, errors.New("no digits found")
	}
	if neg {
		n = -n
	}
	return n, nil
}
