/*
File    : lazic/internal/eval/eval_operators.go

The binary operators: the four arithmetic forms plus modulo, and
structural equality.
*/
package eval

import (
	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// evalArith implements (+|-|*|/|% LHS RHS). Both operands are forced
// and must be Numbers. Division and modulo check their divisor before
// dividing, rather than let Go's runtime panic on integer division by
// zero, and report it as an ordinary fatal ArithmeticError.
func (e *Evaluator) evalArith(stmt *ast.Expression, op symtab.Key, args []*ast.Expression, env *ctx.Context) (object.Result, error) {
	if len(args) != 2 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "%s requires exactly two arguments", e.Syms.Name(op))
	}
	lhs, err := e.forceAnon(args[0], env)
	if err != nil {
		return object.Result{}, err
	}
	rhs, err := e.forceAnon(args[1], env)
	if err != nil {
		return object.Result{}, err
	}
	if lhs.Kind != ast.Number || rhs.Kind != ast.Number {
		return object.Result{}, diag.At(diag.Type, stmt.Line, stmt.Col, "%s requires both arguments to be numbers", e.Syms.Name(op))
	}

	switch op {
	case symtab.KeyPlus:
		return object.Number(lhs.Num + rhs.Num), nil
	case symtab.KeyMinus:
		return object.Number(lhs.Num - rhs.Num), nil
	case symtab.KeyStar:
		return object.Number(lhs.Num * rhs.Num), nil
	case symtab.KeySlash:
		if rhs.Num == 0 {
			return object.Result{}, diag.At(diag.Arithmetic, stmt.Line, stmt.Col, "division by zero")
		}
		return object.Number(lhs.Num / rhs.Num), nil
	case symtab.KeyPercent:
		if rhs.Num == 0 {
			return object.Result{}, diag.At(diag.Arithmetic, stmt.Line, stmt.Col, "modulo by zero")
		}
		return object.Number(lhs.Num % rhs.Num), nil
	default:
		return object.Result{}, diag.New(diag.Type, "unreachable arithmetic operator key %d", op)
	}
}

// evalEq implements (= LHS RHS): both operands are forced and compared
// under section 4.6's equality rule, including ANY's wildcard behavior.
func (e *Evaluator) evalEq(stmt *ast.Expression, args []*ast.Expression, env *ctx.Context) (object.Result, error) {
	if len(args) != 2 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "= requires exactly two arguments")
	}
	lhs, err := e.forceAnon(args[0], env)
	if err != nil {
		return object.Result{}, err
	}
	rhs, err := e.forceAnon(args[1], env)
	if err != nil {
		return object.Result{}, err
	}
	return object.Bool(object.Equal(lhs, rhs)), nil
}
