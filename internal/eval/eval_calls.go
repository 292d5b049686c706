/*
File    : lazic/internal/eval/eval_calls.go

Calling a user-defined function: the one Statement form whose head is
not one of the pre-seeded built-in keys.
*/
package eval

import (
	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// evalCall implements a function call (NAME ARG...): one Thunk is
// built per actual argument, each captured with the caller's context
// env so an argument expression sees the scope it was written in, not
// the callee's. Those argument Thunks are collected, bound to the
// callee's parameter names, into a brand new Context containing
// nothing else -- the callee's body sees only its own parameters, no
// matter what else is in scope at the call site.
func (e *Evaluator) evalCall(stmt *ast.Expression, name symtab.Key, args []*ast.Expression, env *ctx.Context) (object.Result, error) {
	fn, ok := e.Funcs.Lookup(name)
	if !ok {
		return object.Result{}, diag.At(diag.Name, stmt.Line, stmt.Col, "undefined function %q", e.Syms.Name(name))
	}
	if len(args) != len(fn.Params) {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "%s expects %d argument(s), got %d", e.Syms.Name(name), len(fn.Params), len(args))
	}

	callEnv := ctx.New()
	for i, argExpr := range args {
		callEnv.Add(ctx.NewThunk(fn.Params[i], argExpr, env))
	}
	return e.forceAnon(fn.Body, callEnv)
}
