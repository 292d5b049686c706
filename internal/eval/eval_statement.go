/*
File    : lazic/internal/eval/eval_statement.go

Statement dispatch, plus the three forms that shape a context rather
than just computing a value: def, do, and let.
*/
package eval

import (
	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/funcs"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// evalStatement dispatches on a Statement's head key, routing to a
// built-in form, a built-in operator, or a user-defined function call.
func (e *Evaluator) evalStatement(stmt *ast.Expression, env *ctx.Context) (object.Result, error) {
	head := stmt.Head()
	args := stmt.Children[1:]

	switch head.Key {
	case symtab.KeyDef:
		return e.evalDef(stmt, args)
	case symtab.KeyDo:
		return e.evalDo(args, env)
	case symtab.KeyLet:
		return e.evalLet(stmt, args, env)
	case symtab.KeyCond:
		return e.evalCond(stmt, args, env)
	case symtab.KeyMatch:
		return e.evalMatch(stmt, args, env)
	case symtab.KeyPrint:
		return e.evalPrint(stmt, args, env)
	case symtab.KeyReadInt:
		return e.evalReadInt(stmt, args)
	case symtab.KeyReadChar:
		return e.evalReadChar(stmt, args)
	case symtab.KeyGet:
		return object.Result{}, diag.At(diag.Type, stmt.Line, stmt.Col, "get is not implemented")
	case symtab.KeyEq:
		return e.evalEq(stmt, args, env)
	case symtab.KeyPlus, symtab.KeyMinus, symtab.KeyStar, symtab.KeySlash, symtab.KeyPercent:
		return e.evalArith(stmt, head.Key, args, env)
	default:
		return e.evalCall(stmt, head.Key, args, env)
	}
}

// evalDef registers a user-defined function: (def NAME PARAM... BODY).
// At least a name and a body are required; zero or more parameter Ids
// may sit between them.
func (e *Evaluator) evalDef(stmt *ast.Expression, args []*ast.Expression) (object.Result, error) {
	if len(args) < 2 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "def requires a name and a body")
	}
	name := args[0]
	if name.Kind != ast.Id {
		return object.Result{}, diag.At(diag.Type, name.Line, name.Col, "def's name must be an identifier")
	}
	params := args[1 : len(args)-1]
	body := args[len(args)-1]

	paramKeys := make([]symtab.Key, len(params))
	for i, p := range params {
		if p.Kind != ast.Id {
			return object.Result{}, diag.At(diag.Type, p.Line, p.Col, "def's parameters must be identifiers")
		}
		paramKeys[i] = p.Key
	}

	fn := &funcs.Function{Name: name.Key, Params: paramKeys, Body: body}
	if err := e.Funcs.Define(fn, e.Syms); err != nil {
		return object.Result{}, err
	}
	return object.ResultNull, nil
}

// evalDo evaluates each argument in order, in a fresh clone of env, and
// adopts the last one's result -- an explicit sequencing form for a
// language where evaluation order is otherwise driven by forcing.
func (e *Evaluator) evalDo(args []*ast.Expression, env *ctx.Context) (object.Result, error) {
	clone := env.Clone()
	result := object.ResultNull
	for _, arg := range args {
		res, err := e.forceAnon(arg, clone)
		if err != nil {
			return object.Result{}, err
		}
		result = res
	}
	return result, nil
}

// evalLet introduces a new binding into the surrounding context:
// (let NAME EXPR). The bound Thunk captures a clone of env taken before
// the binding is added, so EXPR cannot observe its own name; the
// binding itself is appended to env, the context the caller is
// actually using, not the clone.
func (e *Evaluator) evalLet(stmt *ast.Expression, args []*ast.Expression, env *ctx.Context) (object.Result, error) {
	if len(args) != 2 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "let requires exactly a name and an expression")
	}
	name, body := args[0], args[1]
	if name.Kind != ast.Id {
		return object.Result{}, diag.At(diag.Type, name.Line, name.Col, "let's name must be an identifier")
	}
	t := ctx.NewThunk(name.Key, body, env.Clone())
	env.Add(t)
	return object.ResultNull, nil
}
