/*
File    : lazic/internal/eval/evaluator.go

Package eval is the core of the interpreter: it walks the AST under
the thunk-based, call-by-need model described by the language
specification, dispatching on each Statement's head identifier.
*/
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/funcs"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// Evaluator holds everything one evaluation pass needs: the symbol
// table shared with the lexer/parser that produced the AST, the
// function table being populated by "def" statements, and the I/O
// collaborators print/read_int/read_char use. Writer and Reader
// default to stdout/stdin but are overridable, the way the teacher's
// own Evaluator lets tests and the REPL redirect output.
type Evaluator struct {
	Syms   *symtab.Table
	Funcs  *funcs.Table
	Writer io.Writer
	Reader *bufio.Reader

	// MaxForceDepth guards against runaway recursive forcing (the
	// lazy-evaluation analogue of a stack-depth limit); see
	// SPEC_FULL.md's Open Questions for why this is configurable
	// rather than a magic number.
	MaxForceDepth int
	depth         int

	// OnForce, if set, is called every time a named (non-anonymous)
	// Thunk is forced for the first time. internal/trace uses this to
	// build an evaluation trace without the evaluator itself knowing
	// anything about JSON.
	OnForce func(name symtab.Key, res object.Result)
}

// DefaultMaxForceDepth mirrors the bootstrap interpreter's hard-coded
// 50000-step recursion guard.
const DefaultMaxForceDepth = 50000

// New creates an Evaluator over syms, writing to stdout and reading
// from stdin by default.
func New(syms *symtab.Table) *Evaluator {
	return &Evaluator{
		Syms:          syms,
		Funcs:         funcs.New(),
		Writer:        os.Stdout,
		Reader:        bufio.NewReader(os.Stdin),
		MaxForceDepth: DefaultMaxForceDepth,
	}
}

// SetWriter redirects the output of print.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// SetReader redirects read_int/read_char's input source.
func (e *Evaluator) SetReader(r io.Reader) {
	e.Reader = bufio.NewReader(r)
}

// Execute forces t: if already forced, its memoised Result is
// returned unchanged (section 4.5); otherwise t.Expr is evaluated
// under t.Env, the Result is written into t.Result, and that write
// happens before any other caller can observe it, since Go forbids
// two goroutines from sharing an Evaluator without their own
// synchronization (see SPEC_FULL.md section 5).
func (e *Evaluator) Execute(t *ctx.Thunk) (object.Result, error) {
	if t.Forced() {
		return *t.Result, nil
	}

	e.depth++
	defer func() { e.depth-- }()
	if e.depth > e.MaxForceDepth {
		return object.Result{}, diag.New(diag.Recursion, "exceeded max force depth of %d", e.MaxForceDepth)
	}

	res, err := e.evalExpr(t.Expr, t.Env)
	if err != nil {
		return object.Result{}, err
	}
	t.Result = &res
	if e.OnForce != nil && t.Name != symtab.KeyStar {
		e.OnForce(t.Name, res)
	}
	return res, nil
}

// forceNamed builds a Thunk named name over expr/env and forces it
// immediately; used for the anonymous ("*") thunks statements like do,
// print, and the arithmetic operators construct around their
// sub-expressions.
func (e *Evaluator) forceNamed(name symtab.Key, expr *ast.Expression, env *ctx.Context) (object.Result, error) {
	return e.Execute(ctx.NewThunk(name, expr, env))
}

// forceAnon is forceNamed using the language's conventional anonymous
// binding name, "*" -- safe to reuse the multiplication operator's
// interned key because anonymous thunks are never added to a Context
// and so are never found by name lookup.
func (e *Evaluator) forceAnon(expr *ast.Expression, env *ctx.Context) (object.Result, error) {
	return e.forceNamed(symtab.KeyStar, expr, env)
}

// evalExpr dispatches on expr.Kind, implementing sections 4.4-4.7 of
// the specification.
func (e *Evaluator) evalExpr(expr *ast.Expression, env *ctx.Context) (object.Result, error) {
	switch expr.Kind {
	case ast.Program:
		return e.evalProgram(expr, env)
	case ast.Statement:
		return e.evalStatement(expr, env)
	case ast.List:
		return object.Result{}, diag.At(diag.Type, expr.Line, expr.Col, "List evaluation not implemented")
	case ast.Id:
		return e.evalId(expr, env)
	case ast.Primitive:
		return e.evalPrimitive(expr)
	default:
		return object.Result{}, diag.New(diag.Type, "unknown expression kind %d", expr.Kind)
	}
}

// evalProgram evaluates each top-level statement in a clone of the
// context carried forward from the previous statement, so that a
// top-level "let" is visible to every statement after it but none
// before it -- section 4.7's "Program top level clones once per
// statement".
func (e *Evaluator) evalProgram(prog *ast.Expression, env *ctx.Context) (object.Result, error) {
	return e.ExecuteProgram(prog, env, nil)
}

// ExecuteProgram is evalProgram's exported form: after each top-level
// statement is forced, onStatement (if non-nil) is called with its
// Result before moving to the next clone. internal/trace uses this to
// record one trace entry per statement without duplicating the
// context-threading rule above.
func (e *Evaluator) ExecuteProgram(prog *ast.Expression, env *ctx.Context, onStatement func(object.Result) error) (object.Result, error) {
	cur := env
	result := object.ResultNull
	for _, stmt := range prog.Children {
		clone := cur.Clone()
		res, err := e.forceAnon(stmt, clone)
		if err != nil {
			return object.Result{}, err
		}
		if onStatement != nil {
			if err := onStatement(res); err != nil {
				return object.Result{}, err
			}
		}
		result = res
		cur = clone
	}
	return result, nil
}

// evalId looks up expr in env front-to-back (keeping the last match,
// i.e. the most recently added binding -- section 4.3) and forces the
// Thunk it names.
func (e *Evaluator) evalId(expr *ast.Expression, env *ctx.Context) (object.Result, error) {
	t, ok := env.Lookup(expr.Key)
	if !ok {
		return object.Result{}, diag.At(diag.Name, expr.Line, expr.Col, "undefined identifier %q", e.Syms.Name(expr.Key))
	}
	return e.Execute(t)
}

// evalPrimitive produces a Result directly from a literal's PType,
// per section 4.4.
func (e *Evaluator) evalPrimitive(expr *ast.Expression) (object.Result, error) {
	switch expr.PType {
	case ast.Null:
		return object.ResultNull, nil
	case ast.Any:
		return object.ResultAny, nil
	case ast.True:
		return object.ResultTrue, nil
	case ast.False:
		return object.ResultFalse, nil
	case ast.String:
		return object.String(expr.Str), nil
	case ast.Number:
		return object.Number(expr.Num), nil
	default:
		return object.Result{}, diag.At(diag.Type, expr.Line, expr.Col, "unrecognized primitive kind %d", expr.PType)
	}
}
