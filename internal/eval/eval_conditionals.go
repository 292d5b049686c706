/*
File    : lazic/internal/eval/eval_conditionals.go

The two branching forms: "?" (if/then/else) and "match" (a guarded
chain of value comparisons).
*/
package eval

import (
	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// evalCond implements (? COND THEN ELSE): COND is forced first, and
// only the taken branch is ever forced, preserving laziness for the
// branch not taken.
func (e *Evaluator) evalCond(stmt *ast.Expression, args []*ast.Expression, env *ctx.Context) (object.Result, error) {
	if len(args) != 3 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "? requires a condition, a then-branch, and an else-branch")
	}
	cond, thenExpr, elseExpr := args[0], args[1], args[2]

	condRes, err := e.forceAnon(cond, env)
	if err != nil {
		return object.Result{}, err
	}
	if condRes.Truthy() {
		return e.forceAnon(thenExpr, env)
	}
	return e.forceAnon(elseExpr, env)
}

// evalMatch implements (match X CAND1 : RESULT1 CAND2 : RESULT2 ...):
// X is forced once, then each candidate is forced and compared in
// order until one is Equal to X, whose paired result is then forced
// and returned. A match with no candidate satisfied yields NULL; the
// language has no implicit default case, but an unmatched subject is
// not itself an error.
func (e *Evaluator) evalMatch(stmt *ast.Expression, args []*ast.Expression, env *ctx.Context) (object.Result, error) {
	if len(args) < 1 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "match requires a subject expression")
	}
	subject, triples := args[0], args[1:]
	if len(triples)%3 != 0 {
		return object.Result{}, diag.At(diag.Arity, stmt.Line, stmt.Col, "match has a truncated candidate/result pair")
	}

	subjectRes, err := e.forceAnon(subject, env)
	if err != nil {
		return object.Result{}, err
	}

	for i := 0; i < len(triples); i += 3 {
		candidate, colon, result := triples[i], triples[i+1], triples[i+2]
		if colon.Kind != ast.Id || colon.Key != symtab.KeyColon {
			return object.Result{}, diag.At(diag.Arity, colon.Line, colon.Col, "match expects ':' between a candidate and its result")
		}
		candRes, err := e.forceAnon(candidate, env)
		if err != nil {
			return object.Result{}, err
		}
		if object.Equal(subjectRes, candRes) {
			return e.forceAnon(result, env)
		}
	}
	return object.ResultNull, nil
}
