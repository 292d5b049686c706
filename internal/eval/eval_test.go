/*
File    : lazic/internal/eval/eval_test.go
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lazic-lang/lazic/internal/ctx"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/parser"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// run parses src as a Program and evaluates it in a fresh root context,
// returning the final top-level Result.
func run(t *testing.T, src string) (object.Result, *Evaluator, error) {
	t.Helper()
	syms := symtab.New()
	p := parser.New(src, syms)
	prog, err := p.ParseProgram()
	require.NoError(t, err)

	ev := New(syms)
	res, err := ev.ExecuteProgram(prog, ctx.New(), nil)
	return res, ev, err
}

func TestEval_Arithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{`(+ 1 2)`, 3},
		{`(- 10 4)`, 6},
		{`(* 3 4)`, 12},
		{`(/ 9 2)`, 4},
		{`(% 9 2)`, 1},
		{`(+ (* 2 3) (- 10 1))`, 15},
	}
	for _, tc := range tests {
		res, _, err := run(t, tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, object.Number(tc.want), res, tc.src)
	}
}

func TestEval_DivisionByZeroIsArithmeticError(t *testing.T) {
	_, _, err := run(t, `(/ 1 0)`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Arithmetic, derr.Kind)
}

func TestEval_ModuloByZeroIsArithmeticError(t *testing.T) {
	_, _, err := run(t, `(% 1 0)`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Arithmetic, derr.Kind)
}

func TestEval_Equality(t *testing.T) {
	tests := []struct {
		src  string
		want object.Result
	}{
		{`(= 1 1)`, object.ResultTrue},
		{`(= 1 2)`, object.ResultFalse},
		{`(= ANY 5)`, object.ResultTrue},
		{`(= "a" "a")`, object.ResultTrue},
		{`(= "a" "b")`, object.ResultFalse},
		{`(= 1 "1")`, object.ResultFalse},
	}
	for _, tc := range tests {
		res, _, err := run(t, tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.want, res, tc.src)
	}
}

func TestEval_LetBindsForLaterTopLevelStatements(t *testing.T) {
	res, _, err := run(t, `(let x 5) (+ x 1)`)
	require.NoError(t, err)
	assert.Equal(t, object.Number(6), res)
}

func TestEval_LetDoesNotLeakToEarlierStatements(t *testing.T) {
	_, _, err := run(t, `(print x) (let x 5)`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Name, derr.Kind)
}

func TestEval_Do(t *testing.T) {
	res, _, err := run(t, `(do (print 1) (print 2) 99)`)
	require.NoError(t, err)
	assert.Equal(t, object.Number(99), res)
}

func TestEval_Cond(t *testing.T) {
	res, _, err := run(t, `(? TRUE 1 2)`)
	require.NoError(t, err)
	assert.Equal(t, object.Number(1), res)

	res, _, err = run(t, `(? FALSE 1 2)`)
	require.NoError(t, err)
	assert.Equal(t, object.Number(2), res)

	res, _, err = run(t, `(? 0 1 2)`)
	require.NoError(t, err)
	assert.Equal(t, object.Number(2), res)
}

func TestEval_CondOnlyForcesTakenBranch(t *testing.T) {
	// The else branch divides by zero; if it were forced this would error.
	res, _, err := run(t, `(? TRUE 1 (/ 1 0))`)
	require.NoError(t, err)
	assert.Equal(t, object.Number(1), res)
}

func TestEval_Match(t *testing.T) {
	res, _, err := run(t, `(match 2 1 : "one" 2 : "two" 3 : "three")`)
	require.NoError(t, err)
	assert.Equal(t, object.String("two"), res)
}

func TestEval_MatchFallsThroughToAny(t *testing.T) {
	res, _, err := run(t, `(match 99 1 : "one" ANY : "default")`)
	require.NoError(t, err)
	assert.Equal(t, object.String("default"), res)
}

func TestEval_MatchNoCandidateYieldsNull(t *testing.T) {
	res, _, err := run(t, `(match 1 2 : "two")`)
	require.NoError(t, err)
	assert.Equal(t, object.ResultNull, res)
}

func TestEval_MatchTruncatedTripleIsArityError(t *testing.T) {
	_, _, err := run(t, `(match 1 2 :)`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Arity, derr.Kind)
}

func TestEval_DefAndCall(t *testing.T) {
	res, _, err := run(t, `(def square x (* x x)) (square 7)`)
	require.NoError(t, err)
	assert.Equal(t, object.Number(49), res)
}

func TestEval_RecursiveFunction(t *testing.T) {
	src := `
(def fact n (? (= n 0) 1 (* n (fact (- n 1)))))
(fact 6)`
	res, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, object.Number(720), res)
}

func TestEval_CallArityMismatch(t *testing.T) {
	_, _, err := run(t, `(def id x x) (id 1 2)`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Arity, derr.Kind)
}

func TestEval_RedefiningFunctionIsFatal(t *testing.T) {
	_, _, err := run(t, `(def id x x) (def id x x)`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Name, derr.Kind)
}

func TestEval_UndefinedFunctionIsNameError(t *testing.T) {
	_, _, err := run(t, `(nope 1)`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Name, derr.Kind)
}

func TestEval_ArgumentsCaptureCallerScopeNotCalleeScope(t *testing.T) {
	// y is visible where (f y) is written, not inside f's body.
	src := `(let y 10) (def f x x) (f y)`
	res, _, err := run(t, src)
	require.NoError(t, err)
	assert.Equal(t, object.Number(10), res)
}

func TestEval_CalleeOnlySeesItsOwnParameters(t *testing.T) {
	src := `(let secret 1) (def f x secret) (f 2)`
	_, _, err := run(t, src)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Name, derr.Kind)
}

func TestEval_ListIsFatalTypeError(t *testing.T) {
	_, _, err := run(t, `(print [1 2 3])`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Type, derr.Kind)
}

func TestEval_GetIsFatalTypeError(t *testing.T) {
	_, _, err := run(t, `(get 1 2)`)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Type, derr.Kind)
}

func TestEval_Print(t *testing.T) {
	syms := symtab.New()
	p := parser.New(`(do (print 1) (print "hi") (print TRUE))`, syms)
	prog, err := p.ParseProgram()
	require.NoError(t, err)

	ev := New(syms)
	var buf bytes.Buffer
	ev.SetWriter(&buf)

	_, err = ev.ExecuteProgram(prog, ctx.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, "1\nhi\nTRUE\n", buf.String())
}

func TestEval_ReadIntAndReadChar(t *testing.T) {
	syms := symtab.New()
	p := parser.New(`(do (read_int) (read_char))`, syms)
	prog, err := p.ParseProgram()
	require.NoError(t, err)

	ev := New(syms)
	ev.SetReader(strings.NewReader("42Q"))

	res, err := ev.ExecuteProgram(prog, ctx.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, object.Char('Q'), res)
}

func TestEval_MemoizationForcesEachBindingAtMostOnce(t *testing.T) {
	// read_int consumes one input token each time it runs; forcing x
	// twice must only consume one input token.
	src := `(let x (read_int)) (do x x)`
	syms := symtab.New()
	p := parser.New(src, syms)
	prog, err := p.ParseProgram()
	require.NoError(t, err)

	ev := New(syms)
	ev.SetReader(strings.NewReader("7 8 9"))

	res, err := ev.ExecuteProgram(prog, ctx.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, object.Number(7), res)
}

func TestEval_RecursionGuardTrips(t *testing.T) {
	syms := symtab.New()
	p := parser.New("(def loop n (loop n))\n(loop 0)", syms)
	prog, err := p.ParseProgram()
	require.NoError(t, err)

	ev := New(syms)
	ev.MaxForceDepth = 100

	_, err = ev.ExecuteProgram(prog, ctx.New(), nil)
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Recursion, derr.Kind)
}
