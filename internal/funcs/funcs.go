/*
File    : lazic/internal/funcs/funcs.go

Package funcs is the process-wide... in the specification's words, but
here threaded explicitly as a value owned by one Evaluator, so that
independent interpreter sessions (the REPL's /reset, one goroutine per
serve connection) never share a function table. See SPEC_FULL.md's
design notes for why this departs from a package-level global.
*/
package funcs

import (
	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/diag"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// Function is a user-defined function: its parameter keys, in
// positional order, and its body expression.
type Function struct {
	Name   symtab.Key
	Params []symtab.Key
	Body   *ast.Expression
}

// Table is an append-only registry of Functions, keyed by name.
// Redeclaring a name is a fatal NameError, per section 4.4's "def" rule.
type Table struct {
	byName map[symtab.Key]*Function
}

// New returns an empty Table.
func New() *Table {
	return &Table{byName: make(map[symtab.Key]*Function)}
}

// Define registers fn. It is an error to redefine a name that is
// already registered.
func (t *Table) Define(fn *Function, syms *symtab.Table) error {
	if _, exists := t.byName[fn.Name]; exists {
		return diag.New(diag.Name, "function %q already defined", syms.Name(fn.Name))
	}
	t.byName[fn.Name] = fn
	return nil
}

// Lookup returns the Function registered under name, if any.
func (t *Table) Lookup(name symtab.Key) (*Function, bool) {
	fn, ok := t.byName[name]
	return fn, ok
}

// Reset clears every registered function. Used by the REPL's
// /reset meta-command.
func (t *Table) Reset() {
	t.byName = make(map[symtab.Key]*Function)
}
