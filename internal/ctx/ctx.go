/*
File    : lazic/internal/ctx/ctx.go

Package ctx implements the thunk/context pair at the heart of the
evaluator's lazy, call-by-need semantics. A Thunk is a deferred
expression plus a memoisation slot; a Context is the ordered,
name-searchable sequence of Thunks visible to one evaluation.
*/
package ctx

import (
	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// Thunk is a deferred computation: an expression to evaluate, the
// environment it should be evaluated in, and a memoisation slot that
// is written at most once. Forcing the same Thunk twice must always
// return the first Result; because Thunks are shared by pointer
// between every Context entry that names them, the memoisation write
// is visible to all of those entries at once.
type Thunk struct {
	Name   symtab.Key
	Expr   *ast.Expression
	Env    *Context
	Result *object.Result // nil until forced
}

// NewThunk builds an unforced Thunk bound to name, evaluating expr
// under env when forced.
func NewThunk(name symtab.Key, expr *ast.Expression, env *Context) *Thunk {
	return &Thunk{Name: name, Expr: expr, Env: env}
}

// Forced reports whether the Thunk has already been forced.
func (t *Thunk) Forced() bool {
	return t.Result != nil
}

// Context is the ordered sequence of Thunks visible to one evaluation.
// Lookup scans front-to-back but returns the LAST matching entry, so
// that appending new bindings (rather than prepending them) still
// gives "later additions shadow earlier ones" with a plain,
// O(1)-append slice -- see DESIGN.md for why this reading of the
// specification's insertion-order rule was chosen.
type Context struct {
	thunks []*Thunk
}

// New returns an empty Context.
func New() *Context {
	return &Context{}
}

// Clone copies the slice of Thunk pointers, not the Thunks themselves:
// the clone and the original see the same memoisation state for any
// Thunk they share, but appending to one does not affect the other.
func (c *Context) Clone() *Context {
	cloned := make([]*Thunk, len(c.thunks))
	copy(cloned, c.thunks)
	return &Context{thunks: cloned}
}

// Add appends t to the context, available for name lookup from now on
// and shadowing any earlier Thunk with the same Name.
func (c *Context) Add(t *Thunk) {
	c.thunks = append(c.thunks, t)
}

// Lookup finds the Thunk most recently Added under name, if any.
func (c *Context) Lookup(name symtab.Key) (*Thunk, bool) {
	var found *Thunk
	for _, t := range c.thunks {
		if t.Name == name {
			found = t
		}
	}
	return found, found != nil
}

// Thunks returns the context's bindings in insertion order, for
// diagnostics (the REPL's /scope command, evaluation tracing). The
// returned slice must not be mutated.
func (c *Context) Thunks() []*Thunk {
	return c.thunks
}
