/*
File    : lazic/internal/trace/trace.go

Package trace builds a JSON evaluation trace for "lazic trace": one
record per top-level statement's Result, plus, when Verbose is set, one
record per named Thunk force. It never influences evaluation -- a
Recorder only ever observes Results the evaluator already produced,
through a callback shaped to match eval.Evaluator.OnForce without this
package needing to import internal/eval at all.
*/
package trace

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/lazic-lang/lazic/internal/ast"
	"github.com/lazic-lang/lazic/internal/object"
	"github.com/lazic-lang/lazic/internal/symtab"
)

// Recorder accumulates trace records into a growing JSON document,
// built incrementally with sjson rather than assembled as Go structs
// and marshaled once at the end.
type Recorder struct {
	doc     []byte
	nextIdx int
	Verbose bool
}

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{doc: []byte(`{"statements":[],"forces":[]}`)}
}

// RecordStatement appends one top-level statement's Result to the
// trace under "statements", tagged with its position in program order.
func (r *Recorder) RecordStatement(res object.Result) error {
	rec, err := record(fmt.Sprintf("%d", r.nextIdx), res)
	if err != nil {
		return err
	}
	r.nextIdx++
	doc, err := sjson.SetRawBytes(r.doc, "statements.-1", rec)
	if err != nil {
		return err
	}
	r.doc = doc
	return nil
}

// Hook returns a callback shaped like eval.Evaluator.OnForce: one
// record per named Thunk force, appended under "forces" when Verbose
// is set. Callers wire it in with evaluator.OnForce = recorder.Hook(syms).
func (r *Recorder) Hook(syms *symtab.Table) func(symtab.Key, object.Result) {
	return func(name symtab.Key, res object.Result) {
		if !r.Verbose {
			return
		}
		rec, err := record(syms.Name(name), res)
		if err != nil {
			return
		}
		if doc, err := sjson.SetRawBytes(r.doc, "forces.-1", rec); err == nil {
			r.doc = doc
		}
	}
}

// record builds the raw JSON object for one trace entry.
func record(label string, res object.Result) ([]byte, error) {
	return json.Marshal(struct {
		Label string `json:"label"`
		Kind  string `json:"kind"`
		Text  string `json:"text"`
	}{Label: label, Kind: kindName(res.Kind), Text: res.String()})
}

// kindName names a PrimitiveKind for the trace, the way
// internal/object.Result.String renders its value.
func kindName(k ast.PrimitiveKind) string {
	switch k {
	case ast.Any:
		return "ANY"
	case ast.True:
		return "TRUE"
	case ast.False:
		return "FALSE"
	case ast.Null:
		return "NULL"
	case ast.Number:
		return "Number"
	case ast.String:
		return "String"
	case ast.Char:
		return "Char"
	default:
		return "Unknown"
	}
}

// Bytes returns the accumulated trace document.
func (r *Recorder) Bytes() []byte {
	return r.doc
}

// Query runs a gjson path expression against a trace document,
// returning the matched value's text form (or "" if nothing matched).
func Query(doc []byte, path string) string {
	return gjson.GetBytes(doc, path).String()
}
