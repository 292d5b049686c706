/*
File    : lazic/internal/symtab/symtab.go

Package symtab interns identifier and operator text into small integer
keys. Every token the lexer emits is interned here, so the evaluator
can compare a statement's head against a handful of pre-seeded keys
with a plain integer switch instead of a string comparison on every
dispatch.
*/
package symtab

// Key identifies an interned string. Two tokens with identical text
// always intern to the same Key; two tokens with differing text never
// share a Key.
type Key int32

// invalidKey is returned by Lookup when no string has been interned
// under a requested name; it is never produced by Intern.
const invalidKey Key = -1

// Table is an append-only string interner. The zero Table is not
// usable; construct one with New.
type Table struct {
	byName []string
	keyOf  map[string]Key
}

// New creates a Table with the fixed set of built-in head keywords and
// operator characters pre-seeded, so that their Keys are stable and
// known to callers (see the Key* constants below) before any source
// text has been tokenized.
func New() *Table {
	t := &Table{keyOf: make(map[string]Key, 64)}
	for _, name := range seedOrder {
		t.Intern(name)
	}
	return t
}

// Intern returns the Key for name, creating one if name has not been
// seen before. Interning the same text twice always returns the same
// Key.
func (t *Table) Intern(name string) Key {
	if k, ok := t.keyOf[name]; ok {
		return k
	}
	k := Key(len(t.byName))
	t.byName = append(t.byName, name)
	t.keyOf[name] = k
	return k
}

// Lookup returns the Key already assigned to name, without creating
// one. The second return value is false if name was never interned.
func (t *Table) Lookup(name string) (Key, bool) {
	k, ok := t.keyOf[name]
	if !ok {
		return invalidKey, false
	}
	return k, true
}

// Name returns the original text a Key was interned from. It panics if
// k was not produced by this Table, which indicates a programming
// error (Keys are never meant to cross Table instances).
func (t *Table) Name(k Key) string {
	return t.byName[k]
}

// seedOrder lists the identifiers and single-character operators that
// the evaluator dispatches on directly. The order here fixes the
// numeric value of each Key* constant below.
var seedOrder = []string{
	"def", "do", "let", "?", "match", "print",
	"read_int", "read_char", "get", "=", ":",
	"+", "-", "*", "/", "%",
}

// Pre-seeded keys for built-in statement heads and operators. These
// are valid for any Table produced by New, and let the evaluator
// dispatch with a plain integer switch.
const (
	KeyDef Key = iota
	KeyDo
	KeyLet
	KeyCond
	KeyMatch
	KeyPrint
	KeyReadInt
	KeyReadChar
	KeyGet
	KeyEq
	KeyColon
	KeyPlus
	KeyMinus
	KeyStar
	KeySlash
	KeyPercent
)
