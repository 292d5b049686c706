/*
File    : lazic/internal/symtab/symtab_test.go
*/
package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_InternIsStable(t *testing.T) {
	tab := New()
	a := tab.Intern("foo")
	b := tab.Intern("foo")
	assert.Equal(t, a, b)
}

func TestTable_InternDistinctStringsGetDistinctKeys(t *testing.T) {
	tab := New()
	a := tab.Intern("foo")
	b := tab.Intern("bar")
	assert.NotEqual(t, a, b)
}

func TestTable_NameRoundTrips(t *testing.T) {
	tab := New()
	k := tab.Intern("hello")
	assert.Equal(t, "hello", tab.Name(k))
}

func TestTable_LookupMissing(t *testing.T) {
	tab := New()
	_, ok := tab.Lookup("never-interned")
	assert.False(t, ok)
}

func TestTable_PreSeededKeysMatchConstants(t *testing.T) {
	tab := New()
	cases := map[string]Key{
		"def": KeyDef, "do": KeyDo, "let": KeyLet, "?": KeyCond,
		"match": KeyMatch, "print": KeyPrint, "read_int": KeyReadInt,
		"read_char": KeyReadChar, "get": KeyGet, "=": KeyEq, ":": KeyColon,
		"+": KeyPlus, "-": KeyMinus, "*": KeyStar, "/": KeySlash, "%": KeyPercent,
	}
	for name, want := range cases {
		k, ok := tab.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, k, name)
	}
}
