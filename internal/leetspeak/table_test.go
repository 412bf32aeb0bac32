package leetspeak

import (
	"errors"
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_HaveSameKeys(t *testing.T) {
	want := []rune(" abcdefghijklmnopqrstuvwxyz")
	assert.Equal(t, want, Full.Keys())
	assert.Equal(t, want, Reduced.Keys())
}

func TestTables_ListsAreNonEmpty(t *testing.T) {
	for _, table := range []Table{Full, Reduced} {
		for _, k := range table.Keys() {
			tokens, ok := table.Lookup(k)
			require.True(t, ok)
			assert.NotEmpty(t, tokens, "%s[%q]", table.Name(), k)
		}
	}
}

func TestReduced_IsSubsetOfFull(t *testing.T) {
	for _, k := range Reduced.Keys() {
		small, _ := Reduced.Lookup(k)
		full, ok := Full.Lookup(k)
		require.True(t, ok, "key %q missing from full table", k)
		assert.Subset(t, full, small, "key %q", k)
		assert.LessOrEqual(t, len(small), len(full))
	}
}

func TestLookup_CaseInsensitiveKey(t *testing.T) {
	lower, ok := Full.Lookup('e')
	require.True(t, ok)
	upper, ok := Full.Lookup('E')
	require.True(t, ok)
	assert.Equal(t, []string{"E", "e", "3"}, lower)
	assert.Equal(t, lower, upper)

	_, ok = Full.Lookup('7')
	assert.False(t, ok)
}

func TestTables_KeepOriginalQuirks(t *testing.T) {
	tests := []struct {
		table Table
		key   rune
		want  []string
	}{
		{Full, 'c', []string{"C", "c<", "{", "[", "("}},
		{Full, 'o', []string{"O", "o0", "()", "[]", "{}", "<>", "oh"}},
		{Full, 'q', []string{"Q", "qO_", "9", "(,)", "0,", "kw"}},
		{Full, 'm', []string{"M", "m", "44", `|\/|`, "^^", `/\/\`, `/X\`, `[]\/][`, "[]V[]", `][\//][`, "(V)", "//.", `.\\`, `N\\`}},
		{Full, 'w', []string{"W", "w", `\/\/`, `(/\)`, `\^/`, `|/\|`, `\X/`, `\'`, "'//", "VV", "vv", `\_|_/`, `\//\//`, `\V/`}},
		{Reduced, 'c', []string{"C", "c<"}},
		{Reduced, 'n', []string{"N", "n", `|\|`}},
	}

	for _, tc := range tests {
		got, ok := tc.table.Lookup(tc.key)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "%s[%q]", tc.table.Name(), tc.key)
	}

	b, _ := Full.Lookup('b')
	assert.Equal(t, []string{"|8"}, lo.FindDuplicates(b))
	assert.Len(t, b, 15)
}

func TestTables_ListLengths(t *testing.T) {
	full := map[rune]int{
		'a': 7, 'b': 15, 'c': 5, 'd': 6, 'e': 3, 'f': 5, 'g': 7, 'h': 17, 'i': 6,
		'j': 8, 'k': 7, 'l': 6, 'm': 14, 'n': 6, 'o': 7, 'p': 10, 'q': 6, 'r': 7,
		's': 6, 't': 6, 'u': 9, 'v': 3, 'w': 14, 'x': 7, 'y': 3, 'z': 7, ' ': 4,
	}
	for k, n := range full {
		tokens, _ := Full.Lookup(k)
		assert.Len(t, tokens, n, "full[%q]", k)
	}
}

func TestTableByName(t *testing.T) {
	full, err := TableByName("full")
	require.NoError(t, err)
	assert.Equal(t, "full", full.Name())

	reduced, err := TableByName("reduced")
	require.NoError(t, err)
	assert.Equal(t, "reduced", reduced.Name())

	_, err = TableByName("tiny")
	assert.True(t, errors.Is(err, ErrConfiguration))

	assert.Equal(t, "reduced", SelectTable(true).Name())
	assert.Equal(t, "full", SelectTable(false).Name())
}

func TestKeys_ReturnsCopy(t *testing.T) {
	keys := Full.Keys()
	keys[0] = 'X'
	assert.True(t, slices.Contains(Full.Keys(), ' '))
}
