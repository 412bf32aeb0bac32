package leetspeak

import (
	"fmt"
	"maps"
	"slices"
	"unicode"
)

// Table maps a lowercase letter (or space) to its ordered candidate tokens.
// Tables are built once at init and never mutated.
type Table struct {
	name string
	subs map[rune][]string
}

// Substitutions based on https://simple.wikipedia.org/wiki/Leet.
// Lists are kept exactly as collected, including repeated tokens ("|8" in b)
// and merged tokens such as "c<", "o0" and "qO_".
var Full = Table{
	name: "full",
	subs: map[rune][]string{
		'a': {"A", "a", "4", "/-\\", "/_\\", "@", "/\\"},
		'b': {"B", "b", "8", "|3", "13", "|}", "|:", "|8", "18", "6", "|B", "|8", "lo", "|o", "j3"},
		'c': {"C", "c<", "{", "[", "("},
		'd': {"D", "d", "|)", "|}", "|]", "|>"},
		'e': {"E", "e", "3"},
		'f': {"F", "f", "|=", "ph", "|#"},
		'g': {"G", "g", "[,", "-,", "[+", "6", "C-"},
		'h': {"H", "h", "#", "4", "|-|", "[-]", "{-}", "}-{", "}{", "|=|", "[=]", "{=}", "/-/", "(-)", ")-(", ":-:", "I+I"},
		'i': {"I", "i", "1", "|", "!", "9"},
		'j': {"J", "j", "_|", "_/", "_7", "_)", "_]", "_}"},
		'k': {"K", "k", "|<", "1<", "l<", "|{", "l{"},
		'l': {"L", "l", "|_", "|", "1", "]["},
		'm': {"M", "m", "44", "|\\/|", "^^", "/\\/\\", "/X\\", "[]\\/][", "[]V[]", "][\\//][", "(V)", "//.", ".\\\\", "N\\\\"},
		'n': {"N", "n", "|\\|", "/\\/", "/V", "][\\]["},
		'o': {"O", "o0", "()", "[]", "{}", "<>", "oh"},
		'p': {"P", "p", "|o", "|O", "|>", "|*", "|D", "/o", "[]D", "|7"},
		'q': {"Q", "qO_", "9", "(,)", "0,", "kw"},
		'r': {"R", "r", "|2", "12", ".-", "|^", "l2"},
		's': {"S", "s", "5", "$", "z", "Z"},
		't': {"T", "t", "7", "+", "'|'", "`|`"},
		'u': {"U", "u", "|_|", "\\_\\", "/_/", "\\_/", "(_)", "[_]", "{_}"},
		'v': {"V", "v", "\\/"},
		'w': {"W", "w", "\\/\\/", "(/\\)", "\\^/", "|/\\|", "\\X/", "\\'", "'//", "VV", "vv", "\\_|_/", "\\//\\//", "\\V/"},
		'x': {"X", "x", "%", "*", "><", "}{", ")("},
		'y': {"Y", "y", "`/"},
		'z': {"Z", "z", "2", "5", "7_", ">_", "(/)"},
		' ': {" ", "_", "-", "."},
	},
}

// Reduced is a hand-picked subset of Full that keeps output sizes manageable.
var Reduced = Table{
	name: "reduced",
	subs: map[rune][]string{
		'a': {"A", "a", "4", "@"},
		'b': {"B", "b", "8", "13"},
		'c': {"C", "c<"},
		'd': {"D", "d"},
		'e': {"E", "e", "3"},
		'f': {"F", "f", "ph"},
		'g': {"G", "g", "6"},
		'h': {"H", "h", "#"},
		'i': {"I", "i", "1", "!"},
		'j': {"J", "j"},
		'k': {"K", "k", "|<"},
		'l': {"L", "l", "1"},
		'm': {"M", "m", "44"},
		'n': {"N", "n", "|\\|"},
		'o': {"O", "o0", "()", "oh"},
		'p': {"P", "p", "|o", "|O"},
		'q': {"Q", "qO_"},
		'r': {"R", "r", "|2", "12"},
		's': {"S", "s", "5", "$", "z", "Z"},
		't': {"T", "t", "7", "+"},
		'u': {"U", "u", "|_|"},
		'v': {"V", "v", "\\/"},
		'w': {"W", "w", "\\/\\/", "VV", "vv"},
		'x': {"X", "x", "><"},
		'y': {"Y", "y", "`/"},
		'z': {"Z", "z", "2", "5"},
		' ': {" ", "_", "-", "."},
	},
}

// TableByName returns Full for "full" and Reduced for "reduced".
func TableByName(name string) (Table, error) {
	switch name {
	case Full.name:
		return Full, nil
	case Reduced.name:
		return Reduced, nil
	default:
		return Table{}, fmt.Errorf("%w: unknown table %q", ErrConfiguration, name)
	}
}

// SelectTable maps the short-list switch to a table.
func SelectTable(short bool) Table {
	if short {
		return Reduced
	}
	return Full
}

func (t Table) Name() string {
	return t.name
}

// Lookup returns the candidates for r, matching the key case-insensitively.
// The returned slice is shared and must not be modified.
func (t Table) Lookup(r rune) ([]string, bool) {
	tokens, ok := t.subs[unicode.ToLower(r)]
	return tokens, ok
}

// Keys returns the table keys in ascending order (space first).
func (t Table) Keys() []rune {
	return slices.Sorted(maps.Keys(t.subs))
}
