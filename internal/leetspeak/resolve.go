package leetspeak

import (
	"math/big"

	"github.com/samber/lo"
)

// SkipSet holds runes that are never substituted. Matching is case-sensitive.
type SkipSet map[rune]struct{}

// NewSkipSet builds a SkipSet from every rune in chars.
func NewSkipSet(chars string) SkipSet {
	set := make(SkipSet, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

func (s SkipSet) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Position is one input rune together with the tokens that may replace it.
type Position struct {
	Char       rune
	Candidates []string
}

// Substituted reports whether the position came from the table.
func (p Position) Substituted() bool {
	return len(p.Candidates) != 1 || p.Candidates[0] != string(p.Char)
}

// Expansion is the resolved candidate list for every input rune, in input order.
type Expansion struct {
	table     string
	positions []Position
}

// Resolve decides, rune by rune, whether to substitute from the table or keep
// the rune as is. Table keys match case-insensitively, skip runes do not.
func Resolve(input string, skip SkipSet, table Table) *Expansion {
	positions := make([]Position, 0, len(input))
	for _, r := range input {
		candidates, ok := table.Lookup(r)
		if !ok || skip.Contains(r) {
			candidates = []string{string(r)}
		}
		positions = append(positions, Position{Char: r, Candidates: candidates})
	}
	return &Expansion{table: table.Name(), positions: positions}
}

func (e *Expansion) TableName() string {
	return e.table
}

// Positions returns the resolved positions. Callers must not modify them.
func (e *Expansion) Positions() []Position {
	return e.positions
}

// Candidates returns only the candidate lists, one per position.
func (e *Expansion) Candidates() [][]string {
	return lo.Map(e.positions, func(p Position, _ int) []string {
		return p.Candidates
	})
}

// Count is the number of lines a full run produces: the product of all
// candidate list lengths. An empty input yields 1.
func (e *Expansion) Count() *big.Int {
	count := big.NewInt(1)
	for _, p := range e.positions {
		count.Mul(count, big.NewInt(int64(len(p.Candidates))))
	}
	return count
}

// OutputBytes is the exact size of a full run's output, newlines included.
// Each token of position i appears Count/len(candidates_i) times.
func (e *Expansion) OutputBytes() *big.Int {
	count := e.Count()
	total := new(big.Int).Set(count)
	for _, p := range e.positions {
		tokenBytes := lo.SumBy(p.Candidates, func(tok string) int64 {
			return int64(len(tok))
		})
		share := new(big.Int).Quo(count, big.NewInt(int64(len(p.Candidates))))
		total.Add(total, share.Mul(share, big.NewInt(tokenBytes)))
	}
	return total
}
