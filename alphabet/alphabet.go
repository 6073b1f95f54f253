// SPDX-License-Identifier: MIT

package alphabet

import (
	"fmt"
	"unicode/utf8"
)

// LatinSymbols is the ordered symbol list of the standard Latin alphabet.
const LatinSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Latin is the 26-letter uppercase alphabet used by default everywhere.
var Latin = MustNew(LatinSymbols)

// Alphabet is an immutable ordered set of distinct runes.
// symbols[i] is the symbol with numeric value i; ascii caches lookups
// for 7-bit runes, index covers the rest.
type Alphabet struct {
	symbols []rune
	ascii   [utf8.RuneSelf]int8
	index   map[rune]int
}

// New builds an Alphabet from the runes of symbols, in order.
// Returns ErrEmptyAlphabet for an empty string and ErrDuplicateSymbol
// when a rune repeats.
// Complexity: O(N) time and memory.
func New(symbols string) (*Alphabet, error) {
	if symbols == "" {
		return nil, ErrEmptyAlphabet
	}
	rs := []rune(symbols)
	a := &Alphabet{
		symbols: rs,
		index:   make(map[rune]int, len(rs)),
	}
	for i := range a.ascii {
		a.ascii[i] = -1
	}
	for i, r := range rs {
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("%w: %q at position %d", ErrDuplicateSymbol, r, i)
		}
		a.index[r] = i
		if r < utf8.RuneSelf && i <= 127 {
			a.ascii[r] = int8(i)
		}
	}

	return a, nil
}

// MustNew is New for package-level literals; it panics on error.
func MustNew(symbols string) *Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// At returns the symbol with numeric value i. The second result is false
// when i is outside [0, Size()).
func (a *Alphabet) At(i int) (rune, bool) {
	if i < 0 || i >= len(a.symbols) {
		return 0, false
	}
	return a.symbols[i], true
}

// Index returns the numeric value of r, or (-1, false) if r is not a symbol.
// Complexity: O(1).
func (a *Alphabet) Index(r rune) (int, bool) {
	if r >= 0 && r < utf8.RuneSelf {
		// fast path; the map is authoritative only for symbols past 127
		if i := a.ascii[r]; i >= 0 {
			return int(i), true
		}
		if len(a.symbols) <= 128 {
			return -1, false
		}
	}
	i, ok := a.index[r]
	if !ok {
		return -1, false
	}
	return i, true
}

// Contains reports whether r belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)
	return ok
}

// Symbols returns a copy of the ordered symbol list.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

// String returns the symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}
