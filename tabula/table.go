// SPDX-License-Identifier: MIT

package tabula

import (
	"strings"
	"sync"

	"github.com/katalvlaran/polycrack/alphabet"
)

// Table is an immutable N×N tabula recta over an alphabet.
// cells holds N*N symbol indices in row-major order; inv[r*N+v] is the
// column whose value in row r is v.
type Table struct {
	alpha *alphabet.Alphabet
	n     int
	cells []int
	inv   []int
}

var (
	standardOnce  sync.Once
	standardTable *Table
)

// Standard returns the table for alphabet.Latin. It is built on first use
// and shared afterwards; callers must treat it as read-only.
func Standard() *Table {
	standardOnce.Do(func() {
		standardTable = Build(alphabet.Latin)
	})
	return standardTable
}

// Build constructs the tabula recta for a: row i is a rotated left by i.
// Pure and deterministic. Panics on a nil alphabet.
// Complexity: O(N²) time and memory.
func Build(a *alphabet.Alphabet) *Table {
	if a == nil {
		panic("tabula: Build(nil)")
	}
	n := a.Size()
	t := &Table{
		alpha: a,
		n:     n,
		cells: make([]int, n*n),
		inv:   make([]int, n*n),
	}
	var r, c, v int
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			v = (r + c) % n
			t.cells[r*n+c] = v
			t.inv[r*n+v] = c
		}
	}

	return t
}

// Size returns N, the number of rows (and columns).
func (t *Table) Size() int {
	return t.n
}

// Alphabet returns the alphabet the table was built over.
func (t *Table) Alphabet() *alphabet.Alphabet {
	return t.alpha
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (t *Table) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= t.n || col < 0 || col >= t.n {
		return 0, tableErrorf(method, row, col, ErrOutOfRange)
	}
	return row*t.n + col, nil
}

// At returns the symbol at (row, col).
// Complexity: O(1).
func (t *Table) At(row, col int) (rune, error) {
	idx, err := t.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}
	r, _ := t.alpha.At(t.cells[idx])
	return r, nil
}

// Row returns row r as a string, e.g. Row(1) == "BCD...ZA" for Latin.
func (t *Table) Row(r int) (string, error) {
	if _, err := t.indexOf("Row", r, 0); err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(t.n)
	for c := 0; c < t.n; c++ {
		s, _ := t.alpha.At(t.cells[r*t.n+c])
		b.WriteRune(s)
	}
	return b.String(), nil
}

// Encipher returns the value at row = key, column = plain.
// Complexity: O(1).
func (t *Table) Encipher(key, plain rune) (rune, error) {
	row, ok := t.alpha.Index(key)
	if !ok {
		return 0, tableErrorf("Encipher", string(key), string(plain), ErrUnknownSymbol)
	}
	col, ok := t.alpha.Index(plain)
	if !ok {
		return 0, tableErrorf("Encipher", string(key), string(plain), ErrUnknownSymbol)
	}
	r, _ := t.alpha.At(t.cells[row*t.n+col])
	return r, nil
}

// Decipher finds the column of cipher within key's row and returns the
// alphabet symbol at that column, inverting Encipher.
// Complexity: O(1).
func (t *Table) Decipher(key, cipher rune) (rune, error) {
	row, ok := t.alpha.Index(key)
	if !ok {
		return 0, tableErrorf("Decipher", string(key), string(cipher), ErrUnknownSymbol)
	}
	v, ok := t.alpha.Index(cipher)
	if !ok {
		return 0, tableErrorf("Decipher", string(key), string(cipher), ErrUnknownSymbol)
	}
	r, _ := t.alpha.At(t.inv[row*t.n+v])
	return r, nil
}

// String renders the table one row per line, for debugging.
func (t *Table) String() string {
	var b strings.Builder
	for r := 0; r < t.n; r++ {
		row, _ := t.Row(r)
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return b.String()
}
