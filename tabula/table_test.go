package tabula_test

import (
	"testing"

	"github.com/katalvlaran/polycrack/alphabet"
	"github.com/katalvlaran/polycrack/tabula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_RowsAreRotations verifies row i is the alphabet rotated left by i.
func TestBuild_RowsAreRotations(t *testing.T) {
	tbl := tabula.Build(alphabet.Latin)
	require.Equal(t, 26, tbl.Size())

	syms := alphabet.LatinSymbols
	for i := 0; i < 26; i++ {
		row, err := tbl.Row(i)
		require.NoError(t, err)
		assert.Equal(t, syms[i:]+syms[:i], row, "row %d", i)
	}
}

// TestAt_Bounds ensures At and Row reject indices outside the table.
func TestAt_Bounds(t *testing.T) {
	tbl := tabula.Standard()

	r, err := tbl.At(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 'F', r)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {26, 0}, {0, 26}} {
		_, err = tbl.At(rc[0], rc[1])
		assert.ErrorIs(t, err, tabula.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
	}
	_, err = tbl.Row(26)
	assert.ErrorIs(t, err, tabula.ErrOutOfRange)
}

// TestEncipherDecipher_Total checks that every (key, plain) pair round-trips.
func TestEncipherDecipher_Total(t *testing.T) {
	tbl := tabula.Standard()
	for _, k := range alphabet.LatinSymbols {
		for _, p := range alphabet.LatinSymbols {
			c, err := tbl.Encipher(k, p)
			require.NoError(t, err)
			back, err := tbl.Decipher(k, c)
			require.NoError(t, err)
			require.Equal(t, p, back, "key %q plain %q", k, p)
		}
	}
}

// TestEncipher_KnownValues spot-checks the standard Vigenère square.
func TestEncipher_KnownValues(t *testing.T) {
	tbl := tabula.Standard()
	cases := []struct{ key, plain, cipher rune }{
		{'A', 'A', 'A'},
		{'B', 'A', 'B'},
		{'H', 'T', 'A'},
		{'L', 'A', 'L'},
		{'Z', 'Z', 'Y'},
	}
	for _, tc := range cases {
		got, err := tbl.Encipher(tc.key, tc.plain)
		require.NoError(t, err)
		assert.Equal(t, tc.cipher, got, "Encipher(%q,%q)", tc.key, tc.plain)
	}
}

// TestUnknownSymbol verifies lookups outside the alphabet return ErrUnknownSymbol.
func TestUnknownSymbol(t *testing.T) {
	tbl := tabula.Standard()
	_, err := tbl.Decipher('1', 'A')
	assert.ErrorIs(t, err, tabula.ErrUnknownSymbol)
	_, err = tbl.Decipher('A', 'a')
	assert.ErrorIs(t, err, tabula.ErrUnknownSymbol)
	_, err = tbl.Encipher('?', 'A')
	assert.ErrorIs(t, err, tabula.ErrUnknownSymbol)
	_, err = tbl.Encipher('A', ' ')
	assert.ErrorIs(t, err, tabula.ErrUnknownSymbol)
}

// TestBuild_CustomAlphabet builds a 5-symbol table.
func TestBuild_CustomAlphabet(t *testing.T) {
	tbl := tabula.Build(alphabet.MustNew("01234"))
	assert.Equal(t, "01234\n12340\n23401\n34012\n40123\n", tbl.String())

	c, err := tbl.Encipher('3', '4')
	require.NoError(t, err)
	assert.Equal(t, '2', c)
}

// TestStandard_Memoized ensures Standard returns the same instance.
func TestStandard_Memoized(t *testing.T) {
	assert.Same(t, tabula.Standard(), tabula.Standard())
	assert.Same(t, alphabet.Latin, tabula.Standard().Alphabet())
}

// TestBuild_NilPanics verifies Build rejects a nil alphabet.
func TestBuild_NilPanics(t *testing.T) {
	assert.Panics(t, func() { tabula.Build(nil) })
}
