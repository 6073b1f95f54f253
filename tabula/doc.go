// SPDX-License-Identifier: MIT

// Package tabula builds the tabula recta: the N×N Caesar-shift table used to
// encipher and decipher Vigenère text.
//
// Layout
//
//	Row r is the alphabet rotated left by r positions. Reading the table with
//	row = key symbol and column = plaintext symbol yields the ciphertext
//	symbol; deciphering finds the column of a ciphertext symbol inside the
//	key's row.
//
//	      A B C D ...
//	  A | A B C D ...
//	  B | B C D E ...
//	  C | C D E F ...
//
// The table is stored row-major in one flat slice, with a per-row inverse
// index so that Decipher is O(1) rather than a linear row scan.
//
// Usage
//
//	t := tabula.Standard()          // memoized Latin table, read-only
//	c, _ := t.Encipher('H', 'T')    // 'A'
//	p, _ := t.Decipher('H', 'A')    // 'T'
//
// Errors
//
//   - ErrOutOfRange     if a row or column index is outside [0, N).
//   - ErrUnknownSymbol  if a rune is not part of the table's alphabet.
package tabula
