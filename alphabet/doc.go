// SPDX-License-Identifier: MIT

// Package alphabet defines the ordered symbol set every other polycrack
// package works over, plus the text normalization applied to ciphertext and
// keys before analysis.
//
// What
//
//   - Alphabet: an immutable, ordered set of distinct runes. Position i is the
//     numeric value of the symbol in modular (Caesar/Vigenère) arithmetic.
//   - Latin: the standard 26-letter uppercase alphabet A..Z.
//   - Normalize: NFKD decomposition, removal of combining marks, NFC
//     recomposition and upper-casing, with optional white-space stripping and
//     letter filtering.
//
// Why
//
//	The tabula recta, Kasiski and Friedman routines only need "index of a
//	symbol" and "symbol at an index". Keeping that behind a type lets the
//	table be built for any alphabet while the 26-letter Latin set stays the
//	default.
//
// Complexity
//
//   - New:       O(N) time and memory.
//   - Index:     O(1) for ASCII symbols, O(1) expected otherwise.
//   - Normalize: O(len(s)).
//
// Errors
//
//   - ErrEmptyAlphabet    if New receives no symbols.
//   - ErrDuplicateSymbol  if a rune appears twice.
package alphabet
