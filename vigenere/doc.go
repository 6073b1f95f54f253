// SPDX-License-Identifier: MIT

// Package vigenere enciphers and deciphers Vigenère text through the tabula
// recta.
//
// Key cursor
//
//	The key symbol used at ciphertext position i (counted in runes) is
//	key[i mod len(key)]. Runes outside the alphabet (lower-case letters,
//	digits, punctuation, spaces) are copied unchanged but STILL advance the
//	cursor. This differs from most textbook implementations, which only step
//	the key on letters; strip or normalize the text first if that is what
//	the ciphertext was produced with.
//
// Lookup failures
//
//	The key is upper-cased before use, so a key symbol can only miss the
//	table when the key contains digits or punctuation. What happens then is
//	chosen with WithPolicy:
//
//	  - Strict   (default) the call fails with ErrKeySymbol.
//	  - Sentinel the position is filled with the sentinel rune ('?').
//	  - Skip     the position produces no output at all. Output is shorter
//	             than the input and misaligned; kept for compatibility with
//	             the classroom tool this package replaced.
//
//	DecryptResult/EncryptResult report every failed position regardless of
//	policy.
//
// Usage
//
//	ct, _ := vigenere.Encrypt("ATTACKATDAWN", "LEMON") // LXFOPVEFRNHR
//	pt, _ := vigenere.Decrypt(ct, "lemon")             // ATTACKATDAWN
//
// Errors
//
//   - ErrEmptyKey   if the key is empty after normalization.
//   - ErrKeySymbol  under the Strict policy, wrapped with position and rune.
package vigenere
