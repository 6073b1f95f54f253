// SPDX-License-Identifier: MIT

// Package crack wires the analyzers into the end-to-end attack:
//
//	ciphertext ─► normalize ─► kasiski ─┬─ length > 1 ─────────────► key length
//	                                    └─ inconclusive ─► friedman ─┘
//	ciphertext + keywords ─► scorer (vigenere + tabula) ─► candidates
//
// The key-length estimate is reported only; the candidate search is driven
// entirely by the supplied keyword list.
//
// Input is an explicit structure (ciphertext, keywords, common-word set) so
// the pipeline can be called repeatedly with different data and tested in
// isolation. Run logs stage events through an optional *slog.Logger, tagged
// with a per-run id.
//
// Errors
//
//   - ErrDegenerateInput  if the normalized ciphertext has fewer than two
//     runes and Kasiski is inconclusive (wraps friedman.ErrTooShort).
//   - ctx.Err()           if the context is cancelled during keyword trials.
package crack
