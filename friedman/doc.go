// SPDX-License-Identifier: MIT

// Package friedman estimates the key length of a polyalphabetic cipher from
// the index of coincidence (IC) of its ciphertext.
//
// What
//
//   - IndexOfCoincidence: probability that two runes drawn without
//     replacement from the text are equal, Σ f·(f−1) / n·(n−1).
//   - Estimate: the Friedman test,
//
//     k = round( 0.0265·n / ((0.065 − IC) + IC·(n−1)) )
//
//     where 0.065 is the IC of English plaintext and 0.0265 = 0.065 − 0.0385,
//     the gap between English and uniformly random text.
//   - ColumnEstimate: for each candidate length L, split the text into L
//     columns and average their IC; the L whose average is closest to English
//     wins. Slower but far less noisy than the single-shot formula.
//
// Rounding
//
//	Estimate rounds half to even (math.RoundToEven) and reports the rounded
//	value as is. The formula dips below 0.5 on monoalphabetic English text,
//	so 0 is a normal result.
//
// Errors
//
//   - ErrTooShort      if the text has fewer than two runes (n·(n−1) = 0).
//   - ErrBadMaxLength  if ColumnEstimate is asked for a maximum below 2.
package friedman
