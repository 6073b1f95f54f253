// SPDX-License-Identifier: MIT

// Package kasiski implements Kasiski examination: locate repeated n-grams
// (trigrams by default) in a ciphertext, measure how far apart consecutive
// repeats are, and reduce those distances to a key-length estimate.
//
// What
//
//   - Index:  sliding-window position index, gram → increasing offsets.
//     The window stops once fewer than GramSize runes remain, so the final
//     full window is indexed too.
//   - Analyze: distances between consecutive occurrences of every gram seen
//     at least twice. Distances inside one gram's group are consecutive
//     differences, never all-pairs; groups follow first-discovery order.
//   - ReduceToKeyLength: left fold of the Euclidean GCD over the distances.
//     An empty list yields 1, the "inconclusive" sentinel.
//   - Factors: the classic Kasiski tally of how many distances each
//     candidate length divides.
//
// Why
//
//	A plaintext fragment that repeats at a distance that is a multiple of
//	the key length is enciphered identically, so true repeats cluster on
//	multiples of the period. The GCD is a cheap consensus estimator but is
//	noise-sensitive: a single coincidental repeat can pull it down to 1.
//
// Complexity (n = runes in the text, g = GramSize)
//
//   - Index / Analyze: O(n·g) time, O(n) memory.
//   - ReduceToKeyLength: O(len(d)·log(max d)).
//
// Usage
//
//	d := kasiski.Analyze("ABCABCABC")   // [3 3]
//	k := kasiski.ReduceToKeyLength(d)   // 3
package kasiski
