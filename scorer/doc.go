// SPDX-License-Identifier: MIT

// Package scorer tries a list of candidate keywords against a ciphertext and
// keeps the decryptions that look like English.
//
// What
//
//   - Each keyword is upper-cased, used to decipher the text, and the result
//     is accepted when it contains at least one entry of a WordSet
//     (case-sensitive substring match against the upper-case plaintext).
//   - "Scoring" is a boolean filter, not a ranking: accepted candidates are
//     returned in keyword input order.
//   - Keywords that cannot be used (empty, or containing symbols outside the
//     alphabet under the Strict policy) are rejected and reported through
//     WithOnReject instead of failing the whole run.
//
// Concurrency
//
//	Trials are independent. WithWorkers(n) runs up to n of them at once on an
//	errgroup; results are written into per-keyword slots so the output order
//	never depends on scheduling. Cancelling ctx stops pending trials and
//	ScoreAll returns ctx.Err().
//
// Usage
//
//	cands, err := scorer.ScoreAll(ctx, ct, []string{"hope", "lemon"},
//	    scorer.WithWorkers(4))
//	if len(cands) == 0 {
//	    // no matching decryption found
//	}
package scorer
