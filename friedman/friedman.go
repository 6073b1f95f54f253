// SPDX-License-Identifier: MIT

package friedman

import (
	"fmt"
	"math"
)

// Reference constants of the Friedman test for English.
const (
	// EnglishIC is the index of coincidence of English plaintext.
	EnglishIC = 0.065
	// RandomIC is the index of coincidence of uniformly random Latin text (1/26).
	RandomIC = 0.0385
	// Coefficient is EnglishIC − RandomIC, the numerator factor of the test.
	Coefficient = 0.0265
)

// DefaultMaxKeyLength bounds ColumnEstimate when callers have no better idea.
const DefaultMaxKeyLength = 20

// frequencies counts every rune of rs.
func frequencies(rs []rune) map[rune]int {
	f := make(map[rune]int, 32)
	for _, r := range rs {
		f[r]++
	}
	return f
}

// ic computes Σ f(f−1) / n(n−1) for rs; the caller guarantees len(rs) >= 2.
func ic(rs []rune) float64 {
	n := float64(len(rs))
	var sum float64
	for _, f := range frequencies(rs) {
		sum += float64(f * (f - 1))
	}
	return sum / (n * (n - 1))
}

// IndexOfCoincidence returns the IC of text, counting every rune.
// Returns ErrTooShort when text has fewer than two runes.
// Complexity: O(n).
func IndexOfCoincidence(text string) (float64, error) {
	rs := []rune(text)
	if len(rs) <= 1 {
		return 0, fmt.Errorf("IndexOfCoincidence: n=%d: %w", len(rs), ErrTooShort)
	}
	return ic(rs), nil
}

// Raw returns the unrounded Friedman estimate for text.
// Returns ErrTooShort when text has fewer than two runes.
func Raw(text string) (float64, error) {
	rs := []rune(text)
	if len(rs) <= 1 {
		return 0, fmt.Errorf("Raw: n=%d: %w", len(rs), ErrTooShort)
	}
	n := float64(len(rs))
	k := ic(rs)

	return (Coefficient * n) / ((EnglishIC - k) + k*(n-1)), nil
}

// Estimate returns the Friedman key-length estimate for text, rounded half
// to even. The result is 0 when the formula falls below one half.
// Returns ErrTooShort when text has fewer than two runes.
// Complexity: O(n).
func Estimate(text string) (int, error) {
	raw, err := Raw(text)
	if err != nil {
		return 0, err
	}
	return int(math.RoundToEven(raw)), nil
}
