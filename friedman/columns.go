// SPDX-License-Identifier: MIT

package friedman

import (
	"fmt"
	"math"
)

// ColumnScore is the averaged column IC observed for one candidate length.
type ColumnScore struct {
	Length int
	AvgIC  float64
}

// ColumnScores splits text into L interleaved columns for L = 2..maxLen and
// averages the IC of the columns holding at least two runes. Lengths with no
// such column are omitted.
// Complexity: O(n·maxLen) time, O(n) memory.
func ColumnScores(text string, maxLen int) ([]ColumnScore, error) {
	if maxLen < 2 {
		return nil, fmt.Errorf("ColumnScores: maxLen=%d: %w", maxLen, ErrBadMaxLength)
	}
	rs := []rune(text)
	if len(rs) <= 1 {
		return nil, fmt.Errorf("ColumnScores: n=%d: %w", len(rs), ErrTooShort)
	}

	out := make([]ColumnScore, 0, maxLen-1)
	col := make([]rune, 0, len(rs)/2+1)
	var (
		l, i, j, used int
		sum           float64
	)
	for l = 2; l <= maxLen; l++ {
		sum, used = 0, 0
		for i = 0; i < l; i++ {
			col = col[:0]
			for j = i; j < len(rs); j += l {
				col = append(col, rs[j])
			}
			if len(col) < 2 {
				continue
			}
			sum += ic(col)
			used++
		}
		if used == 0 {
			continue
		}
		out = append(out, ColumnScore{Length: l, AvgIC: sum / float64(used)})
	}

	return out, nil
}

// ColumnEstimate returns the length in 2..maxLen whose averaged column IC is
// closest to EnglishIC; ties go to the smaller length.
// Returns ErrTooShort when no length has a column of two or more runes.
func ColumnEstimate(text string, maxLen int) (int, error) {
	scores, err := ColumnScores(text, maxLen)
	if err != nil {
		return 0, err
	}
	if len(scores) == 0 {
		return 0, fmt.Errorf("ColumnEstimate: no column of two runes: %w", ErrTooShort)
	}

	best, bestDiff := 0, math.MaxFloat64
	for _, s := range scores {
		// scores are in increasing Length, so strict < keeps the smaller on ties
		if d := math.Abs(s.AvgIC - EnglishIC); d < bestDiff {
			best, bestDiff = s.Length, d
		}
	}
	return best, nil
}
