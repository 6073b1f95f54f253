// SPDX-License-Identifier: MIT

package kasiski

import "sort"

// Index records the start offset of every GramSize-rune window of text,
// keyed by the window's literal text. Offsets are rune positions.
// A text shorter than GramSize yields an empty index.
func Index(text string, opts ...Option) *PositionIndex {
	o := gatherOptions(opts)
	rs := []rune(text)
	idx := &PositionIndex{offsets: make(map[string][]int)}

	var gram string
	for i := 0; i+o.GramSize <= len(rs); i++ {
		gram = string(rs[i : i+o.GramSize])
		if _, seen := idx.offsets[gram]; !seen {
			idx.order = append(idx.order, gram)
		}
		idx.offsets[gram] = append(idx.offsets[gram], i)
	}

	return idx
}

// Analyze returns the distances between consecutive occurrences of every
// gram that appears at least twice in text. The result is never nil.
func Analyze(text string, opts ...Option) Distances {
	return idxDistances(Index(text, opts...))
}

// idxDistances flattens the consecutive-offset differences of idx.
func idxDistances(idx *PositionIndex) Distances {
	out := make(Distances, 0)
	for _, g := range idx.order {
		offs := idx.offsets[g]
		for i := 1; i < len(offs); i++ {
			out = append(out, offs[i]-offs[i-1])
		}
	}
	return out
}

// GCD returns the greatest common divisor of a and b (Euclid).
// GCD(0, b) == b, and the result is never negative.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ReduceToKeyLength folds GCD over d from left to right.
// An empty list returns Inconclusive (1).
func ReduceToKeyLength(d Distances) int {
	if len(d) == 0 {
		return Inconclusive
	}
	g := d[0]
	for _, v := range d[1:] {
		g = GCD(g, v)
	}
	return g
}

// Factors tallies, for each length 2..maxLen, how many distances it divides.
// Lengths that divide nothing are omitted. The result is ordered by Count
// descending, then Length ascending.
func Factors(d Distances, maxLen int) []FactorCount {
	var out []FactorCount
	var n, cnt int
	for n = 2; n <= maxLen; n++ {
		cnt = 0
		for _, v := range d {
			if v%n == 0 {
				cnt++
			}
		}
		if cnt > 0 {
			out = append(out, FactorCount{Length: n, Count: cnt})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Length < out[j].Length
	})
	return out
}
