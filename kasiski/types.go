// SPDX-License-Identifier: MIT

package kasiski

import "fmt"

// DefaultGramSize is the window length used by Kasiski examination.
const DefaultGramSize = 3

// Inconclusive is the key length reported when no distances are available.
const Inconclusive = 1

// Option configures Index and Analyze.
type Option func(*Options)

// Options holds the tunable parameters of the analysis.
type Options struct {
	// GramSize is the sliding window length in runes (>= 2).
	GramSize int
}

// DefaultOptions returns Options{GramSize: DefaultGramSize}.
func DefaultOptions() Options {
	return Options{GramSize: DefaultGramSize}
}

// WithGramSize sets the window length. Panics if n < 2: a window of one
// rune repeats on letter frequency alone and says nothing about the period.
func WithGramSize(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("kasiski: WithGramSize(%d): gram size must be >= 2", n))
	}
	return func(o *Options) {
		o.GramSize = n
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Distances lists the gaps between consecutive occurrences of repeated
// grams. Every element is strictly positive.
type Distances []int

// PositionIndex maps each gram to the increasing offsets (in runes) at
// which it starts. Grams are kept in first-discovery order.
type PositionIndex struct {
	order   []string
	offsets map[string][]int
}

// Len returns the number of distinct grams.
func (p *PositionIndex) Len() int {
	return len(p.order)
}

// Grams returns the distinct grams in first-discovery order.
func (p *PositionIndex) Grams() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Offsets returns the start offsets of gram, or nil if it never occurs.
func (p *PositionIndex) Offsets(gram string) []int {
	offs, ok := p.offsets[gram]
	if !ok {
		return nil
	}
	out := make([]int, len(offs))
	copy(out, offs)
	return out
}

// Repeated returns the grams that occur at least twice, in discovery order.
func (p *PositionIndex) Repeated() []string {
	var out []string
	for _, g := range p.order {
		if len(p.offsets[g]) > 1 {
			out = append(out, g)
		}
	}
	return out
}

// FactorCount is one row of the Kasiski factor tally: Length divides Count
// of the observed distances.
type FactorCount struct {
	Length int
	Count  int
}
