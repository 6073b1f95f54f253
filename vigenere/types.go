// SPDX-License-Identifier: MIT

package vigenere

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polycrack/tabula"
)

var (
	// ErrEmptyKey indicates a key with no symbols after normalization.
	ErrEmptyKey = errors.New("vigenere: key must not be empty")

	// ErrKeySymbol indicates a key symbol that is not in the table's alphabet.
	ErrKeySymbol = errors.New("vigenere: key symbol not in alphabet")
)

// Policy selects how a key symbol missing from the alphabet is handled.
type Policy int

const (
	// Strict fails the whole call on the first lookup failure.
	Strict Policy = iota
	// Sentinel writes the sentinel rune in place of the failed position.
	Sentinel
	// Skip drops the failed position from the output.
	Skip
)

// String returns the lower-case policy name.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Sentinel:
		return "sentinel"
	case Skip:
		return "skip"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps "strict", "sentinel" or "skip" to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "strict", "":
		return Strict, nil
	case "sentinel":
		return Sentinel, nil
	case "skip":
		return Skip, nil
	default:
		return Strict, fmt.Errorf("vigenere: unknown policy %q", s)
	}
}

// DefaultSentinel is the rune written for failed positions under Sentinel.
const DefaultSentinel = '?'

// Option configures Encrypt and Decrypt.
type Option func(*Options)

// Options holds the table and failure policy used by a call.
type Options struct {
	Table    *tabula.Table
	Policy   Policy
	Sentinel rune
}

// DefaultOptions returns the standard Latin table, Strict policy and '?'.
func DefaultOptions() Options {
	return Options{
		Table:    tabula.Standard(),
		Policy:   Strict,
		Sentinel: DefaultSentinel,
	}
}

// WithTable selects the substitution table. Panics on nil.
func WithTable(t *tabula.Table) Option {
	if t == nil {
		panic("vigenere: WithTable(nil)")
	}
	return func(o *Options) {
		o.Table = t
	}
}

// WithPolicy selects the lookup-failure policy. Panics on unknown values.
func WithPolicy(p Policy) Option {
	if p < Strict || p > Skip {
		panic(fmt.Sprintf("vigenere: WithPolicy(%d): unknown policy", int(p)))
	}
	return func(o *Options) {
		o.Policy = p
	}
}

// WithSentinel sets the rune written under the Sentinel policy.
func WithSentinel(r rune) Option {
	return func(o *Options) {
		o.Sentinel = r
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Result is the outcome of one Encrypt/Decrypt call.
// Failures lists the input rune positions whose key symbol missed the table,
// in increasing order; it is empty on a clean run.
type Result struct {
	Text     string
	Failures []int
}

// Clean reports whether no position failed.
func (r Result) Clean() bool {
	return len(r.Failures) == 0
}
