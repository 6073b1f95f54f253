// SPDX-License-Identifier: MIT

package scorer

import (
	"fmt"

	"github.com/katalvlaran/polycrack/vigenere"
)

// Candidate is a keyword whose decryption passed the word filter.
// Plaintext is aligned rune-for-rune with the ciphertext unless the Skip
// policy dropped positions.
type Candidate struct {
	Key       string   `json:"key"`
	Plaintext string   `json:"plaintext"`
	Matches   []string `json:"matches"`
}

// Option configures ScoreAll.
type Option func(*Options)

// Options holds the word set, concurrency and decryption settings.
type Options struct {
	Words    *WordSet
	Workers  int
	Decrypt  []vigenere.Option
	OnReject func(keyword string, err error)
}

// DefaultOptions returns the default word set, one worker, Strict
// decryption and a no-op reject hook.
func DefaultOptions() Options {
	return Options{
		Words:    Default(),
		Workers:  1,
		OnReject: func(string, error) {},
	}
}

// WithWordSet replaces the acceptance word set. Panics on nil.
func WithWordSet(ws *WordSet) Option {
	if ws == nil {
		panic("scorer: WithWordSet(nil)")
	}
	return func(o *Options) {
		o.Words = ws
	}
}

// WithWorkers bounds the number of concurrent trials. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("scorer: WithWorkers(%d): need at least one worker", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithDecryptOptions forwards options (table, policy) to every decryption.
func WithDecryptOptions(opts ...vigenere.Option) Option {
	return func(o *Options) {
		o.Decrypt = append(o.Decrypt, opts...)
	}
}

// WithOnReject registers a hook called, in keyword order after all trials
// finish, for each keyword that could not be used.
func WithOnReject(fn func(keyword string, err error)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReject = fn
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
