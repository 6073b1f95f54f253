// SPDX-License-Identifier: MIT

package crack

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/polycrack/friedman"
	"github.com/katalvlaran/polycrack/kasiski"
	"github.com/katalvlaran/polycrack/scorer"
	"github.com/katalvlaran/polycrack/vigenere"
)

// ErrDegenerateInput indicates a ciphertext too short for any key-length estimate.
var ErrDegenerateInput = errors.New("crack: ciphertext too short to analyse")

// Method names the estimator that produced Report.KeyLength.
type Method string

const (
	// MethodKasiski means the GCD of repeat distances was conclusive (> 1).
	MethodKasiski Method = "kasiski"
	// MethodFriedman means Kasiski was inconclusive and the Friedman test was used.
	MethodFriedman Method = "friedman"
)

// Input is everything one analysis needs.
type Input struct {
	// Ciphertext may contain white space; it is removed before analysis.
	Ciphertext string
	// Keywords are tried in order; case does not matter.
	Keywords []string
	// CommonWords is the acceptance set; nil or empty selects scorer.DefaultWords.
	CommonWords []string
}

// Rejection records a keyword that could not be tried.
type Rejection struct {
	Keyword string `json:"keyword"`
	Reason  string `json:"reason"`
}

// Report is the outcome of Run.
type Report struct {
	RunID          string                `json:"run_id"`
	Ciphertext     string                `json:"ciphertext"`
	KeyLength      int                   `json:"key_length"`
	Method         Method                `json:"method"`
	Distances      kasiski.Distances     `json:"distances"`
	Factors        []kasiski.FactorCount `json:"factors,omitempty"`
	IC             float64               `json:"ic"`
	ColumnEstimate int                   `json:"column_estimate,omitempty"`
	Candidates     []scorer.Candidate    `json:"candidates"`
	Rejected       []Rejection           `json:"rejected,omitempty"`
}

// Found reports whether at least one keyword produced an accepted plaintext.
func (r *Report) Found() bool {
	return len(r.Candidates) > 0
}

// Option configures Run.
type Option func(*Options)

// Options holds the pipeline settings.
type Options struct {
	Logger       *slog.Logger
	Workers      int
	Policy       vigenere.Policy
	Sentinel     rune
	MaxKeyLength int
}

// DefaultOptions returns a discarding logger, one worker, the Strict policy
// and friedman.DefaultMaxKeyLength.
func DefaultOptions() Options {
	return Options{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Workers:      1,
		Policy:       vigenere.Strict,
		Sentinel:     vigenere.DefaultSentinel,
		MaxKeyLength: friedman.DefaultMaxKeyLength,
	}
}

// WithLogger routes stage events to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers bounds concurrent keyword trials. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("crack: WithWorkers(%d): need at least one worker", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithPolicy selects the decryption lookup-failure policy and sentinel rune.
func WithPolicy(p vigenere.Policy, sentinel rune) Option {
	return func(o *Options) {
		o.Policy = p
		o.Sentinel = sentinel
	}
}

// WithMaxKeyLength bounds the factor tally and column estimate. Panics if n < 2.
func WithMaxKeyLength(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("crack: WithMaxKeyLength(%d): must be >= 2", n))
	}
	return func(o *Options) {
		o.MaxKeyLength = n
	}
}
