// SPDX-License-Identifier: MIT

package alphabet

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOption configures Normalize.
type NormalizeOption func(*normalizeConfig)

type normalizeConfig struct {
	stripSpace bool
	keepCase   bool
	letters    *Alphabet
}

// WithStripSpace removes every Unicode white-space rune from the output.
func WithStripSpace() NormalizeOption {
	return func(c *normalizeConfig) {
		c.stripSpace = true
	}
}

// WithKeepCase disables upper-casing; only diacritics are folded.
func WithKeepCase() NormalizeOption {
	return func(c *normalizeConfig) {
		c.keepCase = true
	}
}

// WithLettersOnly drops every rune that is not a symbol of a after folding.
// Panics on a nil alphabet.
func WithLettersOnly(a *Alphabet) NormalizeOption {
	if a == nil {
		panic("alphabet: WithLettersOnly(nil)")
	}
	return func(c *normalizeConfig) {
		c.letters = a
	}
}

// Normalize folds s into the form the analyzers expect:
//  1. NFKD decomposition and removal of combining marks (é → e, ﬁ → fi);
//  2. NFC recomposition;
//  3. upper-casing (language-neutral), unless WithKeepCase is given;
//  4. optional white-space stripping and alphabet filtering.
//
// Non-letters are otherwise left untouched, so punctuation survives.
// Complexity: O(len(s)).
func Normalize(s string, opts ...NormalizeOption) string {
	var cfg normalizeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	chain := []transform.Transformer{
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	}
	if !cfg.keepCase {
		chain = append(chain, cases.Upper(language.Und))
	}
	if cfg.stripSpace {
		chain = append(chain, runes.Remove(runes.In(unicode.White_Space)))
	}
	out, _, err := transform.String(transform.Chain(chain...), s)
	if err != nil {
		// transformers above never fail on valid input; fall back to the
		// simple mapping so callers always get a usable string
		out = s
		if !cfg.keepCase {
			out = strings.ToUpper(out)
		}
		if cfg.stripSpace {
			out = strings.Join(strings.Fields(out), "")
		}
	}

	if cfg.letters == nil {
		return out
	}
	var b strings.Builder
	b.Grow(len(out))
	for _, r := range out {
		if cfg.letters.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
