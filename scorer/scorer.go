// SPDX-License-Identifier: MIT

package scorer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polycrack/vigenere"
)

// slot is the outcome of one keyword trial.
type slot struct {
	cand     *Candidate
	rejected error
}

// ScoreAll deciphers ciphertext under each keyword and returns the accepted
// candidates in keyword order. An empty result is a normal outcome.
// The only error returned is ctx's, when it is cancelled before all trials
// have run.
func ScoreAll(ctx context.Context, ciphertext string, keywords []string, opts ...Option) ([]Candidate, error) {
	o := gatherOptions(opts)
	slots := make([]slot, len(keywords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range keywords {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = trial(ciphertext, keywords[i], o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(keywords))
	for i, s := range slots {
		if s.rejected != nil {
			o.OnReject(keywords[i], s.rejected)
			continue
		}
		if s.cand != nil {
			out = append(out, *s.cand)
		}
	}
	return out, nil
}

// Try runs a single keyword trial. ok is false when the plaintext contains
// none of the words; err is set when the keyword cannot be used.
func Try(ciphertext, keyword string, opts ...Option) (c Candidate, ok bool, err error) {
	s := trial(ciphertext, keyword, gatherOptions(opts))
	if s.rejected != nil {
		return Candidate{}, false, s.rejected
	}
	if s.cand == nil {
		return Candidate{}, false, nil
	}
	return *s.cand, true, nil
}

// trial normalizes keyword, decrypts and applies the word filter.
func trial(ciphertext, keyword string, o Options) slot {
	key, err := vigenere.NormalizeKey(keyword)
	if err != nil {
		return slot{rejected: err}
	}
	pt, err := vigenere.Decrypt(ciphertext, key, o.Decrypt...)
	if err != nil {
		return slot{rejected: err}
	}
	m := o.Words.Matches(pt)
	if len(m) == 0 {
		return slot{}
	}
	return slot{cand: &Candidate{Key: key, Plaintext: pt, Matches: m}}
}
