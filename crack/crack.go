// SPDX-License-Identifier: MIT

package crack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/polycrack/alphabet"
	"github.com/katalvlaran/polycrack/friedman"
	"github.com/katalvlaran/polycrack/kasiski"
	"github.com/katalvlaran/polycrack/scorer"
	"github.com/katalvlaran/polycrack/vigenere"
)

// Run estimates the key length of in.Ciphertext and tries every keyword.
func Run(ctx context.Context, in Input, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	rep := &Report{RunID: uuid.NewString()}
	log := o.Logger.With(slog.String("run", rep.RunID))
	start := time.Now()

	text := alphabet.Normalize(in.Ciphertext, alphabet.WithStripSpace())
	rep.Ciphertext = text
	log.Debug("normalized", slog.Int("runes", len([]rune(text))))

	if err := estimate(rep, text, o, log); err != nil {
		log.Error("key length estimate failed", slog.Any("err", err))
		return nil, err
	}

	words := scorer.Default()
	if len(in.CommonWords) > 0 {
		words = scorer.NewWordSet(in.CommonWords...)
	}
	cands, err := scorer.ScoreAll(ctx, text, in.Keywords,
		scorer.WithWordSet(words),
		scorer.WithWorkers(o.Workers),
		scorer.WithDecryptOptions(vigenere.WithPolicy(o.Policy), vigenere.WithSentinel(o.Sentinel)),
		scorer.WithOnReject(func(kw string, err error) {
			rep.Rejected = append(rep.Rejected, Rejection{Keyword: kw, Reason: err.Error()})
			log.Warn("keyword rejected", slog.String("keyword", kw), slog.Any("err", err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("crack: keyword trials: %w", err)
	}
	rep.Candidates = cands
	log.Info("keyword trials done",
		slog.Int("keywords", len(in.Keywords)),
		slog.Int("accepted", len(cands)),
		slog.Duration("elapsed", time.Since(start)))

	return rep, nil
}

// estimate fills the key-length fields of rep: Kasiski first, Friedman when
// the distances reduce to 1, plus the IC and column estimate as hints.
func estimate(rep *Report, text string, o Options, log *slog.Logger) error {
	rep.Distances = kasiski.Analyze(text)
	rep.Factors = kasiski.Factors(rep.Distances, o.MaxKeyLength)
	rep.KeyLength = kasiski.ReduceToKeyLength(rep.Distances)
	rep.Method = MethodKasiski
	log.Debug("kasiski",
		slog.Int("distances", len(rep.Distances)),
		slog.Int("gcd", rep.KeyLength))

	if rep.KeyLength == kasiski.Inconclusive {
		k, err := friedman.Estimate(text)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDegenerateInput, err)
		}
		rep.KeyLength = k
		rep.Method = MethodFriedman
		log.Debug("kasiski inconclusive, used friedman", slog.Int("key_length", k))
	}

	if ic, err := friedman.IndexOfCoincidence(text); err == nil {
		rep.IC = ic
	}
	col, err := friedman.ColumnEstimate(text, o.MaxKeyLength)
	switch {
	case err == nil:
		rep.ColumnEstimate = col
	case errors.Is(err, friedman.ErrTooShort):
		// short texts simply get no column hint
	default:
		return err
	}
	log.Info("key length estimated",
		slog.Int("key_length", rep.KeyLength),
		slog.String("method", string(rep.Method)),
		slog.Float64("ic", rep.IC),
		slog.Int("column_estimate", rep.ColumnEstimate))

	return nil
}
