package scorer_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/polycrack/scorer"
	"github.com/katalvlaran/polycrack/vigenere"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hopeCipher is "THEREISNOPLACELIKEHOME" enciphered under HOPE.
const hopeCipher = "AVTVLWHRVDAEJSAMRSWSTS"

// TestScoreAll_HopeAccepted covers the accepted single-keyword scenario.
func TestScoreAll_HopeAccepted(t *testing.T) {
	ws := scorer.NewWordSet("THE")
	got, err := scorer.ScoreAll(context.Background(), hopeCipher, []string{"HOPE"}, scorer.WithWordSet(ws))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, scorer.Candidate{
		Key:       "HOPE",
		Plaintext: "THEREISNOPLACELIKEHOME",
		Matches:   []string{"THE"},
	}, got[0])
}

// TestScoreAll_NoMatch verifies an empty, non-error result when nothing passes.
func TestScoreAll_NoMatch(t *testing.T) {
	ws := scorer.NewWordSet("THE")
	got, err := scorer.ScoreAll(context.Background(), hopeCipher, []string{"LEMON", "KEY"}, scorer.WithWordSet(ws))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestScoreAll_CaseInsensitiveKeyword checks "hope" and "HOPE" agree.
func TestScoreAll_CaseInsensitiveKeyword(t *testing.T) {
	ctx := context.Background()
	lower, err := scorer.ScoreAll(ctx, hopeCipher, []string{"hope"})
	require.NoError(t, err)
	upper, err := scorer.ScoreAll(ctx, hopeCipher, []string{"HOPE"})
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
	require.Len(t, lower, 1)
	assert.Equal(t, "HOPE", lower[0].Key)
}

// TestScoreAll_PreservesOrder runs the same list with 1 and 8 workers.
func TestScoreAll_PreservesOrder(t *testing.T) {
	keys := make([]string, 0, 64)
	for i := 0; i < 16; i++ {
		keys = append(keys, "LEMON", "HOPE", "KEY", fmt.Sprintf("HOPE%c", 'A'+i))
	}
	// every plaintext contains some letter, so every keyword is accepted
	ws := scorer.NewWordSet(strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")...)

	seq, err := scorer.ScoreAll(context.Background(), hopeCipher, keys, scorer.WithWordSet(ws))
	require.NoError(t, err)
	par, err := scorer.ScoreAll(context.Background(), hopeCipher, keys, scorer.WithWordSet(ws), scorer.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, seq, par)

	require.Len(t, seq, len(keys))
	for i, c := range seq {
		assert.Equal(t, keys[i], c.Key)
	}
}

// TestScoreAll_Rejects verifies unusable keywords are reported, not fatal.
func TestScoreAll_Rejects(t *testing.T) {
	var rejected []string
	got, err := scorer.ScoreAll(context.Background(), hopeCipher, []string{"", "H0PE", "hope"},
		scorer.WithOnReject(func(kw string, err error) {
			rejected = append(rejected, kw)
		}))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "HOPE", got[0].Key)
	assert.Equal(t, []string{"", "H0PE"}, rejected)
}

// TestScoreAll_SentinelPolicy shows decrypt options reach every trial.
func TestScoreAll_SentinelPolicy(t *testing.T) {
	got, err := scorer.ScoreAll(context.Background(), hopeCipher, []string{"H0PE"},
		scorer.WithWordSet(scorer.NewWordSet("?")),
		scorer.WithDecryptOptions(vigenere.WithPolicy(vigenere.Sentinel)))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Plaintext, len(hopeCipher))
}

// TestScoreAll_Cancelled verifies a cancelled context aborts the run.
func TestScoreAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := scorer.ScoreAll(ctx, hopeCipher, []string{"HOPE", "KEY"}, scorer.WithWorkers(2))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestScoreAll_Empty verifies no keywords means no candidates.
func TestScoreAll_Empty(t *testing.T) {
	got, err := scorer.ScoreAll(context.Background(), hopeCipher, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestTry covers the single-trial helper.
func TestTry(t *testing.T) {
	c, ok, err := scorer.Try(hopeCipher, "hope")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"THE"}, c.Matches)

	_, ok, err = scorer.Try(hopeCipher, "lemon")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = scorer.Try(hopeCipher, "")
	assert.ErrorIs(t, err, vigenere.ErrEmptyKey)

	_, _, err = scorer.Try(hopeCipher, "ho pe")
	assert.ErrorIs(t, err, vigenere.ErrKeySymbol)
}

// TestWordSet covers normalization and matching.
func TestWordSet(t *testing.T) {
	ws := scorer.NewWordSet("the", " and ", "THE", "", "for")
	assert.Equal(t, []string{"THE", "AND", "FOR"}, ws.Words())
	assert.Equal(t, 3, ws.Len())
	assert.True(t, ws.Accepts("XXANDXX"))
	assert.False(t, ws.Accepts("and"), "matching is case-sensitive")
	assert.Equal(t, []string{"THE", "FOR"}, ws.Matches("FORTHE"))

	assert.Equal(t, len(scorer.DefaultWords), scorer.Default().Len())
}

// TestOptionPanics verifies option constructors reject programmer errors.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { scorer.WithWorkers(0) })
	assert.Panics(t, func() { scorer.WithWordSet(nil) })
}
