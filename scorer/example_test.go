package scorer_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polycrack/scorer"
)

// ExampleScoreAll tries two keywords; only HOPE yields English.
func ExampleScoreAll() {
	cands, err := scorer.ScoreAll(context.Background(), "AVTVLWHRVDAEJSAMRSWSTS", []string{"lemon", "hope"})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, c := range cands {
		fmt.Println(c.Key, c.Plaintext, c.Matches)
	}

	// Output:
	// HOPE THEREISNOPLACELIKEHOME [THE]
}
