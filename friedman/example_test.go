package friedman_test

import (
	"fmt"

	"github.com/katalvlaran/polycrack/friedman"
)

// ExampleEstimate applies the Friedman test to a text with no repeated letter.
func ExampleEstimate() {
	ic, _ := friedman.IndexOfCoincidence("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	k, _ := friedman.Estimate("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	fmt.Printf("IC=%.3f k=%d\n", ic, k)

	// Output:
	// IC=0.000 k=11
}
