package vigenere_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/polycrack/vigenere"
)

// BenchmarkDecrypt_10K measures deciphering 10000 runes under a 7-letter key.
func BenchmarkDecrypt_10K(b *testing.B) {
	ct := strings.Repeat("LXFOPVEFRNHR ", 770)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vigenere.Decrypt(ct, "KEYWORD"); err != nil {
			b.Fatalf("Decrypt failed: %v", err)
		}
	}
}
