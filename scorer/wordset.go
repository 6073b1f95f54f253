// SPDX-License-Identifier: MIT

package scorer

import "strings"

// DefaultWords is the common-English substring list used when no other set
// is configured.
var DefaultWords = []string{
	"THE", "AND", "THAT", "WITH", "THIS", "HAVE", "FROM", "YOUR", "NOT", "BUT",
	"ALL", "FORM", "TION", "NION", "TO", "PUBLIC", "DATA", "WAY", "DOES", "BEEN",
	"TIAL", "ITY", "OFTH", "OFYUO", "FOR",
}

// WordSet is an ordered, de-duplicated list of upper-case substrings.
type WordSet struct {
	words []string
}

// NewWordSet upper-cases words, drops empty entries and duplicates, and
// keeps first-seen order.
func NewWordSet(words ...string) *WordSet {
	seen := make(map[string]struct{}, len(words))
	ws := &WordSet{words: make([]string, 0, len(words))}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		ws.words = append(ws.words, w)
	}
	return ws
}

// Default returns a WordSet over DefaultWords.
func Default() *WordSet {
	return NewWordSet(DefaultWords...)
}

// Len returns the number of words.
func (ws *WordSet) Len() int {
	return len(ws.words)
}

// Words returns a copy of the words in order.
func (ws *WordSet) Words() []string {
	out := make([]string, len(ws.words))
	copy(out, ws.words)
	return out
}

// Accepts reports whether text contains any word of the set.
func (ws *WordSet) Accepts(text string) bool {
	for _, w := range ws.words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// Matches returns the words contained in text, in set order.
func (ws *WordSet) Matches(text string) []string {
	var out []string
	for _, w := range ws.words {
		if strings.Contains(text, w) {
			out = append(out, w)
		}
	}
	return out
}
