// SPDX-License-Identifier: MIT

package alphabet

import "errors"

var (
	// ErrEmptyAlphabet indicates that an alphabet was requested with no symbols.
	ErrEmptyAlphabet = errors.New("alphabet: at least one symbol is required")

	// ErrDuplicateSymbol indicates that the same rune occurs twice in the symbol list.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")
)
