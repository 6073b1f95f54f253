// SPDX-License-Identifier: MIT

package friedman

import "errors"

var (
	// ErrTooShort indicates that the text has fewer than two runes, where the
	// index of coincidence is undefined.
	ErrTooShort = errors.New("friedman: text must contain at least two runes")

	// ErrBadMaxLength indicates an upper bound below 2 for ColumnEstimate.
	ErrBadMaxLength = errors.New("friedman: maximum key length must be >= 2")
)
