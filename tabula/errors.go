// SPDX-License-Identifier: MIT

package tabula

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("tabula: index out of range")

	// ErrUnknownSymbol indicates a rune that is not in the table's alphabet.
	ErrUnknownSymbol = errors.New("tabula: symbol not in alphabet")
)

// tableErrorf wraps err with the method name and the offending arguments.
func tableErrorf(method string, a, b any, err error) error {
	return fmt.Errorf("Table.%s(%v,%v): %w", method, a, b, err)
}
