// SPDX-License-Identifier: MIT

package vigenere

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/polycrack/alphabet"
)

// NormalizeKey upper-cases key and folds diacritics; it returns ErrEmptyKey
// for an empty key. Other runes, white space included, are kept and are
// handled by the lookup-failure policy when used.
func NormalizeKey(key string) (string, error) {
	k := alphabet.Normalize(key)
	if k == "" {
		return "", ErrEmptyKey
	}
	return k, nil
}

// Decrypt deciphers ciphertext under key. See DecryptResult for the
// per-position failure report.
func Decrypt(ciphertext, key string, opts ...Option) (string, error) {
	res, err := DecryptResult(ciphertext, key, opts...)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// Encrypt enciphers plaintext under key with the forward tabula recta
// (row = key symbol, column = plaintext symbol).
func Encrypt(plaintext, key string, opts ...Option) (string, error) {
	res, err := EncryptResult(plaintext, key, opts...)
	if err != nil {
		return "", err
	}
	return res.Text, nil
}

// DecryptResult deciphers ciphertext under key and reports failed positions.
// Complexity: O(n) with n = runes in ciphertext.
func DecryptResult(ciphertext, key string, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	return apply("Decrypt", ciphertext, key, o, o.Table.Decipher)
}

// EncryptResult enciphers plaintext under key and reports failed positions.
// Complexity: O(n) with n = runes in plaintext.
func EncryptResult(plaintext, key string, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	return apply("Encrypt", plaintext, key, o, o.Table.Encipher)
}

// apply walks text rune by rune, substituting alphabet symbols through fn
// and copying everything else. The key cursor advances on every rune.
func apply(method, text, key string, o Options, fn func(k, c rune) (rune, error)) (Result, error) {
	k, err := NormalizeKey(key)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", method, err)
	}
	ks := []rune(k)
	alpha := o.Table.Alphabet()

	var (
		b        strings.Builder
		failures []int
		i        int
		c, kc, r rune
	)
	b.Grow(len(text))
	for i, c = range []rune(text) {
		if !alpha.Contains(c) {
			b.WriteRune(c)
			continue
		}
		kc = ks[i%len(ks)]
		r, err = fn(kc, c)
		if err != nil {
			// c is a known symbol, so only the key symbol can have missed
			failures = append(failures, i)
			switch o.Policy {
			case Sentinel:
				b.WriteRune(o.Sentinel)
			case Skip:
			default:
				return Result{}, fmt.Errorf("%s: position %d: key symbol %q: %w", method, i, kc, ErrKeySymbol)
			}
			continue
		}
		b.WriteRune(r)
	}

	return Result{Text: b.String(), Failures: failures}, nil
}
