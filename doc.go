// SPDX-License-Identifier: MIT

// Package polycrack is a small toolkit for breaking Vigenère ciphertexts:
// estimate the key length, then try candidate keywords and keep the
// decryptions that look like English.
//
// What is inside?
//
//	alphabet/  ordered symbol set and text normalization (case, diacritics, spaces)
//	tabula/    the tabula recta: a Size×Size substitution table with inverse lookup
//	kasiski/   repeated n-gram positions, distances, GCD and factor tally
//	friedman/  index of coincidence, Friedman estimate, column-averaged IC search
//	vigenere/  encrypt/decrypt through the table, with lookup-failure policies
//	scorer/    common-word filter and an ordered, bounded-concurrency keyword search
//	crack/     the end-to-end pipeline with structured logging
//	config/    TOML and environment configuration
//	cmd/polycrack  the command-line tool
//
// Every analysis package is pure: no globals beyond immutable defaults, no
// I/O, errors as package-level sentinels wrapped with context.
//
// Quick example:
//
//	rep, err := crack.Run(ctx, crack.Input{
//		Ciphertext: "AVTVL WHRVD AEJSA MRSWS TS",
//		Keywords:   []string{"hope"},
//	})
//	// rep.Candidates[0].Plaintext == "THEREISNOPLACELIKEHOME"
//
//	go install github.com/katalvlaran/polycrack/cmd/polycrack@latest
package polycrack
