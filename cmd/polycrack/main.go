// SPDX-License-Identifier: MIT

// Command polycrack estimates the key length of a Vigenère ciphertext and
// tries a list of candidate keywords against it.
//
// Usage:
//
//	polycrack [flags] [file|-]
//
// The ciphertext is read from -text, the named file, or standard input.
// -demo analyses the built-in classroom samples instead.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"golang.org/x/term"

	"github.com/katalvlaran/polycrack/config"
	"github.com/katalvlaran/polycrack/crack"
	"github.com/katalvlaran/polycrack/internal/corpus"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// maxFactors bounds the factor tally printed in text mode.
const maxFactors = 5

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("polycrack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: polycrack [flags] [file|-]")
		fs.PrintDefaults()
	}

	cfgPath := fs.String("config", "", "TOML configuration file")
	keywords := fs.String("keywords", "", "comma-separated candidate keywords")
	words := fs.String("words", "", "comma-separated common words that mark a plausible plaintext")
	workers := fs.Int("workers", 0, "concurrent keyword trials")
	policy := fs.String("policy", "", "key lookup failure policy: strict, sentinel, skip")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	text := fs.String("text", "", "ciphertext given inline")
	jsonOut := fs.Bool("json", false, "print reports as JSON, one per line")
	demo := fs.Bool("demo", false, "analyse the built-in sample ciphertexts")
	printConfig := fs.Bool("print-config", false, "print the effective configuration as TOML and exit")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 || (fs.NArg() == 1 && (*text != "" || *demo)) || (*text != "" && *demo) {
		fmt.Fprintln(stderr, "polycrack: give at most one of -text, -demo or a file argument")
		fs.Usage()
		return exitUsage
	}

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.LoadFile(*cfgPath)
		if err != nil {
			fmt.Fprintf(stderr, "polycrack: %v\n", err)
			return exitError
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(stderr, "polycrack: %v\n", err)
		return exitError
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "keywords":
			cfg.Keywords = splitList(*keywords)
		case "words":
			cfg.CommonWords = splitList(*words)
		case "workers":
			cfg.Workers = *workers
		case "policy":
			cfg.Policy = *policy
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	opts, err := cfg.CrackOptions()
	if err != nil {
		fmt.Fprintf(stderr, "polycrack: %v\n", err)
		return exitUsage
	}

	if *printConfig {
		if err = cfg.Encode(stdout); err != nil {
			fmt.Fprintf(stderr, "polycrack: %v\n", err)
			return exitError
		}
		return exitOK
	}

	logger := newLogger(stderr, cfg)
	opts = append(opts, crack.WithLogger(logger))

	var inputs []string
	switch {
	case *demo:
		inputs = corpus.Samples
	case *text != "":
		inputs = []string{*text}
	default:
		if fs.NArg() == 0 && isTerminal(stdin) {
			fmt.Fprintln(stderr, "polycrack: no ciphertext: pass a file, -text, -demo or pipe into stdin")
			fs.Usage()
			return exitUsage
		}
		data, err := readInput(fs.Arg(0), stdin)
		if err != nil {
			fmt.Fprintf(stderr, "polycrack: %v\n", err)
			return exitError
		}
		inputs = []string{string(data)}
	}

	enc := json.NewEncoder(stdout)
	for i, ct := range inputs {
		rep, err := crack.Run(ctx, crack.Input{
			Ciphertext:  ct,
			Keywords:    cfg.Keywords,
			CommonWords: cfg.CommonWords,
		}, opts...)
		if err != nil {
			fmt.Fprintf(stderr, "polycrack: %v\n", err)
			return exitError
		}
		if *jsonOut {
			if err = enc.Encode(rep); err != nil {
				fmt.Fprintf(stderr, "polycrack: %v\n", err)
				return exitError
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		printReport(stdout, rep)
	}

	return exitOK
}

// newLogger builds the stderr handler selected by cfg. cfg must be valid.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	lvl, _ := cfg.Level()
	hopts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// readInput reads the named file, or r when name is "" or "-".
func readInput(name string, r io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read ciphertext: %w", err)
	}
	return data, nil
}

// splitList splits a comma-separated flag value, dropping blank items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func printReport(w io.Writer, rep *crack.Report) {
	fmt.Fprintf(w, "run:             %s\n", rep.RunID)
	fmt.Fprintf(w, "ciphertext:      %d symbols\n", len([]rune(rep.Ciphertext)))
	fmt.Fprintf(w, "key length:      %d (%s)\n", rep.KeyLength, rep.Method)
	fmt.Fprintf(w, "index of coinc.: %.4f\n", rep.IC)
	if rep.ColumnEstimate > 0 {
		fmt.Fprintf(w, "column estimate: %d\n", rep.ColumnEstimate)
	}
	if len(rep.Factors) > 0 {
		top := rep.Factors
		if len(top) > maxFactors {
			top = top[:maxFactors]
		}
		parts := make([]string, len(top))
		for i, f := range top {
			parts[i] = fmt.Sprintf("%d:%d", f.Length, f.Count)
		}
		fmt.Fprintf(w, "repeat factors:  %s\n", strings.Join(parts, " "))
	}

	if !rep.Found() {
		fmt.Fprintln(w, "no keyword produced a plausible plaintext")
	}
	for _, c := range rep.Candidates {
		fmt.Fprintf(w, "candidate %s [%s]\n  %s\n", c.Key, strings.Join(c.Matches, " "), c.Plaintext)
	}
	for _, r := range rep.Rejected {
		fmt.Fprintf(w, "rejected %q: %s\n", r.Keyword, r.Reason)
	}
}
