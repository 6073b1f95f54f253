// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/polycrack/crack"
	"github.com/katalvlaran/polycrack/friedman"
	"github.com/katalvlaran/polycrack/internal/corpus"
	"github.com/katalvlaran/polycrack/scorer"
	"github.com/katalvlaran/polycrack/vigenere"
)

// Environment variable names read by ApplyEnv.
const (
	EnvWorkers  = "POLYCRACK_WORKERS"
	EnvLogLevel = "POLYCRACK_LOG_LEVEL"
)

// ErrUnknownKey is returned by LoadFile when the file sets a key Config does not have.
var ErrUnknownKey = errors.New("config: unknown key")

// Config is the full set of user-tunable settings.
type Config struct {
	Keywords     []string `toml:"keywords"`
	CommonWords  []string `toml:"common_words"`
	Policy       string   `toml:"policy"`
	Sentinel     string   `toml:"sentinel"`
	Workers      int      `toml:"workers"`
	MaxKeyLength int      `toml:"max_key_length"`
	LogLevel     string   `toml:"log_level"`
	LogFormat    string   `toml:"log_format"`
}

// Default returns the built-in settings: the demo keyword list, the default
// common words and the strict policy.
func Default() *Config {
	return &Config{
		Keywords:     append([]string(nil), corpus.Keywords...),
		CommonWords:  append([]string(nil), scorer.DefaultWords...),
		Policy:       vigenere.Strict.String(),
		Sentinel:     string(vigenere.DefaultSentinel),
		Workers:      1,
		MaxKeyLength: friedman.DefaultMaxKeyLength,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// LoadFile returns Default() overlaid with the TOML file at path.
// Keys absent from the file keep their default value.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from POLYCRACK_* variables that are set and
// non-empty. A malformed value is reported and leaves the field unchanged.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.TrimSpace(v)
	}
	return nil
}

// ValidationError names one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors collects every problem found by Validate.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "config: " + strings.Join(msgs, "; ")
}

// Validate checks every field and returns ValidateErrors listing all of the
// problems, or nil.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, err := vigenere.ParsePolicy(c.Policy); err != nil {
		errs = append(errs, ValidationError{"policy", fmt.Sprintf("invalid policy %q, must be one of: strict, sentinel, skip", c.Policy)})
	}
	if utf8.RuneCountInString(c.Sentinel) != 1 {
		errs = append(errs, ValidationError{"sentinel", fmt.Sprintf("must be exactly one character, got %q", c.Sentinel)})
	}
	if c.Workers < 1 {
		errs = append(errs, ValidationError{"workers", fmt.Sprintf("must be >= 1, got %d", c.Workers)})
	}
	if c.MaxKeyLength < 2 {
		errs = append(errs, ValidationError{"max_key_length", fmt.Sprintf("must be >= 2, got %d", c.MaxKeyLength)})
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, ValidationError{"log_level", fmt.Sprintf("invalid level %q, must be one of: debug, info, warn, error", c.LogLevel)})
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{"log_format", fmt.Sprintf("invalid format %q, must be one of: text, json", c.LogFormat)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))
	return l, err
}

// CrackOptions validates c and translates it into pipeline options.
func (c *Config) CrackOptions() ([]crack.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, _ := vigenere.ParsePolicy(c.Policy)
	s, _ := utf8.DecodeRuneInString(c.Sentinel)

	return []crack.Option{
		crack.WithPolicy(p, s),
		crack.WithWorkers(c.Workers),
		crack.WithMaxKeyLength(c.MaxKeyLength),
	}, nil
}
