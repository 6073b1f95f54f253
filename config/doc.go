// SPDX-License-Identifier: MIT

// Package config loads polycrack settings from a TOML file and the
// environment.
//
// Precedence, lowest first: Default(), the TOML file, environment variables,
// then command-line flags (applied by the caller). Validate must be called
// after the last layer.
//
// Example file:
//
//	keywords       = ["hope", "lemon"]
//	common_words   = ["THE", "AND"]
//	policy         = "sentinel"
//	sentinel       = "?"
//	workers        = 4
//	max_key_length = 20
//	log_level      = "debug"
//	log_format     = "json"
//
// Environment:
//
//   - POLYCRACK_WORKERS    overrides workers
//   - POLYCRACK_LOG_LEVEL  overrides log_level
package config
