// Package tokenizer is the line framer for the wire format: it splits a
// raw line into its leading type id and payload, and a payload into its
// ordered field tokens. Functions here are pure and never panic on any
// input; parse failures surface as errors.Error values.
package tokenizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nm-morais/go-gamewire/pkg/errors"
)

const tokenizerCaller = "Tokenizer"

// SplitTypeID splits a raw line into its leading integer type id and the
// remaining payload. The payload is everything after the first occurrence
// of sep, without further splitting; a line with no sep has an empty
// payload. A non-numeric id is a framer-level decode failure.
func SplitTypeID(line string, sep string) (int, string, errors.Error) {
	idPart := line
	payload := ""
	if idx := strings.Index(line, sep); idx >= 0 {
		idPart = line[:idx]
		payload = line[idx+len(sep):]
	}
	id, err := strconv.Atoi(idPart)
	if err != nil {
		return 0, "", errors.MalformedPayloadError(
			fmt.Sprintf("non-numeric type id in line %q", truncate(line)), tokenizerCaller)
	}
	return id, payload, nil
}

// Tokens splits a payload on sep, preserving order, count and empty
// tokens. An empty payload yields a single empty token, matching the
// encoding of a shape whose only field is empty.
func Tokens(payload string, sep string) []string {
	return strings.Split(payload, sep)
}

// Join assembles tokens into a payload with sep between them.
func Join(sep string, tokens ...string) string {
	return strings.Join(tokens, sep)
}

// Ints parses every token as a decimal integer. Any parse failure makes
// the whole payload malformed.
func Ints(tokens []string) ([]int, errors.Error) {
	out := make([]int, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.MalformedPayloadError(
				fmt.Sprintf("non-numeric field %q at position %d", truncate(tok), i), tokenizerCaller)
		}
		out[i] = n
	}
	return out, nil
}

// IntTokens formats integers as decimal tokens.
func IntTokens(fields ...int) []string {
	out := make([]string, len(fields))
	for i, n := range fields {
		out[i] = strconv.Itoa(n)
	}
	return out
}

// diagnostics quote raw input; cap it so a hostile line cannot flood logs
func truncate(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
