package message

// Variable-arity template helpers ("multi-string" and "multi-int").
// Parameters are joined by the primary separator, not Sep2, because a
// parameter may legitimately contain Sep2. The first parameter is the
// game name, or GameNone when the shape is not scoped to a game. Empty
// parameters cross the wire as EmptyToken; decode translates back, so
// two adjacent separators never appear in our own output.

import (
	"fmt"
	"strconv"

	"github.com/nm-morais/go-gamewire/pkg/errors"
	"github.com/nm-morais/go-gamewire/pkg/tokenizer"
)

func encodeMulti(id ID, game string, params []string) string {
	toks := make([]string, 0, len(params)+1)
	if game == "" {
		toks = append(toks, GameNone)
	} else {
		toks = append(toks, game)
	}
	for _, p := range params {
		if p == "" {
			p = EmptyToken
		}
		toks = append(toks, p)
	}
	return encodeLine(id, tokenizer.Join(Sep, toks...))
}

// decodeMulti accepts any parameter count >= min; shapes documented to
// grow trailing fields across versions keep the excess. Returned params
// have the empty-token sentinel already translated back.
func decodeMulti(payload string, min int, caller string) (string, []string, errors.Error) {
	toks := tokenizer.Tokens(payload, Sep)
	if len(toks) < min+1 {
		return "", nil, errors.MalformedPayloadError(
			fmt.Sprintf("expected at least %d parameters, got %d", min+1, len(toks)), caller)
	}
	game := toks[0]
	if game == "" {
		return "", nil, errors.MalformedPayloadError("empty game parameter", caller)
	}
	if game == GameNone {
		game = ""
	}
	params := make([]string, len(toks)-1)
	for i, p := range toks[1:] {
		if p == EmptyToken {
			p = ""
		}
		params[i] = p
	}
	return game, params, nil
}

func encodeMultiInts(id ID, game string, params []int) string {
	return encodeMulti(id, game, tokenizer.IntTokens(params...))
}

func decodeMultiInts(payload string, min int, caller string) (string, []int, errors.Error) {
	game, strs, err := decodeMulti(payload, min, caller)
	if err != nil {
		return "", nil, err
	}
	params := make([]int, len(strs))
	for i, s := range strs {
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			return "", nil, errors.MalformedPayloadError(
				fmt.Sprintf("non-numeric parameter %q at position %d", s, i), caller)
		}
		params[i] = n
	}
	return game, params, nil
}
