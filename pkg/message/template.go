package message

// Fixed-arity template helpers. Most shapes are "game name plus N small
// fields", N in 0..4, every field an int or a plain string. Concrete
// types stay thin wrappers with typed fields over these.

import (
	"fmt"

	"github.com/nm-morais/go-gamewire/pkg/errors"
	"github.com/nm-morais/go-gamewire/pkg/tokenizer"
)

// encodeGameInts builds the payload for a game name plus int fields,
// joined by Sep2.
func encodeGameInts(game string, fields ...int) string {
	toks := append([]string{game}, tokenizer.IntTokens(fields...)...)
	return tokenizer.Join(Sep2, toks...)
}

// decodeGameInts expects exactly want int fields after the game name.
func decodeGameInts(payload string, want int, caller string) (string, []int, errors.Error) {
	toks := tokenizer.Tokens(payload, Sep2)
	if len(toks) != want+1 {
		return "", nil, errors.MalformedPayloadError(
			fmt.Sprintf("expected %d fields, got %d", want+1, len(toks)), caller)
	}
	if toks[0] == "" {
		return "", nil, errors.MalformedPayloadError("empty game name", caller)
	}
	fields, err := tokenizer.Ints(toks[1:])
	if err != nil {
		return "", nil, errors.MalformedPayloadError(err.Reason(), caller)
	}
	return toks[0], fields, nil
}

// decodeStrings expects exactly want string fields, no game name slot.
func decodeStrings(payload string, want int, caller string) ([]string, errors.Error) {
	toks := tokenizer.Tokens(payload, Sep2)
	if len(toks) != want {
		return nil, errors.MalformedPayloadError(
			fmt.Sprintf("expected %d fields, got %d", want, len(toks)), caller)
	}
	return toks, nil
}

// decodeGameOnly is the zero-field template: the payload is the game
// name and nothing else.
func decodeGameOnly(payload string, caller string) (string, errors.Error) {
	toks := tokenizer.Tokens(payload, Sep2)
	if len(toks) != 1 || toks[0] == "" {
		return "", errors.MalformedPayloadError("expected a lone game name", caller)
	}
	return toks[0], nil
}
