// Package message holds the wire codec for the board-game protocol: one
// line of delimited text per message, a numeric type id per shape. Every
// concrete message is a value object; decode of its own encoding yields
// an equal value. Encoding and decoding are pure and hold no state, so
// they are safe from any number of goroutines.
package message

import (
	"strconv"
	"strings"
	"unicode"
)

// ID identifies a message shape and selects its decoder.
// Bands: 1000-1099 generic/game traffic, 9998-9999 session,
// 10000 and up reserved for extensions.
type ID int

// Field separators of the wire format. Fields of fixed-arity shapes are
// joined by Sep2; parameters of variable-arity shapes are joined by Sep,
// since a parameter may itself contain Sep2.
const (
	Sep  = "|"
	Sep2 = ","

	SepChar  = '|'
	Sep2Char = ','
)

// AltDelim is the per-type alternate delimiter a few shapes use in place
// of Sep2 so that free text may contain commas and pipes. It is a control
// byte precisely because the safety validator bans control characters
// from every field, so it can never occur in data.
const AltDelim = "\x01"

// EmptyToken stands in for an empty parameter of a variable-arity shape.
// A literal empty string between two separators would be ambiguous, so
// both directions translate at the codec boundary.
const EmptyToken = "\t"

// GameNone is the leading parameter of a variable-arity shape that is
// not scoped to a particular game.
const GameNone = "-"

type Message interface {
	Type() ID
	Encode() string
}

// Message type ids.
const (
	PutPieceID           ID = 1009
	GameTextMsgID        ID = 1010
	SitDownID            ID = 1012
	JoinGameID           ID = 1013
	BoardLayoutID        ID = 1014
	DeleteGameID         ID = 1015
	GamesID              ID = 1019
	JoinGameAuthID       ID = 1021
	PlayerElementID      ID = 1024
	GameStateID          ID = 1025
	TurnID               ID = 1026
	DiscardID            ID = 1033
	MoveRobberID         ID = 1034
	GameOptionGetInfosID ID = 1081
	GameServerTextID     ID = 1091
	VersionID            ID = 9998
	ServerPingID         ID = 9999
	PlayerStatsID        ID = 10102
)

// IsSingleLineAndSafe reports whether s can travel as an ordinary field
// without corrupting the wire format: non-empty, no separator characters,
// no control characters, no Unicode line or paragraph separator. Ordinary
// spaces are fine. Constructors call this on every plain string field;
// this is the defense against a user forging extra fields by typing a
// delimiter.
func IsSingleLineAndSafe(s string) bool {
	if s == "" {
		return false
	}
	if strings.ContainsRune(s, SepChar) || strings.ContainsRune(s, Sep2Char) {
		return false
	}
	return !containsBreakOrControl(s)
}

// isFreeTextSafe is the relaxed check for the designated last, unescaped
// field of the chat shapes: separators are allowed there (the decoder
// never splits past that point), line breaks and control characters are
// not.
func isFreeTextSafe(s string) bool {
	if s == "" {
		return false
	}
	return !containsBreakOrControl(s)
}

// isMultiParamSafe checks one parameter of a variable-arity shape: it may
// be empty (it crosses the wire as EmptyToken) and may contain Sep2, but
// never Sep, which delimits it.
func isMultiParamSafe(s string) bool {
	if strings.ContainsRune(s, SepChar) {
		return false
	}
	return !containsBreakOrControl(s)
}

func containsBreakOrControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) || unicode.Is(unicode.Zl, r) || unicode.Is(unicode.Zp, r) {
			return true
		}
	}
	return false
}

// encodeLine prefixes a payload with its type id and the primary
// separator, forming the full wire line.
func encodeLine(id ID, payload string) string {
	return strconv.Itoa(int(id)) + Sep + payload
}
