package message

// Chat shapes. Both carry a designated last, unescaped free-text field:
// the decoder never splits past it, so the text may contain separator
// characters. Constructors run the relaxed safety check (no control
// characters, no line or paragraph separators) instead of the strict one.

import (
	"strings"

	"github.com/nm-morais/go-gamewire/pkg/errors"
)

const (
	gameTextMsgCaller    = "GAMETEXTMSG"
	gameServerTextCaller = "GAMESERVERTEXT"
)

// GameTextMsg is a chat line from a member of a game. Text is everything
// after the second Sep2 of the payload.
type GameTextMsg struct {
	Game     string
	Nickname string
	Text     string
}

func NewGameTextMsg(game, nickname, text string) (*GameTextMsg, errors.Error) {
	if !IsSingleLineAndSafe(game) || !IsSingleLineAndSafe(nickname) {
		return nil, errors.UnsafeStringError("unsafe game or nickname", gameTextMsgCaller)
	}
	if !isFreeTextSafe(text) {
		return nil, errors.UnsafeStringError("text must be a non-empty single line", gameTextMsgCaller)
	}
	return &GameTextMsg{Game: game, Nickname: nickname, Text: text}, nil
}

func (m *GameTextMsg) Type() ID { return GameTextMsgID }

func (m *GameTextMsg) Encode() string {
	return encodeLine(GameTextMsgID, m.Game+Sep2+m.Nickname+Sep2+m.Text)
}

func DecodeGameTextMsg(payload string) (Message, errors.Error) {
	parts := strings.SplitN(payload, Sep2, 3)
	if len(parts) != 3 {
		return nil, errors.MalformedPayloadError("expected game, nickname and text", gameTextMsgCaller)
	}
	if parts[0] == "" || parts[1] == "" {
		return nil, errors.MalformedPayloadError("empty game or nickname", gameTextMsgCaller)
	}
	return &GameTextMsg{Game: parts[0], Nickname: parts[1], Text: parts[2]}, nil
}

// GameServerText is an announcement from the server to a game. It swaps
// Sep2 for the alternate control-byte delimiter, so the text may contain
// commas and pipes and still round-trip intact.
type GameServerText struct {
	Game string
	Text string
}

func NewGameServerText(game, text string) (*GameServerText, errors.Error) {
	if !IsSingleLineAndSafe(game) {
		return nil, errors.UnsafeStringError("unsafe game name", gameServerTextCaller)
	}
	if !isFreeTextSafe(text) {
		return nil, errors.UnsafeStringError("text must be a non-empty single line", gameServerTextCaller)
	}
	return &GameServerText{Game: game, Text: text}, nil
}

func (m *GameServerText) Type() ID { return GameServerTextID }

func (m *GameServerText) Encode() string {
	return encodeLine(GameServerTextID, m.Game+AltDelim+m.Text)
}

func DecodeGameServerText(payload string) (Message, errors.Error) {
	parts := strings.SplitN(payload, AltDelim, 2)
	if len(parts) != 2 || parts[0] == "" {
		return nil, errors.MalformedPayloadError("expected game and text", gameServerTextCaller)
	}
	return &GameServerText{Game: parts[0], Text: parts[1]}, nil
}
