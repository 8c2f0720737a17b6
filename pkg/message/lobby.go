package message

// Lobby traffic: joining and leaving games, seat changes, the game list.

import (
	"strconv"

	"github.com/nm-morais/go-gamewire/pkg/errors"
	"github.com/nm-morais/go-gamewire/pkg/tokenizer"
)

const (
	joinGameCaller     = "JOINGAME"
	deleteGameCaller   = "DELETEGAME"
	joinGameAuthCaller = "JOINGAMEAUTH"
	sitDownCaller      = "SITDOWN"
	gamesCaller        = "GAMES"
)

// JoinGame is the client's request to enter a game. An empty password
// crosses the wire as the empty-token sentinel.
type JoinGame struct {
	Nickname string
	Password string
	Host     string
	Game     string
}

func NewJoinGame(nickname, password, host, game string) (*JoinGame, errors.Error) {
	if !IsSingleLineAndSafe(nickname) || !IsSingleLineAndSafe(host) || !IsSingleLineAndSafe(game) {
		return nil, errors.UnsafeStringError("nickname, host and game must be single-line and delimiter-free", joinGameCaller)
	}
	if password != "" && !IsSingleLineAndSafe(password) {
		return nil, errors.UnsafeStringError("unsafe password", joinGameCaller)
	}
	return &JoinGame{Nickname: nickname, Password: password, Host: host, Game: game}, nil
}

func (m *JoinGame) Type() ID { return JoinGameID }

func (m *JoinGame) Encode() string {
	pw := m.Password
	if pw == "" {
		pw = EmptyToken
	}
	return encodeLine(JoinGameID, tokenizer.Join(Sep2, m.Nickname, pw, m.Host, m.Game))
}

func DecodeJoinGame(payload string) (Message, errors.Error) {
	toks, err := decodeStrings(payload, 4, joinGameCaller)
	if err != nil {
		return nil, err
	}
	pw := toks[1]
	if pw == EmptyToken {
		pw = ""
	}
	if toks[0] == "" || toks[2] == "" || toks[3] == "" {
		return nil, errors.MalformedPayloadError("empty nickname, host or game", joinGameCaller)
	}
	return &JoinGame{Nickname: toks[0], Password: pw, Host: toks[2], Game: toks[3]}, nil
}

// DeleteGame tells clients a game has ended and left the lobby list.
type DeleteGame struct {
	Game string
}

func NewDeleteGame(game string) *DeleteGame { return &DeleteGame{Game: game} }

func (m *DeleteGame) Type() ID { return DeleteGameID }

func (m *DeleteGame) Encode() string {
	return encodeLine(DeleteGameID, m.Game)
}

func DecodeDeleteGame(payload string) (Message, errors.Error) {
	game, err := decodeGameOnly(payload, deleteGameCaller)
	if err != nil {
		return nil, err
	}
	return &DeleteGame{Game: game}, nil
}

// JoinGameAuth is the server's confirmation that a JoinGame succeeded.
type JoinGameAuth struct {
	Game string
}

func NewJoinGameAuth(game string) *JoinGameAuth { return &JoinGameAuth{Game: game} }

func (m *JoinGameAuth) Type() ID { return JoinGameAuthID }

func (m *JoinGameAuth) Encode() string {
	return encodeLine(JoinGameAuthID, m.Game)
}

func DecodeJoinGameAuth(payload string) (Message, errors.Error) {
	game, err := decodeGameOnly(payload, joinGameAuthCaller)
	if err != nil {
		return nil, err
	}
	return &JoinGameAuth{Game: game}, nil
}

// SitDown seats a player. Robot is an optional trailing flag: old peers
// omit it, and an absent flag decodes as false.
type SitDown struct {
	Game         string
	Nickname     string
	PlayerNumber int
	Robot        bool
}

func NewSitDown(game, nickname string, playerNumber int, robot bool) *SitDown {
	return &SitDown{Game: game, Nickname: nickname, PlayerNumber: playerNumber, Robot: robot}
}

func (m *SitDown) Type() ID { return SitDownID }

func (m *SitDown) Encode() string {
	payload := tokenizer.Join(Sep2,
		m.Game, m.Nickname, strconv.Itoa(m.PlayerNumber), strconv.FormatBool(m.Robot))
	return encodeLine(SitDownID, payload)
}

func DecodeSitDown(payload string) (Message, errors.Error) {
	toks := tokenizer.Tokens(payload, Sep2)
	if len(toks) != 3 && len(toks) != 4 {
		return nil, errors.MalformedPayloadError("expected 3 or 4 fields", sitDownCaller)
	}
	if toks[0] == "" || toks[1] == "" {
		return nil, errors.MalformedPayloadError("empty game or nickname", sitDownCaller)
	}
	pn, err := strconv.Atoi(toks[2])
	if err != nil {
		return nil, errors.MalformedPayloadError("non-numeric player number", sitDownCaller)
	}
	robot := false
	if len(toks) == 4 {
		robot, err = strconv.ParseBool(toks[3])
		if err != nil {
			return nil, errors.MalformedPayloadError("bad robot flag", sitDownCaller)
		}
	}
	return &SitDown{Game: toks[0], Nickname: toks[1], PlayerNumber: pn, Robot: robot}, nil
}

// Games is the server's list of current game names; multi-string shape,
// not scoped to any one game. The zero-element list is legal.
type Games struct {
	Names []string
}

func NewGames(names []string) (*Games, errors.Error) {
	for _, n := range names {
		if n == "" || !isMultiParamSafe(n) {
			return nil, errors.UnsafeStringError("unsafe game name", gamesCaller)
		}
	}
	return &Games{Names: names}, nil
}

func (m *Games) Type() ID { return GamesID }

func (m *Games) Encode() string {
	return encodeMulti(GamesID, "", m.Names)
}

func DecodeGames(payload string) (Message, errors.Error) {
	_, params, err := decodeMulti(payload, 0, gamesCaller)
	if err != nil {
		return nil, err
	}
	return &Games{Names: params}, nil
}
