package message

// GameOptionGetInfos asks the server to describe game options the client
// does not know, typically right after version negotiation. Multi-string
// shape, never scoped to a game. Newer peers append extra marker tokens;
// decode keeps them as ordinary keys so the shape can grow without a new
// type id.

import (
	"github.com/nm-morais/go-gamewire/pkg/errors"
)

const gameOptionGetInfosCaller = "GAMEOPTIONGETINFOS"

type GameOptionGetInfos struct {
	OptionKeys []string
}

func NewGameOptionGetInfos(optionKeys []string) (*GameOptionGetInfos, errors.Error) {
	for _, k := range optionKeys {
		if k == "" || !isMultiParamSafe(k) {
			return nil, errors.UnsafeStringError("unsafe option key", gameOptionGetInfosCaller)
		}
	}
	return &GameOptionGetInfos{OptionKeys: optionKeys}, nil
}

func (m *GameOptionGetInfos) Type() ID { return GameOptionGetInfosID }

func (m *GameOptionGetInfos) Encode() string {
	return encodeMulti(GameOptionGetInfosID, "", m.OptionKeys)
}

func DecodeGameOptionGetInfos(payload string) (Message, errors.Error) {
	_, params, err := decodeMulti(payload, 0, gameOptionGetInfosCaller)
	if err != nil {
		return nil, err
	}
	return &GameOptionGetInfos{OptionKeys: params}, nil
}
