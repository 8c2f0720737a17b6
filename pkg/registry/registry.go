// Package registry maps type ids to decoders and is the single entry
// point for inbound lines. The table is built once at package init and
// never mutated, so any number of connection goroutines may decode
// concurrently without locking.
package registry

import (
	"fmt"

	"github.com/nm-morais/go-gamewire/pkg/errors"
	"github.com/nm-morais/go-gamewire/pkg/logs"
	"github.com/nm-morais/go-gamewire/pkg/message"
	"github.com/nm-morais/go-gamewire/pkg/tokenizer"
	"github.com/sirupsen/logrus"
)

const registryCaller = "Registry"

type DecodeFunc func(payload string) (message.Message, errors.Error)

// ids are sparse across the bands (retired and reserved gaps), so a map
// rather than a dense array.
var decoders = map[message.ID]DecodeFunc{
	message.PutPieceID:           message.DecodePutPiece,
	message.GameTextMsgID:        message.DecodeGameTextMsg,
	message.SitDownID:            message.DecodeSitDown,
	message.JoinGameID:           message.DecodeJoinGame,
	message.BoardLayoutID:        message.DecodeBoardLayout,
	message.DeleteGameID:         message.DecodeDeleteGame,
	message.GamesID:              message.DecodeGames,
	message.JoinGameAuthID:       message.DecodeJoinGameAuth,
	message.PlayerElementID:      message.DecodePlayerElement,
	message.GameStateID:          message.DecodeGameState,
	message.TurnID:               message.DecodeTurn,
	message.DiscardID:            message.DecodeDiscard,
	message.MoveRobberID:         message.DecodeMoveRobber,
	message.GameOptionGetInfosID: message.DecodeGameOptionGetInfos,
	message.GameServerTextID:     message.DecodeGameServerText,
	message.VersionID:            message.DecodeVersion,
	message.ServerPingID:         message.DecodeServerPing,
	message.PlayerStatsID:        message.DecodePlayerStats,
}

// Lookup returns the decoder for a type id, if one is registered.
func Lookup(id message.ID) (DecodeFunc, bool) {
	d, ok := decoders[id]
	return d, ok
}

// KnownTypes returns every registered type id.
func KnownTypes() []message.ID {
	ids := make([]message.ID, 0, len(decoders))
	for id := range decoders {
		ids = append(ids, id)
	}
	return ids
}

type Registry struct {
	logger *logrus.Logger
}

func New() *Registry {
	return &Registry{logger: logs.NewLogger(registryCaller)}
}

func NewWithLogger(logger *logrus.Logger) *Registry {
	return &Registry{logger: logger}
}

// Decode turns one wire line into a message, or a typed failure. Unknown
// ids and malformed payloads come back as error values, never panics: a
// peer on a newer protocol revision routinely sends types we don't know,
// and one corrupt line must not cost the session.
func (r *Registry) Decode(line string) (msg message.Message, decErr errors.Error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Errorf("Decoder panicked on %q: %v", line, rec)
			msg = nil
			decErr = errors.MalformedPayloadError(fmt.Sprintf("decoder panic: %v", rec), registryCaller)
		}
	}()

	id, payload, err := tokenizer.SplitTypeID(line, message.Sep)
	if err != nil {
		r.logger.Warnf("Unframeable line %q: %s", line, err.Reason())
		return nil, err
	}
	decode, ok := decoders[message.ID(id)]
	if !ok {
		r.logger.Warnf("No decoder for message type %d", id)
		return nil, errors.UnknownTypeError(fmt.Sprintf("unknown message type %d", id), registryCaller)
	}
	msg, err = decode(payload)
	if err != nil {
		r.logger.Warnf("Malformed payload for message type %d: %s", id, err.Reason())
		return nil, err
	}
	return msg, nil
}
