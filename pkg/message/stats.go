package message

// PlayerStats reports a seated player's accumulated statistics at game
// end. Multi-int shape: the count of trailing values depends on which
// optional features the game ran, so decode accepts any length past the
// stat type and keeps every value it is given.

import (
	"github.com/nm-morais/go-gamewire/pkg/errors"
)

const playerStatsCaller = "PLAYERSTATS"

// Stat types.
const (
	StatTypeResourceRoll = 1
	StatTypeTrades       = 2
)

type PlayerStats struct {
	Game     string
	StatType int
	Values   []int
}

func NewPlayerStats(game string, statType int, values []int) *PlayerStats {
	return &PlayerStats{Game: game, StatType: statType, Values: values}
}

func (m *PlayerStats) Type() ID { return PlayerStatsID }

func (m *PlayerStats) Encode() string {
	params := append([]int{m.StatType}, m.Values...)
	return encodeMultiInts(PlayerStatsID, m.Game, params)
}

func DecodePlayerStats(payload string) (Message, errors.Error) {
	game, params, err := decodeMultiInts(payload, 1, playerStatsCaller)
	if err != nil {
		return nil, err
	}
	return &PlayerStats{Game: game, StatType: params[0], Values: params[1:]}, nil
}
