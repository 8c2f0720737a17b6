package message

// Resource-set shapes. A ResourceSet is the protocol's packed count of
// each resource kind; several shapes embed one or two of them.

import (
	"github.com/nm-morais/go-gamewire/pkg/errors"
)

const discardCaller = "DISCARD"

// ResourceSet counts each resource kind. Unknown covers face-down cards
// an observer cannot identify.
type ResourceSet struct {
	Clay    int
	Ore     int
	Sheep   int
	Wheat   int
	Wood    int
	Unknown int
}

func (rs ResourceSet) Total() int {
	return rs.Clay + rs.Ore + rs.Sheep + rs.Wheat + rs.Wood + rs.Unknown
}

func (rs ResourceSet) fields() []int {
	return []int{rs.Clay, rs.Ore, rs.Sheep, rs.Wheat, rs.Wood, rs.Unknown}
}

func resourceSetFromFields(fields []int) ResourceSet {
	return ResourceSet{
		Clay:    fields[0],
		Ore:     fields[1],
		Sheep:   fields[2],
		Wheat:   fields[3],
		Wood:    fields[4],
		Unknown: fields[5],
	}
}

// Discard is a player giving up resources after a seven is rolled.
type Discard struct {
	Game      string
	Resources ResourceSet
}

func NewDiscard(game string, resources ResourceSet) *Discard {
	return &Discard{Game: game, Resources: resources}
}

func (m *Discard) Type() ID { return DiscardID }

func (m *Discard) Encode() string {
	return encodeLine(DiscardID, encodeGameInts(m.Game, m.Resources.fields()...))
}

func DecodeDiscard(payload string) (Message, errors.Error) {
	game, fields, err := decodeGameInts(payload, 6, discardCaller)
	if err != nil {
		return nil, err
	}
	return &Discard{Game: game, Resources: resourceSetFromFields(fields)}, nil
}
