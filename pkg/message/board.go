package message

// BoardLayout is the bespoke packed layout shape: the classic board's
// hex types and dice numbers travel as two fixed-length int runs,
// followed by the robber's hex. Superseded by richer layouts in 2.x,
// hence its maximum version.

import (
	"fmt"

	"github.com/nm-morais/go-gamewire/pkg/errors"
)

const boardLayoutCaller = "BOARDLAYOUT"

// BoardHexCount is the number of hexes in the classic board encoding.
const BoardHexCount = 37

type BoardLayout struct {
	Game      string
	Hexes     []int // hex type per position, BoardHexCount long
	Numbers   []int // dice number per position, BoardHexCount long
	RobberHex int
}

func NewBoardLayout(game string, hexes, numbers []int, robberHex int) (*BoardLayout, errors.Error) {
	if len(hexes) != BoardHexCount || len(numbers) != BoardHexCount {
		return nil, errors.MalformedPayloadError(
			fmt.Sprintf("layout arrays must hold %d hexes", BoardHexCount), boardLayoutCaller)
	}
	return &BoardLayout{Game: game, Hexes: hexes, Numbers: numbers, RobberHex: robberHex}, nil
}

func (m *BoardLayout) Type() ID { return BoardLayoutID }

func (m *BoardLayout) Encode() string {
	fields := make([]int, 0, 2*BoardHexCount+1)
	fields = append(fields, m.Hexes...)
	fields = append(fields, m.Numbers...)
	fields = append(fields, m.RobberHex)
	return encodeLine(BoardLayoutID, encodeGameInts(m.Game, fields...))
}

func DecodeBoardLayout(payload string) (Message, errors.Error) {
	game, fields, err := decodeGameInts(payload, 2*BoardHexCount+1, boardLayoutCaller)
	if err != nil {
		return nil, err
	}
	msg := &BoardLayout{
		Game:      game,
		Hexes:     fields[:BoardHexCount],
		Numbers:   fields[BoardHexCount : 2*BoardHexCount],
		RobberHex: fields[2*BoardHexCount],
	}
	return msg, nil
}
