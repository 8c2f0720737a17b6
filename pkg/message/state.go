package message

// In-game state traffic: all fixed-arity "game + N ints" shapes.

import (
	"github.com/nm-morais/go-gamewire/pkg/errors"
)

const (
	putPieceCaller      = "PUTPIECE"
	playerElementCaller = "PLAYERELEMENT"
	gameStateCaller     = "GAMESTATE"
	turnCaller          = "TURN"
	moveRobberCaller    = "MOVEROBBER"
)

// GameState announces the game's new state number.
type GameState struct {
	Game  string
	State int
}

func NewGameState(game string, state int) *GameState {
	return &GameState{Game: game, State: state}
}

func (m *GameState) Type() ID { return GameStateID }

func (m *GameState) Encode() string {
	return encodeLine(GameStateID, encodeGameInts(m.Game, m.State))
}

func DecodeGameState(payload string) (Message, errors.Error) {
	game, fields, err := decodeGameInts(payload, 1, gameStateCaller)
	if err != nil {
		return nil, err
	}
	return &GameState{Game: game, State: fields[0]}, nil
}

// Turn hands the turn to a seat.
type Turn struct {
	Game         string
	PlayerNumber int
}

func NewTurn(game string, playerNumber int) *Turn {
	return &Turn{Game: game, PlayerNumber: playerNumber}
}

func (m *Turn) Type() ID { return TurnID }

func (m *Turn) Encode() string {
	return encodeLine(TurnID, encodeGameInts(m.Game, m.PlayerNumber))
}

func DecodeTurn(payload string) (Message, errors.Error) {
	game, fields, err := decodeGameInts(payload, 1, turnCaller)
	if err != nil {
		return nil, err
	}
	return &Turn{Game: game, PlayerNumber: fields[0]}, nil
}

// MoveRobber moves the robber to a board coordinate.
type MoveRobber struct {
	Game         string
	PlayerNumber int
	Coordinates  int
}

func NewMoveRobber(game string, playerNumber, coordinates int) *MoveRobber {
	return &MoveRobber{Game: game, PlayerNumber: playerNumber, Coordinates: coordinates}
}

func (m *MoveRobber) Type() ID { return MoveRobberID }

func (m *MoveRobber) Encode() string {
	return encodeLine(MoveRobberID, encodeGameInts(m.Game, m.PlayerNumber, m.Coordinates))
}

func DecodeMoveRobber(payload string) (Message, errors.Error) {
	game, fields, err := decodeGameInts(payload, 2, moveRobberCaller)
	if err != nil {
		return nil, err
	}
	return &MoveRobber{Game: game, PlayerNumber: fields[0], Coordinates: fields[1]}, nil
}

// PutPiece places a piece on the board.
type PutPiece struct {
	Game         string
	PlayerNumber int
	PieceType    int
	Coordinates  int
}

func NewPutPiece(game string, playerNumber, pieceType, coordinates int) *PutPiece {
	return &PutPiece{Game: game, PlayerNumber: playerNumber, PieceType: pieceType, Coordinates: coordinates}
}

func (m *PutPiece) Type() ID { return PutPieceID }

func (m *PutPiece) Encode() string {
	return encodeLine(PutPieceID, encodeGameInts(m.Game, m.PlayerNumber, m.PieceType, m.Coordinates))
}

func DecodePutPiece(payload string) (Message, errors.Error) {
	game, fields, err := decodeGameInts(payload, 3, putPieceCaller)
	if err != nil {
		return nil, err
	}
	return &PutPiece{Game: game, PlayerNumber: fields[0], PieceType: fields[1], Coordinates: fields[2]}, nil
}

// PlayerElement adjusts one counted element of a player's holdings
// (resources, pieces, knights...). ActionType says set, gain or lose.
type PlayerElement struct {
	Game         string
	PlayerNumber int
	ActionType   int
	ElementType  int
	Amount       int
}

// PlayerElement action types.
const (
	ElementSet  = 100
	ElementGain = 101
	ElementLose = 102
)

func NewPlayerElement(game string, playerNumber, actionType, elementType, amount int) *PlayerElement {
	return &PlayerElement{
		Game:         game,
		PlayerNumber: playerNumber,
		ActionType:   actionType,
		ElementType:  elementType,
		Amount:       amount,
	}
}

func (m *PlayerElement) Type() ID { return PlayerElementID }

func (m *PlayerElement) Encode() string {
	return encodeLine(PlayerElementID,
		encodeGameInts(m.Game, m.PlayerNumber, m.ActionType, m.ElementType, m.Amount))
}

func DecodePlayerElement(payload string) (Message, errors.Error) {
	game, fields, err := decodeGameInts(payload, 4, playerElementCaller)
	if err != nil {
		return nil, err
	}
	return &PlayerElement{
		Game:         game,
		PlayerNumber: fields[0],
		ActionType:   fields[1],
		ElementType:  fields[2],
		Amount:       fields[3],
	}, nil
}
