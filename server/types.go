package server

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/daystram/chesstree/board"
	"github.com/daystram/chesstree/position"
)

type State struct {
	GameID      string                           `json:"game_id"`
	Cells       [board.Height][board.Width]uint8 `json:"cells"`
	Turn        string                           `json:"turn"`
	TurnCounter uint32                           `json:"turn_counter"`
	Status      string                           `json:"status"`
	Check       bool                             `json:"check"`
	Checkmate   bool                             `json:"checkmate"`
	Setup       string                           `json:"setup"`
}

type PosJSON struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (p PosJSON) Pos() (position.Pos, bool) {
	if p.Col < 0 || p.Col >= board.Width || p.Row < 0 || p.Row >= board.Height {
		return position.Pos{}, false
	}
	return position.NewPos(p.Col, p.Row), true
}

type MoveJSON struct {
	From     PosJSON `json:"from"`
	To       PosJSON `json:"to"`
	Piece    string  `json:"piece"`
	Side     string  `json:"side"`
	Kind     string  `json:"kind"`
	Captured string  `json:"captured,omitempty"`
	UCI      string  `json:"uci"`
	Algebra  string  `json:"algebra"`
}

func newMoveJSON(mv board.Move) MoveJSON {
	return MoveJSON{
		From:     PosJSON{Col: int(mv.From.Col), Row: int(mv.From.Row)},
		To:       PosJSON{Col: int(mv.To.Col), Row: int(mv.To.Row)},
		Piece:    mv.Piece.String(),
		Side:     mv.Side.String(),
		Kind:     mv.Kind.String(),
		Captured: mv.Captured.String(),
		UCI:      mv.UCI(),
		Algebra:  mv.Algebra(),
	}
}

type CreateRequest struct {
	Setup string `json:"setup"`
	Turn  uint32 `json:"turn"`
}

type MoveRequest struct {
	From PosJSON `json:"from"`
	To   PosJSON `json:"to"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type MessageType string

const (
	MessageTypeMove  MessageType = "move"
	MessageTypeState MessageType = "state"
	MessageTypeError MessageType = "error"
)

// Message is the envelope of every websocket frame in both directions.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func mustJSON(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}

// errorKind maps an error to its status code and wire name.
func errorKind(err error) (int, string) {
	switch {
	case errors.Is(err, ErrGameNotFound):
		return fiber.StatusNotFound, "game_not_found"
	case errors.Is(err, board.ErrPieceNotFound):
		return fiber.StatusNotFound, "piece_not_found"
	case errors.Is(err, board.ErrInvalidMove):
		return fiber.StatusConflict, "invalid_move"
	case errors.Is(err, board.ErrMovePiece):
		return fiber.StatusConflict, "move_piece"
	case errors.Is(err, errBadRequest):
		return fiber.StatusBadRequest, "bad_request"
	default:
		return fiber.StatusInternalServerError, "internal"
	}
}

func newErrorResponse(err error) (int, ErrorResponse) {
	code, kind := errorKind(err)
	return code, ErrorResponse{Error: kind, Message: err.Error()}
}
