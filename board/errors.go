package board

import (
	"errors"
	"fmt"

	"github.com/daystram/chesstree/position"
)

var (
	// ErrPieceNotFound is returned when no piece sits on the origin square or no legal
	// move of that piece reaches the destination.
	ErrPieceNotFound = errors.New("piece not found")

	// ErrInvalidMove is returned when the move exists but leaves the mover's King in check.
	ErrInvalidMove = errors.New("invalid move")

	// ErrMovePiece is returned when a move is applied for a side other than its own.
	ErrMovePiece = errors.New("move piece error")
)

// MoveError carries the squares, piece and side involved in a rejected move.
type MoveError struct {
	Kind     error
	From, To position.Pos
	Piece    Piece
	Side     Side
}

func (e *MoveError) Error() string {
	switch {
	case errors.Is(e.Kind, ErrPieceNotFound) && e.Piece == PieceUnknown:
		return fmt.Sprintf("%v at %s", e.Kind, e.From)
	default:
		return fmt.Sprintf("%v: %s => %s for %s of %s color", e.Kind, e.From, e.To, e.Piece, e.Side)
	}
}

func (e *MoveError) Unwrap() error {
	return e.Kind
}
