package board

import (
	"fmt"

	"github.com/daystram/chesstree/position"
)

// MoveKind tags the special-move payload carried by a Move.
type MoveKind uint8

const (
	MoveStandard MoveKind = iota
	MoveEnPassant
	MoveCastle
	MovePromote
)

func (k MoveKind) String() string {
	switch k {
	case MoveStandard:
		return "Move"
	case MoveEnPassant:
		return "En Passant"
	case MoveCastle:
		return "Castle"
	case MovePromote:
		return "Promote"
	default:
		return ""
	}
}

// Move describes one ply. Payload fields are only meaningful for their Kind:
// EnPassantCapture for MoveEnPassant, RookFrom/RookTo for MoveCastle, Promote for
// MovePromote. Captured is the occupant of To before the move, PieceUnknown if it was empty.
type Move struct {
	From, To position.Pos
	Piece    Piece
	Side     Side
	Captured Piece
	Kind     MoveKind

	EnPassantCapture position.Pos
	RookFrom, RookTo position.Pos
	Promote          Piece
}

func (m Move) IsCapture() bool {
	return m.Captured != PieceUnknown || m.Kind == MoveEnPassant
}

func (m Move) Equals(o Move) bool {
	return m == o
}

func (m Move) String() string {
	kind := m.Kind.String()
	if m.Kind == MovePromote {
		kind = fmt.Sprintf("%s (%s)", kind, m.Promote)
	}
	return fmt.Sprintf("%s: %s of color %s from %s => %s", kind, m.Piece, m.Side, m.From, m.To)
}

func (m Move) Algebra() string {
	if m.Kind == MoveCastle {
		if m.To.Col > m.From.Col {
			return CastleDirectionRight.String()
		}
		return CastleDirectionLeft.String()
	}
	nt := m.Piece.SymbolAlgebra(SideWhite) // SideWhite because it returns capital symbols
	if m.IsCapture() {
		if m.Piece == PiecePawn {
			nt += m.From.NotationComponentX()
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.Kind == MovePromote {
		nt += m.Promote.SymbolAlgebra(SideWhite)
	}
	if m.Kind == MoveEnPassant {
		nt += " e.p."
	}
	return nt
}

func (m Move) UCI() string {
	uci := m.From.Notation() + m.To.Notation()
	if m.Kind == MovePromote {
		uci += m.Promote.SymbolFEN(SideBlack)
	}
	return uci
}
