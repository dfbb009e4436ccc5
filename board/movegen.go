package board

import "github.com/daystram/chesstree/position"

type offset struct {
	dc, dr int
}

var (
	// rays are walked in order: up, right, down, left
	lateralRays = []offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	// rays are walked in order: up-left, up-right, down-right, down-left
	diagonalRays = []offset{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	knightOffsets = []offset{
		{-1, -2}, {1, -2}, {2, -1}, {2, 1},
		{1, 2}, {-1, 2}, {-2, 1}, {-2, -1},
	}
	kingOffsets = []offset{
		{0, -1}, {1, -1}, {1, 0}, {1, 1},
		{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
)

// AllAvailableMoves returns the pseudo-legal moves of every piece on the board, both sides,
// scanning columns in the outer loop and rows in the inner loop.
func (b *Board) AllAvailableMoves() []Move {
	var mvs []Move
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			mvs = append(mvs, b.AvailableMoves(position.NewPos(x, y))...)
		}
	}
	return mvs
}

// PseudoLegalTurnMoves returns the pseudo-legal moves of the side to move.
func (b *Board) PseudoLegalTurnMoves() []Move {
	turn := b.Turn()
	var mvs []Move
	for _, mv := range b.AllAvailableMoves() {
		if mv.Side == turn {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// AllTurnAvailableMoves returns the legal moves of the side to move.
func (b *Board) AllTurnAvailableMoves() []Move {
	var mvs []Move
	for _, mv := range b.PseudoLegalTurnMoves() {
		if b.IsValidMove(mv) {
			mvs = append(mvs, mv)
		}
	}
	return mvs
}

// AvailableMoves returns the pseudo-legal moves of the piece on pos, or nil for an empty
// square. This generate function is not strictly legal (e.g., king may be left in check).
func (b *Board) AvailableMoves(pos position.Pos) []Move {
	p, s, ok := b.PieceAt(pos)
	if !ok {
		return nil
	}
	switch p {
	case PiecePawn:
		return b.genPawnMoves(pos, s)
	case PieceBishop:
		return b.genSlidingMoves(pos, p, s, diagonalRays)
	case PieceKnight:
		return b.genSteppingMoves(pos, p, s, knightOffsets)
	case PieceRook:
		return b.genSlidingMoves(pos, p, s, lateralRays)
	case PieceQueen:
		return append(b.genSlidingMoves(pos, p, s, lateralRays), b.genSlidingMoves(pos, p, s, diagonalRays)...)
	case PieceKing:
		return append(b.genSteppingMoves(pos, p, s, kingOffsets), b.genCastlingMoves(pos, s)...)
	default:
		return nil
	}
}

// genSlidingMoves walks every ray until the board edge or the first occupied square, which
// is included only when it holds an opposing piece.
func (b *Board) genSlidingMoves(from position.Pos, p Piece, s Side, rays []offset) []Move {
	var mvs []Move
	for _, r := range rays {
		to, ok := from.Offset(r.dc, r.dr)
		for ok {
			tp, ts, occupied := b.PieceAt(to)
			if !occupied {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, Side: s})
				to, ok = to.Offset(r.dc, r.dr)
				continue
			}
			if ts != s {
				mvs = append(mvs, Move{From: from, To: to, Piece: p, Side: s, Captured: tp})
			}
			break
		}
	}
	return mvs
}

func (b *Board) genSteppingMoves(from position.Pos, p Piece, s Side, offsets []offset) []Move {
	var mvs []Move
	for _, o := range offsets {
		to, ok := from.Offset(o.dc, o.dr)
		if !ok {
			continue
		}
		tp, ts, occupied := b.PieceAt(to)
		if occupied && ts == s {
			continue
		}
		mvs = append(mvs, Move{From: from, To: to, Piece: p, Side: s, Captured: tp})
	}
	return mvs
}

func (b *Board) genPawnMoves(from position.Pos, s Side) []Move {
	var mvs []Move
	dir := s.pawnDirection()

	// single step
	if to, ok := from.Offset(0, dir); ok {
		if b.Cell(to).IsEmpty() {
			mvs = append(mvs, Move{From: from, To: to, Piece: PiecePawn, Side: s})
		}
	}

	// diagonal captures
	for _, dc := range []int{-1, 1} {
		to, ok := from.Offset(dc, dir)
		if !ok {
			continue
		}
		if tp, ts, occupied := b.PieceAt(to); occupied && ts != s {
			mvs = append(mvs, Move{From: from, To: to, Piece: PiecePawn, Side: s, Captured: tp})
		}
	}

	// double step, only the landing square is looked at
	if from.Row == s.pawnStartRow() {
		if to, ok := from.Offset(0, 2*dir); ok && b.Cell(to).IsEmpty() {
			mvs = append(mvs, Move{From: from, To: to, Piece: PiecePawn, Side: s})
		}
	}

	if mv, ok := b.genEnPassant(from, s); ok {
		mvs = append(mvs, mv)
	}
	return mvs
}

// genEnPassant looks for an opposing pawn that has just advanced two squares to land beside
// the pawn on from.
func (b *Board) genEnPassant(from position.Pos, s Side) (Move, bool) {
	last, ok := b.log.Last()
	if !ok || last.Piece != PiecePawn || last.Side == s {
		return Move{}, false
	}
	if abs(int(last.To.Row)-int(last.From.Row)) != 2 {
		return Move{}, false
	}
	if last.To.Row != from.Row || abs(int(last.To.Col)-int(from.Col)) != 1 {
		return Move{}, false
	}
	to, ok := last.To.Offset(0, s.pawnDirection())
	if !ok || !b.Cell(to).IsEmpty() {
		return Move{}, false
	}
	return Move{
		From:             from,
		To:               to,
		Piece:            PiecePawn,
		Side:             s,
		Kind:             MoveEnPassant,
		EnPassantCapture: last.To,
	}, true
}

// genCastlingMoves does not test whether the King passes through an attacked square.
func (b *Board) genCastlingMoves(from position.Pos, s Side) []Move {
	var mvs []Move
	for _, d := range []CastleDirection{CastleDirectionRight, CastleDirectionLeft} {
		kingFrom, kingTo := d.kingHops(s)
		rookFrom, rookTo := d.rookHops(s)
		if from != kingFrom || b.log.HasMovedFrom(kingFrom) || b.log.HasMovedFrom(rookFrom) {
			continue
		}
		if b.Cell(rookFrom) != Pack(PieceRook, s) {
			continue
		}
		clear := true
		for _, pos := range d.between(s) {
			if !b.Cell(pos).IsEmpty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		mvs = append(mvs, Move{
			From:     kingFrom,
			To:       kingTo,
			Piece:    PieceKing,
			Side:     s,
			Kind:     MoveCastle,
			RookFrom: rookFrom,
			RookTo:   rookTo,
		})
	}
	return mvs
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
