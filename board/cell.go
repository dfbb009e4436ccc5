package board

const (
	maskCellPiece Cell = 0b0000_0111
	maskCellSide  Cell = 0b0000_1000
)

// Cell is the packed content of one square: piece code | side code, 0 when empty.
type Cell uint8

const CellEmpty Cell = 0

func Pack(p Piece, s Side) Cell {
	return Cell(p) | Cell(s)
}

// Unpack returns the piece and side held in c, or false for an empty cell.
func (c Cell) Unpack() (Piece, Side, bool) {
	if c == CellEmpty {
		return PieceUnknown, SideWhite, false
	}
	return Piece(c & maskCellPiece), Side(c & maskCellSide), true
}

func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

func (c Cell) String() string {
	p, s, ok := c.Unpack()
	if !ok {
		return "."
	}
	return p.SymbolFEN(s)
}
