package board

// Piece is the kind of a piece. Its value is the low 3 bits of a packed Cell.
type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceBishop, PieceKnight, PieceRook, PieceQueen}

var pieceSymbols = map[rune]Piece{
	'p': PiecePawn,
	'b': PieceBishop,
	'n': PieceKnight,
	'r': PieceRook,
	'q': PieceQueen,
	'k': PieceKing,
}

// ParseSymbol maps a setup symbol to its piece. Uppercase is White, lowercase is Black.
func ParseSymbol(sym rune) (Piece, Side, bool) {
	if p, ok := pieceSymbols[sym]; ok {
		return p, SideBlack, true
	}
	if p, ok := pieceSymbols[sym|0x20]; ok && sym&0x20 == 0 {
		return p, SideWhite, true
	}
	return PieceUnknown, SideWhite, false
}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) IsPromoteCandidate() bool {
	for _, c := range PawnPromoteCandidates {
		if c == p {
			return true
		}
	}
	return false
}

func (p Piece) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s Side) string {
	for sym, piece := range pieceSymbols {
		if piece != p {
			continue
		}
		if s == SideWhite {
			sym &^= 0x20 // uppercase is -32 lowercase
		}
		return string(sym)
	}
	return ""
}

func (p Piece) SymbolUnicode(s Side, invert bool) string {
	if invert {
		s = s.Opposite()
	}
	if p < PiecePawn || p > PieceKing {
		return ""
	}
	white := [...]string{PiecePawn: "♙", PieceBishop: "♗", PieceKnight: "♘", PieceRook: "♖", PieceQueen: "♕", PieceKing: "♔"}
	black := [...]string{PiecePawn: "♟", PieceBishop: "♝", PieceKnight: "♞", PieceRook: "♜", PieceQueen: "♛", PieceKing: "♚"}
	if s == SideBlack {
		return black[p]
	}
	return white[p]
}
