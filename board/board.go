package board

import (
	"fmt"
	"log"

	"github.com/daystram/chesstree/position"
)

const (
	Width  = position.MaxComponentScalar
	Height = position.MaxComponentScalar

	DefaultSetup = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"
)

func DefaultLogger(a ...any) {
	log.Println(a...)
}

// Board is the full game state: the grid of packed cells indexed [row][col], the turn
// counter whose parity selects the side to move, and the log of executed moves.
type Board struct {
	cells  [Height][Width]Cell
	turn   uint32
	log    Log
	logger func(...any)
}

type boardConfig struct {
	setup  string
	turn   uint32
	logger func(...any)
}

type BoardOption func(*boardConfig)

func WithSetup(setup string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.setup = setup
	}
}

func WithTurn(turn uint32) BoardOption {
	return func(cfg *boardConfig) {
		cfg.turn = turn
	}
}

func WithLogger(logger func(...any)) BoardOption {
	return func(cfg *boardConfig) {
		cfg.logger = logger
	}
}

func NewBoard(opts ...BoardOption) *Board {
	cfg := &boardConfig{
		setup:  DefaultSetup,
		logger: DefaultLogger,
	}
	for _, f := range opts {
		f(cfg)
	}
	b := &Board{
		turn:   cfg.turn,
		logger: cfg.logger,
	}
	b.parseSetup(cfg.setup)
	return b
}

// PieceAt decodes the cell at pos. An off-board pos is a programming error and panics.
func (b *Board) PieceAt(pos position.Pos) (Piece, Side, bool) {
	return b.Cell(pos).Unpack()
}

func (b *Board) Cell(pos position.Pos) Cell {
	if !pos.Valid() {
		panic(fmt.Sprintf("board: position out of range: %s", pos))
	}
	return b.cells[pos.Row][pos.Col]
}

func (b *Board) Cells() [Height][Width]Cell {
	return b.cells
}

// Turn returns the side to move: White on an even turn counter, Black on an odd one.
func (b *Board) Turn() Side {
	if b.turn%2 == 0 {
		return SideWhite
	}
	return SideBlack
}

func (b *Board) TurnCounter() uint32 {
	return b.turn
}

// AdvanceTurn hands the move to the other side.
func (b *Board) AdvanceTurn() {
	b.turn++
}

func (b *Board) Log() *Log {
	return &b.log
}

func (b *Board) set(pos position.Pos, c Cell) {
	if !pos.Valid() {
		panic(fmt.Sprintf("board: position out of range: %s", pos))
	}
	b.cells[pos.Row][pos.Col] = c
}

// ApplyMove executes mv for mover without any check test and appends it to the log. The
// turn counter is left untouched.
func (b *Board) ApplyMove(mover Side, mv Move) error {
	if mv.Side != mover {
		return &MoveError{Kind: ErrMovePiece, From: mv.From, To: mv.To, Piece: mv.Piece, Side: mv.Side}
	}
	if b.Cell(mv.From).IsEmpty() {
		return &MoveError{Kind: ErrPieceNotFound, From: mv.From, To: mv.To}
	}
	if mv.Kind == MovePromote && !mv.Promote.IsPromoteCandidate() {
		return &MoveError{Kind: ErrInvalidMove, From: mv.From, To: mv.To, Piece: mv.Piece, Side: mv.Side}
	}

	b.set(mv.From, CellEmpty)
	switch mv.Kind {
	case MoveEnPassant:
		b.set(mv.EnPassantCapture, CellEmpty)
		b.set(mv.To, Pack(mv.Piece, mv.Side))
	case MoveCastle:
		b.set(mv.RookFrom, CellEmpty)
		b.set(mv.RookTo, Pack(PieceRook, mv.Side))
		b.set(mv.To, Pack(mv.Piece, mv.Side))
	case MovePromote:
		b.set(mv.To, Pack(mv.Promote, mv.Side))
	default:
		b.set(mv.To, Pack(mv.Piece, mv.Side))
	}
	b.log.Append(mv)
	return nil
}

// TryMove plays the first legal move of the piece on from that lands on to, then hands
// the turn over. The board is left unchanged when an error is returned.
func (b *Board) TryMove(from, to position.Pos) error {
	p, s, ok := b.PieceAt(from)
	if !ok {
		return &MoveError{Kind: ErrPieceNotFound, From: from, To: to}
	}

	var candidate *Move
	for _, mv := range b.AvailableMoves(from) {
		if mv.To == to {
			mv := mv
			candidate = &mv
			break
		}
	}
	if candidate == nil {
		return &MoveError{Kind: ErrPieceNotFound, From: from, To: to, Piece: p, Side: s}
	}
	if s != b.Turn() {
		return &MoveError{Kind: ErrMovePiece, From: from, To: to, Piece: p, Side: s}
	}
	if !b.IsValidMove(*candidate) {
		return &MoveError{Kind: ErrInvalidMove, From: from, To: to, Piece: p, Side: s}
	}

	if err := b.ApplyMove(b.Turn(), *candidate); err != nil {
		return err
	}
	b.AdvanceTurn()
	return nil
}

func (b *Board) Clone() *Board {
	return &Board{
		cells:  b.cells,
		turn:   b.turn,
		log:    b.log.clone(),
		logger: b.logger,
	}
}
