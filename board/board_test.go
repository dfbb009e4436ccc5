package board

import (
	"errors"
	"fmt"
	"testing"

	"github.com/daystram/chesstree/position"
)

func TestCellPack(t *testing.T) {
	t.Parallel()
	for _, s := range []Side{SideWhite, SideBlack} {
		for p := PiecePawn; p <= PieceKing; p++ {
			gotP, gotS, ok := Pack(p, s).Unpack()
			if !ok || gotP != p || gotS != s {
				t.Errorf("unexpected unpack: got=(%s, %s, %t) want=(%s, %s, true)", gotP, gotS, ok, p, s)
			}
		}
	}
	if _, _, ok := CellEmpty.Unpack(); ok {
		t.Errorf("unexpected empty cell unpack: got=%t want=%t", ok, false)
	}
}

func TestSetup(t *testing.T) {
	t.Parallel()
	tests := []struct {
		setup string
	}{
		{setup: DefaultSetup},
		{setup: "r3k2r/8/8/3pP3/8/8/8/R3K2R"},
		{setup: "4k3/8/8/8/8/8/8/4K2R"},
		{setup: "8/8/8/8/8/8/8/8"},
		{setup: "R5k1/5ppp/8/8/8/8/8/6K1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.setup, func(t *testing.T) {
			t.Parallel()
			b := NewBoard(WithSetup(tt.setup))
			if got := b.Setup(); got != tt.setup {
				t.Errorf("unexpected setup: got=%s want=%s", got, tt.setup)
			}
		})
	}
}

func TestSetupLenient(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		setup     string
		wantSetup string
		wantLogs  int
	}{
		{
			name:      "unknown symbol",
			setup:     "rnbqkbnx/8/8/8/8/8/8/8",
			wantSetup: "rnbqkbn1/8/8/8/8/8/8/8",
			wantLogs:  1,
		},
		{
			name:      "too many columns",
			setup:     "rnbqkbnrr/8/8/8/8/8/8/8",
			wantSetup: "rnbqkbnr/8/8/8/8/8/8/8",
			wantLogs:  1,
		},
		{
			name:      "too many rows",
			setup:     "8/8/8/8/8/8/8/8/K",
			wantSetup: "8/8/8/8/8/8/8/8",
			wantLogs:  1,
		},
		{
			name:      "short",
			setup:     "4k3",
			wantSetup: "4k3/8/8/8/8/8/8/8",
			wantLogs:  0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var logs int
			b := NewBoard(WithSetup(tt.setup), WithLogger(func(a ...any) { logs++ }))
			if got := b.Setup(); got != tt.wantSetup {
				t.Errorf("unexpected setup: got=%s want=%s", got, tt.wantSetup)
			}
			if logs != tt.wantLogs {
				t.Errorf("unexpected log count: got=%d want=%d", logs, tt.wantLogs)
			}
		})
	}
}

func TestTurn(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	if got := b.Turn(); got != SideWhite {
		t.Fatalf("unexpected turn: got=%s want=%s", got, SideWhite)
	}
	if err := b.TryMove(position.NewPos(4, 6), position.NewPos(4, 4)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Turn(); got != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideBlack)
	}
	if got := b.TurnCounter(); got != 1 {
		t.Errorf("unexpected turn counter: got=%d want=%d", got, 1)
	}
	if got := NewBoard(WithTurn(3)).Turn(); got != SideBlack {
		t.Errorf("unexpected turn: got=%s want=%s", got, SideBlack)
	}
}

func TestApplyMove(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	mv := Move{From: position.NewPos(6, 7), To: position.NewPos(5, 5), Piece: PieceKnight, Side: SideWhite}

	err := b.ApplyMove(SideBlack, mv)
	if !errors.Is(err, ErrMovePiece) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrMovePiece)
	}

	empty := Move{From: position.NewPos(4, 4), To: position.NewPos(4, 3), Piece: PieceRook, Side: SideWhite}
	err = b.ApplyMove(SideWhite, empty)
	if !errors.Is(err, ErrPieceNotFound) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrPieceNotFound)
	}

	if err := b.ApplyMove(SideWhite, mv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Cell(mv.To); got != Pack(PieceKnight, SideWhite) {
		t.Errorf("unexpected cell: got=%s want=%s", got, Pack(PieceKnight, SideWhite))
	}
	if got := b.Cell(mv.From); !got.IsEmpty() {
		t.Errorf("unexpected cell: got=%s want=%s", got, CellEmpty)
	}
	if got := b.Log().Len(); got != 1 {
		t.Errorf("unexpected log length: got=%d want=%d", got, 1)
	}
	if got := b.TurnCounter(); got != 0 {
		t.Errorf("unexpected turn counter: got=%d want=%d", got, 0)
	}
}

func TestApplyPromotion(t *testing.T) {
	t.Parallel()
	b := NewBoard(WithSetup("8/P7/8/8/8/8/8/8"))
	mv := Move{From: position.NewPos(0, 1), To: position.NewPos(0, 0), Piece: PiecePawn, Side: SideWhite, Kind: MovePromote, Promote: PieceKing}
	if err := b.ApplyMove(SideWhite, mv); !errors.Is(err, ErrInvalidMove) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidMove)
	}
	mv.Promote = PieceQueen
	if err := b.ApplyMove(SideWhite, mv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Setup(); got != "Q7/8/8/8/8/8/8/8" {
		t.Errorf("unexpected setup: got=%s want=%s", got, "Q7/8/8/8/8/8/8/8")
	}
	if got, want := mv.UCI(), "a7a8q"; got != want {
		t.Errorf("unexpected uci: got=%s want=%s", got, want)
	}
	// promotion is never generated
	if got := len(NewBoard(WithSetup("8/P7/8/8/8/8/8/8")).AvailableMoves(position.NewPos(0, 1))); got != 1 {
		t.Errorf("unexpected move count: got=%d want=%d", got, 1)
	}
}

func TestTryMoveErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		setup   string
		from    position.Pos
		to      position.Pos
		wantErr error
	}{
		{
			name:    "empty square",
			setup:   DefaultSetup,
			from:    position.NewPos(4, 4),
			to:      position.NewPos(4, 3),
			wantErr: ErrPieceNotFound,
		},
		{
			name:    "unreachable destination",
			setup:   DefaultSetup,
			from:    position.NewPos(4, 6),
			to:      position.NewPos(4, 3),
			wantErr: ErrPieceNotFound,
		},
		{
			name:    "wrong side",
			setup:   DefaultSetup,
			from:    position.NewPos(4, 1),
			to:      position.NewPos(4, 2),
			wantErr: ErrMovePiece,
		},
		{
			name:    "pinned piece",
			setup:   "4r3/8/8/8/8/8/4B3/4K3",
			from:    position.NewPos(4, 6),
			to:      position.NewPos(3, 5),
			wantErr: ErrInvalidMove,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBoard(WithSetup(tt.setup))
			err := b.TryMove(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			var moveErr *MoveError
			if !errors.As(err, &moveErr) {
				t.Errorf("unexpected error type: got=%T want=%T", err, moveErr)
			}
			if got := b.Setup(); got != tt.setup {
				t.Errorf("unexpected setup: got=%s want=%s", got, tt.setup)
			}
			if got := b.TurnCounter(); got != 0 {
				t.Errorf("unexpected turn counter: got=%d want=%d", got, 0)
			}
		})
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	bb := b.Clone()
	if err := bb.TryMove(position.NewPos(1, 7), position.NewPos(2, 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.Setup(); got != DefaultSetup {
		t.Errorf("unexpected setup: got=%s want=%s", got, DefaultSetup)
	}
	if got := b.Log().Len(); got != 0 {
		t.Errorf("unexpected log length: got=%d want=%d", got, 0)
	}
	if got := b.TurnCounter(); got != 0 {
		t.Errorf("unexpected turn counter: got=%d want=%d", got, 0)
	}
}

func TestMoveError(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("play: %w", &MoveError{Kind: ErrInvalidMove, From: position.NewPos(4, 6), To: position.NewPos(3, 5), Piece: PieceBishop, Side: SideWhite})
	want := "play: invalid move: (4, 6) => (3, 5) for Bishop of White color"
	if got := err.Error(); got != want {
		t.Errorf("unexpected message: got=%s want=%s", got, want)
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	got := NewBoard(WithSetup("4k3/8/8/8/8/8/8/4K3")).Dump()
	want := "" +
		"   +---+---+---+---+---+---+---+---+\n" +
		" 8 |   |   |   |   | k |   |   |   |\n" +
		"   +---+---+---+---+---+---+---+---+\n" +
		" 7 |   |   |   |   |   |   |   |   |\n" +
		"   +---+---+---+---+---+---+---+---+\n" +
		" 6 |   |   |   |   |   |   |   |   |\n" +
		"   +---+---+---+---+---+---+---+---+\n" +
		" 5 |   |   |   |   |   |   |   |   |\n" +
		"   +---+---+---+---+---+---+---+---+\n" +
		" 4 |   |   |   |   |   |   |   |   |\n" +
		"   +---+---+---+---+---+---+---+---+\n" +
		" 3 |   |   |   |   |   |   |   |   |\n" +
		"   +---+---+---+---+---+---+---+---+\n" +
		" 2 |   |   |   |   |   |   |   |   |\n" +
		"   +---+---+---+---+---+---+---+---+\n" +
		" 1 |   |   |   |   | K |   |   |   |\n" +
		"   +---+---+---+---+---+---+---+---+\n" +
		"     a   b   c   d   e   f   g   h "
	if got != want {
		t.Errorf("unexpected dump:\ngot=\n%s\nwant=\n%s", got, want)
	}
}

func TestPseudoRand(t *testing.T) {
	t.Parallel()
	r1, r2 := NewPseudoRand(42), NewPseudoRand(42)
	for i := 0; i < 16; i++ {
		a, b := r1.Intn(20), r2.Intn(20)
		if a != b {
			t.Fatalf("unexpected divergence at %d: got=%d want=%d", i, a, b)
		}
		if a < 0 || a >= 20 {
			t.Fatalf("unexpected value: got=%d", a)
		}
	}
	if _, ok := r1.PickMove(nil); ok {
		t.Errorf("unexpected pick from empty list: got=%t want=%t", ok, false)
	}
}
