package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a (column, row) pair. Row 0 is the top rank of a setup string, which is Black's
// home rank in the default position.
type Pos struct {
	Col, Row int8
}

func NewPos(col, row int) Pos {
	return Pos{Col: int8(col), Row: int8(row)}
}

func NewPosFromNotation(n string) (Pos, error) {
	col, row, err := notationToXY(n)
	if err != nil {
		return Pos{}, err
	}
	return Pos{Col: col, Row: row}, nil
}

func (p Pos) Valid() bool {
	return 0 <= p.Col && p.Col < MaxComponentScalar && 0 <= p.Row && p.Row < MaxComponentScalar
}

// Offset returns the position shifted by (dc, dr), or false if it would leave the board.
func (p Pos) Offset(dc, dr int) (Pos, bool) {
	col, row := int(p.Col)+dc, int(p.Row)+dr
	if col < 0 || col >= MaxComponentScalar || row < 0 || row >= MaxComponentScalar {
		return Pos{}, false
	}
	return Pos{Col: int8(col), Row: int8(row)}, true
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

func (p Pos) Notation() string {
	if !p.Valid() {
		return ""
	}
	return p.NotationComponentX() + p.NotationComponentY()
}

func (p Pos) NotationComponentX() string {
	if p.Col < 0 || MaxComponentScalar <= p.Col {
		return ""
	}
	return string(rune('a' + p.Col))
}

func (p Pos) NotationComponentY() string {
	if p.Row < 0 || MaxComponentScalar <= p.Row {
		return ""
	}
	return string(rune('8' - p.Row))
}

func notationToXY(n string) (int8, int8, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	col, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	row, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return col, row, nil
}

func notationToX(x byte) (int8, error) {
	if x < 'a' || x >= 'a'+MaxComponentScalar {
		return 0, ErrInvalidNotation
	}
	return int8(x - 'a'), nil
}

func notationToY(y byte) (int8, error) {
	if y < '1' || y >= '1'+MaxComponentScalar {
		return 0, ErrInvalidNotation
	}
	return int8('8' - y), nil
}
