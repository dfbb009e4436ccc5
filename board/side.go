package board

// Side is the colour of a piece. Its value is the colour bit of a packed Cell.
type Side uint8

const (
	SideWhite Side = 0
	SideBlack Side = 8
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	if s == SideWhite {
		return SideBlack
	}
	return SideWhite
}

// pawnDirection is the row delta of a forward pawn step.
func (s Side) pawnDirection() int {
	if s == SideWhite {
		return -1
	}
	return 1
}

// pawnStartRow is the row from which a double step is allowed.
func (s Side) pawnStartRow() int8 {
	if s == SideWhite {
		return 6
	}
	return 1
}

// homeRow is the row the King and Rooks start on.
func (s Side) homeRow() int8 {
	if s == SideWhite {
		return 7
	}
	return 0
}
