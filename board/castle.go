package board

import "github.com/daystram/chesstree/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionRight
	CastleDirectionLeft
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionRight:
		return "0-0"
	case CastleDirectionLeft:
		return "0-0-0"
	default:
		return ""
	}
}

// castleHops holds the start and destination columns of the King and Rook for a direction.
type castleHops struct {
	king, rook [2]int8
}

var castleColumns = [3]castleHops{
	CastleDirectionRight: {
		king: [2]int8{4, 6},
		rook: [2]int8{7, 5},
	},
	CastleDirectionLeft: {
		king: [2]int8{4, 2},
		rook: [2]int8{0, 3},
	},
}

func (d CastleDirection) kingHops(s Side) (position.Pos, position.Pos) {
	h := castleColumns[d].king
	return position.Pos{Col: h[0], Row: s.homeRow()}, position.Pos{Col: h[1], Row: s.homeRow()}
}

func (d CastleDirection) rookHops(s Side) (position.Pos, position.Pos) {
	h := castleColumns[d].rook
	return position.Pos{Col: h[0], Row: s.homeRow()}, position.Pos{Col: h[1], Row: s.homeRow()}
}

// between returns the squares strictly between the King and the Rook.
func (d CastleDirection) between(s Side) []position.Pos {
	lo, hi := castleColumns[d].king[0], castleColumns[d].rook[0]
	if lo > hi {
		lo, hi = hi, lo
	}
	var ps []position.Pos
	for col := lo + 1; col < hi; col++ {
		ps = append(ps, position.Pos{Col: col, Row: s.homeRow()})
	}
	return ps
}
