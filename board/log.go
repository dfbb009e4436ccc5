package board

import "github.com/daystram/chesstree/position"

// Log is the append-only history of executed moves.
type Log struct {
	mvs []Move
}

func (l *Log) Append(mv Move) {
	l.mvs = append(l.mvs, mv)
}

func (l *Log) Len() int {
	return len(l.mvs)
}

// Last returns the most recently executed move.
func (l *Log) Last() (Move, bool) {
	if len(l.mvs) == 0 {
		return Move{}, false
	}
	return l.mvs[len(l.mvs)-1], true
}

// HasMovedFrom reports whether any logged move departed from pos.
func (l *Log) HasMovedFrom(pos position.Pos) bool {
	for _, mv := range l.mvs {
		if mv.From == pos {
			return true
		}
		if mv.Kind == MoveCastle && mv.RookFrom == pos {
			return true
		}
	}
	return false
}

// Moves returns a copy of the logged moves, oldest first.
func (l *Log) Moves() []Move {
	mvs := make([]Move, len(l.mvs))
	copy(mvs, l.mvs)
	return mvs
}

func (l *Log) clone() Log {
	return Log{mvs: l.Moves()}
}
