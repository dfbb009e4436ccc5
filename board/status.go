package board

// Status is the outcome of the position for the side to move.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusRunning
	StatusCheckWhite
	StatusCheckBlack
	StatusCheckmateWhite
	StatusCheckmateBlack
	StatusStalemate
)

var statusNames = [...]string{
	StatusUnknown:        "StatusUnknown",
	StatusRunning:        "StatusRunning",
	StatusCheckWhite:     "StatusCheckWhite",
	StatusCheckBlack:     "StatusCheckBlack",
	StatusCheckmateWhite: "StatusCheckmateWhite",
	StatusCheckmateBlack: "StatusCheckmateBlack",
	StatusStalemate:      "StatusStalemate",
}

func (s Status) String() string {
	if int(s) >= len(statusNames) {
		return ""
	}
	return statusNames[s]
}

// IsRunning reports whether the side to move still has a legal move.
func (s Status) IsRunning() bool {
	return s == StatusRunning || s.IsCheck()
}

func (s Status) IsCheck() bool {
	return s == StatusCheckWhite || s == StatusCheckBlack
}

func (s Status) IsCheckmate() bool {
	return s == StatusCheckmateWhite || s == StatusCheckmateBlack
}

// Checked returns the side whose King is attacked, for check and checkmate.
func (s Status) Checked() (Side, bool) {
	switch s {
	case StatusCheckWhite, StatusCheckmateWhite:
		return SideWhite, true
	case StatusCheckBlack, StatusCheckmateBlack:
		return SideBlack, true
	default:
		return SideWhite, false
	}
}

// Status derives the game status for the side to move from the check filter and the number
// of legal moves left.
func (b *Board) Status() Status {
	turn := b.Turn()
	checks := b.Checks()
	noMoves := len(b.AllTurnAvailableMoves()) == 0

	switch {
	case checks[turn] && noMoves:
		if turn == SideWhite {
			return StatusCheckmateWhite
		}
		return StatusCheckmateBlack
	case checks[SideWhite]:
		return StatusCheckWhite
	case checks[SideBlack]:
		return StatusCheckBlack
	case noMoves:
		return StatusStalemate
	default:
		return StatusRunning
	}
}
