package board

import "golang.org/x/exp/slices"

// Checks returns the sides whose King could be captured by some pseudo-legal move of the
// opponent. Moves of both sides are scanned, so either or both sides may be marked.
func (b *Board) Checks() map[Side]bool {
	checks := make(map[Side]bool, 2)
	for _, mv := range b.AllAvailableMoves() {
		if mv.Captured == PieceKing {
			checks[mv.Side.Opposite()] = true
		}
	}
	return checks
}

// CheckedSides returns the marked sides of Checks in ascending order, White first.
func (b *Board) CheckedSides() []Side {
	var sides []Side
	for s, checked := range b.Checks() {
		if checked {
			sides = append(sides, s)
		}
	}
	slices.Sort(sides)
	return sides
}

func (b *Board) IsKingChecked(s Side) bool {
	return b.Checks()[s]
}

// IsValidMove plays mv on a clone and reports whether the mover's King is left safe.
func (b *Board) IsValidMove(mv Move) bool {
	bb := b.Clone()
	if err := bb.ApplyMove(mv.Side, mv); err != nil {
		return false
	}
	return !bb.IsKingChecked(mv.Side)
}
