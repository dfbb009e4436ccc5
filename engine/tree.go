package engine

import (
	"math"

	"github.com/daystram/chesstree/board"
)

type Score int32

const (
	ScoreInfinite Score = math.MaxInt32
)

// GameTree is either a *Leaf or a *Tree. The set is closed; traversals panic on anything else.
type GameTree interface {
	gameTree()
}

// Leaf is a position that is not expanded further, either because the depth bound was
// reached or because the side to move has no legal move.
type Leaf struct {
	Board *board.Board
	Move  *board.Move
	Value Score
}

// Tree is an expanded position. Move is nil for the root. Alpha and Beta start at the widest
// window and are never tightened.
type Tree struct {
	Board    *board.Board
	Move     *board.Move
	Alpha    Score
	Beta     Score
	Children []GameTree
}

func (*Leaf) gameTree() {}

func (*Tree) gameTree() {}

func newTree(b *board.Board, mv *board.Move) *Tree {
	return &Tree{
		Board: b,
		Move:  mv,
		Alpha: -ScoreInfinite,
		Beta:  ScoreInfinite,
	}
}
