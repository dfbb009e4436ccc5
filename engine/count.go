package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/daystram/chesstree/board"
)

func malformed(t GameTree) string {
	return fmt.Sprintf("engine: malformed game tree node: %T", t)
}

// CountNodes returns the number of nodes in t, t included.
func CountNodes(t GameTree) uint64 {
	switch n := t.(type) {
	case *Leaf:
		return 1
	case *Tree:
		sum := uint64(1)
		for _, child := range n.Children {
			sum += CountNodes(child)
		}
		return sum
	default:
		panic(malformed(t))
	}
}

// CountLeaves returns the number of Leaf nodes under t.
func CountLeaves(t GameTree) uint64 {
	switch n := t.(type) {
	case *Leaf:
		return 1
	case *Tree:
		var sum uint64
		for _, child := range n.Children {
			sum += CountLeaves(child)
		}
		return sum
	default:
		panic(malformed(t))
	}
}

// Line is a sequence of moves ending in a leaf, stored youngest move first.
type Line []board.Move

// Chronological returns a copy of l ordered from the root's move to the leaf's move.
func (l Line) Chronological() Line {
	c := slices.Clone(l)
	slices.Reverse(c)
	return c
}

// Lines enumerates one Line per leaf of t in child order. A node's move is appended after the
// moves of its descendants, the root contributes none.
func Lines(t GameTree) []Line {
	switch n := t.(type) {
	case *Leaf:
		if n.Move == nil {
			return []Line{{}}
		}
		return []Line{{*n.Move}}
	case *Tree:
		var lines []Line
		for _, child := range n.Children {
			for _, l := range Lines(child) {
				if n.Move != nil {
					l = append(l, *n.Move)
				}
				lines = append(lines, l)
			}
		}
		return lines
	default:
		panic(malformed(t))
	}
}

// Stats summarises a tree the way perft reports its counters. Move counters only look at
// the moves that produced a leaf.
type Stats struct {
	Nodes      uint64
	Leaves     uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Mates      uint64
}

func CollectStats(t GameTree) Stats {
	var st Stats
	st.collect(t)
	return st
}

func (st *Stats) collect(t GameTree) {
	st.Nodes++
	switch n := t.(type) {
	case *Leaf:
		st.Leaves++
		if n.Move == nil {
			return
		}
		switch n.Move.Kind {
		case board.MoveEnPassant:
			st.EnPassants++
		case board.MoveCastle:
			st.Castles++
		case board.MovePromote:
			st.Promotions++
		}
		if n.Move.IsCapture() {
			st.Captures++
		}
		if n.Board.IsKingChecked(n.Board.Turn()) {
			st.Checks++
			if len(n.Board.AllTurnAvailableMoves()) == 0 {
				st.Mates++
			}
		}
	case *Tree:
		for _, child := range n.Children {
			st.collect(child)
		}
	default:
		panic(malformed(t))
	}
}

// Add accumulates o into st.
func (st *Stats) Add(o Stats) {
	st.Nodes += o.Nodes
	st.Leaves += o.Leaves
	st.Captures += o.Captures
	st.EnPassants += o.EnPassants
	st.Castles += o.Castles
	st.Promotions += o.Promotions
	st.Checks += o.Checks
	st.Mates += o.Mates
}
