package engine

import (
	"fmt"
	"sync"

	"github.com/daystram/chesstree/board"
)

type buildConfig struct {
	parallel bool
}

type BuildOption func(*buildConfig)

// WithParallel expands every root child in its own goroutine. Children keep the order of
// the root's legal moves.
func WithParallel() BuildOption {
	return func(cfg *buildConfig) {
		cfg.parallel = true
	}
}

// Build expands the legal moves of b's side to move into a tree of the given depth. The root
// carries no move. b is only read. Build panics when depth < 1.
func Build(b *board.Board, depth int, opts ...BuildOption) *Tree {
	if depth < 1 {
		panic(fmt.Sprintf("engine: invalid tree depth: %d", depth))
	}
	cfg := &buildConfig{}
	for _, f := range opts {
		f(cfg)
	}

	root := newTree(b, nil)
	mvs := b.AllTurnAvailableMoves()
	root.Children = make([]GameTree, len(mvs))
	if !cfg.parallel {
		for i, mv := range mvs {
			root.Children[i] = expandChild(b, mv, depth-1)
		}
		return root
	}

	var wg sync.WaitGroup
	for i, mv := range mvs {
		i, mv := i, mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			root.Children[i] = expandChild(b, mv, depth-1)
		}()
	}
	wg.Wait()
	return root
}

// Expand returns a Leaf when depth is 0 or b has no legal move, otherwise a Tree holding one
// subtree per legal move. mv is the move that produced b, nil for a root.
func Expand(b *board.Board, mv *board.Move, depth int) GameTree {
	if depth == 0 {
		return &Leaf{Board: b, Move: mv}
	}
	mvs := b.AllTurnAvailableMoves()
	if len(mvs) == 0 {
		return &Leaf{Board: b, Move: mv}
	}

	t := newTree(b, mv)
	for _, child := range mvs {
		if !b.IsValidMove(child) {
			continue
		}
		t.Children = append(t.Children, expandChild(b, child, depth-1))
	}
	return t
}

// expandChild plays mv on a clone of b and expands the result.
func expandChild(b *board.Board, mv board.Move, depth int) GameTree {
	bb := b.Clone()
	if err := bb.ApplyMove(mv.Side, mv); err != nil {
		panic(fmt.Sprintf("engine: generated move rejected: %s: %v", mv, err))
	}
	bb.AdvanceTurn()
	return Expand(bb, &mv, depth)
}
