package bench

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesstree/board"
	"github.com/daystram/chesstree/engine"
)

var ErrInvalidDepth = errors.New("invalid depth")

type Options struct {
	Depth    int
	Setup    string
	Turn     uint32
	Parallel bool
	Lines    bool
	Verbose  bool
}

// Tree builds the game tree described by opts and reports it line by line on out: every
// enumerated line when opts.Lines is set, the leaf count under each root move when
// opts.Verbose is set, then a summary.
func Tree(opts Options, out chan string) (engine.Stats, error) {
	if opts.Depth < 1 {
		return engine.Stats{}, fmt.Errorf("%w: %d", ErrInvalidDepth, opts.Depth)
	}
	b := board.NewBoard(
		board.WithSetup(opts.Setup),
		board.WithTurn(opts.Turn),
	)

	var buildOpts []engine.BuildOption
	if opts.Parallel {
		buildOpts = append(buildOpts, engine.WithParallel())
	}

	start := time.Now()
	root := engine.Build(b, opts.Depth, buildOpts...)
	end := time.Now()
	st := engine.CollectStats(root)

	var lines int
	if opts.Lines {
		ls := engine.Lines(root)
		lines = len(ls)
		for _, l := range ls {
			out <- formatLine(l)
		}
	}
	if opts.Verbose {
		for _, child := range root.Children {
			out <- fmt.Sprintf("%s: %d", rootMove(child).UCI(), engine.CountLeaves(child))
		}
	}

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d leaves=%d lines=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d mate=%d (%.3fs elapsed)",
			opts.Depth, st.Nodes, st.Leaves, lines, int(float64(st.Nodes)/end.Sub(start).Seconds()),
			st.Captures, st.EnPassants, st.Castles, st.Promotions, st.Checks, st.Mates, end.Sub(start).Seconds())

	return st, nil
}

func formatLine(l engine.Line) string {
	mvs := l.Chronological()
	parts := make([]string, len(mvs))
	for i, mv := range mvs {
		parts[i] = mv.UCI()
	}
	return strings.Join(parts, " ")
}

func rootMove(t engine.GameTree) board.Move {
	switch n := t.(type) {
	case *engine.Leaf:
		return *n.Move
	case *engine.Tree:
		return *n.Move
	default:
		panic(fmt.Sprintf("bench: malformed game tree node: %T", t))
	}
}
