package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/daystram/chesstree/board"
	"github.com/daystram/chesstree/config"
)

func newMovesCmd(root *rootOptions) *cobra.Command {
	var draw bool
	cmd := &cobra.Command{
		Use:   "moves",
		Short: "Dump the board and every legal move of the side to move",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			b := board.NewBoard(
				board.WithSetup(cfg.Setup),
				board.WithTurn(cfg.Turn),
			)
			movegen(cmd.OutOrStdout(), b, draw)
			return nil
		},
	}
	cmd.Flags().BoolVar(&draw, "draw", false, "draw the board after each legal move")
	return cmd
}

func movegen(w io.Writer, b *board.Board, draw bool) {
	fmt.Fprintln(w, "to move:", b.Turn())
	fmt.Fprintln(w, b.Dump())
	fmt.Fprintln(w, b.Draw())
	fmt.Fprintln(w, b.Status())
	dumpMoves(w, b)

	if draw {
		for _, mv := range b.AllTurnAvailableMoves() {
			bb := b.Clone()
			if err := bb.ApplyMove(mv.Side, mv); err != nil {
				continue
			}
			fmt.Fprintln(w, mv)
			fmt.Fprintln(w, bb.Draw())
			fmt.Fprintln(w, bb.Setup())
		}
	}
}

func dumpMoves(w io.Writer, b *board.Board) {
	mvs := b.AllTurnAvailableMoves()
	for i, mv := range mvs {
		fmt.Fprintf(w, "option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (kind=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(), mv.Side, mv.Piece, mv.From, mv.To, mv.IsCapture(), mv.Kind)
	}
}
