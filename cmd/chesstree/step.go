package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/daystram/chesstree/board"
	"github.com/daystram/chesstree/config"
)

func newStepCmd(root *rootOptions) *cobra.Command {
	var (
		steps int
		seed  uint64
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Play random legal moves until the game ends",
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
			return step(cmd.OutOrStdout(), b, board.NewPseudoRand(seed), steps, delay)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 500, "maximum number of plies")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "move picker seed")
	cmd.Flags().DurationVar(&delay, "delay", 0, "pause between plies")
	return cmd
}

func step(w io.Writer, b *board.Board, r *board.PseudoRand, steps int, delay time.Duration) error {
	for i := 0; i < steps; i++ {
		if !b.Status().IsRunning() {
			break
		}
		mv, ok := r.PickMove(b.AllTurnAvailableMoves())
		if !ok {
			break
		}
		if err := b.TryMove(mv.From, mv.To); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}

		fmt.Fprintf(w, "\n===== [#%d] %s: %s\n", i/2+1, mv.Side, mv)
		fmt.Fprintln(w, b.Draw())
		fmt.Fprintln(w, b.Setup())
		fmt.Fprintln(w, b.DebugString())
		st := b.Status()
		if st.IsCheck() {
			side, _ := st.Checked()
			fmt.Fprintln(w, "check:", side)
		}
		if delay > 0 {
			<-time.After(delay)
		}
	}

	st := b.Status()
	fmt.Fprintln(w)
	fmt.Fprintln(w, st)
	if st.IsCheckmate() {
		side, _ := st.Checked()
		fmt.Fprintln(w, "checkmate:", side.Opposite(), "wins")
	}
	return nil
}
