package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/daystram/chesstree/bench"
	"github.com/daystram/chesstree/config"
)

func newTreeCmd(root *rootOptions) *cobra.Command {
	var (
		depth                    int
		lines, parallel, verbose bool
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Build the game tree to a fixed depth and report its counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("depth") {
				cfg.Tree.Depth = depth
			}
			if flags.Changed("lines") {
				cfg.Tree.Lines = lines
			}
			if flags.Changed("parallel") {
				cfg.Tree.Parallel = parallel
			}
			if flags.Changed("verbose") {
				cfg.Tree.Verbose = verbose
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return tree(cfg, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 3, "tree depth in plies")
	cmd.Flags().BoolVar(&lines, "lines", false, "print every line from the root to a leaf")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "expand root moves concurrently")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print leaf counts per root move")
	return cmd
}

func tree(cfg config.Config, w io.Writer) error {
	out := make(chan string)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Fprintln(w, s)
		}
	}()

	_, err := bench.Tree(bench.Options{
		Depth:    cfg.Tree.Depth,
		Setup:    cfg.Setup,
		Turn:     cfg.Turn,
		Parallel: cfg.Tree.Parallel,
		Lines:    cfg.Tree.Lines,
		Verbose:  cfg.Tree.Verbose,
	}, out)
	close(out)
	<-done
	return err
}
