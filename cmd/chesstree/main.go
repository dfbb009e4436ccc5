package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/spf13/cobra"

	"github.com/daystram/chesstree/config"
)

const (
	exitOK = iota
	exitErr
)

type rootOptions struct {
	configPath string
	profile    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "chesstree",
		Short:        "Chess move generator and game tree explorer",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.profile {
				runProfiler()
			}
		},
		// without a subcommand, GRAPHICS=1 serves the play surface and anything else builds a tree
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cfg.Mode == config.ModeServe {
				return serve(cmd.Context(), cfg)
			}
			return tree(cfg, cmd.OutOrStdout())
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.profile, "profile", false, "serve pprof endpoint")

	cmd.AddCommand(
		newTreeCmd(opts),
		newMovesCmd(opts),
		newStepCmd(opts),
		newServeCmd(opts),
	)
	return cmd
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}
