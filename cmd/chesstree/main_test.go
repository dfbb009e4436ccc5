package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/daystram/chesstree/board"
	"github.com/daystram/chesstree/config"
)

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "tree",
			args: []string{"tree", "--depth", "2", "--verbose"},
			want: []string{"a2a3: 20", "d=2 nodes=421 leaves=400"},
		},
		{
			name: "tree lines",
			args: []string{"tree", "-d", "1", "--lines", "--parallel"},
			want: []string{"h2h4\n", "d=1 nodes=21 leaves=20 lines=20"},
		},
		{
			name: "default mode",
			args: []string{},
			want: []string{"d=1 nodes=21 leaves=20"},
		},
		{
			name: "moves",
			args: []string{"moves"},
			want: []string{"to move: White", "StatusRunning", "[g1f3] [Nf3]"},
		},
		{
			name: "step",
			args: []string{"step", "--steps", "4", "--seed", "7"},
			want: []string{"===== [#1] White", "===== [#2] Black", "turn:    4 (White)"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvDepth, "1")
			t.Setenv(config.EnvSetup, "")
			t.Setenv(config.EnvGraphics, "")

			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)
			if err := cmd.Execute(); err != nil {
				t.Fatal("unexpected error:", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out.String(), want) {
					t.Errorf("unexpected output: missing %q in\n%s", want, out.String())
				}
			}
		})
	}
}

func TestTreeInvalidDepth(t *testing.T) {
	t.Setenv(config.EnvDepth, "")
	t.Setenv(config.EnvSetup, "")
	t.Setenv(config.EnvGraphics, "")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"tree", "--depth", "0"})
	if err := cmd.Execute(); err == nil {
		t.Error("unexpected missing error")
	}
}

func TestStepStopsOnMate(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	b := board.NewBoard(board.WithSetup("R5k1/5ppp/8/8/8/8/8/6K1"), board.WithTurn(1))
	if err := step(&out, b, board.NewPseudoRand(1), 10, 0); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := b.TurnCounter(); got != 1 {
		t.Errorf("unexpected turn counter: got=%d want=%d", got, 1)
	}
	if !strings.Contains(out.String(), board.StatusCheckmateBlack.String()) || !strings.Contains(out.String(), "checkmate: White wins") {
		t.Errorf("unexpected output: %s", out.String())
	}
}
