package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/daystram/chesstree/board"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr error
	}{
		{
			name: "partial",
			yaml: "setup: 4k3/8/8/8/8/8/8/4K3\ntree:\n  depth: 2\n  lines: true\n",
			want: func() Config {
				cfg := Default()
				cfg.Setup = "4k3/8/8/8/8/8/8/4K3"
				cfg.Tree.Depth = 2
				cfg.Tree.Lines = true
				return cfg
			}(),
		},
		{
			name: "server",
			yaml: "mode: serve\nserver:\n  addr: 127.0.0.1:9000\n  allow_origins: http://localhost\n",
			want: func() Config {
				cfg := Default()
				cfg.Mode = ModeServe
				cfg.Server.Addr = "127.0.0.1:9000"
				cfg.Server.AllowOrigins = "http://localhost"
				return cfg
			}(),
		},
		{
			name:    "zero depth",
			yaml:    "tree:\n  depth: 0\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "unknown mode",
			yaml:    "mode: gui\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "malformed",
			yaml:    "tree: [",
			wantErr: ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "chesstree.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o600); err != nil {
				t.Fatal("unexpected error:", err)
			}
			t.Setenv(EnvDepth, "")
			t.Setenv(EnvSetup, "")
			t.Setenv(EnvGraphics, "")

			got, err := Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("unexpected config: got=%+v want=%+v", got, tt.want)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		env      map[string]string
		wantMode Mode
		wantSet  string
		wantD    int
		wantErr  error
	}{
		{
			name:     "none",
			env:      map[string]string{},
			wantMode: ModeTree,
			wantSet:  board.DefaultSetup,
			wantD:    3,
		},
		{
			name:     "graphics",
			env:      map[string]string{EnvGraphics: "1"},
			wantMode: ModeServe,
			wantSet:  board.DefaultSetup,
			wantD:    3,
		},
		{
			name:     "graphics off",
			env:      map[string]string{EnvGraphics: "0"},
			wantMode: ModeTree,
			wantSet:  board.DefaultSetup,
			wantD:    3,
		},
		{
			name:     "depth and setup",
			env:      map[string]string{EnvDepth: "4", EnvSetup: "8/8/8/8/8/8/8/8"},
			wantMode: ModeTree,
			wantSet:  "8/8/8/8/8/8/8/8",
			wantD:    4,
		},
		{
			name:    "bad depth",
			env:     map[string]string{EnvDepth: "four"},
			wantErr: ErrInvalidConfig,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			err := cfg.applyEnv(func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if cfg.Mode != tt.wantMode {
				t.Errorf("unexpected mode: got=%s want=%s", cfg.Mode, tt.wantMode)
			}
			if cfg.Setup != tt.wantSet {
				t.Errorf("unexpected setup: got=%s want=%s", cfg.Setup, tt.wantSet)
			}
			if cfg.Tree.Depth != tt.wantD {
				t.Errorf("unexpected depth: got=%d want=%d", cfg.Tree.Depth, tt.wantD)
			}
		})
	}
}
