package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/daystram/chesstree/board"
)

var ErrInvalidConfig = errors.New("invalid config")

type Mode string

const (
	ModeTree  Mode = "tree"
	ModeServe Mode = "serve"
)

const (
	EnvDepth    = "CHESSTREE_DEPTH"
	EnvSetup    = "CHESSTREE_SETUP"
	EnvGraphics = "GRAPHICS"
)

type Config struct {
	Setup  string       `yaml:"setup"`
	Turn   uint32       `yaml:"turn"`
	Mode   Mode         `yaml:"mode"`
	Tree   TreeConfig   `yaml:"tree"`
	Server ServerConfig `yaml:"server"`
}

type TreeConfig struct {
	Depth    int  `yaml:"depth"`
	Parallel bool `yaml:"parallel"`
	Lines    bool `yaml:"lines"`
	Verbose  bool `yaml:"verbose"`
}

type ServerConfig struct {
	Addr         string `yaml:"addr"`
	AllowOrigins string `yaml:"allow_origins"`
}

func Default() Config {
	return Config{
		Setup: board.DefaultSetup,
		Mode:  ModeTree,
		Tree: TreeConfig{
			Depth: 3,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			AllowOrigins: "*",
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDepth); ok && v != "" {
		depth, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvDepth, v)
		}
		c.Tree.Depth = depth
	}
	if v, ok := lookup(EnvSetup); ok && v != "" {
		c.Setup = v
	}
	if v, ok := lookup(EnvGraphics); ok && v != "" {
		if v == "1" {
			c.Mode = ModeServe
		} else {
			c.Mode = ModeTree
		}
	}
	return nil
}

func (c Config) Validate() error {
	if c.Tree.Depth < 1 {
		return fmt.Errorf("%w: tree depth must be at least 1, got %d", ErrInvalidConfig, c.Tree.Depth)
	}
	switch c.Mode {
	case ModeTree, ModeServe:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: empty server address", ErrInvalidConfig)
	}
	return nil
}
