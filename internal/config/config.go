// Package config handles mazeforge configuration loading and validation.
package config

import (
	"fmt"

	"github.com/mazeforge/mazeforge/pkg/plan"
)

// Config holds all generator settings.
type Config struct {
	Maze    MazeConfig    `yaml:"maze"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// MazeConfig describes the maze to generate.
type MazeConfig struct {
	Width   int   `yaml:"width"`    // overall width in pixels, multiple of 32
	Height  int   `yaml:"height"`   // overall height in pixels, multiple of 32
	TileDim int   `yaml:"tile_dim"` // maximum side length of one tile
	Workers int   `yaml:"workers"`  // parallel tile workers
	Seed    int64 `yaml:"seed"`     // 0 = time-based
}

// OutputConfig describes where and how tiles are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // "bmp" or "raw"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Maze: MazeConfig{
			Width:   2048,
			Height:  2048,
			TileDim: 512,
			Workers: 4,
			Seed:    0,
		},
		Output: OutputConfig{
			Dir:    "./maze",
			Format: "bmp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate enforces the constraints the generator core assumes. It runs
// before any carving begins.
func (c *Config) Validate() error {
	m := c.Maze
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("maze dimensions must be positive, got %dx%d", m.Width, m.Height)
	}
	if m.Width%32 != 0 || m.Height%32 != 0 {
		return fmt.Errorf("maze dimensions must be multiples of 32, got %dx%d", m.Width, m.Height)
	}
	if m.TileDim%32 != 0 || m.TileDim <= plan.MinTileDim || m.TileDim >= plan.MaxTileDim {
		return fmt.Errorf("tile dimension must be a multiple of 32 in (%d, %d), got %d",
			plan.MinTileDim, plan.MaxTileDim, m.TileDim)
	}
	if m.Workers <= 0 {
		return fmt.Errorf("worker count must be positive, got %d", m.Workers)
	}

	switch c.Output.Format {
	case "bmp", "raw":
	default:
		return fmt.Errorf("unknown tile format %q (want bmp or raw)", c.Output.Format)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output directory must be set")
	}
	return nil
}
