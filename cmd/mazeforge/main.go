// mazeforge generates arbitrarily large mazes as a grid of independently
// carved monochrome bitmap tiles, with an HTML page stitching them back
// together. Interrupted runs resume from per-tile completion markers.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mazeforge/mazeforge/internal/config"
	"github.com/mazeforge/mazeforge/internal/logger"
	"github.com/mazeforge/mazeforge/internal/page"
	"github.com/mazeforge/mazeforge/internal/schedule"
	"github.com/mazeforge/mazeforge/pkg/plan"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
		return
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== mazeforge ===",
		zap.Int("width", cfg.Maze.Width),
		zap.Int("height", cfg.Maze.Height),
		zap.Int("tile_dim", cfg.Maze.TileDim),
		zap.Int("workers", cfg.Maze.Workers),
		zap.String("out", cfg.Output.Dir))

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("maze complete")
}

func run(cfg *config.Config) error {
	dir := cfg.Output.Dir
	tileDir := filepath.Join(dir, "tiles")
	if err := os.MkdirAll(tileDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	p, err := loadOrBuildPlan(cfg, dir)
	if err != nil {
		return err
	}

	sched := schedule.New(cfg.Maze.Workers, tileDir, schedule.Format(cfg.Output.Format), cfg.Maze.Seed)
	return sched.Run(p)
}

// loadOrBuildPlan reuses a previously persisted plan so a restarted run
// regenerates exactly the tiles the old plan describes. A fresh plan also
// gets the stitching page written next to it.
func loadOrBuildPlan(cfg *config.Config, dir string) (*plan.Plan, error) {
	planPath := filepath.Join(dir, "plan.json")
	if _, err := os.Stat(planPath); err == nil {
		logger.Info("reusing persisted plan", zap.String("path", planPath))
		return plan.Load(planPath)
	}

	builder, err := plan.NewBuilder(cfg.Maze.TileDim, cfg.Maze.Seed)
	if err != nil {
		return nil, err
	}
	root, err := builder.Build(plan.Rect{X1: 0, Y1: 0, X2: cfg.Maze.Width - 1, Y2: cfg.Maze.Height - 1})
	if err != nil {
		return nil, err
	}

	p := &plan.Plan{Width: cfg.Maze.Width, Height: cfg.Maze.Height, Root: root}
	if err := plan.Save(planPath, p); err != nil {
		return nil, err
	}
	logger.Info("plan created",
		zap.String("path", planPath),
		zap.Int("tiles", len(plan.Leaves(root))))

	if err := page.Write(dir, p); err != nil {
		return nil, err
	}
	return p, nil
}
