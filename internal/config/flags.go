package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagOut         = flag.String("out", "", "Output directory for the maze")
	flagWidth       = flag.Int("width", 0, "Maze width in pixels (multiple of 32)")
	flagHeight      = flag.Int("height", 0, "Maze height in pixels (multiple of 32)")
	flagTile        = flag.Int("tile", 0, "Maximum tile side length (multiple of 32)")
	flagWorkers     = flag.Int("workers", 0, "Number of parallel workers")
	flagSeed        = flag.Int64("seed", 0, "Random seed (0 = time-based)")
	flagFormat      = flag.String("format", "", "Tile output format: bmp or raw")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWriteConfig = flag.Bool("write-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigRequested reports whether --write-config was given.
func WriteConfigRequested() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagWidth > 0 {
		cfg.Maze.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Maze.Height = *flagHeight
	}
	if *flagTile > 0 {
		cfg.Maze.TileDim = *flagTile
	}
	if *flagWorkers > 0 {
		cfg.Maze.Workers = *flagWorkers
	}
	if *flagSeed != 0 {
		cfg.Maze.Seed = *flagSeed
	}
}
