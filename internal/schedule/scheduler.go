// Package schedule drives resumable, load-balanced generation of maze
// tiles across parallel workers.
package schedule

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/mazeforge/mazeforge/internal/logger"
	"github.com/mazeforge/mazeforge/pkg/canvas"
	"github.com/mazeforge/mazeforge/pkg/maze"
	"github.com/mazeforge/mazeforge/pkg/plan"
)

// Format selects the tile serialization.
type Format string

// Tile output formats.
const (
	FormatBMP Format = "bmp" // self-contained monochrome bitmap
	FormatRaw Format = "raw" // packed bit buffer, no header
)

// markerSuffix names the per-tile completion marker. Its existence alone is
// the completion signal; the content is never interpreted.
const markerSuffix = ".done"

// Bucket is the ordered work list of one worker plus its total pixel area.
type Bucket struct {
	Jobs []*plan.Leaf
	Area int
}

// Balance spreads leaves across n buckets greedily: each leaf, in order,
// goes to the bucket with the smallest area so far (the first such bucket
// on ties).
func Balance(leaves []*plan.Leaf, n int) []*Bucket {
	buckets := make([]*Bucket, n)
	for i := range buckets {
		buckets[i] = &Bucket{}
	}
	for _, leaf := range leaves {
		smallest := 0
		for i, b := range buckets {
			if b.Area < buckets[smallest].Area {
				smallest = i
			}
		}
		buckets[smallest].Jobs = append(buckets[smallest].Jobs, leaf)
		buckets[smallest].Area += leaf.Rect.Area()
	}
	return buckets
}

// Scheduler generates every tile of a plan that does not yet have a
// completion marker. Running two schedulers against the same directory
// concurrently is unsupported: markers are checked once at startup.
type Scheduler struct {
	Workers int
	TileDir string
	Format  Format
	Seed    int64 // 0 = time-based; otherwise offset per worker

	// carve is swappable so tests can observe or suppress carving.
	carve func(c *maze.Carver, leaf *plan.Leaf) (*canvas.Canvas, error)
}

// New creates a Scheduler writing tiles into tileDir.
func New(workers int, tileDir string, format Format, seed int64) *Scheduler {
	return &Scheduler{
		Workers: workers,
		TileDir: tileDir,
		Format:  format,
		Seed:    seed,
		carve: func(c *maze.Carver, leaf *plan.Leaf) (*canvas.Canvas, error) {
			return c.Carve(leaf)
		},
	}
}

// Run generates all unmarked tiles of p and blocks until every worker has
// finished. Workers share nothing once buckets are assigned; each tile
// writes to its own paths. The first worker error is returned; tiles that
// never got their marker are regenerated by the next run.
func (s *Scheduler) Run(p *plan.Plan) error {
	leaves := plan.Leaves(p.Root)
	pending := make([]*plan.Leaf, 0, len(leaves))
	for _, leaf := range leaves {
		if s.completed(leaf) {
			continue
		}
		pending = append(pending, leaf)
	}

	logger.Info("scheduling tiles",
		zap.Int("total", len(leaves)),
		zap.Int("pending", len(pending)),
		zap.Int("workers", s.Workers))
	if len(pending) == 0 {
		return nil
	}

	buckets := Balance(pending, s.Workers)

	var wg sync.WaitGroup
	errs := make([]error, len(buckets))
	for i, b := range buckets {
		wg.Add(1)
		go func(n int, b *Bucket) {
			defer wg.Done()
			errs[n] = s.runBucket(n, b)
		}(i, b)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// runBucket processes one worker's jobs sequentially, reporting cumulative
// progress by carved area after each tile.
func (s *Scheduler) runBucket(n int, b *Bucket) error {
	seed := s.Seed
	if seed != 0 {
		seed += int64(n + 1)
	}
	carver := maze.NewCarver(seed)

	done := 0
	for _, leaf := range b.Jobs {
		if err := s.generate(carver, leaf); err != nil {
			return fmt.Errorf("tile %s: %w", leaf.TileID, err)
		}
		done += leaf.Rect.Area()
		logger.Info("tile complete",
			zap.Int("worker", n),
			zap.String("tile", leaf.TileID),
			zap.Float64("percent", float64(done)*100/float64(b.Area)))
	}
	return nil
}

func (s *Scheduler) generate(carver *maze.Carver, leaf *plan.Leaf) error {
	cv, err := s.carve(carver, leaf)
	if err != nil {
		return err
	}
	if err := s.writeImage(cv, leaf); err != nil {
		return err
	}
	// The marker may only appear once the image is fully on disk; its
	// presence is what makes a rerun skip the tile.
	return os.WriteFile(s.markerPath(leaf), []byte("DONE"), 0644)
}

func (s *Scheduler) writeImage(cv *canvas.Canvas, leaf *plan.Leaf) error {
	if s.Format == FormatRaw {
		return os.WriteFile(filepath.Join(s.TileDir, leaf.TileID), cv.Bytes(), 0644)
	}

	f, err := os.Create(filepath.Join(s.TileDir, leaf.TileID+".bmp"))
	if err != nil {
		return err
	}
	if err := cv.EncodeBMP(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Scheduler) completed(leaf *plan.Leaf) bool {
	_, err := os.Stat(s.markerPath(leaf))
	return err == nil
}

func (s *Scheduler) markerPath(leaf *plan.Leaf) string {
	return filepath.Join(s.TileDir, leaf.TileID+markerSuffix)
}
