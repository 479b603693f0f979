// Package maze carves perfect mazes into tile canvases by recursive
// division: every wall line drawn gets exactly one doorway, so the open
// cells of a finished tile form a spanning tree.
package maze

import (
	"math/rand"
	"time"

	"github.com/mazeforge/mazeforge/pkg/canvas"
	"github.com/mazeforge/mazeforge/pkg/plan"
)

// Carver draws maze tiles. Not safe for concurrent use; give each worker
// its own instance.
type Carver struct {
	rng *rand.Rand
}

// NewCarver creates a Carver. A zero seed picks a time-based one.
func NewCarver(seed int64) *Carver {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Carver{rng: rand.New(rand.NewSource(seed))}
}

// Carve draws the walls and doorways of one tile and returns the populated
// canvas. The tile is self-contained: nothing outside its own rectangle is
// consulted or touched.
func (c *Carver) Carve(leaf *plan.Leaf) (*canvas.Canvas, error) {
	cv, err := canvas.NewTile(leaf.Rect.Width(), leaf.Rect.Height())
	if err != nil {
		return nil, err
	}

	x2 := leaf.Rect.Width() - 1
	y2 := leaf.Rect.Height() - 1

	// The top row and left column are always owned by this tile, whether
	// they face a neighbor or the outside.
	for y := 0; y <= y2; y++ {
		cv.Set(0, y)
	}
	for x := 0; x <= x2; x++ {
		cv.Set(x, 0)
	}

	// Outermost maze edges get a thickness-2 wall and shrink the carvable
	// interior; internal boundaries are owned by the neighboring tile.
	if leaf.RightEdge {
		for y := 0; y <= y2; y++ {
			cv.Set(x2, y)
			cv.Set(x2-1, y)
		}
		x2 -= 2
	}
	if leaf.BottomEdge {
		for x := 0; x <= x2; x++ {
			cv.Set(x, y2)
			cv.Set(x, y2-1)
		}
		y2 -= 2
	}

	// One doorway each to the tile above and to the left, at a random odd
	// offset so it always lands on an open corridor column or row.
	if leaf.ExitTop {
		cv.Clear(c.rng.Intn((leaf.Rect.Width()-1)/2)*2+1, 0)
	}
	if leaf.ExitLeft {
		cv.Clear(0, c.rng.Intn((leaf.Rect.Height()-1)/2)*2+1)
	}

	c.divide(cv, 1, 1, x2, y2)
	return cv, nil
}

// divide cuts the open region bounded inclusively by (x1,y1)-(x2,y2) with a
// full wall line across its narrow direction at a random even offset, opens
// exactly one doorway at a random odd offset along it, and recurses into
// both halves. Region bounds stay odd, so recursion bottoms out when a span
// collapses to a single pixel.
func (c *Carver) divide(cv *canvas.Canvas, x1, y1, x2, y2 int) {
	if x2-x1 <= 1 || y2-y1 <= 1 {
		return
	}

	if x2-x1 < y2-y1 {
		y := (y1/2 + 1 + c.rng.Intn(y2/2-y1/2)) * 2
		for x := x1; x <= x2; x++ {
			cv.Set(x, y)
		}
		cv.Clear((x1/2+c.rng.Intn(x2/2-x1/2+1))*2+1, y)
		c.divide(cv, x1, y1, x2, y-1)
		c.divide(cv, x1, y+1, x2, y2)
		return
	}

	x := (x1/2 + 1 + c.rng.Intn(x2/2-x1/2)) * 2
	for y := y1; y <= y2; y++ {
		cv.Set(x, y)
	}
	cv.Clear(x, (y1/2+c.rng.Intn(y2/2-y1/2+1))*2+1)
	c.divide(cv, x1, y1, x-1, y2)
	c.divide(cv, x+1, y1, x2, y2)
}
