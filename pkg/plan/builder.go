package plan

import (
	"fmt"
	"math/rand"
	"time"
)

// Bounds on the maximum tile dimension.
const (
	MinTileDim = 32
	MaxTileDim = 32767
)

// Builder recursively partitions an area into tiles no longer than maxTile
// on either side. Not safe for concurrent use.
type Builder struct {
	maxTile int
	rng     *rand.Rand
}

// NewBuilder creates a Builder. maxTile must be a multiple of 32 strictly
// between 32 and 32767. A zero seed picks a time-based one.
func NewBuilder(maxTile int, seed int64) (*Builder, error) {
	if maxTile%32 != 0 || maxTile <= MinTileDim || maxTile >= MaxTileDim {
		return nil, fmt.Errorf("tile dimension %d: must be a multiple of 32 in (%d, %d)", maxTile, MinTileDim, MaxTileDim)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Builder{maxTile: maxTile, rng: rand.New(rand.NewSource(seed))}, nil
}

// Build partitions r into the tile tree. The root rectangle must have width
// and height that are positive multiples of 32; every split then lands on a
// 32-aligned grid line and every tile keeps sides that are multiples of 32.
func (b *Builder) Build(r Rect) (Node, error) {
	if r.Width() <= 0 || r.Height() <= 0 {
		return nil, fmt.Errorf("empty area %+v", r)
	}
	if r.Width()%32 != 0 || r.Height()%32 != 0 {
		return nil, fmt.Errorf("area %dx%d: sides must be multiples of 32", r.Width(), r.Height())
	}
	return b.split(r, false, false, true, true), nil
}

// split emits a Leaf once neither side exceeds maxTile, otherwise divides
// across the longer side at a random interior grid line. The child on the
// far side of the line is forced to connect back across it; the declared
// exits route to whichever child the line leaves the interval midpoint in.
func (b *Builder) split(r Rect, exitTop, exitLeft, rightEdge, bottomEdge bool) Node {
	if r.Width() <= b.maxTile && r.Height() <= b.maxTile {
		return &Leaf{
			Rect:       r,
			ExitTop:    exitTop,
			ExitLeft:   exitLeft,
			RightEdge:  rightEdge,
			BottomEdge: bottomEdge,
			TileID:     tileID(r),
		}
	}

	if r.Width() > r.Height() {
		pos := b.gridLine(r.X1, r.X2)
		return &Split{
			Axis:     AxisX,
			Position: pos,
			First:    b.split(Rect{r.X1, r.Y1, pos - 1, r.Y2}, exitTop && 2*pos > r.X1+r.X2, exitLeft, false, bottomEdge),
			Second:   b.split(Rect{pos, r.Y1, r.X2, r.Y2}, exitTop && 2*pos <= r.X1+r.X2, true, rightEdge, bottomEdge),
		}
	}

	pos := b.gridLine(r.Y1, r.Y2)
	return &Split{
		Axis:     AxisY,
		Position: pos,
		First:    b.split(Rect{r.X1, r.Y1, r.X2, pos - 1}, exitTop, exitLeft && 2*pos > r.Y1+r.Y2, rightEdge, false),
		Second:   b.split(Rect{r.X1, pos, r.X2, r.Y2}, true, exitLeft && 2*pos <= r.Y1+r.Y2, rightEdge, bottomEdge),
	}
}

// gridLine picks a uniformly random 32-aligned coordinate strictly interior
// to [lo, hi], so both halves stay non-degenerate.
func (b *Builder) gridLine(lo, hi int) int {
	first := lo/32 + 1
	last := hi/32 - 1
	return (first + b.rng.Intn(last-first+1)) * 32
}
