// Package plan partitions a maze area into a binary tree of tiles small
// enough to generate independently, and persists that tree between runs.
package plan

import "fmt"

// Axis identifies the direction of a dividing line.
type Axis uint8

// Split axes.
const (
	AxisX Axis = iota // vertical line, divides the width
	AxisY             // horizontal line, divides the height
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// Rect is an inclusive integer pixel rectangle.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Width returns the number of pixel columns covered by r.
func (r Rect) Width() int { return r.X2 - r.X1 + 1 }

// Height returns the number of pixel rows covered by r.
func (r Rect) Height() int { return r.Y2 - r.Y1 + 1 }

// Area returns the number of pixels covered by r.
func (r Rect) Area() int { return r.Width() * r.Height() }

// Node is one node of the partition tree: either a *Split or a *Leaf.
type Node interface {
	isNode()
}

// Split divides its area in two along a 32-aligned grid line.
type Split struct {
	Axis     Axis
	Position int  // coordinate of the dividing line
	First    Node // left or top child
	Second   Node // right or bottom child
}

// Leaf is a single tile, small enough to carve and encode on its own.
//
// ExitTop and ExitLeft mark that the tile must carve a connecting doorway to
// its neighbor above or on the left. RightEdge and BottomEdge mark that the
// tile is the outermost edge of the whole maze on that side and owns the
// thick outer wall there; on internal boundaries the neighbor owns its own
// edge and nothing is drawn.
type Leaf struct {
	Rect       Rect
	ExitTop    bool
	ExitLeft   bool
	RightEdge  bool
	BottomEdge bool
	TileID     string
}

func (*Split) isNode() {}
func (*Leaf) isNode()  {}

// Leaves flattens the tree depth-first, first child before second.
func Leaves(n Node) []*Leaf {
	var out []*Leaf
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Split:
			walk(v.First)
			walk(v.Second)
		case *Leaf:
			out = append(out, v)
		}
	}
	walk(n)
	return out
}

// tileID encodes the tile bounds into its file-name-safe identifier.
func tileID(r Rect) string {
	return fmt.Sprintf("(%d_%d)_(%d_%d)", r.X1, r.Y1, r.X2, r.Y2)
}
