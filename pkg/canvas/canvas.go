// Package canvas implements the bit-packed monochrome pixel grid that maze
// tiles are drawn on, along with its on-disk encodings.
package canvas

import (
	"errors"
	"fmt"
)

// Canvas errors.
var (
	ErrInvalidDimension = errors.New("invalid canvas dimension")
)

// Bit masks per x offset within a byte. The most significant bit maps to the
// lowest x coordinate of the byte group.
var (
	setMasks   = [8]byte{128, 64, 32, 16, 8, 4, 2, 1}
	clearMasks = [8]byte{127, 191, 223, 239, 247, 251, 253, 254}
)

// Canvas is a fixed-size monochrome pixel grid packed one bit per pixel,
// row-major, top row first. A set bit is a wall pixel.
type Canvas struct {
	width  int
	height int
	stride int // bytes per row
	bits   []byte
}

// New creates a blank canvas. Width must be a multiple of 8 so rows pack
// into whole bytes.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	if width%8 != 0 {
		return nil, fmt.Errorf("%w: width %d is not a multiple of 8", ErrInvalidDimension, width)
	}
	stride := width / 8
	return &Canvas{
		width:  width,
		height: height,
		stride: stride,
		bits:   make([]byte, stride*height),
	}, nil
}

// NewTile creates a canvas destined for bitmap image emission, which
// requires both dimensions to be multiples of 32.
func NewTile(width, height int) (*Canvas, error) {
	if width%32 != 0 || height%32 != 0 {
		return nil, fmt.Errorf("%w: %dx%d (tile sides must be multiples of 32)", ErrInvalidDimension, width, height)
	}
	return New(width, height)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Set fills the pixel at (x, y). Coordinates outside the canvas are a
// programmer error and panic.
func (c *Canvas) Set(x, y int) {
	c.check(x, y)
	c.bits[y*c.stride+x/8] |= setMasks[x%8]
}

// Clear empties the pixel at (x, y).
func (c *Canvas) Clear(x, y int) {
	c.check(x, y)
	c.bits[y*c.stride+x/8] &= clearMasks[x%8]
}

// Get reports whether the pixel at (x, y) is set.
func (c *Canvas) Get(x, y int) bool {
	c.check(x, y)
	return c.bits[y*c.stride+x/8]&setMasks[x%8] != 0
}

func (c *Canvas) check(x, y int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		panic(fmt.Sprintf("canvas: pixel (%d,%d) outside %dx%d", x, y, c.width, c.height))
	}
}

// Bytes returns the packed pixel buffer as stored: row-major, top row first.
// The slice aliases the canvas; callers must not hold it across mutations.
func (c *Canvas) Bytes() []byte { return c.bits }
