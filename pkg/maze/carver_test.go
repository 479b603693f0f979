package maze

import (
	"errors"
	"testing"

	"github.com/mazeforge/mazeforge/pkg/canvas"
	"github.com/mazeforge/mazeforge/pkg/plan"
)

func carveTile(t *testing.T, width, height int, exitTop, exitLeft, rightEdge, bottomEdge bool, seed int64) *canvas.Canvas {
	t.Helper()
	leaf := &plan.Leaf{
		Rect:       plan.Rect{X1: 0, Y1: 0, X2: width - 1, Y2: height - 1},
		ExitTop:    exitTop,
		ExitLeft:   exitLeft,
		RightEdge:  rightEdge,
		BottomEdge: bottomEdge,
		TileID:     "test",
	}
	cv, err := NewCarver(seed).Carve(leaf)
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}
	return cv
}

// assertPerfectMaze flood-fills the open pixels and checks the spanning
// tree property: every open pixel reachable, and exactly openCount-1
// adjacency edges, so there are no cycles and no isolated chambers.
func assertPerfectMaze(t *testing.T, cv *canvas.Canvas) {
	t.Helper()
	w, h := cv.Width(), cv.Height()

	open := 0
	edges := 0
	var start [2]int
	found := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cv.Get(x, y) {
				continue
			}
			open++
			if !found {
				start = [2]int{x, y}
				found = true
			}
			if x+1 < w && !cv.Get(x+1, y) {
				edges++
			}
			if y+1 < h && !cv.Get(x, y+1) {
				edges++
			}
		}
	}
	if open == 0 {
		t.Fatal("tile has no open pixels")
	}

	visited := make([]bool, w*h)
	stack := [][2]int{start}
	visited[start[1]*w+start[0]] = true
	reached := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p[0]+d[0], p[1]+d[1]
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			if visited[ny*w+nx] || cv.Get(nx, ny) {
				continue
			}
			visited[ny*w+nx] = true
			stack = append(stack, [2]int{nx, ny})
		}
	}

	if reached != open {
		t.Errorf("flood fill reached %d of %d open pixels", reached, open)
	}
	if edges != open-1 {
		t.Errorf("open graph has %d edges for %d pixels, want %d (spanning tree)", edges, open, open-1)
	}
}

func TestCarve_SealedTileIsPerfectMaze(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 17, 99} {
		cv := carveTile(t, 64, 64, false, false, true, true, seed)
		assertPerfectMaze(t, cv)
	}
}

func TestCarve_TileSizes(t *testing.T) {
	tests := []struct{ width, height int }{
		{32, 32},
		{32, 96},
		{128, 64},
		{256, 256},
	}
	for _, tc := range tests {
		cv := carveTile(t, tc.width, tc.height, false, false, true, true, 7)
		assertPerfectMaze(t, cv)
	}
}

func TestCarve_TileWithExitsIsPerfectMaze(t *testing.T) {
	// An interior tile: doorways to both neighbors, no thick outer walls.
	for _, seed := range []int64{1, 5, 31} {
		cv := carveTile(t, 64, 96, true, true, false, false, seed)
		assertPerfectMaze(t, cv)
	}
}

func TestCarve_TopAndLeftWalls(t *testing.T) {
	cv := carveTile(t, 64, 64, false, false, false, false, 3)
	for x := 0; x < 64; x++ {
		if !cv.Get(x, 0) {
			t.Errorf("top wall open at x=%d", x)
		}
	}
	for y := 0; y < 64; y++ {
		if !cv.Get(0, y) {
			t.Errorf("left wall open at y=%d", y)
		}
	}
}

func TestCarve_ExitTopIsSingleOddDoorway(t *testing.T) {
	cv := carveTile(t, 64, 64, true, false, true, true, 13)

	holes := 0
	for x := 0; x < 64; x++ {
		if !cv.Get(x, 0) {
			holes++
			if x%2 != 1 {
				t.Errorf("top doorway at even x=%d", x)
			}
		}
	}
	if holes != 1 {
		t.Errorf("top wall has %d doorways, want 1", holes)
	}
}

func TestCarve_ExitLeftIsSingleOddDoorway(t *testing.T) {
	cv := carveTile(t, 64, 64, false, true, true, true, 13)

	holes := 0
	for y := 0; y < 64; y++ {
		if !cv.Get(0, y) {
			holes++
			if y%2 != 1 {
				t.Errorf("left doorway at even y=%d", y)
			}
		}
	}
	if holes != 1 {
		t.Errorf("left wall has %d doorways, want 1", holes)
	}
}

func TestCarve_RightEdgeDoubleWall(t *testing.T) {
	cv := carveTile(t, 64, 64, false, false, true, false, 5)
	for y := 0; y < 64; y++ {
		if !cv.Get(63, y) || !cv.Get(62, y) {
			t.Errorf("right outer wall open at y=%d", y)
		}
	}
}

func TestCarve_BottomEdgeDoubleWall(t *testing.T) {
	cv := carveTile(t, 64, 64, false, false, false, true, 5)
	for x := 0; x < 64; x++ {
		if !cv.Get(x, 63) || !cv.Get(x, 62) {
			t.Errorf("bottom outer wall open at x=%d", x)
		}
	}
}

func TestCarve_InvalidLeafDimensions(t *testing.T) {
	leaf := &plan.Leaf{Rect: plan.Rect{X1: 0, Y1: 0, X2: 39, Y2: 31}}
	if _, err := NewCarver(1).Carve(leaf); !errors.Is(err, canvas.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestCarve_SeededDeterminism(t *testing.T) {
	a := carveTile(t, 128, 128, true, true, true, true, 77)
	b := carveTile(t, 128, 128, true, true, true, true, 77)

	ab, bb := a.Bytes(), b.Bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			t.Fatalf("same seed produced different tiles (byte %d)", i)
		}
	}
}
