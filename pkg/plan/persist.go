package plan

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Persistence errors.
var (
	ErrCorruptPlan = errors.New("corrupt plan file")
)

// Plan couples the partition tree with the overall maze dimensions.
type Plan struct {
	Width  int
	Height int
	Root   Node
}

// planJSON is the persisted top-level record.
type planJSON struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Root   *nodeJSON `json:"plans"`
}

// nodeJSON is the persisted form of the Split|Leaf variant. Exactly one of
// the two fields is populated.
type nodeJSON struct {
	Split *splitJSON `json:"split,omitempty"`
	Leaf  *leafJSON  `json:"leaf,omitempty"`
}

type splitJSON struct {
	Axis     string       `json:"axis"`
	Position int          `json:"position"`
	Children [2]*nodeJSON `json:"children"`
}

type leafJSON struct {
	X1         int    `json:"x1"`
	Y1         int    `json:"y1"`
	X2         int    `json:"x2"`
	Y2         int    `json:"y2"`
	ExitTop    bool   `json:"exitTop"`
	ExitLeft   bool   `json:"exitLeft"`
	RightEdge  bool   `json:"rightEdge"`
	BottomEdge bool   `json:"bottomEdge"`
	TileID     string `json:"tileId"`
}

// Save writes the plan as indented JSON to path.
func Save(path string, p *Plan) error {
	data, err := json.MarshalIndent(planJSON{
		Width:  p.Width,
		Height: p.Height,
		Root:   encodeNode(p.Root),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads a plan persisted by Save. There is no partial-plan recovery: a
// missing or corrupt file is an error and the caller rebuilds from scratch.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	var pj planJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPlan, err)
	}
	if pj.Width <= 0 || pj.Height <= 0 || pj.Root == nil {
		return nil, fmt.Errorf("%w: missing dimensions or tree", ErrCorruptPlan)
	}

	root, err := decodeNode(pj.Root)
	if err != nil {
		return nil, err
	}
	return &Plan{Width: pj.Width, Height: pj.Height, Root: root}, nil
}

func encodeNode(n Node) *nodeJSON {
	switch v := n.(type) {
	case *Split:
		return &nodeJSON{Split: &splitJSON{
			Axis:     v.Axis.String(),
			Position: v.Position,
			Children: [2]*nodeJSON{encodeNode(v.First), encodeNode(v.Second)},
		}}
	case *Leaf:
		return &nodeJSON{Leaf: &leafJSON{
			X1:         v.Rect.X1,
			Y1:         v.Rect.Y1,
			X2:         v.Rect.X2,
			Y2:         v.Rect.Y2,
			ExitTop:    v.ExitTop,
			ExitLeft:   v.ExitLeft,
			RightEdge:  v.RightEdge,
			BottomEdge: v.BottomEdge,
			TileID:     v.TileID,
		}}
	default:
		return nil
	}
}

func decodeNode(nj *nodeJSON) (Node, error) {
	switch {
	case nj == nil:
		return nil, fmt.Errorf("%w: empty node", ErrCorruptPlan)

	case nj.Split != nil && nj.Leaf == nil:
		var axis Axis
		switch nj.Split.Axis {
		case "x":
			axis = AxisX
		case "y":
			axis = AxisY
		default:
			return nil, fmt.Errorf("%w: unknown axis %q", ErrCorruptPlan, nj.Split.Axis)
		}
		first, err := decodeNode(nj.Split.Children[0])
		if err != nil {
			return nil, err
		}
		second, err := decodeNode(nj.Split.Children[1])
		if err != nil {
			return nil, err
		}
		return &Split{Axis: axis, Position: nj.Split.Position, First: first, Second: second}, nil

	case nj.Leaf != nil && nj.Split == nil:
		l := nj.Leaf
		return &Leaf{
			Rect:       Rect{l.X1, l.Y1, l.X2, l.Y2},
			ExitTop:    l.ExitTop,
			ExitLeft:   l.ExitLeft,
			RightEdge:  l.RightEdge,
			BottomEdge: l.BottomEdge,
			TileID:     l.TileID,
		}, nil

	default:
		return nil, fmt.Errorf("%w: node is neither split nor leaf", ErrCorruptPlan)
	}
}
