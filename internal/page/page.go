// Package page emits the HTML page that stitches generated tiles back into
// one browsable maze. It consumes only the plan tree shape and each tile's
// id and pixel dimensions.
package page

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mazeforge/mazeforge/pkg/plan"
)

// stylesheet collapses table spacing so adjacent tile images touch exactly.
const stylesheet = `table { border-spacing: 0; border-collapse: collapse; }
td { padding: 0; margin: 0; font-size: 0; line-height: 0; }
img { display: block; image-rendering: pixelated; }
`

// Write renders p as maze.html plus styles.css in dir. Tile images are
// referenced relative to dir under tiles/.
func Write(dir string, p *plan.Plan) error {
	var b strings.Builder
	b.WriteString("<HTML><link rel='stylesheet' type='text/css' href='styles.css'><BODY>")
	render(&b, p.Root)
	b.WriteString("</BODY></HTML>")

	if err := os.WriteFile(filepath.Join(dir, "maze.html"), []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing maze.html: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "styles.css"), []byte(stylesheet), 0644); err != nil {
		return fmt.Errorf("writing styles.css: %w", err)
	}
	return nil
}

// render emits a vertical or horizontal two-cell table per split and an
// image tag per leaf, mirroring the nesting of the partition tree.
func render(b *strings.Builder, n plan.Node) {
	switch v := n.(type) {
	case *plan.Split:
		if v.Axis == plan.AxisY {
			b.WriteString("<TABLE><TR><TD>")
			render(b, v.First)
			b.WriteString("</TD></TR><TR><TD>")
			render(b, v.Second)
			b.WriteString("</TD></TR></TABLE>")
			return
		}
		b.WriteString("<TABLE><TR><TD>")
		render(b, v.First)
		b.WriteString("</TD><TD>")
		render(b, v.Second)
		b.WriteString("</TD></TR></TABLE>")

	case *plan.Leaf:
		fmt.Fprintf(b, `<IMG src="tiles/%s.bmp" style="float:left;width:%dpx;height:%dpx;"/>`,
			v.TileID, v.Rect.Width(), v.Rect.Height())
	}
}
