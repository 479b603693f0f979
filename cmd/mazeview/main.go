// mazeview is a small SDL2 browser for generated maze tiles. It walks the
// flattened leaf list of a persisted plan and shows one tile bitmap per
// window, arrow keys to navigate.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/mazeforge/mazeforge/pkg/plan"
)

func init() {
	// SDL event handling must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	dir := flag.String("dir", ".", "Maze output directory (containing plan.json and tiles/)")
	flag.Parse()

	if err := run(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dir string) error {
	p, err := plan.Load(filepath.Join(dir, "plan.json"))
	if err != nil {
		return err
	}
	leaves := plan.Leaves(p.Root)
	if len(leaves) == 0 {
		return fmt.Errorf("plan has no tiles")
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("SDL_Init failed: %w", err)
	}
	defer sdl.Quit()

	first := leaves[0]
	window, err := sdl.CreateWindow(
		title(first, 0, len(leaves)),
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(first.Rect.Width()),
		int32(first.Rect.Height()),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}
	defer renderer.Destroy()

	index := 0
	if err := show(renderer, window, dir, leaves, index); err != nil {
		return err
	}

	for {
		event := sdl.WaitEvent()
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return nil
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				return nil
			case sdl.K_RIGHT, sdl.K_DOWN, sdl.K_SPACE:
				index = (index + 1) % len(leaves)
			case sdl.K_LEFT, sdl.K_UP:
				index = (index - 1 + len(leaves)) % len(leaves)
			default:
				continue
			}
			if err := show(renderer, window, dir, leaves, index); err != nil {
				return err
			}
		}
	}
}

// show loads the indexed tile bitmap and presents it. SDL handles the 1-bit
// BMP natively, so no decoding happens on our side.
func show(renderer *sdl.Renderer, window *sdl.Window, dir string, leaves []*plan.Leaf, index int) error {
	leaf := leaves[index]
	path := filepath.Join(dir, "tiles", leaf.TileID+".bmp")

	surface, err := sdl.LoadBMP(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return fmt.Errorf("creating texture: %w", err)
	}
	defer texture.Destroy()

	window.SetSize(int32(leaf.Rect.Width()), int32(leaf.Rect.Height()))
	window.SetTitle(title(leaf, index, len(leaves)))
	renderer.Clear()
	renderer.Copy(texture, nil, nil)
	renderer.Present()
	return nil
}

func title(leaf *plan.Leaf, index, total int) string {
	return fmt.Sprintf("mazeview %d/%d %s (%dx%d)",
		index+1, total, leaf.TileID, leaf.Rect.Width(), leaf.Rect.Height())
}
