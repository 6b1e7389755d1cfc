package wezzle

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height set the window size and the logical screen size.
	// Zero values default to 640x480.
	Width, Height int
	// ShowStats adds the FPS and animation count widget.
	ShowStats bool
}

// game adapts a Scene to ebiten.Game with a fixed logical size.
type game struct {
	scene  *Scene
	width  int
	height int
}

func (g *game) Update() error              { return g.scene.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
func (g *game) Layout(_, _ int) (int, int) { return g.width, g.height }

// Run opens a window and drives scene until the window is closed or the
// scene's update function returns an error. Closing the window returns nil.
func Run(scene *Scene, cfg RunConfig) error {
	if scene == nil {
		panic("wezzle: Run with nil scene")
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.ShowStats {
		scene.ShowStats()
	}
	return ebiten.RunGame(&game{scene: scene, width: cfg.Width, height: cfg.Height})
}
