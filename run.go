package montepi

import "github.com/hajimehoshi/ebiten/v2"

// RunConfig configures the window created by [Run].
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run creates a window and runs the panel's game loop until the window is
// closed. Zero Width/Height fall back to the panel's logical size.
func Run(p *Panel, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = panelW
	}
	if h <= 0 {
		h = panelH
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	p.SetShowFPS(cfg.ShowFPS)
	return ebiten.RunGame(p)
}
