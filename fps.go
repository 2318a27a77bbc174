package montepi

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay displays the current FPS and TPS in the top-right corner.
// The text refreshes every ~0.5 seconds.
type fpsOverlay struct {
	img          *ebiten.Image
	sinceRefresh float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	o := &fpsOverlay{img: ebiten.NewImage(100, 32)}
	o.sinceRefresh = 1 // force a refresh on the first update
	return o
}

func (o *fpsOverlay) update(dt float64) {
	o.sinceRefresh += dt
	if o.sinceRefresh < 0.5 {
		return
	}
	o.sinceRefresh = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
		ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(panelW-104), 4)
	screen.DrawImage(o.img, op)
}
