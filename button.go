package montepi

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const hoverFadeDuration = 0.12 // seconds

// Button is a clickable rectangular control. A click fires OnPress when the
// pointer is pressed and released inside the button's bounds; releasing
// outside cancels the press. Hover highlighting fades in and out with a
// tween.
type Button struct {
	Bounds  Rect
	Label   string
	Color   Color
	OnPress func()

	hovered    bool
	armed      bool
	highlight  float32
	hoverTween *gween.Tween
}

// NewButton creates a button with the given bounds and label.
func NewButton(bounds Rect, label string, onPress func()) *Button {
	return &Button{
		Bounds:  bounds,
		Label:   label,
		Color:   Color{R: 0.25, G: 0.25, B: 0.32, A: 1},
		OnPress: onPress,
	}
}

// handleMove updates hover state for the pointer position (no button held).
func (b *Button) handleMove(x, y float64) {
	inside := b.Bounds.Contains(x, y)
	if inside == b.hovered {
		return
	}
	b.hovered = inside
	target := float32(0)
	if inside {
		target = 1
	}
	b.hoverTween = gween.New(b.highlight, target, hoverFadeDuration, ease.OutQuad)
}

// handlePress records a press that started inside the button.
func (b *Button) handlePress(x, y float64) {
	b.armed = b.Bounds.Contains(x, y)
}

// handleRelease fires OnPress if the press started and ended inside the
// button. Always disarms.
func (b *Button) handleRelease(x, y float64) {
	clicked := b.armed && b.Bounds.Contains(x, y)
	b.armed = false
	if clicked && b.OnPress != nil {
		b.OnPress()
	}
}

// update advances the hover tween by dt seconds.
func (b *Button) update(dt float64) {
	if b.hoverTween == nil {
		return
	}
	v, done := b.hoverTween.Update(float32(dt))
	b.highlight = v
	if done {
		b.hoverTween = nil
	}
}

// draw renders the button body, hover highlight, and label.
func (b *Button) draw(screen *ebiten.Image) {
	fillRect(screen, b.Bounds, b.Color)
	if b.highlight > 0 {
		fillRect(screen, b.Bounds, Color{R: 1, G: 1, B: 1, A: 0.18 * float64(b.highlight)})
	}
	// DebugPrint glyphs are 6x16; center the label roughly.
	tx := int(b.Bounds.X + (b.Bounds.Width-float64(6*len(b.Label)))/2)
	ty := int(b.Bounds.Y + (b.Bounds.Height-16)/2)
	ebitenutil.DebugPrintAt(screen, b.Label, tx, ty)
}

// fillRect draws a solid rectangle by scaling the shared 1x1 white pixel.
func fillRect(screen *ebiten.Image, r Rect, c Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	screen.DrawImage(WhitePixel, op)
}
