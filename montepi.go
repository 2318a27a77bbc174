package montepi

import "github.com/hajimehoshi/ebiten/v2"

// Point is a sampled 2D coordinate with each component in [-1, 1].
// Immutable once sampled.
type Point struct {
	X, Y float64
}

// Classification labels a sampled point relative to the unit circle.
type Classification uint8

const (
	Hit  Classification = iota // inside or on the unit circle
	Miss                       // outside the unit circle
)

// String returns "Hit" or "Miss".
func (c Classification) String() string {
	if c == Hit {
		return "Hit"
	}
	return "Miss"
}

// Classify reports whether p lies within the unit circle. Points on the
// boundary (x²+y² exactly 1) count as hits. Total over all coordinate pairs.
func Classify(p Point) Classification {
	if p.X*p.X+p.Y*p.Y <= 1.0 {
		return Hit
	}
	return Miss
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// WhitePixel is a 1x1 white image used for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// toRGBA converts a montepi Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
