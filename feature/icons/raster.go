package icons

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// badgeColor is the near-opaque white of the circular badge.
var badgeColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 230}

// roundedRect is an alpha mask of a size x size square with rounded corners.
// A pixel is inside when its centre lies inside the shape, so pixels beyond
// the corner arcs are fully transparent.
type roundedRect struct {
	size, radius int
}

func (r roundedRect) ColorModel() color.Model { return color.AlphaModel }

func (r roundedRect) Bounds() image.Rectangle { return image.Rect(0, 0, r.size, r.size) }

func (r roundedRect) At(x, y int) color.Color {
	if r.contains(x, y) {
		return color.Alpha{A: 0xff}
	}
	return color.Alpha{}
}

func (r roundedRect) contains(x, y int) bool {
	if x < 0 || y < 0 || x >= r.size || y >= r.size {
		return false
	}
	px, py := float64(x)+0.5, float64(y)+0.5
	rad := float64(r.radius)
	lo, hi := rad, float64(r.size)-rad

	// Distance to the inner rectangle whose corners are the arc centres.
	dx := px - clamp(px, lo, hi)
	dy := py - clamp(py, lo, hi)
	return dx*dx+dy*dy <= rad*rad
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// renderRaster draws the brand mark at size x size. A nil face leaves the badge empty.
func renderRaster(size int, brand color.NRGBA, face font.Face, label string) *image.NRGBA {
	background := imaging.New(size, size, brand)

	out := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.DrawMask(out, out.Bounds(), background, image.Point{}, roundedRect{size: size, radius: size / 8}, image.Point{}, draw.Over)

	center := size / 2
	fillCircle(out, float32(center), float32(center), float32(size/3), badgeColor)

	if face != nil && label != "" {
		drawCentered(out, face, label, size, center, brand)
	}
	return out
}

// fillCircle fills an anti-aliased circle using four cubic arcs.
func fillCircle(dst draw.Image, cx, cy, r float32, c color.Color) {
	const k = 0.5522848 // control point distance for a quarter circle

	b := dst.Bounds()
	var z vector.Rasterizer
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k*r, cx+k*r, cy+r, cx, cy+r)
	z.CubeTo(cx-k*r, cy+r, cx-r, cy+k*r, cx-r, cy)
	z.CubeTo(cx-r, cy-k*r, cx-k*r, cy-r, cx, cy-r)
	z.CubeTo(cx+k*r, cy-r, cx+r, cy-k*r, cx+r, cy)
	z.ClosePath()

	z.Draw(dst, b, image.NewUniform(c), b.Min)
}

// drawCentered draws text so its ink bounding box is centred horizontally on
// the canvas and vertically on centerY.
func drawCentered(dst draw.Image, face font.Face, text string, size, centerY int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}

	bounds, _ := d.BoundString(text)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := (size - w) / 2
	y := centerY - h/2

	// Shift the dot so the box's top-left lands on (x, y).
	d.Dot = fixed.Point26_6{
		X: fixed.I(x) - bounds.Min.X,
		Y: fixed.I(y) - bounds.Min.Y,
	}
	d.DrawString(text)
}
