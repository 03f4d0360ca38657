// Package pixelgrid is the boundary between image files and the embedding code:
// a 2-D grid of 8-bit RGB triples plus loading and saving helpers.
package pixelgrid

import (
	"image"
	"image/color"
)

// RGB is one pixel, each channel 8 bits.
type RGB struct {
	R, G, B uint8
}

// Black is the pixel embedded where no secret data exists.
var Black = RGB{}

// Channels returns the pixel as a [R, G, B] array.
func (p RGB) Channels() [3]uint8 {
	return [3]uint8{p.R, p.G, p.B}
}

// FromChannels is the inverse of Channels.
func FromChannels(c [3]uint8) RGB {
	return RGB{R: c[0], G: c[1], B: c[2]}
}

// Grid is a read only view of a width x height pixel grid.
type Grid interface {
	Width() int
	Height() int
	At(x, y int) RGB
}

// RGBGrid is an in-memory Grid stored row major.
type RGBGrid struct {
	width, height int
	pix           []RGB
}

// New creates a black width x height grid.
func New(width, height int) *RGBGrid {
	if width < 0 || height < 0 {
		panic("grid dimensions must be >=0")
	}
	return &RGBGrid{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// Copy creates a new RGBGrid holding the same pixels as g.
func Copy(g Grid) *RGBGrid {
	result := New(g.Width(), g.Height())
	if src, ok := g.(*RGBGrid); ok {
		copy(result.pix, src.pix)
		return result
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			result.Set(x, y, g.At(x, y))
		}
	}
	return result
}

func (g *RGBGrid) Width() int  { return g.width }
func (g *RGBGrid) Height() int { return g.height }

func (g *RGBGrid) At(x, y int) RGB {
	return g.pix[g.offset(x, y)]
}

// Set writes p at (x, y). Distinct coordinates may be written concurrently.
func (g *RGBGrid) Set(x, y int, p RGB) {
	g.pix[g.offset(x, y)] = p
}

func (g *RGBGrid) offset(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic("pixel coordinate out of range")
	}
	return y*g.width + x
}

// Equals reports whether both grids have the same size and pixels.
func Equals(a, b Grid) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}

// FromImage copies img into a grid. The image origin moves to (0, 0) and alpha is dropped.
func FromImage(img image.Image) *RGBGrid {
	bounds := img.Bounds()
	result := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < result.height; y++ {
		for x := 0; x < result.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			result.Set(x, y, RGB{R: c.R, G: c.G, B: c.B})
		}
	}
	return result
}

// ToImage converts g into an opaque NRGBA image.
func ToImage(g Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := g.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return img
}
