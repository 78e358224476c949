// Package grid provides the in-memory pixel raster the codec reads and
// writes.
//
// A Grid is a dense W×H array of opaque RGBA pixels stored row-major.
// Rows are exposed as disjoint slices so parallel row workers never
// contend. FromImage and Image bridge to the standard library image types
// used by collaborators that load and save files.
package grid

import (
	"image"
	"image/color"
	"image/draw"
)

// Grid is a width×height raster of RGBA pixels.
//
// All pixels of a new Grid are opaque black: the decoder relies on this
// default for rows and cells the document does not cover.
type Grid struct {
	width  int
	height int
	pix    []color.RGBA
}

// New creates a Grid with all pixels initialized to opaque black.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	g := &Grid{
		width:  width,
		height: height,
		pix:    make([]color.RGBA, width*height),
	}
	for i := range g.pix {
		g.pix[i] = color.RGBA{A: 255}
	}

	return g
}

// Width returns the grid width in pixels.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in pixels.
func (g *Grid) Height() int {
	return g.height
}

// At returns the pixel at (x, y). The caller must keep x and y in bounds.
func (g *Grid) At(x, y int) color.RGBA {
	return g.pix[y*g.width+x]
}

// Set overwrites the pixel at (x, y).
func (g *Grid) Set(x, y int, c color.RGBA) {
	g.pix[y*g.width+x] = c
}

// Row returns the pixels of row y as a mutable slice.
// Row slices of distinct rows are disjoint, so concurrent writers that own
// different rows never overlap.
func (g *Grid) Row(y int) []color.RGBA {
	return g.pix[y*g.width : (y+1)*g.width]
}

// FromImage copies any image.Image into a Grid. The source alpha channel is
// read but ignored by the encoder; bounds are normalized to start at (0,0).
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) {
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		rgba = dst
	}

	g := &Grid{
		width:  b.Dx(),
		height: b.Dy(),
		pix:    make([]color.RGBA, b.Dx()*b.Dy()),
	}
	for y := 0; y < g.height; y++ {
		row := g.Row(y)
		base := y * rgba.Stride
		for x := 0; x < g.width; x++ {
			i := base + x*4
			row[x] = color.RGBA{R: rgba.Pix[i], G: rgba.Pix[i+1], B: rgba.Pix[i+2], A: rgba.Pix[i+3]}
		}
	}

	return g
}

// Image copies the grid into a standard *image.RGBA with opaque pixels.
func (g *Grid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	for y := 0; y < g.height; y++ {
		row := g.Row(y)
		base := y * img.Stride
		for x, c := range row {
			i := base + x*4
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
		}
	}

	return img
}
