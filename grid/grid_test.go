package grid

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsToOpaqueBlack(t *testing.T) {
	g := New(3, 2)
	require.Equal(t, 3, g.Width())
	require.Equal(t, 2, g.Height())

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			require.Equal(t, color.RGBA{A: 255}, g.At(x, y))
		}
	}
}

func TestNew_ClampsNegativeDimensions(t *testing.T) {
	g := New(-1, -5)
	require.Equal(t, 0, g.Width())
	require.Equal(t, 0, g.Height())
}

func TestSetAt(t *testing.T) {
	g := New(2, 2)
	red := color.RGBA{R: 255, A: 255}

	g.Set(1, 0, red)
	require.Equal(t, red, g.At(1, 0))
	require.Equal(t, color.RGBA{A: 255}, g.At(0, 0))
}

func TestRow_SlicesAreDisjoint(t *testing.T) {
	g := New(4, 3)
	row1 := g.Row(1)
	row1[0] = color.RGBA{R: 7, A: 255}

	require.Equal(t, color.RGBA{R: 7, A: 255}, g.At(0, 1))
	require.Equal(t, color.RGBA{A: 255}, g.At(0, 0))
	require.Equal(t, color.RGBA{A: 255}, g.At(0, 2))
	require.Len(t, row1, 4)
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{B: 255, A: 128})

	g := FromImage(img)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, color.RGBA{R: 255, A: 255}, g.At(0, 0))
	require.Equal(t, uint8(255), g.At(1, 1).B)
}

func TestFromImage_NonZeroBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 12, 21))
	img.SetRGBA(10, 20, color.RGBA{G: 200, A: 255})

	g := FromImage(img)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 1, g.Height())
	require.Equal(t, color.RGBA{G: 200, A: 255}, g.At(0, 0))
}

func TestImage_AlwaysOpaque(t *testing.T) {
	g := New(2, 1)
	g.Set(0, 0, color.RGBA{R: 9, G: 8, B: 7, A: 0})

	img := g.Image()
	c := img.RGBAAt(0, 0)
	require.Equal(t, color.RGBA{R: 9, G: 8, B: 7, A: 255}, c)
	require.Equal(t, color.RGBA{A: 255}, img.RGBAAt(1, 0))
}
