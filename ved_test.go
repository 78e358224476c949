package ved

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ved/codec"
	"github.com/arloliu/ved/format"
)

func testImage(t *testing.T) *image.RGBA {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if (x/2+y)%2 == 0 {
				img.SetRGBA(x, y, color.RGBA{R: 200, G: 10, B: 30, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 5, G: 5, B: 250, A: 255})
			}
		}
	}

	return img
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	img := testImage(t)

	data, err := Encode(img)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	bounds := decoded.Bounds()
	require.Equal(t, img.Bounds(), bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			wr, wg, wb, _ := img.At(x, y).RGBA()
			gr, gg, gb, ga := decoded.At(x, y).RGBA()
			require.Equal(t, wr, gr, "R at (%d,%d)", x, y)
			require.Equal(t, wg, gg, "G at (%d,%d)", x, y)
			require.Equal(t, wb, gb, "B at (%d,%d)", x, y)
			require.Equal(t, uint32(0xFFFF), ga, "decoded alpha at (%d,%d)", x, y)
		}
	}
}

func TestEncodeDecode_CompressedRoundTrip(t *testing.T) {
	img := testImage(t)

	data, err := Encode(img, codec.WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	plain, err := Encode(img)
	require.NoError(t, err)
	require.NotEqual(t, plain, data)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestEncodeTo_DecodeFrom(t *testing.T) {
	img := testImage(t)

	var buf bytes.Buffer
	require.NoError(t, EncodeTo(&buf, img))

	decoded, err := DecodeFrom(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
}

func TestDocumentID_Deterministic(t *testing.T) {
	img := testImage(t)

	data1, err := Encode(img, codec.WithWorkers(1))
	require.NoError(t, err)
	data2, err := Encode(img, codec.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, DocumentID(data1), DocumentID(data2))

	img.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	data3, err := Encode(img)
	require.NoError(t, err)
	require.NotEqual(t, DocumentID(data1), DocumentID(data3))
}
