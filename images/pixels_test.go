package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEncoded(t *testing.T, img image.Image) *Image {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	decoded, err := Decode(buf.Bytes())
	require.NoError(t, err)
	return decoded
}

// TestPixelsChannelCounts validates that Pixels reports the channel count the
// source encoding stores rather than a normalized one.
func TestPixelsChannelCounts(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(0, 0, color.Gray{Y: 7})
	gray.SetGray(1, 0, color.Gray{Y: 200})

	gray16 := image.NewGray16(image.Rect(0, 0, 1, 1))
	gray16.SetGray16(0, 0, color.Gray16{Y: 0xabcd})

	opaquePalette := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{
		color.RGBA{R: 255, A: 255},
		color.RGBA{B: 255, A: 255},
	})
	opaquePalette.SetColorIndex(1, 0, 1)

	translucentPalette := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{
		color.NRGBA{R: 255, G: 0, B: 0, A: 128},
	})

	rgba64 := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	rgba64.SetNRGBA64(0, 0, color.NRGBA64{R: 0x1234, G: 0x5678, B: 0x9abc, A: 0x8000})

	tests := []struct {
		name     string
		img      image.Image
		channels int
		pix      []uint8
	}{
		{name: "gray", img: gray, channels: 1, pix: []uint8{7, 200}},
		{name: "gray16 keeps high byte", img: gray16, channels: 1, pix: []uint8{0xab}},
		{name: "opaque palette expands to rgb", img: opaquePalette, channels: 3, pix: []uint8{255, 0, 0, 0, 0, 255}},
		{name: "translucent palette expands to rgba", img: translucentPalette, channels: 4, pix: []uint8{255, 0, 0, 128}},
		{name: "nrgba64 keeps high byte", img: rgba64, channels: 4, pix: []uint8{0x12, 0x56, 0x9a, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix, channels := Pixels(decodeEncoded(t, tt.img))
			assert.Equal(t, tt.channels, channels)
			assert.Equal(t, tt.pix, pix)
		})
	}
}

func TestPixelsNonPNG(t *testing.T) {
	cmyk := image.NewCMYK(image.Rect(0, 0, 1, 2))
	cmyk.SetCMYK(0, 0, color.CMYK{C: 1, M: 2, Y: 3, K: 4})
	cmyk.SetCMYK(0, 1, color.CMYK{C: 5, M: 6, Y: 7, K: 8})

	pix, channels := Pixels(&Image{Format: FormatJPEG, Width: 1, Height: 2, Raster: cmyk})
	assert.Equal(t, 4, channels)
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8}, pix)

	ycbcr := image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444)
	for i := range ycbcr.Y {
		ycbcr.Y[i] = 255
		ycbcr.Cb[i] = 128
		ycbcr.Cr[i] = 128
	}
	pix, channels = Pixels(&Image{Format: FormatJPEG, Width: 2, Height: 2, Raster: ycbcr})
	assert.Equal(t, 3, channels)
	assert.Equal(t, bytes.Repeat([]uint8{255}, 12), pix)

	translucent := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	translucent.SetNRGBA(0, 0, color.NRGBA{R: 9, G: 8, B: 7, A: 6})
	pix, channels = Pixels(&Image{Format: FormatWebP, Width: 1, Height: 1, Raster: translucent})
	assert.Equal(t, 4, channels)
	assert.Equal(t, []uint8{9, 8, 7, 6}, pix)
}

func TestToNRGBA(t *testing.T) {
	t.Run("gray gains opaque alpha", func(t *testing.T) {
		gray := image.NewGray(image.Rect(0, 0, 1, 1))
		gray.SetGray(0, 0, color.Gray{Y: 42})

		dst := ToNRGBA(gray)
		assert.Equal(t, []uint8{42, 42, 42, 255}, dst.Pix)
	})

	t.Run("nrgba copied exactly from offset bounds", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
		src.SetNRGBA(1, 1, color.NRGBA{R: 201, G: 3, B: 77, A: 1})
		sub := src.SubImage(image.Rect(1, 1, 3, 3))

		dst := ToNRGBA(sub)
		assert.Equal(t, image.Rect(0, 0, 2, 2), dst.Rect)
		assert.Equal(t, 8, dst.Stride)
		assert.Equal(t, color.NRGBA{R: 201, G: 3, B: 77, A: 1}, dst.NRGBAAt(0, 0))
	})

	t.Run("paletted resolves palette entries", func(t *testing.T) {
		p := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.RGBA{G: 250, A: 255}})
		dst := ToNRGBA(p)
		assert.Equal(t, []uint8{0, 250, 0, 255}, dst.Pix)
	})
}
