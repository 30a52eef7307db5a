package images

import (
	"image"
	"image/color"
)

// channelsOf infers the stored channel count from the decoded raster type.
func channelsOf(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.CMYK:
		return 4
	case *image.YCbCr:
		return 3
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	if isOpaque(img) {
		return 3
	}
	return 4
}

// isOpaque uses the raster's own Opaque method when it has one and otherwise
// scans every alpha sample.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// Pixels flattens an image into row-major, channel-last 8-bit samples.
//
// The channel count is the one reported by Image.Channels. 16-bit samples
// keep their high byte. Paletted images are expanded to RGB or RGBA.
//
// Arguments:
// - img: The decoded image.
//
// Returns:
// - The pixel buffer of length Width*Height*Channels.
// - The channel count.
//
// @example
// pix, channels := Pixels(img)
func Pixels(img *Image) ([]uint8, int) {
	channels := img.Channels()
	bounds := img.Raster.Bounds()
	pix := make([]uint8, 0, bounds.Dx()*bounds.Dy()*channels)

	if cmyk, ok := img.Raster.(*image.CMYK); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := cmyk.PixOffset(bounds.Min.X, y)
			pix = append(pix, cmyk.Pix[i:i+bounds.Dx()*4]...)
		}
		return pix, channels
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			src := img.Raster.At(x, y)
			c := nrgbaOf(src)
			switch channels {
			case 1:
				pix = append(pix, grayOf(src, c))
			case 2:
				pix = append(pix, grayOf(src, c), c.A)
			case 3:
				pix = append(pix, c.R, c.G, c.B)
			default:
				pix = append(pix, c.R, c.G, c.B, c.A)
			}
		}
	}
	return pix, channels
}

// nrgbaOf converts to straight-alpha 8-bit color. 16-bit straight colors are
// narrowed directly so translucent samples keep their high byte.
func nrgbaOf(src color.Color) color.NRGBA {
	if c, ok := src.(color.NRGBA64); ok {
		return color.NRGBA{R: uint8(c.R >> 8), G: uint8(c.G >> 8), B: uint8(c.B >> 8), A: uint8(c.A >> 8)}
	}
	return color.NRGBAModel.Convert(src).(color.NRGBA)
}

// grayOf returns the luminance sample for gray sources. Gray PNGs with a
// transparency chunk decode to NRGBA with equal R, G and B, so R is the sample.
func grayOf(src color.Color, c color.NRGBA) uint8 {
	switch g := src.(type) {
	case color.Gray:
		return g.Y
	case color.Gray16:
		return uint8(g.Y >> 8)
	}
	return c.R
}

// ToNRGBA normalizes any image to 4-channel straight-alpha RGBA anchored at
// the origin. Pixels without alpha become fully opaque. NRGBA sources are
// copied without a premultiplication round trip.
//
// Arguments:
// - img: The source image.
//
// Returns:
// - A new *image.NRGBA with Stride == 4*Width.
//
// @example
// rgba := ToNRGBA(paletted)
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < bounds.Dy(); y++ {
			i := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[i:i+dst.Stride])
		}
		return dst
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			dst.SetNRGBA(x, y, nrgbaOf(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return dst
}
