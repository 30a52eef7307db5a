package images

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageFormat represents supported image formats
type ImageFormat string

// ImageFormat constants
const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatGIF is the GIF image format. Only the first frame is kept.
	FormatGIF ImageFormat = "gif"
	// FormatBMP is the Windows bitmap format.
	FormatBMP ImageFormat = "bmp"
	// FormatTIFF is the TIFF image format.
	FormatTIFF ImageFormat = "tiff"
)

// JPEGQuality is the quality used when a JPEG source is written back out.
const JPEGQuality = 75

// ErrUnknownFormat is returned when no registered decoder recognizes the data.
var ErrUnknownFormat = errors.New("unknown image format")

// Formats lists every format that can be both decoded and encoded.
func Formats() []ImageFormat {
	return []ImageFormat{FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatTIFF, FormatWebP}
}

// Supported reports whether f has a registered encoder.
func (f ImageFormat) Supported() bool {
	for _, s := range Formats() {
		if s == f {
			return true
		}
	}
	return false
}

// Encode writes img to w in the given format.
//
// Arguments:
// - w: The destination writer.
// - img: The image to encode.
// - format: The target format.
//
// Returns:
// - error if the format has no encoder or encoding fails.
//
// @example
// err := Encode(file, img, FormatTIFF)
func Encode(w io.Writer, img image.Image, format ImageFormat) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Lossless: true})
	default:
		return errors.Errorf("no encoder registered for format %q", format)
	}
	return errors.Wrapf(err, "failed to encode %s", format)
}
